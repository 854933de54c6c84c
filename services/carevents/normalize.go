package carevents

import "fmt"

var ErrUnusableRecord = fmt.Errorf("record is not a usable mapping")

// Normalize maps one raw source record to one Event. missing fields
// resolve to null, the full input is retained in RawData. it only fails
// when the record itself is unusable, which callers treat as "skip".
func Normalize(raw RawEventRecord) (Event, error) {
	if raw == nil {
		return Event{}, ErrUnusableRecord
	}

	out := Event{
		Name:    eventName(raw),
		Summary: optString(raw, "summary"),
		Url:     optString(raw, "url"),
		RawData: raw,
	}

	if start := subMapping(raw, "start"); start != nil {
		out.StartDatetime = optString(start, "utc")
		out.StartDatetimeLocal = optString(start, "local")
	}
	if end := subMapping(raw, "end"); end != nil {
		out.EndDatetime = optString(end, "utc")
		out.EndDatetimeLocal = optString(end, "local")
	}

	venue := subMapping(raw, "venue")
	if venue == nil {
		venue = subMapping(raw, "primary_venue")
	}
	if venue != nil {
		flattenVenue(&out, venue)
	}

	return out, nil
}

// the title is a flat string on search-result records but nested under
// name.text on API event objects.
func eventName(raw RawEventRecord) string {
	if name := optString(raw, "name"); name != nil {
		return *name
	}
	if name := subMapping(raw, "name"); name != nil {
		if text := optString(name, "text"); text != nil {
			return *text
		}
	}
	return ""
}

func flattenVenue(out *Event, venue map[string]any) {
	out.VenueName = optString(venue, "name")

	switch addr := venue["address"].(type) {
	case string:
		a := addr
		out.VenueAddress = &a
	case map[string]any:
		out.VenueAddress = optString(addr, "address_1")
		out.VenueCity = optString(addr, "city")
		out.VenueRegion = optString(addr, "region")
		out.VenueCountry = optString(addr, "country")
		out.VenueCode = optString(addr, "postal_code")
	}

	// flat venue mappings carry the address parts next to "address"
	if out.VenueCity == nil {
		out.VenueCity = optString(venue, "city")
	}
	if out.VenueRegion == nil {
		out.VenueRegion = optString(venue, "region")
	}
	if out.VenueCountry == nil {
		out.VenueCountry = optString(venue, "country")
	}
	if out.VenueCode == nil {
		out.VenueCode = optString(venue, "postal_code")
	}
}

func optString(m map[string]any, key string) *string {
	value, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &value
}

func subMapping(m map[string]any, key string) map[string]any {
	value, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	return value
}
