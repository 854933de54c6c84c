// Package carevents turns raw eventbrite listing records into the
// canonical car-event records this project publishes.
package carevents

// RawEventRecord is an event as the upstream source returns it. the
// schema is owned by eventbrite and only partially consumed here, so it
// stays a generic mapping.
type RawEventRecord = map[string]any

// Event is the canonical output record. every field except Name and
// RawData may be absent, serialized as JSON null.
type Event struct {
	Name               string  `json:"name"`
	Summary            *string `json:"summary"`
	StartDatetime      *string `json:"startDatetime"`
	EndDatetime        *string `json:"endDatetime"`
	StartDatetimeLocal *string `json:"startDatetimeLocal"`
	EndDatetimeLocal   *string `json:"endDatetimeLocal"`
	Url                *string `json:"url"`
	VenueName          *string `json:"venue_name"`
	VenueAddress       *string `json:"venue_address"`
	VenueCity          *string `json:"venue_city"`
	VenueRegion        *string `json:"venue_region"`
	VenueCountry       *string `json:"venue_country"`
	VenueCode          *string `json:"venue_code"`

	// the source record kept verbatim for traceability
	RawData RawEventRecord `json:"_raw_data"`
}
