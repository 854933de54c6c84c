package carevents

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeFlatVenue(t *testing.T) {
	raw := RawEventRecord{
		"name": "Car Meet",
		"venue": map[string]any{
			"address": "1 Main St",
			"city":    "Springfield",
		},
	}

	event, err := Normalize(raw)
	require.NoError(t, err)

	require.Equal(t, "Car Meet", event.Name)
	require.Nil(t, event.Summary)
	require.Nil(t, event.StartDatetime)
	require.Nil(t, event.EndDatetime)
	require.Nil(t, event.Url)
	require.NotNil(t, event.VenueAddress)
	require.Equal(t, "1 Main St", *event.VenueAddress)
	require.NotNil(t, event.VenueCity)
	require.Equal(t, "Springfield", *event.VenueCity)
	require.Nil(t, event.VenueRegion)
	require.Nil(t, event.VenueCountry)
	require.Nil(t, event.VenueCode)
	require.Equal(t, raw, event.RawData)
}

func TestNormalizeApiShape(t *testing.T) {
	raw := RawEventRecord{
		"name":    map[string]any{"text": "Hot Rod Expo"},
		"summary": "rods and more rods",
		"url":     "https://example.com/e/123",
		"start": map[string]any{
			"utc":   "2023-09-05T17:00:00Z",
			"local": "2023-09-05T10:00:00",
		},
		"end": map[string]any{
			"utc": "2023-09-05T20:00:00Z",
		},
		"venue": map[string]any{
			"name": "Expo Hall",
			"address": map[string]any{
				"address_1":   "50 Fair Ave",
				"city":        "Pomona",
				"region":      "CA",
				"country":     "US",
				"postal_code": "91768",
			},
		},
	}

	event, err := Normalize(raw)
	require.NoError(t, err)

	require.Equal(t, "Hot Rod Expo", event.Name)
	require.Equal(t, "rods and more rods", *event.Summary)
	require.Equal(t, "https://example.com/e/123", *event.Url)
	require.Equal(t, "2023-09-05T17:00:00Z", *event.StartDatetime)
	require.Equal(t, "2023-09-05T10:00:00", *event.StartDatetimeLocal)
	require.Equal(t, "2023-09-05T20:00:00Z", *event.EndDatetime)
	// only one representation given, the other must not be derived
	require.Nil(t, event.EndDatetimeLocal)
	require.Equal(t, "Expo Hall", *event.VenueName)
	require.Equal(t, "50 Fair Ave", *event.VenueAddress)
	require.Equal(t, "Pomona", *event.VenueCity)
	require.Equal(t, "CA", *event.VenueRegion)
	require.Equal(t, "US", *event.VenueCountry)
	require.Equal(t, "91768", *event.VenueCode)
}

func TestNormalizeMissingVenue(t *testing.T) {
	event, err := Normalize(RawEventRecord{"name": "Track Day"})
	require.NoError(t, err)

	require.Nil(t, event.VenueName)
	require.Nil(t, event.VenueAddress)
	require.Nil(t, event.VenueCity)
	require.Nil(t, event.VenueRegion)
	require.Nil(t, event.VenueCountry)
	require.Nil(t, event.VenueCode)
}

func TestNormalizeUnusableRecord(t *testing.T) {
	_, err := Normalize(nil)
	require.ErrorIs(t, err, ErrUnusableRecord)
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := RawEventRecord{
		"name":  "Demo Derby",
		"start": map[string]any{"utc": "2023-07-04T01:00:00Z"},
	}
	first, err := Normalize(raw)
	require.NoError(t, err)
	second, err := Normalize(raw)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// the serialized record must always carry the full field set, absent
// values included as nulls.
func TestNormalizeSerializedShape(t *testing.T) {
	event, err := Normalize(RawEventRecord{"name": "Cars and Coffee"})
	require.NoError(t, err)

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	expectedKeys := []string{
		"name", "summary",
		"startDatetime", "endDatetime",
		"startDatetimeLocal", "endDatetimeLocal",
		"url",
		"venue_name", "venue_address", "venue_city",
		"venue_region", "venue_country", "venue_code",
		"_raw_data",
	}
	require.Len(t, decoded, len(expectedKeys))
	for _, key := range expectedKeys {
		_, present := decoded[key]
		require.True(t, present, "missing key %q", key)
	}
	require.Nil(t, decoded["summary"])
	require.Equal(t, "Cars and Coffee", decoded["name"])
}
