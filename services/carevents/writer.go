package carevents

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// WriteEvents persists events as a single JSON array, preserving
// order. an empty batch still produces a valid `[]` file.
func WriteEvents(path string, events []Event) error {
	if events == nil {
		events = []Event{}
	}
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// WriteRawDump saves the source records as-is, in case additional work
// needs to be done on them later.
func WriteRawDump(path string, records []RawEventRecord) error {
	if records == nil {
		records = []RawEventRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal raw records: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// WriteEventNames saves one event title per line, for eyeballing a run.
func WriteEventNames(path string, events []Event) error {
	var out strings.Builder
	for _, event := range events {
		out.WriteString(event.Name)
		out.WriteString("\n")
	}
	return os.WriteFile(path, []byte(out.String()), 0644)
}
