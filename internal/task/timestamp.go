package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the wire format for all task timestamps. It is fixed,
// sortable, and human-readable.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp wraps time.Time to pin the JSON representation to TimeLayout.
type Timestamp struct {
	time.Time
}

// Now returns the current local time truncated to second precision, matching
// the wire format's resolution so values round-trip exactly.
func Now() Timestamp {
	return Timestamp{time.Now().Truncate(time.Second)}
}

// MarshalJSON encodes the timestamp as a TimeLayout string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimeLayout))
}

// UnmarshalJSON decodes a TimeLayout string into the timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Equal reports whether two timestamps represent the same instant.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Time.Equal(other.Time)
}
