package utils

import (
	"time"
)

var location = time.UTC

// SetLocation sets the zone used when presenting timestamps. Unknown zones keep UTC.
func SetLocation(name string) error {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err
	}
	location = loc
	return nil
}

func Location() *time.Location {
	return location
}

// InLocation converts a stored UTC instant for presentation.
func InLocation(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(location)
}
