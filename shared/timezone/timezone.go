package timezone

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

// Init loads the named location. An empty name keeps the process local timezone.
func Init(name string) error {
	if name == "" {
		log.Debug().Msg("No timezone configured, using local timezone")

		appLocation = time.Local

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		appLocation = time.Local

		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	appLocation = loc
	log.Debug().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")

	return nil
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.Local
	}

	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns midnight of the current day in the application timezone.
func Today() time.Time {
	return StartOfDay(Now())
}

// StartOfDay drops the clock part of t, keeping its location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
