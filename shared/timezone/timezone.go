package timezone

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTimezone is used when APP_TIMEZONE is empty.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

var (
	appLocation *time.Location
	mu          sync.RWMutex
)

// Init loads the named IANA location as the application timezone. An unknown name falls back to UTC.
func Init(name string) {
	if name == "" {
		log.Warn().Str("timezone", DefaultTimezone).Msg("No timezone configured, using default")
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Ho_Chi_Minh', 'UTC'")

		loc = time.UTC
	}

	mu.Lock()
	appLocation = loc
	mu.Unlock()

	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
