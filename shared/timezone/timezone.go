// Package timezone holds the location photo timestamps are rendered in.
// Init loads it from APP_TIMEZONE at startup; until then everything is UTC.
package timezone

import (
	"fmt"
	"journal/config"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var location atomic.Pointer[time.Location]

// Init loads cfg.App.Timezone. An empty name selects UTC. An unknown name
// leaves UTC in place and returns the error.
func Init(cfg *config.Config) error {
	name := cfg.App.Timezone
	if name == "" {
		Set(time.UTC)

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		Set(time.UTC)

		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	Set(loc)
	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return nil
}

// Set replaces the application location. nil resets it to UTC.
func Set(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}

	location.Store(loc)
}

func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(Location())
}

// Parse reads value as a wall clock time in the application location.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, Location())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
