package timezone

import (
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"

	"meetslot/config"
	"meetslot/shared/constant"
)

var (
	appLocation *time.Location
	business    = Fixed()
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using " + constant.DefaultTimezone)
		cfg.App.Timezone = constant.DefaultTimezone
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to fixed UTC+05:30")
		appLocation = Fixed()

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Fixed returns the UTC+05:30 zone without consulting the tz database.
func Fixed() *time.Location {
	return time.FixedZone(constant.DefaultTimezoneLabel, constant.DefaultTimezoneOffset)
}

// Business is the zone slot rules are evaluated in. It is always UTC+05:30 and does not
// follow APP_TIMEZONE, which only affects logging and display helpers.
func Business() *time.Location {
	return business
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning fixed UTC+05:30")

		return Fixed()
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Clock yields the current instant; services take one so tests can pin "now".
type Clock func() time.Time

// SystemClock is the Clock backed by the wall clock in the application timezone.
func SystemClock() Clock {
	return Now
}
