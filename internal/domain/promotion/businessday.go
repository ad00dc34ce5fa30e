// Package promotion holds the pure promotion rules: business-day validity,
// placement eligibility, discount computation and stacking.
package promotion

import (
	"fmt"
	"time"
)

// DefaultOffsetHours is the fixed UTC offset of the marketplace business day.
const DefaultOffsetHours = 3

// dateLayout formats a business day as a calendar date.
const dateLayout = "2006-01-02"

// BusinessDay is the civil day containing an instant, evaluated in a fixed UTC offset.
type BusinessDay struct {
	Start time.Time // first instant of the day
	End   time.Time // last representable instant of the day, at microsecond precision
}

// Date returns the calendar date of the business day, e.g. "2025-06-15".
func (d BusinessDay) Date() string {
	return d.Start.Format(dateLayout)
}

// BusinessDayBounds returns the start and end of the civil day containing now,
// computed in a fixed offset of offsetHours from UTC. It never consults the
// process time zone or the tz database.
func BusinessDayBounds(now time.Time, offsetHours int) (start, end time.Time) {
	day := BusinessDayOf(now, offsetHours)

	return day.Start, day.End
}

// BusinessDayOf returns the BusinessDay containing now.
func BusinessDayOf(now time.Time, offsetHours int) BusinessDay {
	zone := fixedZone(offsetHours)
	local := now.In(zone)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, zone)

	// Postgres stores microseconds; a nanosecond end would round up into the next day.
	end := start.AddDate(0, 0, 1).Add(-time.Microsecond)

	return BusinessDay{Start: start, End: end}
}

func fixedZone(offsetHours int) *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*int(time.Hour/time.Second))
}
