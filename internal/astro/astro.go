// Package astro answers the "what is in the sky today" questions used to
// decorate forecasts. The answers come from static tables, not an ephemeris.
package astro

import (
	"time"

	"github.com/Bossofgyms/newbot/internal/zodiac"
)

// Calendar describes the sky on a given day. Heuristic implements it with
// lookup tables; an ephemeris-backed type can replace it without touching callers.
type Calendar interface {
	SunSign(t time.Time) zodiac.Sign
	MoonPhase(t time.Time) Phase
	MercuryRetrograde(t time.Time) bool
}

// Conditions is a snapshot of the calendar for one day, plus the sun sign
// of a birth date when one is known.
type Conditions struct {
	SunSign           zodiac.Sign
	MoonPhase         Phase
	MercuryRetrograde bool
	BirthSunSign      zodiac.Sign
}

// Snapshot evaluates cal at t. birth may be nil.
func Snapshot(cal Calendar, t time.Time, birth *DayMonth) Conditions {
	c := Conditions{
		SunSign:           cal.SunSign(t),
		MoonPhase:         cal.MoonPhase(t),
		MercuryRetrograde: cal.MercuryRetrograde(t),
		BirthSunSign:      zodiac.Unknown,
	}
	if birth != nil {
		c.BirthSunSign = zodiac.Resolve(birth.Day, birth.Month)
	}
	return c
}

// DayMonth is a birthday without the year.
type DayMonth struct {
	Day   int
	Month int
}
