package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bossofgyms/newbot/internal/zodiac"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 12, 0, 0, 0, time.UTC)
}

func TestMoonPhase(t *testing.T) {
	cal := Heuristic{}
	tests := []struct {
		day  int
		want Phase
	}{
		{1, NewMoon},
		{3, NewMoon},
		{4, WaxingCrescent},
		{8, FirstQuarter},
		{14, WaxingGibbous},
		{15, FullMoon},
		{17, FullMoon},
		{21, WaningGibbous},
		{22, LastQuarter},
		{25, WaningCrescent},
		{28, WaningCrescent},
		{29, NewMoon},
		{31, NewMoon},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cal.MoonPhase(day(time.January, tt.day)), "day %d", tt.day)
	}
}

func TestMercuryRetrograde(t *testing.T) {
	cal := Heuristic{}
	tests := []struct {
		month time.Month
		day   int
		want  bool
	}{
		{time.January, 1, true},
		{time.January, 25, true},
		{time.January, 26, false},
		{time.May, 13, false},
		{time.May, 14, true},
		{time.May, 31, true},
		{time.June, 4, true},
		{time.June, 5, false},
		{time.September, 5, false},
		{time.September, 26, true},
		{time.December, 29, false},
		{time.December, 30, true},
		{time.December, 31, true},
		{time.March, 10, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cal.MercuryRetrograde(day(tt.month, tt.day)), "%s %d", tt.month, tt.day)
	}
}

func TestSnapshot(t *testing.T) {
	now := day(time.March, 21)

	c := Snapshot(Heuristic{}, now, nil)
	assert.Equal(t, zodiac.Aries, c.SunSign)
	assert.Equal(t, zodiac.Unknown, c.BirthSunSign)
	assert.Equal(t, WaningGibbous, c.MoonPhase)
	assert.False(t, c.MercuryRetrograde)

	c = Snapshot(Heuristic{}, now, &DayMonth{Day: 31, Month: 7})
	assert.Equal(t, zodiac.Leo, c.BirthSunSign)
	assert.Equal(t, zodiac.Aries, c.SunSign)
}

func TestPhaseDescription(t *testing.T) {
	assert.Contains(t, FullMoon.Description(), "🌕 Полнолуние")
	assert.Equal(t, "🌕 Луна в фазе Неизвестно", Phase("Неизвестно").Description())
}
