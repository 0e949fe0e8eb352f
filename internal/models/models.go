package models

import (
	"strconv"
	"strings"

	"github.com/Bossofgyms/newbot/internal/astro"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

// Profile is a telegram user as stored by the bot.
type Profile struct {
	ChatID     int64       `db:"chat_id"     json:"chat_id"`
	BirthDate  string      `db:"birth_date"  json:"birth_date"`  // DD.MM.YYYY, empty until onboarding completes
	Sign       zodiac.Sign `db:"zodiac_sign" json:"zodiac_sign"` // empty until onboarding completes
	BirthTime  string      `db:"birth_time"  json:"birth_time"`  // HH:MM, empty when unknown
	BirthPlace string      `db:"birth_place" json:"birth_place"` // empty when unknown
	Subscribed bool        `db:"subscribed"  json:"subscribed"`
	CreatedAt  int64       `db:"created_at"  json:"created_at"`
}

// HasBirthData reports whether onboarding was completed at least once.
func (p *Profile) HasBirthData() bool {
	return p != nil && p.BirthDate != "" && p.Sign != ""
}

// BirthDayMonth returns the day and month of BirthDate, or nil.
func (p *Profile) BirthDayMonth() *astro.DayMonth {
	if p == nil {
		return nil
	}
	parts := strings.Split(p.BirthDate, ".")
	if len(parts) != 3 {
		return nil
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return nil
	}
	return &astro.DayMonth{Day: day, Month: month}
}

// BirthInfo is the result of a finished onboarding.
type BirthInfo struct {
	Date  string
	Sign  zodiac.Sign
	Time  string // empty when the user did not know it
	Place string // empty when the user did not know it
}

// Subscriber is a recipient of the daily push.
type Subscriber struct {
	ChatID int64       `db:"chat_id"`
	Sign   zodiac.Sign `db:"zodiac_sign"`
}
