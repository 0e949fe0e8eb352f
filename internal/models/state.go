package models

import "github.com/Bossofgyms/newbot/internal/zodiac"

// Step is the onboarding position of a user.
type Step int

const (
	StepIdle Step = iota
	StepAwaitingDate
	StepAwaitingTime
	StepAwaitingPlace
)

func (s Step) String() string {
	switch s {
	case StepAwaitingDate:
		return "awaiting_date"
	case StepAwaitingTime:
		return "awaiting_time"
	case StepAwaitingPlace:
		return "awaiting_place"
	default:
		return "idle"
	}
}

// OnboardingState holds the answers collected so far.
type OnboardingState struct {
	ChatID int64       `db:"chat_id"`
	Step   Step        `db:"step"`
	Date   string      `db:"birth_date"`
	Sign   zodiac.Sign `db:"zodiac_sign"`
	Time   string      `db:"birth_time"`
}
