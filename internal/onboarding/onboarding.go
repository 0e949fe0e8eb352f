// Package onboarding collects birth date, time and place over three
// messages. It knows nothing about the chat transport: callers pass text in
// and get a Reply describing what to answer.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Bossofgyms/newbot/internal/messages"
	"github.com/Bossofgyms/newbot/internal/models"
	"github.com/Bossofgyms/newbot/internal/validate"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

type ProfileStore interface {
	CreateIfAbsent(ctx context.Context, chatID int64) error
	UpdateBirthInfo(ctx context.Context, chatID int64, info models.BirthInfo) error
}

type StateStore interface {
	GetOnboarding(ctx context.Context, chatID int64) (models.OnboardingState, error)
	SetOnboarding(ctx context.Context, st models.OnboardingState) error
	ClearOnboarding(ctx context.Context, chatID int64) error
}

type Kind int

const (
	// KindPrompt asks for the next field; the reply keyboard should be hidden.
	KindPrompt Kind = iota + 1
	// KindInvalid rejects the input; the step does not change.
	KindInvalid
	// KindCompleted means the profile was saved. Followup carries the summary.
	KindCompleted
)

type Reply struct {
	Kind     Kind
	Text     string
	Followup string
}

type Machine struct {
	profiles ProfileStore
	states   StateStore
}

func New(profiles ProfileStore, states StateStore) *Machine {
	return &Machine{profiles: profiles, states: states}
}

// Start registers the user and (re)starts onboarding from the date step.
func (m *Machine) Start(ctx context.Context, chatID int64) (Reply, error) {
	if err := m.profiles.CreateIfAbsent(ctx, chatID); err != nil {
		return Reply{}, fmt.Errorf("create user: %w", err)
	}
	st := models.OnboardingState{ChatID: chatID, Step: models.StepAwaitingDate}
	if err := m.states.SetOnboarding(ctx, st); err != nil {
		return Reply{}, fmt.Errorf("set onboarding: %w", err)
	}
	return Reply{Kind: KindPrompt, Text: txtWelcome}, nil
}

// Current returns the step the user is on.
func (m *Machine) Current(ctx context.Context, chatID int64) (models.Step, error) {
	st, err := m.states.GetOnboarding(ctx, chatID)
	if err != nil {
		return models.StepIdle, err
	}
	return st.Step, nil
}

// Handle feeds a text message into the machine. handled is false when the
// user is idle and the text does not look like a date; the caller should
// ignore such messages. On a storage error the state is left as it was.
func (m *Machine) Handle(ctx context.Context, chatID int64, text string) (reply Reply, handled bool, err error) {
	st, err := m.states.GetOnboarding(ctx, chatID)
	if err != nil {
		return Reply{}, false, fmt.Errorf("get onboarding: %w", err)
	}
	text = strings.TrimSpace(text)

	switch st.Step {
	case models.StepAwaitingDate:
		reply, err = m.handleDate(ctx, st, text)
	case models.StepAwaitingTime:
		reply, err = m.handleTime(ctx, st, text)
	case models.StepAwaitingPlace:
		reply, err = m.handlePlace(ctx, st, text)
	default:
		if !validate.LooksLikeDate(text) {
			return Reply{}, false, nil
		}
		if err := m.profiles.CreateIfAbsent(ctx, chatID); err != nil {
			return Reply{}, false, fmt.Errorf("create user: %w", err)
		}
		reply, err = m.handleDate(ctx, models.OnboardingState{ChatID: chatID, Step: models.StepAwaitingDate}, text)
	}
	if err != nil {
		return Reply{}, true, err
	}
	return reply, true, nil
}

func reason(err error) (string, bool) {
	var inputErr *validate.InputError
	if errors.As(err, &inputErr) {
		return inputErr.Reason, true
	}
	return "", false
}

func (m *Machine) handleDate(ctx context.Context, st models.OnboardingState, text string) (Reply, error) {
	day, month, _, err := validate.Date(text)
	if err != nil {
		r, ok := reason(err)
		if !ok {
			return Reply{}, err
		}
		return Reply{Kind: KindInvalid, Text: txtBadDate(r)}, nil
	}

	sign := zodiac.Resolve(day, month)
	next := models.OnboardingState{
		ChatID: st.ChatID,
		Step:   models.StepAwaitingTime,
		Date:   text,
		Sign:   sign,
	}
	if err := m.states.SetOnboarding(ctx, next); err != nil {
		return Reply{}, fmt.Errorf("set onboarding: %w", err)
	}
	return Reply{Kind: KindPrompt, Text: txtDateAccepted(sign)}, nil
}

func (m *Machine) handleTime(ctx context.Context, st models.OnboardingState, text string) (Reply, error) {
	if err := validate.Time(text); err != nil {
		r, ok := reason(err)
		if !ok {
			return Reply{}, err
		}
		return Reply{Kind: KindInvalid, Text: txtBadTime(r)}, nil
	}

	next := st
	next.Step = models.StepAwaitingPlace
	next.Time = ""
	if text != validate.Unknown {
		next.Time = text
	}
	if err := m.states.SetOnboarding(ctx, next); err != nil {
		return Reply{}, fmt.Errorf("set onboarding: %w", err)
	}
	return Reply{Kind: KindPrompt, Text: txtAskPlace}, nil
}

func (m *Machine) handlePlace(ctx context.Context, st models.OnboardingState, text string) (Reply, error) {
	if err := validate.Place(text); err != nil {
		r, ok := reason(err)
		if !ok {
			return Reply{}, err
		}
		return Reply{Kind: KindInvalid, Text: txtBadPlace(r)}, nil
	}

	info := models.BirthInfo{
		Date: st.Date,
		Sign: st.Sign,
		Time: st.Time,
	}
	if text != validate.Unknown {
		info.Place = text
	}

	if err := m.profiles.UpdateBirthInfo(ctx, st.ChatID, info); err != nil {
		return Reply{}, fmt.Errorf("update birth info: %w", err)
	}
	if err := m.states.ClearOnboarding(ctx, st.ChatID); err != nil {
		return Reply{}, fmt.Errorf("clear onboarding: %w", err)
	}

	return Reply{
		Kind:     KindCompleted,
		Text:     txtSaved,
		Followup: messages.Welcome(info),
	}, nil
}
