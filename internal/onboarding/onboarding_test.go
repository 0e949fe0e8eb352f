package onboarding

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bossofgyms/newbot/internal/models"
	"github.com/Bossofgyms/newbot/internal/storage"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

const chatID = int64(100)

func newMachine(t *testing.T) (*Machine, *storage.DB) {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "bot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, db), db
}

func send(t *testing.T, m *Machine, text string) Reply {
	t.Helper()
	reply, handled, err := m.Handle(context.Background(), chatID, text)
	require.NoError(t, err)
	require.True(t, handled)
	return reply
}

func TestOnboardingEndToEnd(t *testing.T) {
	ctx := context.Background()
	m, db := newMachine(t)

	start, err := m.Start(ctx, chatID)
	require.NoError(t, err)
	assert.Contains(t, start.Text, "Введите вашу дату рождения")

	r := send(t, m, "31.07.1990")
	assert.Equal(t, KindPrompt, r.Kind)
	assert.Contains(t, r.Text, "Ваш знак зодиака: Лев")

	r = send(t, m, "14:30")
	assert.Equal(t, KindPrompt, r.Kind)
	assert.Equal(t, txtAskPlace, r.Text)

	r = send(t, m, "Москва")
	assert.Equal(t, KindCompleted, r.Kind)
	assert.Equal(t, txtSaved, r.Text)
	for _, fact := range []string{"31.07.1990", "Лев", "14:30", "Москва"} {
		assert.Contains(t, r.Followup, fact)
	}

	p, err := db.GetProfile(ctx, chatID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "31.07.1990", p.BirthDate)
	assert.Equal(t, zodiac.Leo, p.Sign)
	assert.Equal(t, "14:30", p.BirthTime)
	assert.Equal(t, "Москва", p.BirthPlace)

	step, err := m.Current(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, models.StepIdle, step)
}

func TestOnboardingUnknownTimeAndPlace(t *testing.T) {
	ctx := context.Background()
	m, db := newMachine(t)

	_, err := m.Start(ctx, chatID)
	require.NoError(t, err)
	send(t, m, "02.11.1991")
	send(t, m, "-")
	r := send(t, m, "-")

	assert.Equal(t, KindCompleted, r.Kind)
	assert.NotContains(t, r.Followup, "⏰")
	assert.NotContains(t, r.Followup, "📍")

	p, err := db.GetProfile(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, zodiac.Scorpio, p.Sign)
	assert.Empty(t, p.BirthTime)
	assert.Empty(t, p.BirthPlace)
}

func TestOnboardingInvalidInputKeepsStep(t *testing.T) {
	ctx := context.Background()
	m, _ := newMachine(t)
	_, err := m.Start(ctx, chatID)
	require.NoError(t, err)

	tests := []struct {
		input string
		want  string
	}{
		{"31.02.2024", "В феврале 2024 года только 29 дней"},
		{"31.04.2023", "В этом месяце только 30 дней"},
		{"01.01.1899", "Год должен быть от 1900 до 2030"},
		{"hello", "Неверный формат даты"},
	}
	for _, tt := range tests {
		r := send(t, m, tt.input)
		assert.Equal(t, KindInvalid, r.Kind, tt.input)
		assert.Contains(t, r.Text, tt.want, tt.input)

		step, err := m.Current(ctx, chatID)
		require.NoError(t, err)
		assert.Equal(t, models.StepAwaitingDate, step)
	}

	send(t, m, "29.02.2024")
	for _, in := range []string{"24:00", "12:60", "noon", "31.07.1990"} {
		r := send(t, m, in)
		assert.Equal(t, KindInvalid, r.Kind, in)
	}
	step, err := m.Current(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingTime, step)

	send(t, m, "0:00")
	for _, in := range []string{"", "Москва!", "<script>"} {
		r := send(t, m, in)
		assert.Equal(t, KindInvalid, r.Kind, in)
	}
	r := send(t, m, "Санкт-Петербург, Россия")
	assert.Equal(t, KindCompleted, r.Kind)
}

func TestIdleUserDateRestartsOnboarding(t *testing.T) {
	ctx := context.Background()
	m, _ := newMachine(t)

	_, handled, err := m.Handle(ctx, chatID, "привет")
	require.NoError(t, err)
	assert.False(t, handled)

	r := send(t, m, "21.03.2000")
	assert.Equal(t, KindPrompt, r.Kind)
	assert.Contains(t, r.Text, "Овен")

	step, err := m.Current(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingTime, step)
}

func TestIdleUserMalformedDate(t *testing.T) {
	m, _ := newMachine(t)

	r := send(t, m, "99.99.9999")
	assert.Equal(t, KindInvalid, r.Kind)

	step, err := m.Current(context.Background(), chatID)
	require.NoError(t, err)
	assert.Equal(t, models.StepIdle, step)
}

func TestStartResetsProgress(t *testing.T) {
	ctx := context.Background()
	m, _ := newMachine(t)

	_, err := m.Start(ctx, chatID)
	require.NoError(t, err)
	send(t, m, "31.07.1990")

	_, err = m.Start(ctx, chatID)
	require.NoError(t, err)
	step, err := m.Current(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, models.StepAwaitingDate, step)
}

type memStates struct {
	states map[int64]models.OnboardingState
}

func (s *memStates) GetOnboarding(_ context.Context, chatID int64) (models.OnboardingState, error) {
	st, ok := s.states[chatID]
	if !ok {
		return models.OnboardingState{ChatID: chatID}, nil
	}
	return st, nil
}

func (s *memStates) SetOnboarding(_ context.Context, st models.OnboardingState) error {
	s.states[st.ChatID] = st
	return nil
}

func (s *memStates) ClearOnboarding(_ context.Context, chatID int64) error {
	delete(s.states, chatID)
	return nil
}

type failingProfiles struct{}

func (failingProfiles) CreateIfAbsent(context.Context, int64) error { return nil }

func (failingProfiles) UpdateBirthInfo(context.Context, int64, models.BirthInfo) error {
	return errors.New("disk I/O error")
}

func TestPersistenceErrorKeepsState(t *testing.T) {
	ctx := context.Background()
	states := &memStates{states: map[int64]models.OnboardingState{
		chatID: {ChatID: chatID, Step: models.StepAwaitingPlace, Date: "31.07.1990", Sign: zodiac.Leo},
	}}
	m := New(failingProfiles{}, states)

	_, handled, err := m.Handle(ctx, chatID, "Москва")
	assert.True(t, handled)
	assert.Error(t, err)
	assert.Equal(t, models.StepAwaitingPlace, states.states[chatID].Step)
}
