package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bossofgyms/newbot/internal/models"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "bot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	p, err := db.GetProfile(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, p)

	require.NoError(t, db.CreateIfAbsent(ctx, 42))
	require.NoError(t, db.CreateIfAbsent(ctx, 42))

	p, err = db.GetProfile(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(42), p.ChatID)
	assert.False(t, p.HasBirthData())
	assert.False(t, p.Subscribed)

	info := models.BirthInfo{Date: "31.07.1990", Sign: zodiac.Leo, Time: "14:30", Place: "Москва"}
	require.NoError(t, db.UpdateBirthInfo(ctx, 42, info))

	p, err = db.GetProfile(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "31.07.1990", p.BirthDate)
	assert.Equal(t, zodiac.Leo, p.Sign)
	assert.Equal(t, "14:30", p.BirthTime)
	assert.Equal(t, "Москва", p.BirthPlace)
}

func TestUpdateBirthInfoUnknownFields(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, db.UpdateBirthInfo(ctx, 7, models.BirthInfo{Date: "02.11.1991", Sign: zodiac.Scorpio}))

	p, err := db.GetProfile(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Empty(t, p.BirthTime)
	assert.Empty(t, p.BirthPlace)

	var isNull bool
	require.NoError(t, db.QueryRow(`SELECT birth_time IS NULL FROM users WHERE chat_id=7`).Scan(&isNull))
	assert.True(t, isNull)
}

func TestSubscriptions(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, db.UpdateBirthInfo(ctx, 1, models.BirthInfo{Date: "31.07.1990", Sign: zodiac.Leo}))
	require.NoError(t, db.UpdateBirthInfo(ctx, 2, models.BirthInfo{Date: "21.03.1990", Sign: zodiac.Aries}))
	require.NoError(t, db.CreateIfAbsent(ctx, 3))

	require.NoError(t, db.SetSubscribed(ctx, 1, true))
	require.NoError(t, db.SetSubscribed(ctx, 2, true))
	require.NoError(t, db.SetSubscribed(ctx, 3, true)) // no sign yet

	subs, err := db.ListSubscribed(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Subscriber{
		{ChatID: 1, Sign: zodiac.Leo},
		{ChatID: 2, Sign: zodiac.Aries},
	}, subs)

	require.NoError(t, db.SetSubscribed(ctx, 1, false))
	subs, err = db.ListSubscribed(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Subscriber{{ChatID: 2, Sign: zodiac.Aries}}, subs)

	p, err := db.GetProfile(ctx, 2)
	require.NoError(t, err)
	assert.True(t, p.Subscribed)
}

func TestSetSubscribedUnknownUser(t *testing.T) {
	err := newTestDB(t).SetSubscribed(context.Background(), 99, true)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestOnboardingState(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	st, err := db.GetOnboarding(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.StepIdle, st.Step)
	assert.Equal(t, int64(5), st.ChatID)

	want := models.OnboardingState{ChatID: 5, Step: models.StepAwaitingTime, Date: "31.07.1990", Sign: zodiac.Leo}
	require.NoError(t, db.SetOnboarding(ctx, want))

	st, err = db.GetOnboarding(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, want, st)

	want.Step = models.StepAwaitingPlace
	want.Time = "14:30"
	require.NoError(t, db.SetOnboarding(ctx, want))
	st, err = db.GetOnboarding(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, want, st)

	require.NoError(t, db.ClearOnboarding(ctx, 5))
	st, err = db.GetOnboarding(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, models.StepIdle, st.Step)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bot.db")

	db, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.UpdateBirthInfo(ctx, 1, models.BirthInfo{Date: "31.07.1990", Sign: zodiac.Leo}))
	require.NoError(t, db.Close())

	db, err = New(path)
	require.NoError(t, err)
	defer db.Close()

	p, err := db.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, zodiac.Leo, p.Sign)
}
