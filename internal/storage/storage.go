package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Bossofgyms/newbot/internal/models"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

//go:embed schema.sql
var ddl embed.FS

var ErrUserNotFound = errors.New("user not found")

type DB struct{ *sql.DB }

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	// sqlite serialises writers anyway; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err = migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(string(b))
	return err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ---------- users -----------------------------------------------------------

// CreateIfAbsent registers the user; an existing row is left untouched.
func (d *DB) CreateIfAbsent(ctx context.Context, chatID int64) error {
	_, err := d.ExecContext(ctx, `
        INSERT INTO users (chat_id, created_at) VALUES (?, ?)
        ON CONFLICT(chat_id) DO NOTHING
    `, chatID, time.Now().Unix())
	return err
}

// GetProfile returns nil, nil when the user is unknown.
func (d *DB) GetProfile(ctx context.Context, chatID int64) (*models.Profile, error) {
	var (
		p                         models.Profile
		date, sign, bTime, bPlace sql.NullString
	)
	err := d.QueryRowContext(ctx, `
        SELECT chat_id, birth_date, zodiac_sign, birth_time, birth_place, subscribed, created_at
        FROM users WHERE chat_id=?`, chatID,
	).Scan(&p.ChatID, &date, &sign, &bTime, &bPlace, &p.Subscribed, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.BirthDate = date.String
	p.Sign = zodiac.Sign(sign.String)
	p.BirthTime = bTime.String
	p.BirthPlace = bPlace.String
	return &p, nil
}

// UpdateBirthInfo stores the onboarding result, creating the user if needed.
func (d *DB) UpdateBirthInfo(ctx context.Context, chatID int64, info models.BirthInfo) error {
	_, err := d.ExecContext(ctx, `
        INSERT INTO users (chat_id, birth_date, zodiac_sign, birth_time, birth_place, created_at)
        VALUES (?,?,?,?,?,?)
        ON CONFLICT(chat_id) DO UPDATE SET birth_date=excluded.birth_date,
            zodiac_sign=excluded.zodiac_sign,
            birth_time=excluded.birth_time,
            birth_place=excluded.birth_place
    `, chatID, info.Date, string(info.Sign), nullable(info.Time), nullable(info.Place), time.Now().Unix())
	return err
}

func (d *DB) SetSubscribed(ctx context.Context, chatID int64, subscribed bool) error {
	res, err := d.ExecContext(ctx, `UPDATE users SET subscribed=? WHERE chat_id=?`, subscribed, chatID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListSubscribed returns subscribed users that have a sign.
func (d *DB) ListSubscribed(ctx context.Context) ([]models.Subscriber, error) {
	rows, err := d.QueryContext(ctx, `
        SELECT chat_id, zodiac_sign FROM users
        WHERE subscribed = 1 AND zodiac_sign IS NOT NULL AND zodiac_sign != ''
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []models.Subscriber
	for rows.Next() {
		var (
			s    models.Subscriber
			sign string
		)
		if err := rows.Scan(&s.ChatID, &sign); err != nil {
			return nil, err
		}
		s.Sign = zodiac.Sign(sign)
		res = append(res, s)
	}
	return res, rows.Err()
}

// ---------- onboarding (fsm) ------------------------------------------------

// GetOnboarding returns an idle state when nothing is stored.
func (d *DB) GetOnboarding(ctx context.Context, chatID int64) (models.OnboardingState, error) {
	st := models.OnboardingState{ChatID: chatID, Step: models.StepIdle}
	var date, sign, bTime sql.NullString
	err := d.QueryRowContext(ctx, `
        SELECT step, birth_date, zodiac_sign, birth_time FROM onboarding WHERE chat_id=?`, chatID,
	).Scan(&st.Step, &date, &sign, &bTime)
	if errors.Is(err, sql.ErrNoRows) {
		return st, nil
	}
	if err != nil {
		return st, err
	}
	st.Date = date.String
	st.Sign = zodiac.Sign(sign.String)
	st.Time = bTime.String
	return st, nil
}

func (d *DB) SetOnboarding(ctx context.Context, st models.OnboardingState) error {
	_, err := d.ExecContext(ctx, `
        INSERT INTO onboarding (chat_id, step, birth_date, zodiac_sign, birth_time, updated_at)
        VALUES (?,?,?,?,?,?)
        ON CONFLICT(chat_id) DO UPDATE SET step=excluded.step,
            birth_date=excluded.birth_date,
            zodiac_sign=excluded.zodiac_sign,
            birth_time=excluded.birth_time,
            updated_at=excluded.updated_at
    `, st.ChatID, st.Step, nullable(st.Date), nullable(string(st.Sign)), nullable(st.Time), time.Now().Unix())
	return err
}

func (d *DB) ClearOnboarding(ctx context.Context, chatID int64) error {
	_, err := d.ExecContext(ctx, `DELETE FROM onboarding WHERE chat_id=?`, chatID)
	return err
}
