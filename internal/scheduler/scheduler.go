package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Bossofgyms/newbot/internal/logger"
	"github.com/Bossofgyms/newbot/internal/models"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

const (
	dailyJobName = "daily-horoscope"
	retryJobName = "daily-horoscope-retry"
)

type Config struct {
	Hour         uint          `envconfig:"HOUR" default:"9"`
	Minute       uint          `envconfig:"MINUTE" default:"0"`
	Timezone     string        `envconfig:"TIMEZONE" default:"Europe/Moscow"`
	SendInterval time.Duration `envconfig:"SEND_INTERVAL" default:"100ms"`
	RetryDelay   time.Duration `envconfig:"RETRY_DELAY" default:"1m"`
}

func (c Config) Validate() error {
	if c.Hour > 23 {
		return fmt.Errorf("delivery hour %d out of range", c.Hour)
	}
	if c.Minute > 59 {
		return fmt.Errorf("delivery minute %d out of range", c.Minute)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("delivery timezone: %w", err)
	}
	return nil
}

// At renders the delivery time the way users see it, e.g. "9:00".
func (c Config) At() string {
	return fmt.Sprintf("%d:%02d", c.Hour, c.Minute)
}

type SubscriberLister interface {
	ListSubscribed(ctx context.Context) ([]models.Subscriber, error)
}

type Sender interface {
	SendDailyHoroscope(ctx context.Context, chatID int64, sign zodiac.Sign) error
}

// Delivery pushes the daily horoscope to every subscriber once a day.
type Delivery struct {
	cfg    Config
	subs   SubscriberLister
	sender Sender
	clock  clockwork.Clock
	log    *slog.Logger

	ctx   context.Context
	sched gocron.Scheduler
}

func New(cfg Config, subs SubscriberLister, sender Sender, clock clockwork.Clock, log *slog.Logger) *Delivery {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Delivery{
		cfg:    cfg,
		subs:   subs,
		sender: sender,
		clock:  clock,
		log:    log.With(slog.String("component", "scheduler")),
	}
}

// Start registers the daily job and starts the scheduler. ctx is handed to
// every delivery cycle.
func (d *Delivery) Start(ctx context.Context) error {
	const op = "scheduler.Start"

	if err := d.cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	loc, _ := time.LoadLocation(d.cfg.Timezone)

	s, err := gocron.NewScheduler(
		gocron.WithClock(d.clock),
		gocron.WithLocation(loc),
		gocron.WithLogger(d.log),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	d.ctx = ctx
	d.sched = s

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(d.cfg.Hour, d.cfg.Minute, 0))),
		gocron.NewTask(d.cycle),
		gocron.WithName(dailyJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithEventListeners(
			gocron.AfterJobRunsWithError(d.onError),
			gocron.AfterJobRunsWithPanic(d.onPanic),
		),
	)
	if err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("%s: %w", op, err)
	}

	s.Start()
	d.log.Info("рассылка запланирована",
		slog.String("at", d.cfg.At()),
		slog.String("timezone", d.cfg.Timezone),
	)
	return nil
}

func (d *Delivery) Shutdown() error {
	if d.sched == nil {
		return nil
	}
	return d.sched.Shutdown()
}

func (d *Delivery) cycle() error {
	return d.RunOnce(d.ctx)
}

// RunOnce delivers one batch. A failed send is logged and skipped; only a
// failure to list subscribers fails the cycle.
func (d *Delivery) RunOnce(ctx context.Context) error {
	const op = "scheduler.RunOnce"

	subs, err := d.subs.ListSubscribed(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	d.log.Info("начинаем рассылку", slog.Int("subscribers", len(subs)))

	sent := 0
	for i, sub := range subs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if i > 0 && d.cfg.SendInterval > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%s: %w", op, ctx.Err())
			case <-d.clock.After(d.cfg.SendInterval):
			}
		}

		if err := d.sender.SendDailyHoroscope(ctx, sub.ChatID, sub.Sign); err != nil {
			d.log.Error("ошибка отправки гороскопа",
				slog.Int64("chat_id", sub.ChatID),
				slog.String("sign", sub.Sign.String()),
				logger.Err(err),
			)
			continue
		}
		sent++
	}

	d.log.Info("рассылка завершена", slog.Int("sent", sent), slog.Int("total", len(subs)))
	return nil
}

func (d *Delivery) onError(jobID uuid.UUID, jobName string, err error) {
	d.log.Error("ошибка цикла рассылки",
		slog.String("job_id", jobID.String()),
		slog.String("job", jobName),
		logger.Err(err),
	)
	if jobName == dailyJobName {
		go d.scheduleRetry()
	}
}

func (d *Delivery) onPanic(jobID uuid.UUID, jobName string, recoverData any) {
	d.log.Error("паника в цикле рассылки",
		slog.String("job_id", jobID.String()),
		slog.String("job", jobName),
		slog.Any("panic", recoverData),
	)
	if jobName == dailyJobName {
		go d.scheduleRetry()
	}
}

// scheduleRetry re-runs a failed cycle once after RetryDelay.
func (d *Delivery) scheduleRetry() {
	at := d.clock.Now().Add(d.cfg.RetryDelay)
	_, err := d.sched.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(at)),
		gocron.NewTask(d.cycle),
		gocron.WithName(retryJobName),
		gocron.WithEventListeners(
			gocron.AfterJobRunsWithError(func(jobID uuid.UUID, jobName string, err error) {
				d.log.Error("повторная рассылка не удалась", slog.String("job_id", jobID.String()), logger.Err(err))
			}),
		),
	)
	if err != nil {
		d.log.Error("не удалось запланировать повтор рассылки", logger.Err(err))
		return
	}
	d.log.Warn("повтор рассылки запланирован", slog.Time("at", at))
}
