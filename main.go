package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/Bossofgyms/newbot/internal/config"
	"github.com/Bossofgyms/newbot/internal/handlers"
	"github.com/Bossofgyms/newbot/internal/horoscope"
	"github.com/Bossofgyms/newbot/internal/logger"
	"github.com/Bossofgyms/newbot/internal/onboarding"
	"github.com/Bossofgyms/newbot/internal/scheduler"
	"github.com/Bossofgyms/newbot/internal/storage"
	"github.com/Bossofgyms/newbot/internal/utils"
)

const (
	appName       = "astro_bot"
	updateWorkers = 16
)

func main() {
	boot := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	utils.Must(boot, "config", err)

	log, err := logger.New(appName, cfg.Log)
	utils.Must(boot, "logger", err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	utils.Must(log, "telegram", err)
	log.Info("бот авторизован", slog.String("username", bot.Self.UserName))

	db, err := storage.New(cfg.DBPath)
	utils.Must(log, "storage", err)
	defer db.Close()

	clock := clockwork.NewRealClock()
	loc, err := time.LoadLocation(cfg.Delivery.Timezone)
	utils.Must(log, "timezone", err)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := horoscope.NewMetrics(reg)

	var store horoscope.Store = horoscope.NewMemoryStore(clock)
	if cfg.CacheBackend == config.CacheRedis {
		rdb, err := cfg.Redis.NewRedisClient(ctx)
		utils.Must(log, "redis", err)
		defer rdb.Close()
		store = horoscope.NewRedisStore(rdb, clock)
	}

	service := horoscope.NewService(horoscope.Options{
		Sources:      horoscope.NewSources(cfg.Horoscope, clock),
		Translator:   horoscope.NewDefaultChain(cfg.Translate, log, metrics),
		Store:        store,
		Clock:        clock,
		Location:     loc,
		Logger:       log,
		Metrics:      metrics,
		SingleFlight: cfg.Horoscope.SingleFlight,
	})

	h := &handlers.Handler{
		Bot:            bot,
		DB:             db,
		Onboarding:     onboarding.New(db, db),
		Horoscopes:     service,
		Log:            log,
		DeliveryTime:   cfg.Delivery.At(),
		SupportContact: cfg.SupportContact,
	}
	h.RegisterCommands()

	delivery := scheduler.New(cfg.Delivery, db, h, clock, log)
	utils.Must(log, "scheduler", delivery.Start(ctx))
	defer func() {
		if err := delivery.Shutdown(); err != nil {
			log.Error("ошибка остановки планировщика", logger.Err(err))
		}
	}()

	g, gCtx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			log.Info("метрики доступны", slog.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	g.Go(func() error {
		clearCacheOnHangup(gCtx, hup, service, log)
		return nil
	})

	g.Go(func() error {
		poll(gCtx, bot, h, log)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("бот остановлен с ошибкой", logger.Err(err))
		return
	}
	log.Info("бот остановлен")
}

type cacheClearer interface {
	ClearCache(ctx context.Context) error
}

// clearCacheOnHangup drops every cached forecast each time SIGHUP arrives.
func clearCacheOnHangup(ctx context.Context, hup <-chan os.Signal, cache cacheClearer, log *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if err := cache.ClearCache(ctx); err != nil {
				log.Error("не удалось очистить кэш", logger.Err(err))
			}
		}
	}
}

// poll reads updates until ctx is cancelled. Updates are handled in
// parallel, at most updateWorkers at a time.
func poll(ctx context.Context, bot *tgbotapi.BotAPI, h *handlers.Handler, log *slog.Logger) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := bot.GetUpdatesChan(updateConfig)

	workers := &errgroup.Group{}
	workers.SetLimit(updateWorkers)
	defer workers.Wait()

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			workers.Go(func() error {
				defer func() {
					if r := recover(); r != nil {
						log.Error("паника при обработке обновления",
							slog.Int("update_id", upd.UpdateID), slog.Any("panic", r))
					}
				}()
				h.HandleUpdate(ctx, upd)
				return nil
			})
		}
	}
}
