package horoscope

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/Bossofgyms/newbot/internal/astro"
	"github.com/Bossofgyms/newbot/internal/logger"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

// TextTranslator is satisfied by *Chain.
type TextTranslator interface {
	Translate(ctx context.Context, text string) (string, error)
}

type Options struct {
	Sources      []Source
	Translator   TextTranslator
	Calendar     astro.Calendar
	Store        Store
	Clock        clockwork.Clock
	Location     *time.Location
	Logger       *slog.Logger
	Metrics      *Metrics
	SingleFlight bool
}

// Service is the forecast pipeline. It is safe for concurrent use.
type Service struct {
	sources    []Source
	translator TextTranslator
	calendar   astro.Calendar
	store      Store
	clock      clockwork.Clock
	loc        *time.Location
	log        *slog.Logger
	metrics    *Metrics
	group      *singleflight.Group
}

func NewService(opts Options) *Service {
	s := &Service{
		sources:    opts.Sources,
		translator: opts.Translator,
		calendar:   opts.Calendar,
		store:      opts.Store,
		clock:      opts.Clock,
		loc:        opts.Location,
		log:        opts.Logger,
		metrics:    opts.Metrics,
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	if s.calendar == nil {
		s.calendar = astro.Heuristic{}
	}
	if s.store == nil {
		s.store = NewMemoryStore(s.clock)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if opts.SingleFlight {
		s.group = &singleflight.Group{}
	}
	return s
}

// NewSources builds the upstream tiers in priority order.
func NewSources(cfg Config, clock clockwork.Clock) []Source {
	sources := []Source{
		NewScrapeSource(cfg.ScrapeBase, cfg.Timeout),
		NewAztroSource(cfg.APIBase, cfg.Timeout, clock),
	}
	for _, url := range cfg.Sources {
		if url == "" {
			continue
		}
		sources = append(sources, NewAlternateSource(url, cfg.Timeout))
	}
	return sources
}

func (s *Service) now() time.Time {
	return s.clock.Now().In(s.loc)
}

// Forecast returns the composed forecast for sign, from cache when one was
// produced during the current hour. It never fails: when every upstream is
// down the templated default is used. birth may be nil.
func (s *Service) Forecast(ctx context.Context, sign zodiac.Sign, birth *astro.DayMonth) Forecast {
	now := s.now()
	key := CacheKey(sign, now)

	if f, ok := s.lookup(ctx, key); ok {
		return f
	}

	if s.group == nil {
		return s.produce(ctx, key, sign, birth)
	}
	v, _, _ := s.group.Do(key, func() (any, error) {
		return s.produce(ctx, key, sign, birth), nil
	})
	return v.(Forecast)
}

// Refresh drops the cached entry for the current hour and fetches again.
func (s *Service) Refresh(ctx context.Context, sign zodiac.Sign, birth *astro.DayMonth) Forecast {
	key := CacheKey(sign, s.now())
	if err := s.store.Delete(ctx, key); err != nil {
		s.log.Warn("не удалось удалить запись кэша", slog.String("key", key), logger.Err(err))
	}
	return s.Forecast(ctx, sign, birth)
}

func (s *Service) ClearCache(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("кэш гороскопов очищен")
	return nil
}

func (s *Service) lookup(ctx context.Context, key string) (Forecast, bool) {
	f, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warn("ошибка чтения кэша", slog.String("key", key), logger.Err(err))
		s.metrics.cacheLookup("error")
		return Forecast{}, false
	}
	if ok {
		s.metrics.cacheLookup("hit")
	} else {
		s.metrics.cacheLookup("miss")
	}
	return f, ok
}

func (s *Service) produce(ctx context.Context, key string, sign zodiac.Sign, birth *astro.DayMonth) Forecast {
	now := s.now()
	cond := astro.Snapshot(s.calendar, now, birth)

	reading, source := s.fetch(ctx, sign)
	description := s.localize(ctx, sign, reading.Description)

	f := Forecast{
		Sign:       sign,
		Date:       now.Format("02.01.2006"),
		Text:       Compose(now, sign, description, cond),
		Source:     source,
		Reading:    reading,
		Conditions: cond,
	}
	f.Reading.Description = description

	if err := s.store.Set(ctx, key, f, endOfHour(now)); err != nil {
		s.log.Warn("ошибка записи в кэш", slog.String("key", key), logger.Err(err))
	}
	return f
}

// fetch walks the tiers and falls back to the templated default.
func (s *Service) fetch(ctx context.Context, sign zodiac.Sign) (Reading, string) {
	for _, src := range s.sources {
		r, err := src.Fetch(ctx, sign)
		if err != nil {
			s.metrics.source(src.Name(), "error")
			s.log.Debug("источник недоступен",
				slog.String("source", src.Name()),
				slog.String("sign", sign.String()),
				logger.Err(err),
			)
			continue
		}
		s.metrics.source(src.Name(), "ok")
		s.log.Debug("прогноз получен",
			slog.String("source", src.Name()),
			slog.String("sign", sign.String()),
			slog.String("lang", DetectLanguage(r.Description)),
		)
		return r, src.Name()
	}
	s.metrics.source("default", "ok")
	s.log.Info("все источники недоступны, используем шаблон", slog.String("sign", sign.String()))
	return DefaultReading(sign), "default"
}

// localize translates text that is not Russian; on failure the original stays.
func (s *Service) localize(ctx context.Context, sign zodiac.Sign, text string) string {
	if s.translator == nil || len([]rune(text)) <= minDescriptionLength || HasCyrillic(text) {
		return text
	}
	translated, err := s.translator.Translate(ctx, text)
	if err != nil {
		if !errors.Is(err, ErrTranslationUnavailable) {
			s.log.Warn("ошибка перевода", slog.String("sign", sign.String()), logger.Err(err))
		}
		return text
	}
	return translated
}
