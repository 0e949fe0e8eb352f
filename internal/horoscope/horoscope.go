// Package horoscope produces the daily forecast text for a sign.
//
// A forecast is fetched from a chain of upstream sources (a scraped site,
// then JSON APIs, then a templated default), translated to Russian when the
// upstream answered in another language, decorated with calendar
// conditions and cached per sign for the current clock hour.
package horoscope

import (
	"context"
	"errors"
	"time"

	"github.com/Bossofgyms/newbot/internal/astro"
	"github.com/Bossofgyms/newbot/internal/zodiac"
)

var (
	// ErrUpstream wraps every failure of an external source.
	ErrUpstream = errors.New("upstream unavailable")
	// ErrTranslationUnavailable is returned when no translator produced usable text.
	ErrTranslationUnavailable = errors.New("translation unavailable")
)

// Reading is what a source returns before composition.
type Reading struct {
	Description   string `json:"description"`
	Compatibility string `json:"compatibility,omitempty"`
	Mood          string `json:"mood,omitempty"`
	Color         string `json:"color,omitempty"`
	LuckyNumber   string `json:"lucky_number,omitempty"`
	LuckyTime     string `json:"lucky_time,omitempty"`
	DateRange     string `json:"date_range,omitempty"`
}

// Source is one upstream tier.
type Source interface {
	Name() string
	Fetch(ctx context.Context, sign zodiac.Sign) (Reading, error)
}

// Forecast is the composed, cacheable result.
type Forecast struct {
	Sign       zodiac.Sign      `json:"sign"`
	Date       string           `json:"date"`
	Text       string           `json:"text"`
	Source     string           `json:"source"`
	Reading    Reading          `json:"reading"`
	Conditions astro.Conditions `json:"conditions"`
}

type Config struct {
	ScrapeBase   string        `envconfig:"SCRAPE_BASE" default:"https://horoscopes.rambler.ru"`
	APIBase      string        `envconfig:"API_BASE" default:"https://aztro.sameerkumar.website"`
	Sources      []string      `envconfig:"SOURCES" default:"https://horoscope-app-api.vercel.app/api/v1/get-horoscope/daily,https://theastrologer-api.herokuapp.com/api/horoscope"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"15s"`
	SingleFlight bool          `envconfig:"SINGLEFLIGHT" default:"false"`
}

type TranslateConfig struct {
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"10s"`
	GoogleURL   string        `envconfig:"GOOGLE_URL" default:"https://translate.googleapis.com/translate_a/single"`
	YandexURL   string        `envconfig:"YANDEX_URL" default:"https://translate.yandex.net/api/v1/tr.json/translate"`
	MyMemoryURL string        `envconfig:"MYMEMORY_URL" default:"https://api.mymemory.translated.net/get"`
	LibreURLs   []string      `envconfig:"LIBRE_URLS" default:"https://libretranslate.de/translate,https://translate.argosopentech.com/translate,https://libretranslate.pussthecat.org/translate"`
}
