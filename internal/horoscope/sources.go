package horoscope

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Bossofgyms/newbot/internal/zodiac"
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	apiUserAgent     = "AstroBot/1.0"

	minScrapedLength = 20
	seeForecast      = "См. общий прогноз"
)

func newClient(timeout time.Duration) *resty.Client {
	return resty.New().SetTimeout(timeout)
}

func upstreamErr(source string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrUpstream, source, fmt.Sprintf(format, args...))
}

// ScrapeSource reads the forecast paragraph from a per-sign HTML page at
// {base}/{code}/today/.
type ScrapeSource struct {
	client *resty.Client
	base   string
}

func NewScrapeSource(base string, timeout time.Duration) *ScrapeSource {
	client := newClient(timeout).SetHeaders(map[string]string{
		"User-Agent":                browserUserAgent,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "ru-RU,ru;q=0.9,en-US;q=0.8,en;q=0.7",
		"Upgrade-Insecure-Requests": "1",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Cache-Control":             "max-age=0",
	})
	return &ScrapeSource{client: client, base: strings.TrimRight(base, "/")}
}

func (s *ScrapeSource) Name() string { return "scrape" }

func (s *ScrapeSource) Fetch(ctx context.Context, sign zodiac.Sign) (Reading, error) {
	code, ok := zodiac.APICode(sign)
	if !ok {
		return Reading{}, upstreamErr(s.Name(), "no page for sign %q", sign)
	}

	res, err := s.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/%s/today/", s.base, code))
	if err != nil {
		return Reading{}, upstreamErr(s.Name(), "%v", err)
	}
	if res.StatusCode() != 200 {
		return Reading{}, upstreamErr(s.Name(), "status %d", res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return Reading{}, upstreamErr(s.Name(), "parse html: %v", err)
	}

	description := extractForecast(doc)
	if len([]rune(description)) <= minScrapedLength {
		return Reading{}, upstreamErr(s.Name(), "no forecast text for %s", sign)
	}

	return Reading{
		Description:   description,
		Compatibility: seeForecast,
		Mood:          seeForecast,
		Color:         seeForecast,
		LuckyNumber:   seeForecast,
		LuckyTime:     seeForecast,
		DateRange:     "Сегодня",
	}, nil
}

var textReplacer = strings.NewReplacer(
	"\u00a0", " ",
	"«", `"`,
	"»", `"`,
)

// extractForecast joins the paragraphs of the article container. When the
// page has no such container the first plain div holding paragraphs is used.
func extractForecast(doc *goquery.Document) string {
	container := doc.Find(`div[class*="article__text"]`).First()
	if container.Length() == 0 {
		doc.Find("div").EachWithBreak(func(_ int, div *goquery.Selection) bool {
			if div.Find("div").Length() >= 5 || div.Find("script").Length() > 0 {
				return true
			}
			hasText := false
			div.Find("p").Each(func(_ int, p *goquery.Selection) {
				if strings.TrimSpace(p.Text()) != "" {
					hasText = true
				}
			})
			if hasText {
				container = div
				return false
			}
			return true
		})
	}
	if container.Length() == 0 {
		return ""
	}

	var parts []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(textReplacer.Replace(p.Text()))
		if text != "" {
			parts = append(parts, text)
		}
	})
	return strings.TrimSpace(strings.Join(parts, " "))
}

// flexString accepts both JSON strings and numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(b) == "null" {
		*f = ""
		return nil
	}
	*f = flexString(b)
	return nil
}

type aztroResponse struct {
	Description   flexString `json:"description"`
	Compatibility flexString `json:"compatibility"`
	Mood          flexString `json:"mood"`
	Color         flexString `json:"color"`
	LuckyNumber   flexString `json:"lucky_number"`
	LuckyTime     flexString `json:"lucky_time"`
	DateRange     flexString `json:"date_range"`
}

// AztroSource queries the aztro-style JSON API. A random token and the
// current time are sent with every request to defeat upstream caches.
type AztroSource struct {
	client *resty.Client
	url    string
	clock  clockwork.Clock
}

func NewAztroSource(url string, timeout time.Duration, clock clockwork.Clock) *AztroSource {
	client := newClient(timeout).SetHeaders(map[string]string{
		"User-Agent":      apiUserAgent,
		"Cache-Control":   "no-cache",
		"Accept":          "application/json",
		"Content-Type":    "application/x-www-form-urlencoded",
		"Accept-Language": "ru-RU,ru;q=0.9,en-US;q=0.8,en;q=0.7",
	})
	return &AztroSource{client: client, url: url, clock: clock}
}

func (s *AztroSource) Name() string { return "aztro" }

func (s *AztroSource) Fetch(ctx context.Context, sign zodiac.Sign) (Reading, error) {
	code, ok := zodiac.APICode(sign)
	if !ok {
		return Reading{}, upstreamErr(s.Name(), "no code for sign %q", sign)
	}

	res, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"sign": code,
			"day":  "today",
			"_":    strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
			"t":    s.clock.Now().Format("15:04:05"),
		}).
		Post(s.url)
	if err != nil {
		return Reading{}, upstreamErr(s.Name(), "%v", err)
	}
	if res.StatusCode() != 200 {
		return Reading{}, upstreamErr(s.Name(), "status %d", res.StatusCode())
	}

	var body aztroResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return Reading{}, upstreamErr(s.Name(), "decode: %v", err)
	}
	if strings.TrimSpace(string(body.Description)) == "" {
		return Reading{}, upstreamErr(s.Name(), "empty description")
	}

	return Reading{
		Description:   strings.TrimSpace(string(body.Description)),
		Compatibility: string(body.Compatibility),
		Mood:          string(body.Mood),
		Color:         string(body.Color),
		LuckyNumber:   string(body.LuckyNumber),
		LuckyTime:     string(body.LuckyTime),
		DateRange:     string(body.DateRange),
	}, nil
}

type alternateResponse struct {
	Description flexString `json:"description"`
	Horoscope   flexString `json:"horoscope"`
	Data        struct {
		HoroscopeData flexString `json:"horoscope_data"`
	} `json:"data"`
}

// AlternateSource is a plain GET JSON API taking ?sign=&day=today.
type AlternateSource struct {
	client *resty.Client
	url    string
}

func NewAlternateSource(url string, timeout time.Duration) *AlternateSource {
	client := newClient(timeout).SetHeaders(map[string]string{
		"User-Agent": apiUserAgent,
		"Accept":     "application/json",
	})
	return &AlternateSource{client: client, url: url}
}

func (s *AlternateSource) Name() string { return "alternate:" + s.url }

func (s *AlternateSource) Fetch(ctx context.Context, sign zodiac.Sign) (Reading, error) {
	code, ok := zodiac.APICode(sign)
	if !ok {
		return Reading{}, upstreamErr(s.Name(), "no code for sign %q", sign)
	}

	res, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"sign": code,
			"day":  "today",
		}).
		Get(s.url)
	if err != nil {
		return Reading{}, upstreamErr(s.Name(), "%v", err)
	}
	if res.StatusCode() != 200 {
		return Reading{}, upstreamErr(s.Name(), "status %d", res.StatusCode())
	}

	var body alternateResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return Reading{}, upstreamErr(s.Name(), "decode: %v", err)
	}

	for _, v := range []flexString{body.Description, body.Horoscope, body.Data.HoroscopeData} {
		if text := strings.TrimSpace(string(v)); text != "" {
			return Reading{Description: text, DateRange: "Сегодня"}, nil
		}
	}
	return Reading{}, upstreamErr(s.Name(), "empty description")
}

var (
	defaultMoods  = []string{"позитивный", "энергичный", "спокойный", "вдохновляющий"}
	defaultColors = []string{"красный", "синий", "зеленый", "фиолетовый", "золотой"}
	quarterHours  = []string{"00", "15", "30", "45"}
)

// DefaultReading is the last tier: a templated forecast that never fails.
func DefaultReading(sign zodiac.Sign) Reading {
	return Reading{
		Description:   fmt.Sprintf("%s, сегодня планеты создают благоприятные условия для развития. Следуйте своей интуиции и не бойтесь принимать новые решения.", sign),
		Compatibility: "Все знаки",
		Mood:          defaultMoods[rand.Intn(len(defaultMoods))],
		Color:         defaultColors[rand.Intn(len(defaultColors))],
		LuckyNumber:   strconv.Itoa(rand.Intn(100) + 1),
		LuckyTime:     fmt.Sprintf("%d:%s", rand.Intn(12)+9, quarterHours[rand.Intn(len(quarterHours))]),
		DateRange:     "Сегодня",
	}
}
