package horoscope

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/Bossofgyms/newbot/internal/logger"
)

const minTranslatedLength = 5

// Translator turns English text into Russian.
type Translator interface {
	Name() string
	Translate(ctx context.Context, text string) (string, error)
}

// Chain tries translators in order and keeps the first answer that is long
// enough and actually Russian.
type Chain struct {
	translators []Translator
	log         *slog.Logger
	metrics     *Metrics
}

func NewChain(log *slog.Logger, metrics *Metrics, translators ...Translator) *Chain {
	return &Chain{translators: translators, log: log, metrics: metrics}
}

// NewDefaultChain builds the Google, Yandex, MyMemory, LibreTranslate chain.
func NewDefaultChain(cfg TranslateConfig, log *slog.Logger, metrics *Metrics) *Chain {
	client := newClient(cfg.Timeout).SetHeader("User-Agent", apiUserAgent)
	return NewChain(log, metrics,
		&GoogleTranslator{client: client, url: cfg.GoogleURL},
		&YandexTranslator{client: client, url: cfg.YandexURL},
		&MyMemoryTranslator{client: client, url: cfg.MyMemoryURL},
		&LibreTranslator{client: client, urls: cfg.LibreURLs},
	)
}

// Translate returns text unchanged when it is already Russian. When every
// translator fails it returns the original text and ErrTranslationUnavailable.
func (c *Chain) Translate(ctx context.Context, text string) (string, error) {
	if len(strings.TrimSpace(text)) < 2 || HasCyrillic(text) {
		return text, nil
	}

	for _, t := range c.translators {
		translated, err := t.Translate(ctx, text)
		if err != nil {
			c.metrics.translation(t.Name(), "error")
			c.log.Debug("ошибка перевода", slog.String("provider", t.Name()), logger.Err(err))
			continue
		}
		translated = strings.TrimSpace(translated)
		if len([]rune(translated)) <= minTranslatedLength {
			c.metrics.translation(t.Name(), "empty")
			continue
		}
		if !HasCyrillic(translated) {
			c.metrics.translation(t.Name(), "not_russian")
			c.log.Debug("перевод без кириллицы", slog.String("provider", t.Name()))
			continue
		}
		c.metrics.translation(t.Name(), "ok")
		return translated, nil
	}

	c.log.Warn("не удалось перевести текст, оставляем оригинал")
	return text, ErrTranslationUnavailable
}

func translateErr(name string, format string, args ...any) error {
	return fmt.Errorf("%s: %s", name, fmt.Sprintf(format, args...))
}

func checkStatus(name string, res *resty.Response, err error) error {
	if err != nil {
		return translateErr(name, "%v", err)
	}
	if res.StatusCode() != 200 {
		return translateErr(name, "status %d", res.StatusCode())
	}
	return nil
}

// GoogleTranslator uses the public gtx endpoint. The answer is a nested
// array whose first element lists translated segments.
type GoogleTranslator struct {
	client *resty.Client
	url    string
}

func (g *GoogleTranslator) Name() string { return "google" }

func (g *GoogleTranslator) Translate(ctx context.Context, text string) (string, error) {
	res, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "en",
			"tl":     "ru",
			"dt":     "t",
			"q":      text,
		}).
		Get(g.url)
	if err := checkStatus(g.Name(), res, err); err != nil {
		return "", err
	}

	var body []json.RawMessage
	if err := json.Unmarshal(res.Body(), &body); err != nil || len(body) == 0 {
		return "", translateErr(g.Name(), "unexpected body")
	}
	var segments [][]any
	if err := json.Unmarshal(body[0], &segments); err != nil {
		return "", translateErr(g.Name(), "unexpected segments: %v", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			sb.WriteString(s)
		}
	}
	return sb.String(), nil
}

type YandexTranslator struct {
	client *resty.Client
	url    string
}

func (y *YandexTranslator) Name() string { return "yandex" }

func (y *YandexTranslator) Translate(ctx context.Context, text string) (string, error) {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12] + "-0-0"
	res, err := y.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lang": "en-ru",
			"text": text,
			"srv":  "tr-text",
			"id":   id,
		}).
		Get(y.url)
	if err := checkStatus(y.Name(), res, err); err != nil {
		return "", err
	}

	var body struct {
		Text []string `json:"text"`
	}
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", translateErr(y.Name(), "decode: %v", err)
	}
	if len(body.Text) == 0 {
		return "", translateErr(y.Name(), "empty answer")
	}
	return body.Text[0], nil
}

type MyMemoryTranslator struct {
	client *resty.Client
	url    string
}

func (m *MyMemoryTranslator) Name() string { return "mymemory" }

func (m *MyMemoryTranslator) Translate(ctx context.Context, text string) (string, error) {
	res, err := m.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        text,
			"langpair": "en|ru",
		}).
		Get(m.url)
	if err := checkStatus(m.Name(), res, err); err != nil {
		return "", err
	}

	var body struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", translateErr(m.Name(), "decode: %v", err)
	}
	return body.ResponseData.TranslatedText, nil
}

// LibreTranslator posts to each configured LibreTranslate server in turn.
type LibreTranslator struct {
	client *resty.Client
	urls   []string
}

func (l *LibreTranslator) Name() string { return "libretranslate" }

func (l *LibreTranslator) Translate(ctx context.Context, text string) (string, error) {
	payload := map[string]string{
		"q":      text,
		"source": "en",
		"target": "ru",
		"format": "text",
	}

	lastErr := translateErr(l.Name(), "no servers configured")
	for _, url := range l.urls {
		res, err := l.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			Post(url)
		if err := checkStatus(l.Name(), res, err); err != nil {
			lastErr = err
			continue
		}

		var body struct {
			TranslatedText string `json:"translatedText"`
		}
		if err := json.Unmarshal(res.Body(), &body); err != nil {
			lastErr = translateErr(l.Name(), "decode: %v", err)
			continue
		}
		if len([]rune(strings.TrimSpace(body.TranslatedText))) > minTranslatedLength {
			return body.TranslatedText, nil
		}
		lastErr = translateErr(l.Name(), "%s: empty answer", url)
	}
	return "", lastErr
}

