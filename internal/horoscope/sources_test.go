package horoscope

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bossofgyms/newbot/internal/zodiac"
)

const articlePage = `<html><body>
<div class="header"><a href="/">Гороскопы</a></div>
<div class="_1dQ3 article__text js-mediator-article">
  <p>Львам сегодня&nbsp;стоит довериться &laquo;внутреннему голосу&raquo;.</p>
  <p>Вечер подходит для встреч с друзьями.</p>
</div>
</body></html>`

const plainPage = `<html><body>
<div><script>var x = 1;</script><p>реклама</p></div>
<div class="content"><p></p><p>Девам сегодня лучше заняться планированием и разобрать дела.</p></div>
</body></html>`

func serveHTML(t *testing.T, path, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestScrapeSourceArticle(t *testing.T) {
	srv := serveHTML(t, "/leo/today/", articlePage, http.StatusOK)
	src := NewScrapeSource(srv.URL+"/", time.Second)

	r, err := src.Fetch(context.Background(), zodiac.Leo)
	require.NoError(t, err)
	assert.Equal(t, `Львам сегодня стоит довериться "внутреннему голосу". Вечер подходит для встреч с друзьями.`, r.Description)
	assert.Equal(t, "Сегодня", r.DateRange)
}

func TestScrapeSourceFallbackContainer(t *testing.T) {
	srv := serveHTML(t, "/virgo/today/", plainPage, http.StatusOK)
	src := NewScrapeSource(srv.URL, time.Second)

	r, err := src.Fetch(context.Background(), zodiac.Virgo)
	require.NoError(t, err)
	assert.Equal(t, "Девам сегодня лучше заняться планированием и разобрать дела.", r.Description)
}

const nestedPage = `<html><body>
<div class="content"><section><span><p>Весам сегодня стоит найти время для отдыха и близких.</p></span></section></div>
</body></html>`

func TestScrapeSourceFallbackNestedParagraphs(t *testing.T) {
	srv := serveHTML(t, "/libra/today/", nestedPage, http.StatusOK)
	src := NewScrapeSource(srv.URL, time.Second)

	r, err := src.Fetch(context.Background(), zodiac.Libra)
	require.NoError(t, err)
	assert.Equal(t, "Весам сегодня стоит найти время для отдыха и близких.", r.Description)
}

func TestScrapeSourceFailures(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		srv := serveHTML(t, "/leo/today/", articlePage, http.StatusServiceUnavailable)
		_, err := NewScrapeSource(srv.URL, time.Second).Fetch(context.Background(), zodiac.Leo)
		assert.ErrorIs(t, err, ErrUpstream)
	})
	t.Run("too short", func(t *testing.T) {
		srv := serveHTML(t, "/leo/today/", `<div class="article__text"><p>Коротко.</p></div>`, http.StatusOK)
		_, err := NewScrapeSource(srv.URL, time.Second).Fetch(context.Background(), zodiac.Leo)
		assert.ErrorIs(t, err, ErrUpstream)
	})
	t.Run("unknown sign", func(t *testing.T) {
		_, err := NewScrapeSource("http://127.0.0.1:1", time.Second).Fetch(context.Background(), zodiac.Unknown)
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestAztroSource(t *testing.T) {
	var gotMethod, gotSign, gotDay, gotToken, gotTime string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		q := r.URL.Query()
		gotSign, gotDay, gotToken, gotTime = q.Get("sign"), q.Get("day"), q.Get("_"), q.Get("t")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"description":"A calm day.","mood":"Calm","color":"Blue","lucky_number":42,"lucky_time":"9am","date_range":"Jul 23 - Aug 22","compatibility":"Aries"}`))
	}))
	defer srv.Close()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 5, 8, 4, 5, 0, time.UTC))
	r, err := NewAztroSource(srv.URL, time.Second, clock).Fetch(context.Background(), zodiac.Leo)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "leo", gotSign)
	assert.Equal(t, "today", gotDay)
	assert.Len(t, gotToken, 12)
	assert.Equal(t, "08:04:05", gotTime)

	assert.Equal(t, "A calm day.", r.Description)
	assert.Equal(t, "42", r.LuckyNumber)
	assert.Equal(t, "Calm", r.Mood)
	assert.Equal(t, "Jul 23 - Aug 22", r.DateRange)
}

func TestAztroSourceBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := NewAztroSource(srv.URL, time.Second, clockwork.NewRealClock()).Fetch(context.Background(), zodiac.Leo)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestAlternateSource(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"nested", `{"data":{"date":"Mar 5, 2025","horoscope_data":"Focus on work today."},"status":200}`, "Focus on work today."},
		{"flat", `{"horoscope":"Rest and recharge."}`, "Rest and recharge."},
		{"description", `{"description":"Be brave."}`, "Be brave."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "pisces", r.URL.Query().Get("sign"))
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			r, err := NewAlternateSource(srv.URL, time.Second).Fetch(context.Background(), zodiac.Pisces)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Description)
		})
	}
}

func TestAlternateSourceEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	_, err := NewAlternateSource(srv.URL, time.Second).Fetch(context.Background(), zodiac.Pisces)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestDefaultReading(t *testing.T) {
	for i := 0; i < 50; i++ {
		r := DefaultReading(zodiac.Aries)
		assert.Contains(t, r.Description, "Овен, сегодня планеты")
		assert.Contains(t, defaultMoods, r.Mood)
		assert.Contains(t, defaultColors, r.Color)
		assert.Regexp(t, `^([1-9]|[1-9]\d|100)$`, r.LuckyNumber)
		assert.Regexp(t, `^(9|1\d|20):(00|15|30|45)$`, r.LuckyTime)
	}
}

func TestNewSources(t *testing.T) {
	sources := NewSources(Config{
		ScrapeBase: "https://example.org",
		APIBase:    "https://api.example.org",
		Sources:    []string{"https://a.example.org", "", "https://b.example.org"},
		Timeout:    time.Second,
	}, clockwork.NewRealClock())

	require.Len(t, sources, 4)
	assert.Equal(t, "scrape", sources[0].Name())
	assert.Equal(t, "aztro", sources[1].Name())
	assert.Equal(t, "alternate:https://b.example.org", sources[3].Name())
}
