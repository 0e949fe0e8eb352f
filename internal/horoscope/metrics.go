package horoscope

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts upstream, translation and cache outcomes. A nil *Metrics
// records nothing.
type Metrics struct {
	sources      *prometheus.CounterVec
	translations *prometheus.CounterVec
	cache        *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		sources: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astro_bot",
			Name:      "horoscope_source_requests_total",
			Help:      "Forecast source attempts by source and result.",
		}, []string{"source", "result"}),
		translations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astro_bot",
			Name:      "translation_requests_total",
			Help:      "Translation attempts by provider and result.",
		}, []string{"provider", "result"}),
		cache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astro_bot",
			Name:      "horoscope_cache_lookups_total",
			Help:      "Forecast cache lookups by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) source(name, result string) {
	if m == nil {
		return
	}
	m.sources.WithLabelValues(name, result).Inc()
}

func (m *Metrics) translation(provider, result string) {
	if m == nil {
		return
	}
	m.translations.WithLabelValues(provider, result).Inc()
}

func (m *Metrics) cacheLookup(result string) {
	if m == nil {
		return
	}
	m.cache.WithLabelValues(result).Inc()
}
