package horoscope

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Bossofgyms/newbot/internal/zodiac"
)

// Store keeps composed forecasts. Entries only need to live until the end
// of the hour they were produced in.
type Store interface {
	Get(ctx context.Context, key string) (Forecast, bool, error)
	Set(ctx context.Context, key string, f Forecast, expiresAt time.Time) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// CacheKey is "{sign}_{YYYY-MM-DD}_{HH}" for the hour containing now.
func CacheKey(sign zodiac.Sign, now time.Time) string {
	return fmt.Sprintf("%s_%s", sign, now.Format("2006-01-02_15"))
}

// endOfHour is the start of the next wall-clock hour in now's location.
func endOfHour(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, now.Hour(), 0, 0, 0, now.Location()).Add(time.Hour)
}

type memoryEntry struct {
	forecast  Forecast
	expiresAt time.Time
}

// MemoryStore is the in-process Store. Concurrent writers of one key
// overwrite each other; the last one wins.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	clock clockwork.Clock
}

func NewMemoryStore(clock clockwork.Clock) *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryEntry),
		clock: clock,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (Forecast, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok {
		return Forecast{}, false, nil
	}
	if !m.clock.Now().Before(e.expiresAt) {
		delete(m.items, key)
		return Forecast{}, false, nil
	}
	return e.forecast, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, f Forecast, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	for k, e := range m.items {
		if !now.Before(e.expiresAt) {
			delete(m.items, k)
		}
	}
	m.items[key] = memoryEntry{forecast: f, expiresAt: expiresAt}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]memoryEntry)
	return nil
}

// Len reports how many entries are held, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
