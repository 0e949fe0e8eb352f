package horoscope

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "horoscope:"

type RedisConfig struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// NewRedisClient connects and pings.
func (c RedisConfig) NewRedisClient(ctx context.Context) (*redis.Client, error) {
	const op = "horoscope.NewRedisClient"
	rdb := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rdb, nil
}

// RedisStore keeps forecasts as JSON with a TTL running to the end of the hour.
type RedisStore struct {
	rdb   *redis.Client
	clock clockwork.Clock
}

func NewRedisStore(rdb *redis.Client, clock clockwork.Clock) *RedisStore {
	return &RedisStore{rdb: rdb, clock: clock}
}

func (r *RedisStore) Get(ctx context.Context, key string) (Forecast, bool, error) {
	const op = "horoscope.RedisStore.Get"
	val, err := r.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Forecast{}, false, nil
	}
	if err != nil {
		return Forecast{}, false, fmt.Errorf("%s: %w", op, err)
	}

	var f Forecast
	if err := json.Unmarshal(val, &f); err != nil {
		return Forecast{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return f, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, f Forecast, expiresAt time.Time) error {
	const op = "horoscope.RedisStore.Set"
	ttl := expiresAt.Sub(r.clock.Now())
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.rdb.Set(ctx, redisKeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, redisKeyPrefix+key).Err()
}

func (r *RedisStore) Clear(ctx context.Context) error {
	const op = "horoscope.RedisStore.Clear"
	iter := r.rdb.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
