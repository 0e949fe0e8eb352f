package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Bossofgyms/newbot/internal/horoscope"
	"github.com/Bossofgyms/newbot/internal/logger"
	"github.com/Bossofgyms/newbot/internal/scheduler"
)

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// tokenSecretPath is where docker mounts the bot token secret.
var tokenSecretPath = "/run/secrets/telegram_bot_token"

var ErrNoToken = errors.New("токен не найден: отсутствует и Docker Secret, и переменная окружения")

type Config struct {
	TelegramToken  string `envconfig:"TELEGRAM_BOT_TOKEN"`
	DBPath         string `envconfig:"DB_PATH" default:"bot.db"`
	CacheBackend   string `envconfig:"CACHE_BACKEND" default:"memory"`
	MetricsAddr    string `envconfig:"METRICS_ADDR"`
	SupportContact string `envconfig:"SUPPORT_CONTACT"`

	Log       logger.Config             `envconfig:"LOG"`
	Delivery  scheduler.Config          `envconfig:"DELIVERY"`
	Horoscope horoscope.Config          `envconfig:"HOROSCOPE"`
	Translate horoscope.TranslateConfig `envconfig:"TRANSLATE"`
	Redis     horoscope.RedisConfig     `envconfig:"REDIS"`
}

// Load reads .env (if any), the environment and the docker secret.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if token := secretToken(); token != "" {
		cfg.TelegramToken = token
	}
	cfg.TelegramToken = strings.TrimSpace(cfg.TelegramToken)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return ErrNoToken
	}
	switch c.CacheBackend {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("unknown cache backend %q", c.CacheBackend)
	}
	return c.Delivery.Validate()
}

func secretToken() string {
	data, err := os.ReadFile(tokenSecretPath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
