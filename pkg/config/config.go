package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	API struct {
		BaseURL        string `env:"API_BASE_URL" env-default:"https://api.pawtrail.app"`
		Token          string `env:"API_TOKEN"`
		TimeoutSeconds int    `env:"API_TIMEOUT_SECONDS" env-default:"15"`
		RatePerSecond  int    `env:"API_RATE_PER_SECOND" env-default:"10"`
		RateBurst      int    `env:"API_RATE_BURST" env-default:"20"`
	}
	Session struct {
		MemberID int64 `env:"SESSION_MEMBER_ID"`
	}
	Stories struct {
		ItemDurationSeconds int `env:"STORIES_ITEM_DURATION_SECONDS" env-default:"10"`
		TickIntervalMs      int `env:"STORIES_TICK_INTERVAL_MS" env-default:"200"`
		RefreshMinutes      int `env:"STORIES_REFRESH_MINUTES" env-default:"5"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
