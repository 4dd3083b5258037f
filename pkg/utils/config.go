package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Redis   RedisConfig
	Session SessionConfig
	Pricing PricingConfig
	Grid    GridConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// APIConfig points at the upstream CinemaSpot REST API. The gateway has no
// storage of its own; everything durable lives behind this base URL.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	CookieName string
	AuthTTL    time.Duration // durable-storage analog: token + user
	DraftTTL   time.Duration // per-tab-storage analog: reservation draft
}

// PricingConfig selects the seat pricing policy. "tiered" charges front rows
// a premium, "flat" charges the same rate everywhere.
type PricingConfig struct {
	Policy        string
	FlatPrice     float64
	StandardPrice float64
	PremiumPrice  float64
	PremiumRows   int // rows from the front priced at PremiumPrice
}

// GridConfig fixes the seat-map geometry used to derive (row, column)
// positions from numeric seat numbers.
type GridConfig struct {
	Rows    int
	Columns int
}

const (
	PricingPolicyTiered = "tiered"
	PricingPolicyFlat   = "flat"
)

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cinemaspot-frontend")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("API_BASE_URL", "http://localhost:3000/api")
	viper.SetDefault("API_TIMEOUT_SECONDS", 10)
	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SESSION_COOKIE", "csf_session")
	viper.SetDefault("SESSION_AUTH_TTL_HOURS", 720)
	viper.SetDefault("SESSION_DRAFT_TTL_HOURS", 12)
	viper.SetDefault("PRICING_POLICY", PricingPolicyTiered)
	viper.SetDefault("PRICE_FLAT", 10.0)
	viper.SetDefault("PRICE_STANDARD", 10.0)
	viper.SetDefault("PRICE_PREMIUM", 15.0)
	viper.SetDefault("PREMIUM_ROWS", 3)
	viper.SetDefault("GRID_ROWS", 8)
	viper.SetDefault("GRID_COLUMNS", 8)

	// .env is optional; environment variables alone are enough
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		API: APIConfig{
			BaseURL:        viper.GetString("API_BASE_URL"),
			TimeoutSeconds: viper.GetInt("API_TIMEOUT_SECONDS"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			CookieName: viper.GetString("SESSION_COOKIE"),
			AuthTTL:    time.Duration(viper.GetInt("SESSION_AUTH_TTL_HOURS")) * time.Hour,
			DraftTTL:   time.Duration(viper.GetInt("SESSION_DRAFT_TTL_HOURS")) * time.Hour,
		},
		Pricing: PricingConfig{
			Policy:        viper.GetString("PRICING_POLICY"),
			FlatPrice:     viper.GetFloat64("PRICE_FLAT"),
			StandardPrice: viper.GetFloat64("PRICE_STANDARD"),
			PremiumPrice:  viper.GetFloat64("PRICE_PREMIUM"),
			PremiumRows:   viper.GetInt("PREMIUM_ROWS"),
		},
		Grid: GridConfig{
			Rows:    viper.GetInt("GRID_ROWS"),
			Columns: viper.GetInt("GRID_COLUMNS"),
		},
	}

	return config, nil
}
