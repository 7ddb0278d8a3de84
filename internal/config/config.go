package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type AIConfig struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	AI          AIConfig
	CORSOrigins []string

	// TTF with Cyrillic glyphs for PDF acts, gofpdf core fonts cannot
	// render them.
	ActFontPath string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("DATABASE_URL", "aircontrol.db")
	v.SetDefault("JWT_TTL_HOURS", 24)
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("OPENAI_TEMPERATURE", 0.2)
	v.SetDefault("OPENAI_MAX_TOKENS", 1000)
	v.SetDefault("OPENAI_TIMEOUT_SECONDS", 30)
	v.SetDefault("ACT_FONT_PATH", "assets/fonts/DejaVuSans.ttf")

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN: v.GetString("DATABASE_URL"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  time.Duration(v.GetInt("JWT_TTL_HOURS")) * time.Hour,
		},
		AI: AIConfig{
			Endpoint:    v.GetString("OPENAI_BASE_URL"),
			APIKey:      v.GetString("OPENAI_API_KEY"),
			Model:       v.GetString("OPENAI_MODEL"),
			Temperature: v.GetFloat64("OPENAI_TEMPERATURE"),
			MaxTokens:   v.GetInt("OPENAI_MAX_TOKENS"),
			Timeout:     time.Duration(v.GetInt("OPENAI_TIMEOUT_SECONDS")) * time.Second,
		},
		CORSOrigins: v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		ActFontPath: v.GetString("ACT_FONT_PATH"),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}
