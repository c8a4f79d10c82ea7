package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nurpe/rentals-service/internal/model"
)

type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	AccessSecret string
}

type RentalsConfig struct {
	LicenseCategories []model.LicenseCategory
	SeedPlans         bool
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Rentals     RentalsConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	v.SetDefault("RENTALS_SEED_PLANS", true)
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")

	_ = v.ReadInConfig()

	lifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err)
	}

	categories, err := parseCategories(parseList(v.GetString("RENTALS_LICENSE_CATEGORIES")))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:        v.GetString("HTTP_HOST"),
			Port:        v.GetInt("HTTP_PORT"),
			CORSOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: lifetime,
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Rentals: RentalsConfig{
			LicenseCategories: categories,
			SeedPlans:         v.GetBool("RENTALS_SEED_PLANS"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if len(cfg.HTTP.CORSOrigins) == 0 {
		cfg.HTTP.CORSOrigins = []string{"*"}
	}
	if len(cfg.Rentals.LicenseCategories) == 0 {
		cfg.Rentals.LicenseCategories = []model.LicenseCategory{model.LicenseCategoryA, model.LicenseCategoryAB}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT %d is out of range", cfg.HTTP.Port)
	}
	return nil
}

func parseCategories(raw []string) ([]model.LicenseCategory, error) {
	result := make([]model.LicenseCategory, 0, len(raw))
	for _, item := range raw {
		category, err := model.ParseLicenseCategory(item)
		if err != nil {
			return nil, fmt.Errorf("RENTALS_LICENSE_CATEGORIES: %w", err)
		}
		result = append(result, category)
	}
	return result, nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

func (c *Config) IsDevelopment() bool {
	switch strings.ToLower(c.Environment) {
	case "dev", "development", "local":
		return true
	}
	return false
}
