package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nurpe/rentals-service/internal/config"
)

// New opens the database named by cfg.DB.DSN and applies migrations.
// postgres:// and postgresql:// DSNs use PostgreSQL, anything else SQLite.
func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dialector, name := Dialector(cfg.DB.DSN)

	level := gormlogger.Warn
	if cfg.Environment != "development" {
		level = gormlogger.Error
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}

	log.Info().Str("driver", name).Msg("database ready")
	return database, nil
}

func Dialector(dsn string) (gorm.Dialector, string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn), "postgres"
	}
	return sqlite.Open(dsn), "sqlite"
}
