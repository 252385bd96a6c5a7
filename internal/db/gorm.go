package db

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rogue-Bear-Innovations/holonet-back/internal/config"
)

var Module = fx.Provide(NewGormClient)

func NewGormClient(lc fx.Lifecycle, cfg *config.Config, l *zap.SugaredLogger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err = OpenPostgres(cfg.PostgresDSN(), l)
	default:
		db, err = OpenSQLite(cfg.SQLitePath, l)
	}
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			l.Info("Closing database connection.")
			return sqlDB.Close()
		},
	})

	return db, nil
}

func OpenPostgres(dsn string, l *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig(l))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}
	return db, nil
}

// OpenSQLite opens a SQLite database with foreign keys enforced. A single
// connection is kept open so that ":memory:" databases survive across calls.
func OpenSQLite(path string, l *zap.SugaredLogger) (*gorm.DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(l))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql db")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}); err != nil {
		return errors.Wrap(err, "migrate user")
	}
	if err := db.AutoMigrate(&People{}); err != nil {
		return errors.Wrap(err, "migrate people")
	}
	if err := db.AutoMigrate(&Planet{}); err != nil {
		return errors.Wrap(err, "migrate planet")
	}
	if err := db.AutoMigrate(&Vehicle{}); err != nil {
		return errors.Wrap(err, "migrate vehicle")
	}
	if err := db.AutoMigrate(&Favorite{}); err != nil {
		return errors.Wrap(err, "migrate favorite")
	}
	return nil
}

func gormConfig(l *zap.SugaredLogger) *gorm.Config {
	level := logger.Warn
	if l.Desugar().Core().Enabled(zap.DebugLevel) {
		level = logger.Info
	}

	newLogger := logger.New(zap.NewStdLog(l.Desugar().Named("gorm")), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		Colorful:                  false,
		IgnoreRecordNotFoundError: true,
	})

	return &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	}
}
