package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"orderflow/internal/adapters/out/postgres/deliveryrepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/postgres/outboxrepo"
	"orderflow/internal/adapters/out/postgres/paymentrepo"
	"orderflow/internal/adapters/out/postgres/refundrepo"
	"orderflow/internal/adapters/out/postgres/riderrepo"

	"github.com/glebarez/sqlite"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConfig selects the store and sizes its connection pool.
type DBConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
}

// Open connects to PostgreSQL or to an embedded SQLite file. SQLite has a
// single writer, so its pool is limited to one connection; this also keeps
// ":memory:" databases from splitting per connection.
func Open(cfg DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	single := false
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "postgres", "postgresql":
		dialector = gormpostgres.Open(cfg.DSN)
	case "", "sqlite":
		dialector = sqlite.Open(cfg.DSN)
		single = true
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if single {
		cfg.MaxOpenConns = 1
		cfg.MaxIdleConns = 1
	}
	applyPool(sqlDB, cfg)

	return db, nil
}

// Migrate creates or alters every table the engine uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&paymentrepo.PaymentDTO{},
		&refundrepo.RefundDTO{},
		&riderrepo.RiderDTO{},
		&outboxrepo.MessageDTO{},
	)
}

func applyPool(sqlDB *sql.DB, cfg DBConfig) {
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "info":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}
