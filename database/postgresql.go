package database

import (
	"CareDesk/models"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PoolConfig bounds the connections a single gorm handle keeps open.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPool is used for the standard data connection.
var DefaultPool = PoolConfig{MaxOpenConns: 40, MaxIdleConns: 20, ConnMaxLifetime: 10 * time.Minute}

// AdminPool is used for the administrative connection, which only provisions accounts.
var AdminPool = PoolConfig{MaxOpenConns: 5, MaxIdleConns: 2, ConnMaxLifetime: 10 * time.Minute}

// InitDB opens a PostgreSQL connection and verifies it.
func InitDB(ctx context.Context, dsn string, pool PoolConfig, verbose bool) (*gorm.DB, error) {
	logMode := logger.Silent
	if verbose {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}

	if err := configureConnectionPool(db, pool); err != nil {
		return nil, err
	}

	if err := testDatabaseConnection(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// configureConnectionPool sets up the connection pool settings for the database.
func configureConnectionPool(db *gorm.DB, pool PoolConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	return nil
}

// testDatabaseConnection verifies that the database connection is functional.
func testDatabaseConnection(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB from GORM")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}
	return nil
}

// Migrate creates or updates the clinic tables. Patients go first so the
// appointments foreign key has something to point at.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Patient{}, &models.Doctor{}, &models.Appointment{}); err != nil {
		return errors.Wrap(err, "failed to migrate clinic tables")
	}
	return nil
}

// MigrateIdentity creates the auth account table on the administrative connection.
func MigrateIdentity(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.AuthUser{}); err != nil {
		return errors.Wrap(err, "failed to migrate identity tables")
	}
	return nil
}

// Close releases the pool behind a gorm handle.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
