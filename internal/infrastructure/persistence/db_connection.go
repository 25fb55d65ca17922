package persistence

import (
	"fmt"

	"github.com/ingver/rsa/internal/infrastructure/persistence/models"
	"github.com/ingver/rsa/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDBConnection opens the database selected by settings.Type and migrates the key pair schema.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch settings.Type {
	case config.PostgresDbType:
		db, err = connectPostgres(settings)
	case config.SqliteDbType:
		db, err = connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		_ = CloseDB(db)
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the rsa_key_pairs table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.KeyPairModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
}

// connectPostgres establishes a PostgreSQL connection, creating settings.Name first when set
func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if settings.Name == "" {
		return db, nil
	}

	// CREATE DATABASE fails when it already exists, which is fine here
	_ = db.Exec(fmt.Sprintf("CREATE DATABASE %s", settings.Name)).Error
	if err := CloseDB(db); err != nil {
		return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
	}

	dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)
	db, err = gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
	}
	return db, nil
}

// connectSQLite establishes a SQLite connection, in memory unless a DSN is given
func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// every pooled connection to :memory: would get its own empty database
	if dsn == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database (test cleanup utility)
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() { _ = CloseDB(db) }()

	if err := db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)).Error; err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return nil
}
