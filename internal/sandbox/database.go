package sandbox

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Open opens the SQLite database at dsn, migrates the schema and registers
// the error translating callbacks. Use ":memory:" for a throwaway ledger.
func Open(dsn string, log zerolog.Logger) (*gorm.DB, error) {
	if !strings.Contains(dsn, "_pragma=foreign_keys") {
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dsn = dsn + separator + "_pragma=foreign_keys(1)"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: &logger{
			Logger: log.With().Str("component", "sandbox-db").Logger(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// A single connection prevents SQLITE_BUSY errors and keeps in-memory
	// databases alive for the lifetime of the handle.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(Category{}, Wallet{}, Transaction{}, Budget{}, WalletActivity{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "equitrack:after_query", queryCallback},
		{db.Callback().Query().After("*"), "equitrack:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "equitrack:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "equitrack:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "equitrack:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "equitrack:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "equitrack:after_delete_general", generalCallback},
	}

	for _, cb := range callbacks {
		if err := cb.processor.Register(cb.name, cb.fn); err != nil {
			return nil, err
		}
	}

	return db, nil
}

var pluralIes = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with one naming the
// resource.
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = pluralIes.ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback replaces constraint violations with sentinel errors.
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "CHECK constraint failed: balance_not_negative") {
		db.Error = ErrInsufficientFunds
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: categories.profile_id, categories.type, categories.name") {
		db.Error = ErrCategoryNameNotUnique
	}
}

// generalCallback hides database errors that users cannot act on behind
// ErrGeneral and logs them instead.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var sqliteErr *go_sqlite.Error
	if db.Error.Error() == "sql: database is closed" || errors.As(db.Error, &sqliteErr) {
		db.Logger.Error(db.Statement.Context, "%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}
