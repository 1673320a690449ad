package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"timekeeper/internal/domain"
	"timekeeper/internal/logging"
)

// Store owns the single connection to the time-tracking database
type Store struct {
	blocks   *BlockStore
	db       *gorm.DB
	inMemory bool
	path     string
	tags     *TagStore
}

// slowQuery is the duration past which a statement is logged as a warning
const slowQuery = 200 * time.Millisecond

// gormLogger forwards GORM's messages and traces to logging.Logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) log(ctx context.Context, level logger.LogLevel, slogLevel slog.Level, msg string, data []any) {
	if l.level >= level {
		logging.Logger.Log(ctx, slogLevel, fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, data)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, data)
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, data)
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	attrs := []any{"duration", elapsed, "sql", sql, "rows", rows}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.ErrorContext(ctx, "Query failed", append(attrs, "error", err)...)
	case elapsed > slowQuery:
		logging.Logger.WarnContext(ctx, "Slow query", attrs...)
	default:
		logging.Logger.DebugContext(ctx, "Query", attrs...)
	}
}

// newGormLogger only traces statements in debug mode
func newGormLogger() logger.Interface {
	level := logger.Silent
	if os.Getenv("TIMEKEEPER_DEBUG") == "1" {
		level = logger.Info
	}
	return &gormLogger{level: level}
}

// Open opens or creates the database at dbPath and migrates it to the current
// schema version. Failure to create or open the file wraps ErrStorageUnavailable;
// failure to migrate wraps ErrMigration and must be treated as fatal.
func Open(dbPath string) (*Store, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get home directory: %v", domain.ErrStorageUnavailable, err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create directory: %v", domain.ErrStorageUnavailable, err)
	}

	dsn := dbPath + "?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL"
	db, err := openGorm(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", domain.ErrStorageUnavailable, dbPath, err)
	}

	store := newStore(db, dbPath, false)

	err = withFileLock(dbPath+".lock", func() error {
		return Migrate(db)
	})
	if err != nil {
		_ = store.Close()
		if errors.Is(err, domain.ErrMigration) || errors.Is(err, domain.ErrUnsupportedVersion) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrMigration, err)
	}

	logging.Logger.Info("Store opened", "path", dbPath)
	return store, nil
}

// OpenInMemory opens a private in-memory store, used when the disk store is
// unavailable. Nothing written to it survives the process.
func OpenInMemory() (*Store, error) {
	db, err := openGorm(":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}

	store := newStore(db, ":memory:", true)
	if err := Migrate(db); err != nil {
		_ = store.Close()
		return nil, err
	}

	logging.Logger.Warn("Using in-memory store, saving disabled")
	return store, nil
}

func openGorm(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// One connection: an in-memory database lives and dies with it, and
	// connection-scoped pragmas stay consistent
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

func newStore(db *gorm.DB, path string, inMemory bool) *Store {
	return &Store{
		blocks:   &BlockStore{db: db},
		db:       db,
		inMemory: inMemory,
		path:     path,
		tags:     &TagStore{db: db},
	}
}

// Blocks returns the block store
func (s *Store) Blocks() *BlockStore { return s.blocks }

// Tags returns the tag store
func (s *Store) Tags() *TagStore { return s.tags }

// InMemory reports whether the store is the non-durable fallback
func (s *Store) InMemory() bool { return s.inMemory }

// Path returns the database file path
func (s *Store) Path() string { return s.path }

// Version returns the schema version currently recorded in the store
func (s *Store) Version() (int, error) {
	return DetectVersion(s.db)
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// classifyError maps SQLite constraint failures onto domain errors
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, err)
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("%w: %w", domain.ErrTagNotFound, err)
	}
	return err
}

// withRetry runs fn up to attempts times while SQLite reports BUSY or LOCKED,
// backing off a little longer after each try.
func withRetry(fn func() error, attempts int) error {
	var err error
	for i := range attempts {
		err = fn()
		if !isBusy(err) {
			return err
		}
		if i < attempts-1 {
			time.Sleep(time.Duration(i+1) * 50 * time.Millisecond)
		}
	}
	return fmt.Errorf("database busy after %d attempts: %w", attempts, err)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
}
