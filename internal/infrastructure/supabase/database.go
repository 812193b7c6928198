package supabase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/clause"
)

// DatabaseOptions tunes the connection pool of the direct database handle
type DatabaseOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Logger          gormlogger.Interface
}

// DefaultDatabaseOptions returns a small pool sized for readiness checks
func DefaultDatabaseOptions() DatabaseOptions {
	return DatabaseOptions{
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 30 * time.Minute,
		Logger:          gormlogger.Default.LogMode(gormlogger.Silent),
	}
}

// Database is the direct Postgres connection of the project (DATABASE_URL).
// The storefront services go through PostgREST; this handle backs the
// readiness check and server-side record access.
type Database struct {
	DB *gorm.DB
}

// OpenDatabase connects to databaseURL with the postgres driver and pings it
func OpenDatabase(databaseURL string, opts DatabaseOptions) (*Database, error) {
	return OpenDatabaseWithDialector(postgres.Open(databaseURL), opts)
}

// OpenDatabaseWithDialector opens the database with any gorm dialector.
// Tests use it with sqlite and sqlmock.
func OpenDatabaseWithDialector(dialector gorm.Dialector, opts DatabaseOptions) (*Database, error) {
	if opts.Logger == nil {
		opts.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 opts.Logger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Ping checks if the database connection is alive
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ready reports whether the direct database is usable: the connection answers
// and every storefront table can be read through the store.
func (d *Database) Ready(ctx context.Context) error {
	if err := d.Ping(ctx); err != nil {
		return err
	}

	store := d.Store()
	for _, table := range storefrontTables {
		var rows []map[string]any
		if err := store.SelectMany(ctx, Query{Table: table, Limit: 1}, &rows); err != nil {
			return err
		}
	}
	return nil
}

// Store returns a RecordReader/RecordWriter over the database.
// Row structs map onto columns with gorm's default snake_case naming.
func (d *Database) Store() *Store {
	return &Store{db: d.DB}
}

// Store implements RecordReader and RecordWriter with SQL
type Store struct {
	db *gorm.DB
}

func (s *Store) scoped(ctx context.Context, q Query) *gorm.DB {
	tx := s.db.WithContext(ctx).Table(q.Table)
	if len(q.Columns) > 0 {
		tx = tx.Select(q.Columns)
	}
	for _, f := range q.Filters {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value})
	}
	return tx
}

// SelectOne reads the first matching row into dst
func (s *Store) SelectOne(ctx context.Context, q Query, dst any) (bool, error) {
	err := s.scoped(ctx, q).Take(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select %s: %w", q.Table, err)
	}
	return true, nil
}

// SelectMany reads every matching row into dst
func (s *Store) SelectMany(ctx context.Context, q Query, dst any) error {
	tx := s.scoped(ctx, q)
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if err := tx.Find(dst).Error; err != nil {
		return fmt.Errorf("select %s: %w", q.Table, err)
	}
	return nil
}

// Insert adds one row
func (s *Store) Insert(ctx context.Context, table string, values map[string]any) error {
	if err := s.db.WithContext(ctx).Table(table).Create(values).Error; err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}
