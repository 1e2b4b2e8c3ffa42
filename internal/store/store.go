package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// FetchError is a typed read failure carrying the collection it hit.
// Callers decide whether to degrade to an empty set or abort.
type FetchError struct {
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Collection, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Store struct {
	db *sqlx.DB
}

// NewStore creates a new database store
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

func fetchErr(collection string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Collection: collection, Err: err}
}

// likePattern turns an operator search term into an ILIKE pattern
func likePattern(term string) string {
	return "%" + term + "%"
}

// count runs a head-only count against one table
func (s *Store) count(ctx context.Context, table string) (int64, error) {
	var n int64
	err := s.db.GetContext(ctx, &n, "SELECT count(*) FROM "+table)
	return n, fetchErr(table, err)
}

// CountProfiles returns the number of profile rows
func (s *Store) CountProfiles(ctx context.Context) (int64, error) {
	return s.count(ctx, "profiles")
}

// CountNewspapers returns the number of newspaper rows
func (s *Store) CountNewspapers(ctx context.Context) (int64, error) {
	return s.count(ctx, "newspapers")
}

// CountSubscriptions returns the number of subscription rows
func (s *Store) CountSubscriptions(ctx context.Context) (int64, error) {
	return s.count(ctx, "subscriptions")
}

// CountServices returns the number of service rows
func (s *Store) CountServices(ctx context.Context) (int64, error) {
	return s.count(ctx, "services")
}

// CountPayments returns the number of payment rows
func (s *Store) CountPayments(ctx context.Context) (int64, error) {
	return s.count(ctx, "payments")
}
