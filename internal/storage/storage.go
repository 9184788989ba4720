package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns int
	// ConnectWait caps the start-up ping retries. Zero pings once.
	ConnectWait time.Duration
}

// Storage owns the connection pool. Reads borrow a pooled connection per
// statement; writes go through Write and hold one transaction.
type Storage struct {
	DB           *sql.DB
	exec         bob.DB
	Transactions sqlconfig.ITransactionTable
}

func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	return Open(ctx, env.PostgresDSN(), Options{
		MaxOpenConns: env.Store.MaxOpenConns,
		ConnectWait:  env.Store.ConnectWait,
	})
}

// Open connects to PostgreSQL and waits, with exponential backoff, until the
// server answers a ping.
func Open(ctx context.Context, dsn string, opts Options) (*Storage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	var policy backoff.BackOff = &backoff.StopBackOff{}
	if opts.ConnectWait > 0 {
		exp := backoff.NewExponentialBackOff()
		exp.MaxElapsedTime = opts.ConnectWait
		policy = exp
	}

	err = backoff.RetryNotify(
		func() error { return db.PingContext(ctx) },
		backoff.WithContext(policy, ctx),
		func(err error, wait time.Duration) {
			logrus.WithError(err).WithField("retryIn", wait.String()).Warn("Storage.Open.ping failed")
		},
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return New(db), nil
}

// New wraps an already opened pool.
func New(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:           db,
		exec:         exec,
		Transactions: sqlconfig.NewTransactionsTable(exec),
	}
}

// Write starts a transaction bound to ctx. The caller must Commit or
// Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.exec.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
