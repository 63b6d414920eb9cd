package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ErrUnavailable reports that the backing database could not complete a
// read or write. Callers may retry with backoff.
var ErrUnavailable = errors.New("store unavailable")

// Unavailable wraps err so that errors.Is(err, ErrUnavailable) holds while
// keeping the driver error in the message.
func Unavailable(err error) error {
	if err == nil || errors.Is(err, ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries carries the query methods shared by DB and Tx.
type Queries struct {
	q querier
}

// DB wraps the SQLite database holding messages, conversations, presence
// and the export outbox.
type DB struct {
	*sql.DB
	Queries
}

// Tx is a write transaction. Obtain one through DB.InTx.
type Tx struct {
	Queries
	tx *sql.Tx
}

// Open creates a new SQLite connection with WAL mode and recommended pragmas.
// Transactions begin IMMEDIATE so concurrent writers queue on the busy
// timeout instead of failing on lock upgrade.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return &DB{DB: db, Queries: Queries{q: db}}, nil
}

// InTx runs fn inside a transaction, committing when fn returns nil.
// Begin and commit failures are reported as ErrUnavailable.
func (db *DB) InTx(ctx context.Context, fn func(tx *Tx) error) error {
	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Unavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = sqlTx.Rollback() }()

	if err := fn(&Tx{Queries: Queries{q: sqlTx}, tx: sqlTx}); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return Unavailable(fmt.Errorf("commit: %w", err))
	}
	return nil
}
