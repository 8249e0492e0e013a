// Package sqlitestore persists menu items in a SQLite database through
// zombiezen.com/go/sqlite. Items live in a single menuitems table keyed by
// id; writes are upserts inside one IMMEDIATE transaction.
package sqlitestore

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/idilsaglam/littlelemon/internal/model"
)

const schema = `CREATE TABLE IF NOT EXISTS menuitems (
	id TEXT PRIMARY KEY,
	title TEXT,
	price TEXT,
	category TEXT
);`

// Config holds the parameters for opening a store.
type Config struct {
	// Path is the database file. ":memory:" opens a private in-memory
	// database and forces a single connection.
	Path string

	// PoolSize defaults to 2. Writes are serialized by SQLite anyway.
	PoolSize int

	// Logger receives debug messages. Nil discards them.
	Logger *zerolog.Logger
}

// Store is a SQLite-backed store.Store and store.Searcher.
type Store struct {
	pool *sqlitex.Pool
	log  zerolog.Logger
	path string
}

// Open opens (creating if needed) the database at cfg.Path. Connections
// are prepared lazily on first use.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlitestore: Path is required")
	}
	size := cfg.PoolSize
	if size <= 0 {
		size = 2
	}
	if cfg.Path == ":memory:" {
		size = 1
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	pool, err := sqlitex.NewPool(cfg.Path, sqlitex.PoolOptions{
		PoolSize:    size,
		PrepareConn: prepareConn,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: opening %s: %w", cfg.Path, err)
	}
	logger.Debug().Str("path", cfg.Path).Int("pool_size", size).Msg("sqlite store opened")
	return &Store{pool: pool, log: logger, path: cfg.Path}, nil
}

func prepareConn(conn *sqlite.Conn) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA temp_store=MEMORY",
	}
	for _, p := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, p, nil); err != nil {
			return fmt.Errorf("sqlitestore: %s: %w", p, err)
		}
	}
	return nil
}

// Close closes every connection. Blocks until borrowed connections are
// returned.
func (s *Store) Close() error {
	if err := s.pool.Close(); err != nil {
		return fmt.Errorf("sqlitestore: closing %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) CreateSchema(ctx context.Context) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("sqlitestore: take: %w", err)
	}
	defer s.pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("sqlitestore: create schema: %w", err)
	}
	return nil
}

func (s *Store) WriteAll(ctx context.Context, items []model.MenuItem) (err error) {
	if len(items) == 0 {
		return nil
	}
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("sqlitestore: take: %w", err)
	}
	defer s.pool.Put(conn)

	endTransaction, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return fmt.Errorf("sqlitestore: begin transaction: %w", err)
	}
	defer endTransaction(&err)

	for _, it := range items {
		err = sqlitex.Execute(conn,
			`INSERT OR REPLACE INTO menuitems (id, title, price, category) VALUES (?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{it.ID, it.Title, it.Price, it.Category}})
		if err != nil {
			return fmt.Errorf("sqlitestore: insert %s: %w", it.ID, err)
		}
	}
	s.log.Debug().Int("count", len(items)).Msg("menu items saved")
	return nil
}

func (s *Store) ReadAll(ctx context.Context) ([]model.MenuItem, error) {
	return s.query(ctx, `SELECT id, title, price, category FROM menuitems ORDER BY rowid`)
}

// Search filters in SQL: title by case-insensitive substring, category by
// equality. Empty arguments are unconstrained.
func (s *Store) Search(ctx context.Context, query, category string) ([]model.MenuItem, error) {
	return s.query(ctx, `SELECT id, title, price, category FROM menuitems
		WHERE (? = '' OR instr(lower(title), lower(?)) > 0)
		  AND (? = '' OR category = ?)
		ORDER BY rowid`,
		query, query, category, category)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]model.MenuItem, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: take: %w", err)
	}
	defer s.pool.Put(conn)

	items := []model.MenuItem{}
	err = sqlitex.Execute(conn, q, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			items = append(items, model.MenuItem{
				ID:       stmt.ColumnText(0),
				Title:    stmt.ColumnText(1),
				Price:    stmt.ColumnText(2),
				Category: stmt.ColumnText(3),
			})
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: query: %w", err)
	}
	return items, nil
}
