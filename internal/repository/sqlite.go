package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/adhikav/customerdesk/internal/domain"
)

// SQLite is the embedded durable backend: one row per customer, loaded into
// owned instances at open so instance membership holds across the session.
type SQLite struct {
	addedBroadcaster
	mu        sync.Mutex
	db        *sql.DB
	logger    *slog.Logger
	customers []*domain.Customer
	ids       map[*domain.Customer]string
}

// OpenSQLite opens (creating if needed) the database at path and loads every
// stored customer.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLite, error) {
	if path == "" {
		path = "customerdesk.db"
	}
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		total_sales REAL NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		is_company INTEGER NOT NULL,
		email TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create customers table: %w", err)
	}

	s := &SQLite{
		db:     db,
		logger: logger,
		ids:    make(map[*domain.Customer]string),
	}
	if err := s.load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite repository opened", "path", path, "customers", len(s.customers))
	return s, nil
}

func (s *SQLite) load(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, total_sales, first_name, last_name, is_company, email
		FROM customers ORDER BY position`)
	if err != nil {
		return fmt.Errorf("select customers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			id        string
			c         domain.Customer
			isCompany int
		)
		if err := rows.Scan(&id, &c.TotalSales, &c.FirstName, &c.LastName, &isCompany, &c.Email); err != nil {
			return fmt.Errorf("scan customer row: %w", err)
		}
		c.IsCompany = isCompany != 0
		loaded := &c
		s.customers = append(s.customers, loaded)
		s.ids[loaded] = id
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate customer rows: %w", err)
	}
	return nil
}

// ListAll returns the held customers in stored order.
func (s *SQLite) ListAll(context.Context) ([]*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.Customer(nil), s.customers...), nil
}

// Contains reports instance membership.
func (s *SQLite) Contains(_ context.Context, c *domain.Customer) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[c]
	return ok, nil
}

// Add inserts a row for the customer and fires the added event. Re-adding a
// held instance is a no-op. The position is allocated and the row inserted
// under one lock acquisition so concurrent adds cannot claim the same
// position; the event still fires outside the lock.
func (s *SQLite) Add(ctx context.Context, c *domain.Customer) error {
	if c == nil {
		panic("repository: nil customer")
	}

	s.mu.Lock()
	if _, ok := s.ids[c]; ok {
		s.mu.Unlock()
		return nil
	}
	id := uuid.NewString()
	position := len(s.customers)
	isCompany := 0
	if c.IsCompany {
		isCompany = 1
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO customers
		(id, position, total_sales, first_name, last_name, is_company, email)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, position, c.TotalSales, c.FirstName, c.LastName, isCompany, c.Email); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("insert customer %s: %w", id, err)
	}
	s.customers = append(s.customers, c)
	s.ids[c] = id
	s.mu.Unlock()

	s.fireAdded(c)
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
