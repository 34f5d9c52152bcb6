package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Collection names. Each one maps to a single row in the collections
// table holding the full record sequence as a JSON array.
const (
	CollectionContacts  = "business_contacts"
	CollectionInventory = "business_inventory"
	CollectionSales     = "business_sales"
	CollectionTasks     = "business_tasks"
)

// Store owns the four business collections and the operator settings.
// Every mutation rewrites the owning collection in full; with a single
// writer that is simpler and safer than incremental updates, at the
// cost of a scalability ceiling around a few thousand records.
type Store struct {
	db *sql.DB
}

// New creates a Store over an opened database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// NewID returns a new record identifier, unique across the process
// lifetime. Random UUIDs avoid the same-clock-tick collisions a
// timestamp id would have.
func (s *Store) NewID() string {
	return uuid.NewString()
}

// dbtx is satisfied by both *sql.DB and *sql.Tx so collection reads
// and writes can run standalone or inside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// loadCollection returns the persisted sequence for a collection, or
// an empty one if the collection does not exist yet. A payload that no
// longer parses is logged and treated as empty so that one corrupted
// collection never takes down the other three.
func loadCollection[T any](ctx context.Context, q dbtx, name string) ([]T, error) {
	var payload []byte
	err := q.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE name = ?`, name,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading collection %s: %w", name, err)
	}

	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		slog.Error("malformed collection payload, treating as empty", "collection", name, "error", err)
		return nil, nil
	}
	return records, nil
}

// saveCollection replaces the persisted sequence for a collection.
func saveCollection[T any](ctx context.Context, q dbtx, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", name, err)
	}

	_, err = q.ExecContext(ctx,
		`INSERT INTO collections (name, payload) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET payload = excluded.payload`,
		name, payload,
	)
	if err != nil {
		return fmt.Errorf("saving collection %s: %w", name, err)
	}
	return nil
}
