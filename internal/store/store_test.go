package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/controleapp/controle/internal/db"
)

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	database := db.NewTestDB(t)
	return New(database), database
}

func TestFirstRunCollectionsAreEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contacts, err := s.Contacts(ctx)
	if err != nil {
		t.Fatalf("Contacts: %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("expected empty contacts on first run, got %d", len(contacts))
	}

	items, err := s.Items(ctx)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty inventory on first run, got %d", len(items))
	}
}

func TestCollectionRoundTripPreservesOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	names := []string{"Ana", "Bruno", "Carla", "Davi", "Elisa"}
	var ids []string
	for _, name := range names {
		c, err := s.CreateContact(ctx, name, name+"@example.com", "555-0100", "contact")
		if err != nil {
			t.Fatalf("CreateContact(%s): %v", name, err)
		}
		ids = append(ids, c.ID)
	}

	contacts, err := s.Contacts(ctx)
	if err != nil {
		t.Fatalf("Contacts: %v", err)
	}
	if len(contacts) != len(names) {
		t.Fatalf("expected %d contacts, got %d", len(names), len(contacts))
	}
	for i, c := range contacts {
		if c.ID != ids[i] {
			t.Errorf("position %d: expected id %s, got %s", i, ids[i], c.ID)
		}
		if c.Name != names[i] {
			t.Errorf("position %d: expected name %s, got %s", i, names[i], c.Name)
		}
		if c.Email != names[i]+"@example.com" {
			t.Errorf("position %d: email not preserved: %s", i, c.Email)
		}
	}
}

func TestMalformedPayloadIsIsolated(t *testing.T) {
	s, database := newTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact"); err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if _, err := s.CreateItem(ctx, "Widget", "parts", 10, 2, 500); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	// Corrupt the contacts payload behind the store's back.
	if _, err := database.Exec(
		`UPDATE collections SET payload = ? WHERE name = ?`,
		[]byte("{not json"), CollectionContacts,
	); err != nil {
		t.Fatalf("corrupting payload: %v", err)
	}

	contacts, err := s.Contacts(ctx)
	if err != nil {
		t.Fatalf("Contacts after corruption: %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("expected corrupted collection to read as empty, got %d records", len(contacts))
	}

	// The other collections must be unaffected.
	items, err := s.Items(ctx)
	if err != nil {
		t.Fatalf("Items after corruption: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Widget" {
		t.Errorf("inventory collection affected by contacts corruption: %+v", items)
	}
}

func TestNewIDUnique(t *testing.T) {
	s, _ := newTestStore(t)

	seen := make(map[string]bool)
	for range 1000 {
		id := s.NewID()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
