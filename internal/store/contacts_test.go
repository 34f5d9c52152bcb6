package store

import (
	"context"
	"errors"
	"testing"
)

func TestCreateAndGetContact(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, err := s.CreateContact(ctx, "Acme", "acme@example.com", "555-0100", "contact")
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if contact.ID == "" {
		t.Error("expected store-assigned id")
	}
	if contact.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}

	got, err := s.GetContact(ctx, contact.ID)
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if got == nil || got.Name != "Acme" {
		t.Errorf("expected to get Acme back, got %+v", got)
	}
}

func TestUpdateContactKeepsCreatedAt(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")

	updated, err := s.UpdateContact(ctx, contact.ID, "Acme Ltda", "vendas@acme.com", "555-0101", "supplier")
	if err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	if updated.Name != "Acme Ltda" || updated.Role != "supplier" {
		t.Errorf("update not applied: %+v", updated)
	}
	if !updated.CreatedAt.Equal(contact.CreatedAt) {
		t.Errorf("creation timestamp changed: %v -> %v", contact.CreatedAt, updated.CreatedAt)
	}
}

func TestContactCRUDOnMissingID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.UpdateContact(ctx, "missing", "X", "", "", "contact"); !errors.Is(err, ErrNotFound) {
		t.Errorf("update: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteContact(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete: expected ErrNotFound, got %v", err)
	}

	got, err := s.GetContact(ctx, "missing")
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing contact, got %+v", got)
	}
}

func TestDeleteContact(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	a, _ := s.CreateContact(ctx, "A", "a@example.com", "", "contact")
	b, _ := s.CreateContact(ctx, "B", "b@example.com", "", "supplier")

	if err := s.DeleteContact(ctx, a.ID); err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}

	contacts, _ := s.Contacts(ctx)
	if len(contacts) != 1 || contacts[0].ID != b.ID {
		t.Errorf("expected only B to remain, got %+v", contacts)
	}
}

func TestFilterContacts(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.CreateContact(ctx, "Acme Ltda", "vendas@acme.com", "", "contact")
	s.CreateContact(ctx, "Fornecedora SA", "contato@fornecedora.com", "", "supplier")
	s.CreateContact(ctx, "Beta Corp", "beta@example.com", "", "contact")

	contacts, _ := s.Contacts(ctx)

	if got := FilterContacts(contacts, "acme", ""); len(got) != 1 || got[0].Name != "Acme Ltda" {
		t.Errorf("search 'acme': got %+v", got)
	}
	// Email matches too.
	if got := FilterContacts(contacts, "contato@", ""); len(got) != 1 {
		t.Errorf("search by email: got %+v", got)
	}
	if got := FilterContacts(contacts, "", "supplier"); len(got) != 1 || got[0].Role != "supplier" {
		t.Errorf("filter supplier: got %+v", got)
	}
	if got := FilterContacts(contacts, "", "all"); len(got) != 3 {
		t.Errorf("filter all: got %d", len(got))
	}
}
