package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/controleapp/controle/internal/model"
)

// Contacts returns all contacts in insertion order.
func (s *Store) Contacts(ctx context.Context) ([]model.Contact, error) {
	return loadCollection[model.Contact](ctx, s.db, CollectionContacts)
}

// GetContact returns a contact by ID, or nil if absent.
func (s *Store) GetContact(ctx context.Context, id string) (*model.Contact, error) {
	contacts, err := s.Contacts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i], nil
		}
	}
	return nil, nil
}

// CreateContact creates a new contact and persists the collection.
func (s *Store) CreateContact(ctx context.Context, name, email, phone, role string) (*model.Contact, error) {
	if !model.ValidContactRole(role) {
		return nil, fmt.Errorf("invalid contact role %q", role)
	}

	contacts, err := s.Contacts(ctx)
	if err != nil {
		return nil, err
	}

	contact := model.Contact{
		ID:        s.NewID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	contacts = append(contacts, contact)

	if err := saveCollection(ctx, s.db, CollectionContacts, contacts); err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateContact updates a contact's mutable fields. The creation
// timestamp is never touched.
func (s *Store) UpdateContact(ctx context.Context, id, name, email, phone, role string) (*model.Contact, error) {
	if !model.ValidContactRole(role) {
		return nil, fmt.Errorf("invalid contact role %q", role)
	}

	contacts, err := s.Contacts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range contacts {
		if contacts[i].ID != id {
			continue
		}
		contacts[i].Name = name
		contacts[i].Email = email
		contacts[i].Phone = phone
		contacts[i].Role = role
		if err := saveCollection(ctx, s.db, CollectionContacts, contacts); err != nil {
			return nil, err
		}
		return &contacts[i], nil
	}
	return nil, fmt.Errorf("updating contact %s: %w", id, ErrNotFound)
}

// DeleteContact removes a contact. Sales that reference it keep their
// denormalized contact name; there is no cascade.
func (s *Store) DeleteContact(ctx context.Context, id string) error {
	contacts, err := s.Contacts(ctx)
	if err != nil {
		return err
	}

	for i := range contacts {
		if contacts[i].ID == id {
			contacts = append(contacts[:i], contacts[i+1:]...)
			return saveCollection(ctx, s.db, CollectionContacts, contacts)
		}
	}
	return fmt.Errorf("deleting contact %s: %w", id, ErrNotFound)
}

// FilterContacts narrows contacts by a case-insensitive name/email
// search and an optional role.
func FilterContacts(contacts []model.Contact, query, role string) []model.Contact {
	query = strings.ToLower(query)
	var out []model.Contact
	for _, c := range contacts {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Email), query) {
			continue
		}
		if role != "" && role != "all" && c.Role != role {
			continue
		}
		out = append(out, c)
	}
	return out
}
