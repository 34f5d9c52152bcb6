package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/controleapp/controle/internal/model"
)

// Items returns all inventory items in insertion order.
func (s *Store) Items(ctx context.Context) ([]model.Item, error) {
	return loadCollection[model.Item](ctx, s.db, CollectionInventory)
}

// GetItem returns an item by ID, or nil if absent.
func (s *Store) GetItem(ctx context.Context, id string) (*model.Item, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// CreateItem creates a new inventory item and persists the collection.
func (s *Store) CreateItem(ctx context.Context, name, category string, quantity, minQuantity int, priceCents int64) (*model.Item, error) {
	if minQuantity < 0 {
		return nil, fmt.Errorf("minimum quantity must not be negative")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}

	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	item := model.Item{
		ID:          s.NewID(),
		Name:        name,
		Category:    category,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		PriceCents:  priceCents,
	}
	items = append(items, item)

	if err := saveCollection(ctx, s.db, CollectionInventory, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem updates an item's fields. Recorded sales keep their
// name/price snapshots regardless of edits made here.
func (s *Store) UpdateItem(ctx context.Context, id, name, category string, quantity, minQuantity int, priceCents int64) (*model.Item, error) {
	if minQuantity < 0 {
		return nil, fmt.Errorf("minimum quantity must not be negative")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}

	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Name = name
		items[i].Category = category
		items[i].Quantity = quantity
		items[i].MinQuantity = minQuantity
		items[i].PriceCents = priceCents
		if err := saveCollection(ctx, s.db, CollectionInventory, items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}
	return nil, fmt.Errorf("updating item %s: %w", id, ErrNotFound)
}

// DeleteItem removes an item and its photo. Historical sales keep
// their line snapshots.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	items, err := s.Items(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			if err := saveCollection(ctx, s.db, CollectionInventory, items); err != nil {
				return err
			}
			return s.deleteItemImage(ctx, id)
		}
	}
	return fmt.Errorf("deleting item %s: %w", id, ErrNotFound)
}

// FilterItems narrows items by a case-insensitive name/category search.
func FilterItems(items []model.Item, query string) []model.Item {
	query = strings.ToLower(query)
	if query == "" {
		return items
	}
	var out []model.Item
	for _, i := range items {
		if strings.Contains(strings.ToLower(i.Name), query) ||
			strings.Contains(strings.ToLower(i.Category), query) {
			out = append(out, i)
		}
	}
	return out
}
