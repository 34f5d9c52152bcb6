package store

import (
	"context"
	"fmt"
	"time"

	"github.com/controleapp/controle/internal/model"
)

// SaleLineInput is one requested line of a sale to record.
type SaleLineInput struct {
	ItemID   string
	Quantity int
}

// Sales returns all recorded sales in insertion order.
func (s *Store) Sales(ctx context.Context) ([]model.Sale, error) {
	return loadCollection[model.Sale](ctx, s.db, CollectionSales)
}

// GetSale returns a sale by ID, or nil if absent.
func (s *Store) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	sales, err := s.Sales(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if sales[i].ID == id {
			return &sales[i], nil
		}
	}
	return nil, nil
}

// RecordSale records a sale for a client and deducts the sold
// quantities from inventory. All validation and reference resolution
// happens before any write; the appended sales collection and the
// adjusted inventory collection are then persisted in a single
// transaction, so a sale and its stock effect land together or not at
// all.
//
// Stock is deducted regardless of status: a pending or cancelled sale
// moves inventory exactly like a completed one. Quantities may go
// negative; over-selling is not floored.
func (s *Store) RecordSale(ctx context.Context, contactID string, lines []SaleLineInput, status string) (*model.Sale, error) {
	if !model.ValidSaleStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: sale has no lines", ErrInvalidQuantity)
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %s quantity %d", ErrInvalidQuantity, line.ItemID, line.Quantity)
		}
	}

	contact, err := s.GetContact(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, fmt.Errorf("%w: contact %s", ErrUnresolvedReference, contactID)
	}
	if contact.Role == model.RoleSupplier {
		return nil, fmt.Errorf("%w: %s", ErrSupplierSale, contact.Name)
	}

	// One fresh read of inventory; every delta below is computed and
	// applied against this snapshot, then written once.
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(items))
	for i := range items {
		byID[items[i].ID] = i
	}

	var (
		saleLines []model.SaleLine
		total     int64
		deltas    = make(map[string]int)
	)
	for _, line := range lines {
		idx, ok := byID[line.ItemID]
		if !ok {
			return nil, fmt.Errorf("%w: item %s", ErrUnresolvedReference, line.ItemID)
		}
		item := items[idx]
		saleLines = append(saleLines, model.SaleLine{
			ItemID:     item.ID,
			ItemName:   item.Name,
			Quantity:   line.Quantity,
			PriceCents: item.PriceCents,
		})
		total += item.PriceCents * int64(line.Quantity)
		deltas[item.ID] += line.Quantity
	}

	for id, sold := range deltas {
		items[byID[id]].Quantity -= sold
	}

	sale := model.Sale{
		ID:          s.NewID(),
		ContactID:   contact.ID,
		ContactName: contact.Name,
		Lines:       saleLines,
		TotalCents:  total,
		Date:        time.Now().UTC(),
		Status:      status,
	}

	sales, err := s.Sales(ctx)
	if err != nil {
		return nil, err
	}
	sales = append(sales, sale)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := saveCollection(ctx, tx, CollectionSales, sales); err != nil {
		return nil, err
	}
	if err := saveCollection(ctx, tx, CollectionInventory, items); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing sale: %w", err)
	}

	return &sale, nil
}

// DeleteSale removes a sale record. Deducted stock is NOT restored;
// deletion erases the record, not its inventory effect.
func (s *Store) DeleteSale(ctx context.Context, id string) error {
	sales, err := s.Sales(ctx)
	if err != nil {
		return err
	}

	for i := range sales {
		if sales[i].ID == id {
			sales = append(sales[:i], sales[i+1:]...)
			return saveCollection(ctx, s.db, CollectionSales, sales)
		}
	}
	return fmt.Errorf("deleting sale %s: %w", id, ErrNotFound)
}
