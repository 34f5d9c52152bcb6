package store

import (
	"context"
	"errors"
	"testing"

	"github.com/controleapp/controle/internal/model"
)

func TestRecordSaleComputesTotalAndDeductsStock(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")
	item, _ := s.CreateItem(ctx, "Widget", "parts", 10, 2, 500)

	sale, err := s.RecordSale(ctx, contact.ID, []SaleLineInput{{ItemID: item.ID, Quantity: 3}}, model.SaleCompleted)
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	if sale.TotalCents != 1500 {
		t.Errorf("expected total 1500, got %d", sale.TotalCents)
	}
	if sale.ContactName != "Acme" {
		t.Errorf("expected contact name snapshot 'Acme', got %q", sale.ContactName)
	}
	if len(sale.Lines) != 1 || sale.Lines[0].ItemName != "Widget" || sale.Lines[0].PriceCents != 500 {
		t.Errorf("unexpected line snapshot: %+v", sale.Lines)
	}

	got, _ := s.GetItem(ctx, item.ID)
	if got.Quantity != 7 {
		t.Errorf("expected quantity 7 after selling 3 of 10, got %d", got.Quantity)
	}
}

func TestRecordSaleDeductsEachLineExactly(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")
	a, _ := s.CreateItem(ctx, "A", "", 10, 0, 100)
	b, _ := s.CreateItem(ctx, "B", "", 10, 0, 200)
	c, _ := s.CreateItem(ctx, "C", "", 10, 0, 300)

	_, err := s.RecordSale(ctx, contact.ID, []SaleLineInput{
		{ItemID: a.ID, Quantity: 2},
		{ItemID: b.ID, Quantity: 1},
	}, model.SaleCompleted)
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	for _, want := range []struct {
		id       string
		quantity int
	}{
		{a.ID, 8},
		{b.ID, 9},
		{c.ID, 10},
	} {
		got, _ := s.GetItem(ctx, want.id)
		if got.Quantity != want.quantity {
			t.Errorf("item %s: expected quantity %d, got %d", got.Name, want.quantity, got.Quantity)
		}
	}
}

func TestRecordSaleTotalMatchesLines(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")
	a, _ := s.CreateItem(ctx, "A", "", 100, 0, 199) // 1.99
	b, _ := s.CreateItem(ctx, "B", "", 100, 0, 333) // 3.33

	sale, err := s.RecordSale(ctx, contact.ID, []SaleLineInput{
		{ItemID: a.ID, Quantity: 7},
		{ItemID: b.ID, Quantity: 3},
	}, model.SaleCompleted)
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	var sum int64
	for _, line := range sale.Lines {
		sum += line.SubtotalCents()
	}
	if sale.TotalCents != sum {
		t.Errorf("total %d != line sum %d", sale.TotalCents, sum)
	}
	if sale.TotalCents != 7*199+3*333 {
		t.Errorf("expected exact total %d, got %d", 7*199+3*333, sale.TotalCents)
	}
}

func TestRecordSaleUnknownItemLeavesInventoryUntouched(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")
	a, _ := s.CreateItem(ctx, "A", "", 10, 0, 100)

	_, err := s.RecordSale(ctx, contact.ID, []SaleLineInput{
		{ItemID: a.ID, Quantity: 2},
		{ItemID: "missing", Quantity: 1},
	}, model.SaleCompleted)
	if !errors.Is(err, ErrUnresolvedReference) {
		t.Fatalf("expected ErrUnresolvedReference, got %v", err)
	}

	got, _ := s.GetItem(ctx, a.ID)
	if got.Quantity != 10 {
		t.Errorf("inventory changed on failed sale: quantity %d", got.Quantity)
	}
	sales, _ := s.Sales(ctx)
	if len(sales) != 0 {
		t.Errorf("sale recorded despite failure: %d sales", len(sales))
	}
}

func TestRecordSaleUnknownContact(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	a, _ := s.CreateItem(ctx, "A", "", 10, 0, 100)

	_, err := s.RecordSale(ctx, "missing", []SaleLineInput{{ItemID: a.ID, Quantity: 1}}, model.SaleCompleted)
	if !errors.Is(err, ErrUnresolvedReference) {
		t.Fatalf("expected ErrUnresolvedReference, got %v", err)
	}
}

func TestRecordSaleRejectsSupplier(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	supplier, _ := s.CreateContact(ctx, "Fornecedora SA", "f@example.com", "", "supplier")
	a, _ := s.CreateItem(ctx, "A", "", 10, 0, 100)

	_, err := s.RecordSale(ctx, supplier.ID, []SaleLineInput{{ItemID: a.ID, Quantity: 1}}, model.SaleCompleted)
	if !errors.Is(err, ErrSupplierSale) {
		t.Fatalf("expected ErrSupplierSale, got %v", err)
	}
}

func TestRecordSaleRejectsBadQuantity(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")
	a, _ := s.CreateItem(ctx, "A", "", 10, 0, 100)

	for _, quantity := range []int{0, -3} {
		_, err := s.RecordSale(ctx, contact.ID, []SaleLineInput{{ItemID: a.ID, Quantity: quantity}}, model.SaleCompleted)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got %v", quantity, err)
		}
	}

	_, err := s.RecordSale(ctx, contact.ID, nil, model.SaleCompleted)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("empty lines: expected ErrInvalidQuantity, got %v", err)
	}

	got, _ := s.GetItem(ctx, a.ID)
	if got.Quantity != 10 {
		t.Errorf("inventory changed on rejected sale: quantity %d", got.Quantity)
	}
}

func TestRecordSaleRejectsUnknownStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")
	a, _ := s.CreateItem(ctx, "A", "", 10, 0, 100)

	_, err := s.RecordSale(ctx, contact.ID, []SaleLineInput{{ItemID: a.ID, Quantity: 1}}, "shipped")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestOverSellingGoesNegative(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")
	item, _ := s.CreateItem(ctx, "Widget", "", 10, 2, 500)

	for i := 0; i < 2; i++ {
		if _, err := s.RecordSale(ctx, contact.ID, []SaleLineInput{{ItemID: item.ID, Quantity: 6}}, model.SaleCompleted); err != nil {
			t.Fatalf("sale %d: %v", i+1, err)
		}
	}

	got, _ := s.GetItem(ctx, item.ID)
	if got.Quantity != -2 {
		t.Errorf("expected quantity -2 after over-selling, got %d", got.Quantity)
	}
}

func TestPendingAndCancelledSalesStillDeductStock(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")
	item, _ := s.CreateItem(ctx, "Widget", "", 10, 0, 500)

	s.RecordSale(ctx, contact.ID, []SaleLineInput{{ItemID: item.ID, Quantity: 2}}, model.SalePending)
	s.RecordSale(ctx, contact.ID, []SaleLineInput{{ItemID: item.ID, Quantity: 3}}, model.SaleCancelled)

	got, _ := s.GetItem(ctx, item.ID)
	if got.Quantity != 5 {
		t.Errorf("expected quantity 5 after pending+cancelled sales, got %d", got.Quantity)
	}
}

func TestDeleteSaleDoesNotRestoreStock(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")
	item, _ := s.CreateItem(ctx, "Widget", "", 10, 0, 500)

	sale, err := s.RecordSale(ctx, contact.ID, []SaleLineInput{{ItemID: item.ID, Quantity: 4}}, model.SaleCompleted)
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	if err := s.DeleteSale(ctx, sale.ID); err != nil {
		t.Fatalf("DeleteSale: %v", err)
	}

	sales, _ := s.Sales(ctx)
	if len(sales) != 0 {
		t.Errorf("expected 0 sales after delete, got %d", len(sales))
	}

	got, _ := s.GetItem(ctx, item.ID)
	if got.Quantity != 6 {
		t.Errorf("deleting a sale must not restore stock: quantity %d, want 6", got.Quantity)
	}
}

func TestSaleLinesAreSnapshots(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")
	item, _ := s.CreateItem(ctx, "Widget", "parts", 10, 0, 500)

	sale, _ := s.RecordSale(ctx, contact.ID, []SaleLineInput{{ItemID: item.ID, Quantity: 1}}, model.SaleCompleted)

	// Rename and reprice the item, then delete the contact entirely.
	if _, err := s.UpdateItem(ctx, item.ID, "Gadget", "parts", 9, 0, 999); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if err := s.DeleteContact(ctx, contact.ID); err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}

	got, _ := s.GetSale(ctx, sale.ID)
	if got == nil {
		t.Fatal("sale disappeared")
	}
	if got.Lines[0].ItemName != "Widget" || got.Lines[0].PriceCents != 500 {
		t.Errorf("line snapshot changed after item edit: %+v", got.Lines[0])
	}
	if got.ContactName != "Acme" {
		t.Errorf("contact snapshot changed after contact delete: %q", got.ContactName)
	}
	if got.TotalCents != 500 {
		t.Errorf("total changed after item edit: %d", got.TotalCents)
	}
}

func TestRecordSaleAggregatesRepeatedItem(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	contact, _ := s.CreateContact(ctx, "Acme", "acme@example.com", "", "contact")
	item, _ := s.CreateItem(ctx, "Widget", "", 10, 0, 100)

	// The same item twice in one sale deducts the summed quantity once.
	sale, err := s.RecordSale(ctx, contact.ID, []SaleLineInput{
		{ItemID: item.ID, Quantity: 2},
		{ItemID: item.ID, Quantity: 3},
	}, model.SaleCompleted)
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	if sale.TotalCents != 500 {
		t.Errorf("expected total 500, got %d", sale.TotalCents)
	}
	got, _ := s.GetItem(ctx, item.ID)
	if got.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", got.Quantity)
	}
}

func TestDeleteSaleNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.DeleteSale(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
