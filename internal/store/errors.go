package store

import "errors"

// Sale recording errors.
var (
	ErrUnresolvedReference = errors.New("unresolved reference")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrSupplierSale        = errors.New("cannot record a sale for a supplier")
)

// ErrNotFound is returned when an update or delete names an id that is
// not in its collection.
var ErrNotFound = errors.New("record not found")
