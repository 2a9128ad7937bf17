package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog record. The ID is assigned by the record store on
// insert and is immutable afterwards. Name and Description are required
// non-empty at the point of submission but are not unique.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Fields carries the mutable part of a Product for inserts and updates.
// The store owns the ID and the timestamps.
type Fields struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}
