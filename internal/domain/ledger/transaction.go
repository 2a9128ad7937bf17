package ledger

import (
	"github.com/google/uuid"
)

// Kind classifies a stock movement. The values are descriptive only: a
// transaction never adjusts the referenced product's stock figure, the
// ledger and the catalog are maintained independently.
type Kind string

const (
	KindEntry Kind = "Entrada"
	KindExit  Kind = "Salida"
)

// Transaction is a ledger record describing one stock movement.
//
// ProductID is a weak reference held as plain text: the ledger does not own
// the product and a dangling reference (product deleted after the
// transaction was written) must resolve to an unknown name, never an error.
type Transaction struct {
	ID        uuid.UUID `json:"id" bson:"id"`
	ProductID string    `json:"product_id" bson:"product_id"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	Date      string    `json:"date" bson:"date"` // calendar date, no time of day
	Kind      Kind      `json:"kind" bson:"kind"`
}

// Fields carries the mutable part of a Transaction for inserts and updates.
type Fields struct {
	ProductID string
	Quantity  int
	Date      string
	Kind      Kind
}
