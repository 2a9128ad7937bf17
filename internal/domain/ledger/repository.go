package ledger

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the record-store surface for the Transaction collection,
// shaped identically to the catalog side: select-all plus
// equality-by-id mutations.
type Repository interface {
	SelectAll(ctx context.Context) ([]Transaction, error)
	Insert(ctx context.Context, fields Fields) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, fields Fields) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ErrTransactionNotFound indicates a missing ledger record
type ErrTransactionNotFound struct {
	TransactionID uuid.UUID
}

func (e ErrTransactionNotFound) Error() string {
	return "transaction not found: " + e.TransactionID.String()
}

// Is implements the errors.Is interface for ErrTransactionNotFound
func (e ErrTransactionNotFound) Is(target error) bool {
	t, ok := target.(ErrTransactionNotFound)
	if !ok {
		return false
	}
	if t.TransactionID == uuid.Nil {
		return true
	}
	return e.TransactionID == t.TransactionID
}
