package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the record-store surface for the Product collection.
// The managers never issue joins or filters; everything is select-all
// plus equality-by-id mutations.
type Repository interface {
	SelectAll(ctx context.Context) ([]Product, error)
	Insert(ctx context.Context, fields Fields) (*Product, error)
	Update(ctx context.Context, id uuid.UUID, fields Fields) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ErrProductNotFound indicates a missing product record
type ErrProductNotFound struct {
	ProductID uuid.UUID
}

func (e ErrProductNotFound) Error() string {
	return "product not found: " + e.ProductID.String()
}

// Is implements the errors.Is interface for ErrProductNotFound
func (e ErrProductNotFound) Is(target error) bool {
	t, ok := target.(ErrProductNotFound)
	if !ok {
		return false
	}
	if t.ProductID == uuid.Nil {
		return true
	}
	return e.ProductID == t.ProductID
}
