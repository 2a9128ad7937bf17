package handler

import (
	"time"

	"github.com/foodstock-inventory/internal/domain/catalog"
	"github.com/foodstock-inventory/internal/domain/ledger"
	"github.com/foodstock-inventory/internal/inventory"
)

// ProductRequest carries the product working fields as submitted text.
// Validation is the manager's job, not the transport's: a request that
// binds but fails the form rules is refused with 422, mirroring the
// silent no-op of the core.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       string `json:"stock"`
}

func (r ProductRequest) form() inventory.CatalogForm {
	return inventory.CatalogForm{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func mapProductToResponse(p catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

func mapProductsToResponse(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, mapProductToResponse(p))
	}
	return out
}

// TransactionRequest carries the transaction working fields as submitted
// text. The product reference is plain text and stays that way.
type TransactionRequest struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
	Date      string `json:"date"`
	Kind      string `json:"kind"`
}

func (r TransactionRequest) form() inventory.LedgerForm {
	return inventory.LedgerForm{
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Date:      r.Date,
		Kind:      r.Kind,
	}
}

// TransactionResponse represents a transaction in API responses. The
// product name is resolved against the manager's mirror; a dangling
// reference renders as an empty name.
type TransactionResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Date        string `json:"date"`
	Kind        string `json:"kind"`
}

func mapTransactionToResponse(t ledger.Transaction, products []catalog.Product) TransactionResponse {
	name, _ := inventory.ResolveProductName(t.ProductID, products)
	return TransactionResponse{
		ID:          t.ID.String(),
		ProductID:   t.ProductID,
		ProductName: name,
		Quantity:    t.Quantity,
		Date:        t.Date,
		Kind:        string(t.Kind),
	}
}

func mapTransactionsToResponse(transactions []ledger.Transaction, products []catalog.Product) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, mapTransactionToResponse(t, products))
	}
	return out
}
