// Package inventory holds the two entity managers at the core of the
// service. Both follow the same shape: load the collection wholesale,
// edit-or-create through a single working form, persist, then reload so
// the visible list never diverges from the record store.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/foodstock-inventory/internal/domain/catalog"
	"github.com/foodstock-inventory/internal/report"
)

// Validation errors reported through the Notifier. Submissions failing
// validation are refused silently: no store call, state untouched.
var (
	ErrNameRequired        = errors.New("name is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrPriceNotNumeric     = errors.New("price must be a number")
	ErrStockNotNumeric     = errors.New("stock must be a number")
)

// CatalogForm mirrors the product working fields as submitted text.
// Parsing happens at validation time, not at entry time.
type CatalogForm struct {
	Name        string
	Description string
	Price       string
	Stock       string
}

// validate checks the form and produces the record fields to persist.
// It is a pure function of the form.
func (f CatalogForm) validate() (catalog.Fields, error) {
	if strings.TrimSpace(f.Name) == "" {
		return catalog.Fields{}, ErrNameRequired
	}
	if strings.TrimSpace(f.Description) == "" {
		return catalog.Fields{}, ErrDescriptionRequired
	}
	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil {
		return catalog.Fields{}, ErrPriceNotNumeric
	}
	stock, err := parseInt(f.Stock)
	if err != nil {
		return catalog.Fields{}, ErrStockNotNumeric
	}

	return catalog.Fields{
		Name:        f.Name,
		Description: f.Description,
		Price:       price,
		Stock:       stock,
	}, nil
}

// CatalogManager owns the product collection: an ordered in-memory list
// mirroring the store, at most one product loaded for editing, and the
// working form. It is meant for a single editor operating serially.
type CatalogManager struct {
	repo   catalog.Repository
	logger *slog.Logger
	notify Notifier

	products []catalog.Product
	editing  *catalog.Product
	form     CatalogForm
}

// NewCatalogManager creates a catalog manager. A nil notifier falls back
// to the diagnostic log.
func NewCatalogManager(logger *slog.Logger, repo catalog.Repository, notify Notifier) *CatalogManager {
	if notify == nil {
		notify = logNotifier{logger: logger}
	}
	return &CatalogManager{
		repo:   repo,
		logger: logger,
		notify: notify,
	}
}

// Products returns the product list as of the last successful load.
func (m *CatalogManager) Products() []catalog.Product {
	return m.products
}

// Editing returns the current edit target, or nil when idle.
func (m *CatalogManager) Editing() *catalog.Product {
	return m.editing
}

// Form returns the current working fields.
func (m *CatalogManager) Form() CatalogForm {
	return m.form
}

// SetForm replaces the working fields.
func (m *CatalogManager) SetForm(f CatalogForm) {
	m.form = f
}

// LoadAll replaces the in-memory list with the store's canonical state.
// It fails open: on a store error the prior list stays displayed.
func (m *CatalogManager) LoadAll(ctx context.Context) {
	products, err := m.repo.SelectAll(ctx)
	if err != nil {
		m.logger.Error("failed to fetch products", "error", err)
		m.notify.StoreFailed("select products", err)
		return
	}
	m.products = products
}

// BeginEdit copies a product's fields into the working form and marks it
// as the edit target. Starting a new edit while one is active simply
// overwrites the previous target; the form is shared, not per row.
func (m *CatalogManager) BeginEdit(p catalog.Product) {
	m.editing = &p
	m.form = CatalogForm{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Stock:       fmt.Sprintf("%d", p.Stock),
	}
}

// CancelEdit drops the edit target and resets the working fields.
func (m *CatalogManager) CancelEdit() {
	m.editing = nil
	m.form = CatalogForm{}
}

// Submit validates the working form and persists it: an update keyed by
// the edit target's id when one is set, an insert otherwise. On success
// the form and edit target are cleared and the list is reloaded from the
// store. On validation or store failure nothing changes and Submit
// reports false; details flow only through the Notifier.
func (m *CatalogManager) Submit(ctx context.Context) bool {
	fields, err := m.form.validate()
	if err != nil {
		m.notify.ValidationFailed("product", err)
		return false
	}

	if m.editing != nil {
		if _, err := m.repo.Update(ctx, m.editing.ID, fields); err != nil {
			m.logger.Error("failed to update product", "id", m.editing.ID.String(), "error", err)
			m.notify.StoreFailed("update product", err)
			return false
		}
	} else {
		if _, err := m.repo.Insert(ctx, fields); err != nil {
			m.logger.Error("failed to insert product", "error", err)
			m.notify.StoreFailed("insert product", err)
			return false
		}
	}

	m.editing = nil
	m.form = CatalogForm{}
	m.LoadAll(ctx)
	return true
}

// Remove deletes a product by id and reloads the list. On a store error
// the stale list stays displayed and Remove reports false.
func (m *CatalogManager) Remove(ctx context.Context, id uuid.UUID) bool {
	if err := m.repo.Delete(ctx, id); err != nil {
		m.logger.Error("failed to delete product", "id", id.String(), "error", err)
		m.notify.StoreFailed("delete product", err)
		return false
	}
	m.LoadAll(ctx)
	return true
}

// Report renders the catalog report from the in-memory list in display
// order. It performs no store access.
func (m *CatalogManager) Report() *report.Document {
	rows := make([]string, 0, len(m.products))
	for _, p := range m.products {
		rows = append(rows, fmt.Sprintf("%s, %s, $%s, Stock: %d", p.Name, p.Description, p.Price.String(), p.Stock))
	}
	return report.New("Product Report", "Name, Description, Price, Stock", rows)
}
