package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/foodstock-inventory/internal/domain/catalog"
	"github.com/foodstock-inventory/internal/domain/ledger"
	"github.com/foodstock-inventory/internal/report"
)

var (
	ErrProductRequired    = errors.New("product is required")
	ErrQuantityNotNumeric = errors.New("quantity must be a number")
	ErrDateRequired       = errors.New("date is required")
	ErrKindRequired       = errors.New("kind is required")
)

// LedgerForm mirrors the transaction working fields as submitted text.
type LedgerForm struct {
	ProductID string
	Quantity  string
	Date      string
	Kind      string
}

// validate checks the form and produces the record fields to persist.
// The product reference is always stored as text.
func (f LedgerForm) validate() (ledger.Fields, error) {
	if strings.TrimSpace(f.ProductID) == "" {
		return ledger.Fields{}, ErrProductRequired
	}
	quantity, err := parseInt(f.Quantity)
	if err != nil {
		return ledger.Fields{}, ErrQuantityNotNumeric
	}
	if strings.TrimSpace(f.Date) == "" {
		return ledger.Fields{}, ErrDateRequired
	}
	if strings.TrimSpace(f.Kind) == "" {
		return ledger.Fields{}, ErrKindRequired
	}

	return ledger.Fields{
		ProductID: f.ProductID,
		Quantity:  quantity,
		Date:      f.Date,
		Kind:      ledger.Kind(f.Kind),
	}, nil
}

// LedgerManager owns the transaction collection plus a read-only mirror
// of the product list, kept only to resolve product names for display and
// reporting. The mirror is fetched independently; there is no join.
type LedgerManager struct {
	transactions ledger.Repository
	catalog      catalog.Repository
	logger       *slog.Logger
	notify       Notifier

	list    []ledger.Transaction
	mirror  []catalog.Product
	editing *ledger.Transaction
	form    LedgerForm
}

// NewLedgerManager creates a ledger manager. A nil notifier falls back to
// the diagnostic log.
func NewLedgerManager(logger *slog.Logger, transactions ledger.Repository, products catalog.Repository, notify Notifier) *LedgerManager {
	if notify == nil {
		notify = logNotifier{logger: logger}
	}
	return &LedgerManager{
		transactions: transactions,
		catalog:      products,
		logger:       logger,
		notify:       notify,
	}
}

// Transactions returns the ledger as of the last successful load.
func (m *LedgerManager) Transactions() []ledger.Transaction {
	return m.list
}

// Products returns the read-only product mirror.
func (m *LedgerManager) Products() []catalog.Product {
	return m.mirror
}

// Editing returns the current edit target, or nil when idle.
func (m *LedgerManager) Editing() *ledger.Transaction {
	return m.editing
}

// Form returns the current working fields.
func (m *LedgerManager) Form() LedgerForm {
	return m.form
}

// SetForm replaces the working fields.
func (m *LedgerManager) SetForm(f LedgerForm) {
	m.form = f
}

// LoadAll refreshes the transaction list and the product mirror with two
// independent reads. Each read fails open on its own: one side erroring
// leaves only that side's prior state in place.
func (m *LedgerManager) LoadAll(ctx context.Context) {
	transactions, err := m.transactions.SelectAll(ctx)
	if err != nil {
		m.logger.Error("failed to fetch transactions", "error", err)
		m.notify.StoreFailed("select transactions", err)
	} else {
		m.list = transactions
	}

	products, err := m.catalog.SelectAll(ctx)
	if err != nil {
		m.logger.Error("failed to fetch products", "error", err)
		m.notify.StoreFailed("select products", err)
	} else {
		m.mirror = products
	}
}

// BeginEdit copies a transaction's fields into the working form and marks
// it as the edit target, overwriting any edit already in flight.
func (m *LedgerManager) BeginEdit(t ledger.Transaction) {
	m.editing = &t
	m.form = LedgerForm{
		ProductID: t.ProductID,
		Quantity:  strconv.Itoa(t.Quantity),
		Date:      t.Date,
		Kind:      string(t.Kind),
	}
}

// CancelEdit drops the edit target and resets the working fields.
func (m *LedgerManager) CancelEdit() {
	m.editing = nil
	m.form = LedgerForm{}
}

// Submit validates the working form and persists it, update-or-insert
// exactly as on the catalog side, followed by a field reset and a full
// reload. Reports false without touching anything on failure.
func (m *LedgerManager) Submit(ctx context.Context) bool {
	fields, err := m.form.validate()
	if err != nil {
		m.notify.ValidationFailed("transaction", err)
		return false
	}

	if m.editing != nil {
		if _, err := m.transactions.Update(ctx, m.editing.ID, fields); err != nil {
			m.logger.Error("failed to update transaction", "id", m.editing.ID.String(), "error", err)
			m.notify.StoreFailed("update transaction", err)
			return false
		}
	} else {
		if _, err := m.transactions.Insert(ctx, fields); err != nil {
			m.logger.Error("failed to insert transaction", "error", err)
			m.notify.StoreFailed("insert transaction", err)
			return false
		}
	}

	m.editing = nil
	m.form = LedgerForm{}
	m.LoadAll(ctx)
	return true
}

// Remove deletes a transaction by id and reloads. On a store error the
// stale list stays displayed and Remove reports false.
func (m *LedgerManager) Remove(ctx context.Context, id uuid.UUID) bool {
	if err := m.transactions.Delete(ctx, id); err != nil {
		m.logger.Error("failed to delete transaction", "id", id.String(), "error", err)
		m.notify.StoreFailed("delete transaction", err)
		return false
	}
	m.LoadAll(ctx)
	return true
}

// Report renders the ledger report from the in-memory state in display
// order. Product names come from the mirror; a dangling reference renders
// as a blank name, never an error.
func (m *LedgerManager) Report() *report.Document {
	rows := make([]string, 0, len(m.list))
	for _, t := range m.list {
		name, _ := ResolveProductName(t.ProductID, m.mirror)
		rows = append(rows, fmt.Sprintf("%s, %d, %s, %s", name, t.Quantity, t.Date, t.Kind))
	}
	return report.New("Transaction Report", "Product, Quantity, Date, Kind", rows)
}

// ResolveProductName resolves a weak product reference against a product
// list by linear scan, first match wins. A reference to a product that no
// longer exists yields ok == false.
func ResolveProductName(id string, products []catalog.Product) (name string, ok bool) {
	for _, p := range products {
		if p.ID.String() == id {
			return p.Name, true
		}
	}
	return "", false
}

// parseInt parses a required integer form field: the textual form must be
// non-empty and numeric. Decimal text is accepted and truncated toward
// zero, so a stock of "20.5" is stored as 20.
func parseInt(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
