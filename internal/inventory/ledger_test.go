package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/foodstock-inventory/internal/domain/catalog"
	"github.com/foodstock-inventory/internal/domain/ledger"
)

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SelectAll(ctx context.Context) ([]ledger.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) Insert(ctx context.Context, fields ledger.Fields) (*ledger.Transaction, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) Update(ctx context.Context, id uuid.UUID, fields ledger.Fields) (*ledger.Transaction, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ ledger.Repository = (*MockLedgerRepository)(nil)

func testTransaction(productID string, quantity int, date string, kind ledger.Kind) ledger.Transaction {
	return ledger.Transaction{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
		Date:      date,
		Kind:      kind,
	}
}

func TestLedgerManager_LoadAll_IndependentReads(t *testing.T) {
	ctx := context.Background()

	rice := testProduct("Rice", "White rice 1kg", "2.5", 10)
	transactions := []ledger.Transaction{testTransaction(rice.ID.String(), 5, "2024-01-01", ledger.KindEntry)}
	products := []catalog.Product{rice}

	t.Run("BothSidesRefresh", func(t *testing.T) {
		ledgerRepo := new(MockLedgerRepository)
		catalogRepo := new(MockCatalogRepository)
		m := NewLedgerManager(newTestLogger(), ledgerRepo, catalogRepo, nil)

		ledgerRepo.On("SelectAll", ctx).Return(transactions, nil).Once()
		catalogRepo.On("SelectAll", ctx).Return(products, nil).Once()

		m.LoadAll(ctx)

		assert.Equal(t, transactions, m.Transactions())
		assert.Equal(t, products, m.Products())
		ledgerRepo.AssertExpectations(t)
		catalogRepo.AssertExpectations(t)
	})

	t.Run("OneSideFailsOpen", func(t *testing.T) {
		ledgerRepo := new(MockLedgerRepository)
		catalogRepo := new(MockCatalogRepository)
		m := NewLedgerManager(newTestLogger(), ledgerRepo, catalogRepo, nil)

		ledgerRepo.On("SelectAll", ctx).Return(transactions, nil).Once()
		catalogRepo.On("SelectAll", ctx).Return(products, nil).Once()
		m.LoadAll(ctx)

		ledgerRepo.On("SelectAll", ctx).Return(nil, errors.New("store down")).Once()
		catalogRepo.On("SelectAll", ctx).Return([]catalog.Product{}, nil).Once()
		m.LoadAll(ctx)

		assert.Equal(t, transactions, m.Transactions(), "failed side keeps its prior state")
		assert.Empty(t, m.Products(), "healthy side still refreshes")
	})
}

func TestLedgerManager_Submit_Insert(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := new(MockLedgerRepository)
	catalogRepo := new(MockCatalogRepository)
	m := NewLedgerManager(newTestLogger(), ledgerRepo, catalogRepo, nil)

	rice := testProduct("Rice", "White rice 1kg", "2.5", 10)
	inserted := testTransaction(rice.ID.String(), 5, "2024-01-01", ledger.KindEntry)

	ledgerRepo.On("Insert", ctx, ledger.Fields{
		ProductID: rice.ID.String(),
		Quantity:  5,
		Date:      "2024-01-01",
		Kind:      ledger.KindEntry,
	}).Return(&inserted, nil).Once()
	ledgerRepo.On("SelectAll", ctx).Return([]ledger.Transaction{inserted}, nil).Once()
	catalogRepo.On("SelectAll", ctx).Return([]catalog.Product{rice}, nil).Once()

	m.SetForm(LedgerForm{ProductID: rice.ID.String(), Quantity: "5", Date: "2024-01-01", Kind: "Entrada"})
	ok := m.Submit(ctx)

	assert.True(t, ok)
	assert.Nil(t, m.Editing())
	assert.Equal(t, LedgerForm{}, m.Form())
	require.Len(t, m.Transactions(), 1)
	assert.Equal(t, inserted.ID, m.Transactions()[0].ID)
	ledgerRepo.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
}

func TestLedgerManager_Submit_TruncatesDecimalQuantity(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := new(MockLedgerRepository)
	catalogRepo := new(MockCatalogRepository)
	m := NewLedgerManager(newTestLogger(), ledgerRepo, catalogRepo, nil)

	inserted := testTransaction("p1", 5, "2024-01-01", ledger.KindEntry)
	ledgerRepo.On("Insert", ctx, mock.MatchedBy(func(fields ledger.Fields) bool {
		return fields.Quantity == 5
	})).Return(&inserted, nil).Once()
	ledgerRepo.On("SelectAll", ctx).Return([]ledger.Transaction{inserted}, nil).Once()
	catalogRepo.On("SelectAll", ctx).Return([]catalog.Product{}, nil).Once()

	m.SetForm(LedgerForm{ProductID: "p1", Quantity: "5.9", Date: "2024-01-01", Kind: "Entrada"})
	ok := m.Submit(ctx)

	assert.True(t, ok, "decimal quantity text is numeric and must be accepted")
	require.Len(t, m.Transactions(), 1)
	assert.Equal(t, 5, m.Transactions()[0].Quantity)
	ledgerRepo.AssertExpectations(t)
}

func TestLedgerManager_Submit_Update(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := new(MockLedgerRepository)
	catalogRepo := new(MockCatalogRepository)
	m := NewLedgerManager(newTestLogger(), ledgerRepo, catalogRepo, nil)

	existing := testTransaction(uuid.NewString(), 5, "2024-01-01", ledger.KindEntry)
	updated := existing
	updated.Quantity = 8

	ledgerRepo.On("Update", ctx, existing.ID, mock.MatchedBy(func(fields ledger.Fields) bool {
		return fields.Quantity == 8 && fields.Kind == ledger.KindEntry
	})).Return(&updated, nil).Once()
	ledgerRepo.On("SelectAll", ctx).Return([]ledger.Transaction{updated}, nil).Once()
	catalogRepo.On("SelectAll", ctx).Return([]catalog.Product{}, nil).Once()

	m.BeginEdit(existing)
	form := m.Form()
	form.Quantity = "8"
	m.SetForm(form)
	ok := m.Submit(ctx)

	assert.True(t, ok)
	assert.Nil(t, m.Editing())
	require.Len(t, m.Transactions(), 1)
	assert.Equal(t, 8, m.Transactions()[0].Quantity)
	ledgerRepo.AssertExpectations(t)
}

func TestLedgerManager_Submit_ValidationFailures(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name string
		form LedgerForm
		want error
	}{
		{"EmptyProduct", LedgerForm{ProductID: "", Quantity: "5", Date: "2024-01-01", Kind: "Entrada"}, ErrProductRequired},
		{"NonNumericQuantity", LedgerForm{ProductID: "p1", Quantity: "abc", Date: "2024-01-01", Kind: "Entrada"}, ErrQuantityNotNumeric},
		{"EmptyQuantity", LedgerForm{ProductID: "p1", Quantity: "", Date: "2024-01-01", Kind: "Entrada"}, ErrQuantityNotNumeric},
		{"EmptyDate", LedgerForm{ProductID: "p1", Quantity: "5", Date: "", Kind: "Entrada"}, ErrDateRequired},
		{"EmptyKind", LedgerForm{ProductID: "p1", Quantity: "5", Date: "2024-01-01", Kind: ""}, ErrKindRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledgerRepo := new(MockLedgerRepository)
			catalogRepo := new(MockCatalogRepository)
			notify := &recordingNotifier{}
			m := NewLedgerManager(newTestLogger(), ledgerRepo, catalogRepo, notify)

			m.SetForm(tc.form)
			ok := m.Submit(ctx)

			assert.False(t, ok)
			assert.Equal(t, tc.form, m.Form(), "fields untouched on validation failure")
			assert.ErrorIs(t, notify.validation, tc.want)
			ledgerRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			ledgerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestLedgerManager_Submit_StoreError(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := new(MockLedgerRepository)
	catalogRepo := new(MockCatalogRepository)
	m := NewLedgerManager(newTestLogger(), ledgerRepo, catalogRepo, nil)

	existing := testTransaction(uuid.NewString(), 5, "2024-01-01", ledger.KindEntry)
	ledgerRepo.On("Update", ctx, existing.ID, mock.Anything).Return(nil, errors.New("store down")).Once()

	m.BeginEdit(existing)
	ok := m.Submit(ctx)

	assert.False(t, ok)
	require.NotNil(t, m.Editing(), "edit target survives a store failure")
	assert.Equal(t, existing.ID, m.Editing().ID)
	ledgerRepo.AssertNotCalled(t, "SelectAll", mock.Anything)
	ledgerRepo.AssertExpectations(t)
}

func TestLedgerManager_BeginAndCancelEdit(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	catalogRepo := new(MockCatalogRepository)
	m := NewLedgerManager(newTestLogger(), ledgerRepo, catalogRepo, nil)

	tx := testTransaction("p1", 5, "2024-01-01", ledger.KindExit)
	m.BeginEdit(tx)

	require.NotNil(t, m.Editing())
	assert.Equal(t, LedgerForm{ProductID: "p1", Quantity: "5", Date: "2024-01-01", Kind: "Salida"}, m.Form())

	m.CancelEdit()
	assert.Nil(t, m.Editing())
	assert.Equal(t, LedgerForm{}, m.Form())
}

func TestLedgerManager_Remove(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := new(MockLedgerRepository)
	catalogRepo := new(MockCatalogRepository)
	m := NewLedgerManager(newTestLogger(), ledgerRepo, catalogRepo, nil)

	id := uuid.New()
	ledgerRepo.On("Delete", ctx, id).Return(nil).Once()
	ledgerRepo.On("SelectAll", ctx).Return([]ledger.Transaction{}, nil).Once()
	catalogRepo.On("SelectAll", ctx).Return([]catalog.Product{}, nil).Once()

	ok := m.Remove(ctx, id)

	assert.True(t, ok)
	ledgerRepo.AssertExpectations(t)
}

func TestLedgerManager_Report(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := new(MockLedgerRepository)
	catalogRepo := new(MockCatalogRepository)
	m := NewLedgerManager(newTestLogger(), ledgerRepo, catalogRepo, nil)

	rice := testProduct("Rice", "White rice 1kg", "2.5", 10)
	transactions := []ledger.Transaction{
		testTransaction(rice.ID.String(), 5, "2024-01-01", ledger.KindEntry),
		testTransaction(uuid.NewString(), 3, "2024-01-02", ledger.KindExit),
	}
	ledgerRepo.On("SelectAll", ctx).Return(transactions, nil).Once()
	catalogRepo.On("SelectAll", ctx).Return([]catalog.Product{rice}, nil).Once()
	m.LoadAll(ctx)

	doc := m.Report()
	assert.Equal(t, "Transaction Report", doc.Title)
	assert.Equal(t, "Product, Quantity, Date, Kind", doc.Header)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Rice, 5, 2024-01-01, Entrada", doc.Rows[0])
	assert.Equal(t, ", 3, 2024-01-02, Salida", doc.Rows[1], "dangling reference renders a blank name")
}

func TestLedgerManager_KindDoesNotTouchStock(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := new(MockLedgerRepository)
	catalogRepo := new(MockCatalogRepository)
	m := NewLedgerManager(newTestLogger(), ledgerRepo, catalogRepo, nil)

	rice := testProduct("Rice", "White rice 1kg", "2.5", 10)
	inserted := testTransaction(rice.ID.String(), 5, "2024-01-01", ledger.KindExit)

	ledgerRepo.On("Insert", ctx, mock.Anything).Return(&inserted, nil).Once()
	ledgerRepo.On("SelectAll", ctx).Return([]ledger.Transaction{inserted}, nil).Once()
	catalogRepo.On("SelectAll", ctx).Return([]catalog.Product{rice}, nil).Once()

	m.SetForm(LedgerForm{ProductID: rice.ID.String(), Quantity: "5", Date: "2024-01-01", Kind: "Salida"})
	ok := m.Submit(ctx)

	assert.True(t, ok)
	require.Len(t, m.Products(), 1)
	assert.Equal(t, 10, m.Products()[0].Stock, "recording an exit never adjusts stock")
	catalogRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveProductName(t *testing.T) {
	rice := testProduct("Rice", "White rice 1kg", "2.5", 10)
	beans := testProduct("Beans", "Black beans 500g", "1.8", 4)
	products := []catalog.Product{rice, beans}

	name, ok := ResolveProductName(beans.ID.String(), products)
	assert.True(t, ok)
	assert.Equal(t, "Beans", name)

	name, ok = ResolveProductName(uuid.NewString(), products)
	assert.False(t, ok)
	assert.Equal(t, "", name)
}
