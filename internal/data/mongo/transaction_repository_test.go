package mongo

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodstock-inventory/internal/domain/ledger"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SelectAll(ctx context.Context) ([]ledger.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Insert(ctx context.Context, fields ledger.Fields) (*ledger.Transaction, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Update(ctx context.Context, id uuid.UUID, fields ledger.Fields) (*ledger.Transaction, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ ledger.Repository = (*MockTransactionRepository)(nil)

func TestNewTransactionRepository(t *testing.T) {
	db := &mongo.Database{}
	logger := slog.Default()

	repo := NewTransactionRepository(logger, db)

	assert.NotNil(t, repo)
	assert.IsType(t, &TransactionRepository{}, repo)
}

func TestTransactionRepository_Insert(t *testing.T) {
	fields := ledger.Fields{
		ProductID: uuid.NewString(),
		Quantity:  5,
		Date:      "2024-01-01",
		Kind:      ledger.KindEntry,
	}

	tests := []struct {
		name          string
		setupMocks    func(m *MockTransactionRepository)
		expectedError error
	}{
		{
			name: "successful insert assigns an id",
			setupMocks: func(m *MockTransactionRepository) {
				inserted := &ledger.Transaction{
					ID:        uuid.New(),
					ProductID: fields.ProductID,
					Quantity:  fields.Quantity,
					Date:      fields.Date,
					Kind:      fields.Kind,
				}
				m.On("Insert", mock.Anything, fields).Return(inserted, nil)
			},
			expectedError: nil,
		},
		{
			name: "database error",
			setupMocks: func(m *MockTransactionRepository) {
				m.On("Insert", mock.Anything, fields).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockTransactionRepository{}
			tt.setupMocks(mockRepo)

			result, err := mockRepo.Insert(context.Background(), fields)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, result.ID)
				assert.Equal(t, fields.ProductID, result.ProductID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTransactionRepository_Update(t *testing.T) {
	id := uuid.New()
	fields := ledger.Fields{
		ProductID: uuid.NewString(),
		Quantity:  8,
		Date:      "2024-01-02",
		Kind:      ledger.KindExit,
	}

	tests := []struct {
		name          string
		setupMocks    func(m *MockTransactionRepository)
		expectedError error
	}{
		{
			name: "successful update",
			setupMocks: func(m *MockTransactionRepository) {
				updated := &ledger.Transaction{
					ID:        id,
					ProductID: fields.ProductID,
					Quantity:  fields.Quantity,
					Date:      fields.Date,
					Kind:      fields.Kind,
				}
				m.On("Update", mock.Anything, id, fields).Return(updated, nil)
			},
			expectedError: nil,
		},
		{
			name: "transaction not found",
			setupMocks: func(m *MockTransactionRepository) {
				m.On("Update", mock.Anything, id, fields).Return(nil, ledger.ErrTransactionNotFound{TransactionID: id})
			},
			expectedError: ledger.ErrTransactionNotFound{TransactionID: id},
		},
		{
			name: "database error",
			setupMocks: func(m *MockTransactionRepository) {
				m.On("Update", mock.Anything, id, fields).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockTransactionRepository{}
			tt.setupMocks(mockRepo)

			result, err := mockRepo.Update(context.Background(), id, fields)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, id, result.ID)
				assert.Equal(t, fields.Quantity, result.Quantity)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTransactionRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(m *MockTransactionRepository)
		expectedError error
	}{
		{
			name: "successful delete",
			setupMocks: func(m *MockTransactionRepository) {
				m.On("Delete", mock.Anything, id).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "transaction not found",
			setupMocks: func(m *MockTransactionRepository) {
				m.On("Delete", mock.Anything, id).Return(ledger.ErrTransactionNotFound{TransactionID: id})
			},
			expectedError: ledger.ErrTransactionNotFound{TransactionID: id},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockTransactionRepository{}
			tt.setupMocks(mockRepo)

			err := mockRepo.Delete(context.Background(), id)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
