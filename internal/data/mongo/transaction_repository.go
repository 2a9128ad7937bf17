// Package mongo provides the MongoDB implementation of the transaction
// record store. Transaction ids are assigned on insert.
package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodstock-inventory/internal/domain/ledger"
)

const (
	// TransactionCollectionName is the name of the transaction collection in MongoDB
	TransactionCollectionName = "transactions"
)

// TransactionRepository implements the ledger.Repository interface for MongoDB
type TransactionRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewTransactionRepository creates a new MongoDB transaction repository
func NewTransactionRepository(logger *slog.Logger, db *mongo.Database) ledger.Repository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// SelectAll returns every transaction in the collection's natural order.
func (r *TransactionRepository) SelectAll(ctx context.Context) ([]ledger.Transaction, error) {
	collection := r.db.Collection(TransactionCollectionName)

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		r.logger.Error("Failed to select transactions", "error", err)
		return nil, fmt.Errorf("failed to select transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var transactions []ledger.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		r.logger.Error("Failed to decode transactions", "error", err)
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	return transactions, nil
}

// Insert stores a new transaction. The store assigns the id; the full
// inserted record is returned.
func (r *TransactionRepository) Insert(ctx context.Context, fields ledger.Fields) (*ledger.Transaction, error) {
	collection := r.db.Collection(TransactionCollectionName)

	t := ledger.Transaction{
		ID:        uuid.New(),
		ProductID: fields.ProductID,
		Quantity:  fields.Quantity,
		Date:      fields.Date,
		Kind:      fields.Kind,
	}

	if _, err := collection.InsertOne(ctx, t); err != nil {
		r.logger.Error("Failed to insert transaction", "error", err)
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &t, nil
}

// Update rewrites a transaction's fields keyed by id and returns the
// updated record. Returns ErrTransactionNotFound if no document matched.
func (r *TransactionRepository) Update(ctx context.Context, id uuid.UUID, fields ledger.Fields) (*ledger.Transaction, error) {
	collection := r.db.Collection(TransactionCollectionName)

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"product_id": fields.ProductID,
		"quantity":   fields.Quantity,
		"date":       fields.Date,
		"kind":       fields.Kind,
	}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		r.logger.Error("Failed to update transaction", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, ledger.ErrTransactionNotFound{TransactionID: id}
	}

	return &ledger.Transaction{
		ID:        id,
		ProductID: fields.ProductID,
		Quantity:  fields.Quantity,
		Date:      fields.Date,
		Kind:      fields.Kind,
	}, nil
}

// Delete removes a transaction by id. Returns ErrTransactionNotFound if
// no document was deleted.
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	collection := r.db.Collection(TransactionCollectionName)

	result, err := collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		r.logger.Error("Failed to delete transaction", "id", id.String(), "error", err)
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if result.DeletedCount == 0 {
		return ledger.ErrTransactionNotFound{TransactionID: id}
	}

	return nil
}
