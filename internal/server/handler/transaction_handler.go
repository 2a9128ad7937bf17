package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/foodstock-inventory/internal/domain/catalog"
	"github.com/foodstock-inventory/internal/domain/ledger"
	"github.com/foodstock-inventory/internal/inventory"
)

// TransactionHandler drives the ledger manager over HTTP, with the same
// serialized single-editor contract as the product handler.
type TransactionHandler struct {
	logger  *slog.Logger
	manager *inventory.LedgerManager
	capture *captureNotifier
	mu      sync.Mutex
}

// NewTransactionHandler creates a transaction handler owning its ledger
// manager. The catalog repository is used only for the read-only product
// mirror behind name resolution.
func NewTransactionHandler(logger *slog.Logger, transactions ledger.Repository, products catalog.Repository) *TransactionHandler {
	capture := &captureNotifier{logger: logger}
	return &TransactionHandler{
		logger:  logger,
		manager: inventory.NewLedgerManager(logger, transactions, products, capture),
		capture: capture,
	}
}

// List refreshes the ledger and the product mirror, then returns the
// transactions with resolved product names.
func (h *TransactionHandler) List(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.manager.LoadAll(c.Request.Context())
	RespondOK(c, mapTransactionsToResponse(h.manager.Transactions(), h.manager.Products()))
}

// Create submits the request fields as a new transaction.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.capture.reset()
	h.manager.CancelEdit()
	h.manager.SetForm(req.form())
	if !h.manager.Submit(c.Request.Context()) {
		h.respondSubmitFailure(c)
		return
	}

	RespondCreated(c, mapTransactionsToResponse(h.manager.Transactions(), h.manager.Products()))
}

// Update loads the transaction into the edit slot, overwrites the working
// fields with the request and submits.
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid transaction ID")
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.capture.reset()
	h.manager.LoadAll(c.Request.Context())

	target, ok := findTransaction(h.manager.Transactions(), id)
	if !ok {
		RespondNotFound(c, "Transaction not found")
		return
	}

	h.manager.BeginEdit(target)
	h.manager.SetForm(req.form())
	if !h.manager.Submit(c.Request.Context()) {
		// requests are independent editors, drop the stuck edit slot
		h.manager.CancelEdit()
		h.respondSubmitFailure(c)
		return
	}

	RespondOK(c, mapTransactionsToResponse(h.manager.Transactions(), h.manager.Products()))
}

// Delete removes a transaction by id.
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid transaction ID")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.capture.reset()
	if !h.manager.Remove(c.Request.Context(), id) {
		if errors.Is(h.capture.store, ledger.ErrTransactionNotFound{}) {
			RespondNotFound(c, "Transaction not found")
			return
		}
		RespondBadGateway(c, "record store rejected the operation")
		return
	}

	RespondNoContent(c)
}

// Report refreshes both collections and serves the ledger report as a
// downloadable paginated text document.
func (h *TransactionHandler) Report(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.manager.LoadAll(c.Request.Context())
	doc := h.manager.Report()

	c.Header("Content-Disposition", `attachment; filename="transaction_report.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc.Render()))
}

func (h *TransactionHandler) respondSubmitFailure(c *gin.Context) {
	if h.capture.validation != nil {
		RespondUnprocessable(c, h.capture.validation.Error())
		return
	}
	RespondBadGateway(c, "record store rejected the operation")
}

func findTransaction(transactions []ledger.Transaction, id uuid.UUID) (ledger.Transaction, bool) {
	for _, t := range transactions {
		if t.ID == id {
			return t, true
		}
	}
	return ledger.Transaction{}, false
}
