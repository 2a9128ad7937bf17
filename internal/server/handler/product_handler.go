package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/foodstock-inventory/internal/domain/catalog"
	"github.com/foodstock-inventory/internal/inventory"
)

// ProductHandler drives the catalog manager over HTTP. The manager is a
// single-editor state machine, so the handler serializes requests with a
// mutex instead of sharing form state across them.
type ProductHandler struct {
	logger  *slog.Logger
	manager *inventory.CatalogManager
	capture *captureNotifier
	mu      sync.Mutex
}

// NewProductHandler creates a product handler owning its catalog manager.
func NewProductHandler(logger *slog.Logger, repo catalog.Repository) *ProductHandler {
	capture := &captureNotifier{logger: logger}
	return &ProductHandler{
		logger:  logger,
		manager: inventory.NewCatalogManager(logger, repo, capture),
		capture: capture,
	}
}

// List refreshes the catalog from the store and returns it. A store
// failure is not fatal: the last successfully loaded list is served.
func (h *ProductHandler) List(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.manager.LoadAll(c.Request.Context())
	RespondOK(c, mapProductsToResponse(h.manager.Products()))
}

// Create submits the request fields as a new product.
func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
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

	RespondCreated(c, mapProductsToResponse(h.manager.Products()))
}

// Update loads the product into the manager's edit slot, overwrites the
// working fields with the request and submits.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid product ID")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.capture.reset()
	h.manager.LoadAll(c.Request.Context())

	target, ok := findProduct(h.manager.Products(), id)
	if !ok {
		RespondNotFound(c, "Product not found")
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

	RespondOK(c, mapProductsToResponse(h.manager.Products()))
}

// Delete removes a product by id and returns the refreshed list state.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondBadRequest(c, "Invalid product ID")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.capture.reset()
	if !h.manager.Remove(c.Request.Context(), id) {
		if errors.Is(h.capture.store, catalog.ErrProductNotFound{}) {
			RespondNotFound(c, "Product not found")
			return
		}
		RespondBadGateway(c, "record store rejected the operation")
		return
	}

	RespondNoContent(c)
}

// Report refreshes the catalog and serves the catalog report as a
// downloadable paginated text document.
func (h *ProductHandler) Report(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.manager.LoadAll(c.Request.Context())
	doc := h.manager.Report()

	c.Header("Content-Disposition", `attachment; filename="product_report.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc.Render()))
}

func (h *ProductHandler) respondSubmitFailure(c *gin.Context) {
	if h.capture.validation != nil {
		RespondUnprocessable(c, h.capture.validation.Error())
		return
	}
	RespondBadGateway(c, "record store rejected the operation")
}

func findProduct(products []catalog.Product, id uuid.UUID) (catalog.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}
