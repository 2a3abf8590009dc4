package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/dmoralesc/inventario/internal/httpx"
	"github.com/dmoralesc/inventario/internal/models"
	"github.com/dmoralesc/inventario/internal/services"
	"github.com/dmoralesc/inventario/internal/validation"
)

type SaleHandler struct {
	DB  *gorm.DB
	Svc *services.SaleService
}

func NewSaleHandler(db *gorm.DB, svc *services.SaleService) *SaleHandler {
	return &SaleHandler{DB: db, Svc: svc}
}

// Create: POST /sales {code, quantity}. On success the product's stock has
// already been decremented; the response carries the remaining stock.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Code     string `json:"code"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	input.Code = strings.TrimSpace(input.Code)
	v := validation.Violations{}
	validation.Required("code", input.Code, v)
	validation.PositiveInt("quantity", input.Quantity, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	sale, err := h.Svc.Record(r.Context(), input.Code, input.Quantity)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		httpx.JSONError(w, http.StatusNotFound, "product_not_found", nil)
		return
	case errors.Is(err, services.ErrInsufficientStock):
		httpx.JSONError(w, http.StatusBadRequest, "insufficient_stock", nil)
		return
	case errors.Is(err, services.ErrInvalidQuantity):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"quantity": "must_be_positive"})
		return
	case err != nil:
		httpx.JSONError(w, http.StatusInternalServerError, "sale_record_failed", nil)
		return
	}

	var product models.Product
	if err := h.DB.First(&product, sale.ProductID).Error; err != nil {
		// Sale is committed; report it even if the re-read failed.
		httpx.JSON(w, http.StatusCreated, sale)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"id":          sale.ID,
		"product_id":  sale.ProductID,
		"quantity":    sale.Quantity,
		"occurred_at": sale.OccurredAt,
		"stock":       product.Stock,
	})
}
