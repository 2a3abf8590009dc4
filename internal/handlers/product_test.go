package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dmoralesc/inventario/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Sale{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func postJSON(t *testing.T, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestProductCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	h := NewProductHandler(db)

	w := postJSON(t, h.Create, "/products", `{"name":"Widget","code":"1234567890123","cost_price":10,"sale_price":15,"stock":100}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w2 := httptest.NewRecorder()
	h.List(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w2.Code)
	}
	var items []struct {
		ID          uint    `json:"id"`
		Name        string  `json:"name"`
		Code        string  `json:"code"`
		CostPrice   float64 `json:"cost_price"`
		SalePrice   float64 `json:"sale_price"`
		Stock       int     `json:"stock"`
		GrossMargin float64 `json:"gross_margin"`
		NetMargin   float64 `json:"net_margin"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 product got %d", len(items))
	}
	p := items[0]
	if p.Name != "Widget" || p.Code != "1234567890123" || p.Stock != 100 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if p.GrossMargin != 5 || p.NetMargin != 50 {
		t.Fatalf("expected margins 5/50 got %v/%v", p.GrossMargin, p.NetMargin)
	}
}

func TestProductCreateDuplicateCode(t *testing.T) {
	db := setupTestDB(t)
	h := NewProductHandler(db)

	if w := postJSON(t, h.Create, "/products", `{"name":"A","code":"111","cost_price":1,"sale_price":2,"stock":1}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", w.Code)
	}
	w := postJSON(t, h.Create, "/products", `{"name":"B","code":"111","cost_price":1,"sale_price":2,"stock":1}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d body=%s", w.Code, w.Body.String())
	}
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 product got %d", count)
	}
}

func TestProductCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	h := NewProductHandler(db)

	w := postJSON(t, h.Create, "/products", `{"name":"","code":"","cost_price":-1,"sale_price":2,"stock":-3}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	body := w.Body.String()
	for _, field := range []string{"name", "code", "cost_price", "stock"} {
		if !strings.Contains(body, field) {
			t.Errorf("expected violation for %s in %s", field, body)
		}
	}
}

func TestProductUpdate(t *testing.T) {
	db := setupTestDB(t)
	h := NewProductHandler(db)
	p := models.Product{Name: "Widget", Code: "111", CostPrice: 10, SalePrice: 15, Stock: 100}
	db.Create(&p)

	w := postJSON(t, h.Update, "/products/update?id=1", `{"name":"Widget v2","code":"222","cost_price":11,"sale_price":16,"stock":90}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var after models.Product
	db.First(&after, p.ID)
	if after.Name != "Widget v2" || after.Code != "222" || after.CostPrice != 11 || after.SalePrice != 16 || after.Stock != 90 {
		t.Fatalf("full replace not applied: %+v", after)
	}
}

func TestProductUpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	h := NewProductHandler(db)

	w := postJSON(t, h.Update, "/products/update?id=42", `{"name":"X","code":"1","cost_price":1,"sale_price":2,"stock":1}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestProductUpdateCodeConflict(t *testing.T) {
	db := setupTestDB(t)
	h := NewProductHandler(db)
	db.Create(&models.Product{Name: "A", Code: "111", CostPrice: 1, SalePrice: 2, Stock: 1})
	db.Create(&models.Product{Name: "B", Code: "222", CostPrice: 1, SalePrice: 2, Stock: 1})

	w := postJSON(t, h.Update, "/products/update?id=2", `{"name":"B","code":"111","cost_price":1,"sale_price":2,"stock":1}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestProductDelete(t *testing.T) {
	db := setupTestDB(t)
	h := NewProductHandler(db)
	p := models.Product{Name: "Widget", Code: "111", CostPrice: 1, SalePrice: 2, Stock: 1}
	db.Create(&p)

	req := httptest.NewRequest(http.MethodDelete, "/products/delete?id=1", nil)
	w := httptest.NewRecorder()
	h.Delete(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected product removed, %d remain", count)
	}

	// Second delete of the same id is a 404.
	w2 := httptest.NewRecorder()
	h.Delete(w2, httptest.NewRequest(http.MethodDelete, "/products/delete?id=1", nil))
	if w2.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w2.Code)
	}
}
