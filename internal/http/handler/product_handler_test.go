package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/shelfwise/retail-api/internal/http/handler"
	"github.com/shelfwise/retail-api/internal/repository"
	"github.com/shelfwise/retail-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupProductAPI(t *testing.T) (*chi.Mux, *repository.Store) {
	t.Helper()

	store := repository.NewStore()
	svc := service.NewProductService(store.Products, zap.NewNop())
	h := handler.NewProductHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/sku/{sku}", h.GetBySKU)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r, store
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProductHandler_CreateAndGet(t *testing.T) {
	router, _ := setupProductAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/products", domain.CreateProductRequest{
		Name: "Cotton T-Shirt", SKU: "TCT-BLK-M", Price: 19.99, Category: "apparel",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "TCT-BLK-M", created.SKU)

	rec = doJSON(t, router, http.MethodGet, "/api/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/products/sku/TCT-BLK-M", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var bySKU domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bySKU))
	assert.Equal(t, created.ID, bySKU.ID)
}

func TestProductHandler_ValidationFailure(t *testing.T) {
	router, _ := setupProductAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/products", map[string]any{
		"name": "No price or sku",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
	assert.Contains(t, apiErr.Errors, "sku")
	assert.Contains(t, apiErr.Errors, "price")
}

func TestProductHandler_DuplicateSKUConflict(t *testing.T) {
	router, _ := setupProductAPI(t)

	first := doJSON(t, router, http.MethodPost, "/api/products", domain.CreateProductRequest{
		Name: "Original", SKU: "X1", Price: 10, Category: "test",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, router, http.MethodPost, "/api/products", domain.CreateProductRequest{
		Name: "Copycat", SKU: "X1", Price: 20, Category: "test",
	})
	require.Equal(t, http.StatusConflict, second.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrorTypeConflict, apiErr.Type)
}

func TestProductHandler_NotFound(t *testing.T) {
	router, _ := setupProductAPI(t)

	rec := doJSON(t, router, http.MethodGet, "/api/products/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/products/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	router, store := setupProductAPI(t)

	rec := doJSON(t, router, http.MethodPost, "/api/products", domain.CreateProductRequest{
		Name: "Shirt", SKU: "S1", Price: 10, Category: "apparel",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/products/1", map[string]any{"price": 12.5})
	require.Equal(t, http.StatusOK, rec.Code)

	updated, ok := store.Products.Get(1)
	require.True(t, ok)
	assert.Equal(t, 12.5, updated.Price)

	rec = doJSON(t, router, http.MethodDelete, "/api/products/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok = store.Products.Get(1)
	assert.False(t, ok)
}
