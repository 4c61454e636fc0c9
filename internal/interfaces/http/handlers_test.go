package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/pos-backoffice/internal/application/catalog"
	"github.com/tu-usuario/pos-backoffice/internal/application/inventory"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
	"github.com/tu-usuario/pos-backoffice/internal/domain/repository"
	apphttp "github.com/tu-usuario/pos-backoffice/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para levantar la API sobre memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
	refs     map[string]bool
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product), refs: make(map[string]bool)}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return &domain.NotFoundError{Resource: "product", ID: p.ID}
	}
	qty := stored.Quantity
	cp := *p
	cp.Quantity = qty
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	p, ok := r.products[id]
	if !ok {
		return &domain.NotFoundError{Resource: "product", ID: id}
	}
	p.Quantity = quantity
	return nil
}

func (r *memProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) ListLowStock(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.LowStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return &domain.NotFoundError{Resource: "product", ID: id}
	}
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) HasSaleReferences(_ context.Context, id string) (bool, error) {
	return r.refs[id], nil
}

type memLogRepo struct {
	entries []*entity.InventoryAdjustment
}

func (r *memLogRepo) Create(_ context.Context, adj *entity.InventoryAdjustment) error {
	cp := *adj
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *memLogRepo) List(_ context.Context, _ repository.AdjustmentFilter) ([]*entity.InventoryAdjustment, error) {
	return r.entries, nil
}

type memTxRunner struct {
	products *memProductRepo
	logs     *memLogRepo
}

func (tx *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	return fn(tx.products, tx.logs)
}

const testProductID = "00000000-0000-0000-0000-000000000001"

func buildTestApp(t *testing.T) (*fiber.App, *memProductRepo) {
	t.Helper()
	repo := newMemProductRepo()
	logs := &memLogRepo{}
	adjuster := inventory.NewAdjuster(&memTxRunner{products: repo, logs: logs}, logs, false)

	app := fiber.New()
	api := app.Group("/api")

	productHandler := apphttp.NewProductHandler(catalog.NewProductUseCase(repo))
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:code", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Delete)

	inventoryHandler := apphttp.NewInventoryHandler(adjuster)
	api.Post("/inventory/adjustments", inventoryHandler.AdjustStock)
	api.Get("/inventory/adjustments", inventoryHandler.ListAdjustments)
	api.Get("/inventory/low-stock", productHandler.ListLowStock)

	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dest), "cuerpo: %s", raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProductAPI_CrearYConsultar(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{
		"name":    "Leche entera 1L",
		"barcode": "7501031311309",
		"price":   "1.25",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/products/barcode/7501031311309", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProductAPI_NoEncontrado(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products/"+testProductID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestProductAPI_ValidacionDevuelve400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{"price": "1.00"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestProductAPI_EliminarConVentasDevuelve409(t *testing.T) {
	app, repo := buildTestApp(t)
	repo.products[testProductID] = &entity.Product{ID: testProductID, Name: "Pan", Price: decimal.RequireFromString("0.50")}
	repo.refs[testProductID] = true

	resp := doJSON(t, app, http.MethodDelete, "/api/products/"+testProductID, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "CONFLICT", body.Code)
}

func TestInventoryAPI_AjusteYHistorial(t *testing.T) {
	app, repo := buildTestApp(t)
	repo.products[testProductID] = &entity.Product{ID: testProductID, Name: "Café", Price: decimal.RequireFromString("12.50"), Quantity: 10}

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", fiber.Map{
		"product_id": testProductID,
		"delta":      -4,
		"note":       "merma",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		NewQuantity int64 `json:"new_quantity"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, int64(6), out.NewQuantity)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/adjustments?product_id="+testProductID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history []struct {
		Delta  int64  `json:"delta"`
		Reason string `json:"reason"`
	}
	decodeBody(t, resp, &history)
	require.Len(t, history, 1)
	assert.Equal(t, int64(-4), history[0].Delta)
	assert.Equal(t, "manual", history[0].Reason)
}

func TestInventoryAPI_StockInsuficienteDevuelve409ConDetalle(t *testing.T) {
	app, repo := buildTestApp(t)
	repo.products[testProductID] = &entity.Product{ID: testProductID, Name: "Café", Price: decimal.RequireFromString("12.50"), Quantity: 2}

	resp := doJSON(t, app, http.MethodPost, "/api/inventory/adjustments", fiber.Map{
		"product_id": testProductID,
		"delta":      -5,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body struct {
		Code      string `json:"code"`
		ProductID string `json:"product_id"`
		Requested int64  `json:"requested"`
		Available int64  `json:"available"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Equal(t, testProductID, body.ProductID)
	assert.Equal(t, int64(5), body.Requested)
	assert.Equal(t, int64(2), body.Available)
}

func TestInventoryAPI_LowStock(t *testing.T) {
	app, repo := buildTestApp(t)
	repo.products["a"] = &entity.Product{ID: "a", Name: "bajo", Price: decimal.RequireFromString("1"), Quantity: 1, MinQuantity: 5}
	repo.products["b"] = &entity.Product{ID: "b", Name: "sobrado", Price: decimal.RequireFromString("1"), Quantity: 99, MinQuantity: 5}

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/low-stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []struct {
		ID       string `json:"id"`
		LowStock bool   `json:"low_stock"`
	}
	decodeBody(t, resp, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
	assert.True(t, out[0].LowStock)
}
