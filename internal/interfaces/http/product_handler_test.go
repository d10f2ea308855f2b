package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventrack-api/internal/application/dto"
	"github.com/jhoicas/Inventrack-api/internal/application/usecase"
	"github.com/jhoicas/Inventrack-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Inventrack-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memProductRepo implementación en memoria del puerto de productos.
type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
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

func (r *memProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateStock(_ context.Context, id string, stock int64) error {
	if p, ok := r.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *memProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

// buildTestApp construye una app Fiber con las rutas de productos montadas
// sobre un repo en memoria.
func buildTestApp() (*fiber.App, *memProductRepo) {
	repo := newMemProductRepo()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC: usecase.NewProductUseCase(repo),
	})
	return app, repo
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeProduct(t *testing.T, resp *http.Response) dto.ProductResponse {
	t.Helper()
	var out dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: crear un producto válido → 201 y el producto queda persistido.
func TestProductHandler_CrearProducto(t *testing.T) {
	app, repo := buildTestApp()

	resp := postJSON(t, app, "/api/products", dto.CreateProductRequest{
		SKU:               "LAP-001",
		Name:              "Laptop Lenovo",
		Category:          "tecnología",
		Price:             decimal.NewFromInt(2500000),
		InitialStock:      10,
		LowStockThreshold: 3,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode,
		"crear producto válido debe retornar 201")

	out := decodeProduct(t, resp)
	assert.NotEmpty(t, out.ID, "el producto debe recibir un ID")
	assert.Equal(t, int64(10), out.Stock, "el stock inicial debe quedar fijado")
	assert.False(t, out.LowStock, "stock 10 con umbral 3 no está en alerta")

	stored, err := repo.GetBySKU(context.Background(), "LAP-001")
	require.NoError(t, err)
	require.NotNil(t, stored, "el producto debe existir en el repositorio")
}

// Caso 2: SKU duplicado → 409 DUPLICATE.
func TestProductHandler_SKUDuplicado_Retorna409(t *testing.T) {
	app, _ := buildTestApp()

	in := dto.CreateProductRequest{
		SKU: "LAP-001", Name: "Laptop", Price: decimal.NewFromInt(100),
	}
	resp1 := postJSON(t, app, "/api/products", in)
	resp1.Body.Close()
	require.Equal(t, http.StatusCreated, resp1.StatusCode)

	resp2 := postJSON(t, app, "/api/products", in)
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusConflict, resp2.StatusCode,
		"SKU repetido debe retornar 409")

	body, _ := io.ReadAll(resp2.Body)
	assert.Contains(t, string(body), "DUPLICATE",
		"la respuesta debe incluir el código DUPLICATE")
}

// Caso 3: cuerpo sin sku/name → 400 VALIDATION.
func TestProductHandler_SinSKU_Retorna400(t *testing.T) {
	app, _ := buildTestApp()

	resp := postJSON(t, app, "/api/products", dto.CreateProductRequest{
		Name: "Producto sin SKU",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

// Caso 4: GET de un ID inexistente → 404 NOT_FOUND.
func TestProductHandler_GetInexistente_Retorna404(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/products/no-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

// Caso 5: PUT no puede tocar el stock; solo los campos editables cambian.
func TestProductHandler_UpdateNoModificaStock(t *testing.T) {
	app, _ := buildTestApp()

	created := postJSON(t, app, "/api/products", dto.CreateProductRequest{
		SKU: "MOU-001", Name: "Mouse", Price: decimal.NewFromInt(50000),
		InitialStock: 7,
	})
	defer created.Body.Close()
	out := decodeProduct(t, created)

	nuevoNombre := "Mouse inalámbrico"
	body, err := json.Marshal(dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/products/"+out.ID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decodeProduct(t, resp)
	assert.Equal(t, "Mouse inalámbrico", updated.Name)
	assert.Equal(t, int64(7), updated.Stock,
		"actualizar un producto nunca debe alterar el stock")
}

// Caso 6: DELETE → 204 y el producto desaparece.
func TestProductHandler_Delete(t *testing.T) {
	app, repo := buildTestApp()

	created := postJSON(t, app, "/api/products", dto.CreateProductRequest{
		SKU: "TEC-001", Name: "Teclado", Price: decimal.NewFromInt(80000),
	})
	defer created.Body.Close()
	out := decodeProduct(t, created)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/"+out.ID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Nil(t, stored, "el producto no debe existir después del DELETE")
}
