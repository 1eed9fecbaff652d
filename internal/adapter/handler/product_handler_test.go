package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lainecomfort/storefront/internal/core/domain"
	"github.com/lainecomfort/storefront/internal/core/service"
)

const testOrigin = "http://localhost:4200"

// Mock ProductRepository
type mockProductRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{items: make(map[int64]domain.Product)}
}

func (m *mockProductRepo) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	product.ID = m.nextID
	m.items[product.ID] = product
	return product, nil
}

func (m *mockProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	products := make([]domain.Product, 0, len(m.items))
	for _, p := range m.items {
		products = append(products, p)
	}
	return products, nil
}

func (m *mockProductRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func newTestProductServer() *ProductServer {
	return NewProductServer(service.NewProductService(newMockProductRepo()), testOrigin)
}

func postProduct(t *testing.T, s *ProductServer, body string) ProductResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/product", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := s.Test(req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func TestCreateProduct(t *testing.T) {
	s := newTestProductServer()

	created := postProduct(t, s, `{"id":99,"name":"Chair","description":"A comfy chair","price":49.99,"category":"Furniture"}`)

	assert.Equal(t, int64(1), created.ID, "identity is store-assigned, not client-supplied")
	assert.Equal(t, "Chair", created.Name)
	assert.Equal(t, "A comfy chair", created.Description)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("49.99")))
	assert.Equal(t, "Furniture", created.Category)
}

func TestCreateProduct_ThenGetByID(t *testing.T) {
	s := newTestProductServer()

	created := postProduct(t, s, `{"name":"Chair","description":"A comfy chair","price":"49.99","category":"Furniture"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/product/1", nil)
	resp := s.Test(req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Description, got.Description)
	assert.True(t, created.Price.Equal(got.Price))
	assert.Equal(t, created.Category, got.Category)
}

func TestGetAllProducts(t *testing.T) {
	s := newTestProductServer()

	names := []string{"Chair", "Table", "Lamp"}
	for _, name := range names {
		postProduct(t, s, `{"name":"`+name+`","price":10}`)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	resp := s.Test(req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))
	require.Len(t, products, len(names))

	got := make([]string, 0, len(products))
	for _, p := range products {
		got = append(got, p.Name)
	}
	assert.ElementsMatch(t, names, got)
}

func TestGetProductByID_Missing(t *testing.T) {
	s := newTestProductServer()

	req := httptest.NewRequest(http.MethodGet, "/api/product/42", nil)
	resp := s.Test(req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var msg ErrorMessageResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Contains(t, msg.Message, "42")
}

func TestCreateProduct_InvalidBody(t *testing.T) {
	s := newTestProductServer()

	req := httptest.NewRequest(http.MethodPost, "/api/product", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := s.Test(req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductCORS_AllowsConfiguredOrigin(t *testing.T) {
	s := newTestProductServer()

	req := httptest.NewRequest(http.MethodGet, "/api/product", nil)
	req.Header.Set("Origin", testOrigin)
	resp := s.Test(req)
	defer resp.Body.Close()

	assert.Equal(t, testOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
}
