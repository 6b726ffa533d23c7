package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"api_vendas/internal/auth"
	"api_vendas/internal/customers"
	"api_vendas/internal/products"
	"api_vendas/internal/sales"
	"api_vendas/internal/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)

	mem := storage.NewMemoryDB()
	customersLocal := customers.NewLocalStorage(mem)
	productsLocal := products.NewLocalStorage(mem)
	salesLocal := sales.NewLocalStorage(mem, productsLocal, customersLocal)
	usersLocal := auth.NewLocalStorage(mem)
	txManager := storage.NewMemoryTxManager(mem)

	router := gin.New()
	InitRoutes(router, logger, Services{
		Sales:     sales.NewService(salesLocal, txManager, logger, false),
		Products:  products.NewService(productsLocal, logger),
		Customers: customers.NewService(customersLocal, logger),
		Auth:      auth.NewService(usersLocal, logger, "test-secret", time.Hour),
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]any{
		"username": "vendedor",
		"email":    "vendedor@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// TestSalesHappyPath_FullFlow walks the whole ledger flow: register, create
// customer and product, create a sale, verify stock movement, delete the
// sale, verify stock restoration.
func TestSalesHappyPath_FullFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	// customer
	w := doJSON(t, router, http.MethodPost, "/customers", token, map[string]any{
		"name":  "Maria Silva",
		"email": "maria@example.com",
		"phone": "11 99999-0000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var customer customers.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))

	// product: stock 10, price 5.00
	w = doJSON(t, router, http.MethodPost, "/products", token, map[string]any{
		"name":  "Teclado",
		"price": "5.00",
		"stock": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var product products.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))

	var saleID string

	t.Run("POST_CreateSale", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/sales", token, map[string]any{
			"customer_id": customer.ID,
			"produtos": []map[string]any{
				{"produto_id": product.ID, "quantidade": 3, "preco_unitario": "5.00"},
			},
		})
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created sales.SaleDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, customer.ID, created.CustomerID)
		assert.Equal(t, "Maria Silva", created.CustomerName)
		assert.True(t, created.Total.Equal(decimal.RequireFromString("15.00")),
			"expected total 15.00, got %s", created.Total)
		require.Len(t, created.Produtos, 1)
		assert.Equal(t, "Teclado", created.Produtos[0].ProdutoNome)
		assert.True(t, created.Produtos[0].Subtotal.Equal(decimal.RequireFromString("15.00")))

		saleID = created.ID
	})

	if saleID == "" {
		t.Fatal("sale ID was not generated in POST_CreateSale step")
	}

	t.Run("StockDecremented", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/products/"+product.ID, token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var p products.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, 7, p.Stock)
	})

	t.Run("GET_ListSales", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/sales", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var list []sales.SaleSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, saleID, list[0].ID)
		assert.Equal(t, "Maria Silva", list[0].CustomerName)
	})

	t.Run("GET_SaleDetail", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/sales/"+saleID, token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var detail sales.SaleDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		assert.Equal(t, "maria@example.com", detail.CustomerEmail)
		require.Len(t, detail.Produtos, 1)
		assert.Equal(t, 3, detail.Produtos[0].Quantidade)
	})

	t.Run("DELETE_RestoresStock", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/sales/"+saleID, token, nil)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, router, http.MethodGet, "/products/"+product.ID, token, nil)
		var p products.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, 10, p.Stock)

		w = doJSON(t, router, http.MethodGet, "/sales/"+saleID, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, router, http.MethodDelete, "/sales/"+saleID, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateSale_BadRequests(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/customers", token, map[string]any{
		"name": "Maria", "email": "maria@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var customer customers.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))

	t.Run("empty produtos", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/sales", token, map[string]any{
			"customer_id": customer.ID,
			"produtos":    []map[string]any{},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/sales", token, map[string]any{
			"customer_id": customer.ID,
			"produtos": []map[string]any{
				{"produto_id": "no-such-product", "quantidade": 1, "preco_unitario": "5.00"},
			},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown customer", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/sales", token, map[string]any{
			"customer_id": "no-such-customer",
			"produtos": []map[string]any{
				{"produto_id": "whatever", "quantidade": 1, "preco_unitario": "5.00"},
			},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSalesEndpoints_RequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/sales"},
		{http.MethodPost, "/sales"},
		{http.MethodGet, "/products"},
		{http.MethodGet, "/customers"},
	} {
		w := doJSON(t, router, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code,
			fmt.Sprintf("%s %s should require a token", tc.method, tc.path))
	}
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	t.Run("verify", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/auth/verify", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/auth/verify", "garbage", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("users requires admin", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/auth/users", token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin can list users", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]any{
			"username": "chefe",
			"email":    "chefe@example.com",
			"password": "secret123",
			"role":     "admin",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		w = doJSON(t, router, http.MethodGet, "/auth/users", resp.Token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("login wrong password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]any{
			"email":    "vendedor@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
