package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/agri-storefront/internal/cart/domain"
	"github.com/ridloal/agri-storefront/internal/cart/service"
	"github.com/ridloal/agri-storefront/internal/cart/service/mocks"
	catalogRepo "github.com/ridloal/agri-storefront/internal/catalog/repository"
	catalogService "github.com/ridloal/agri-storefront/internal/catalog/service"
	"github.com/ridloal/agri-storefront/internal/session"
)

const cookieName = "agri_session"

func newRouter(t *testing.T, cs service.CartService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(session.Middleware(session.NewTokenIssuer("test-secret", time.Hour), session.CookieConfig{Name: cookieName}))
	NewCartHandler(cs).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func newCartService(t *testing.T) service.CartService {
	t.Helper()
	cat, err := catalogRepo.LoadCatalogFile("", "USD")
	require.NoError(t, err)
	catalog := catalogService.NewCatalogService(catalogRepo.NewMemoryProductRepository(cat.Products))
	return service.NewCartService(session.NewRegistry(cat.Currency, time.Hour), catalog)
}

// shopper replays the session cookie across requests like a browser would.
type shopper struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func (s *shopper) do(method, path, body string) (*httptest.ResponseRecorder, CartDTO) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			s.cookie = c
		}
	}

	var dto CartDTO
	if w.Code == http.StatusOK {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &dto))
	}
	return w, dto
}

func TestCartHandler_Flow(t *testing.T) {
	router := newRouter(t, newCartService(t))
	alice := &shopper{t: t, router: router}

	w, cart := alice.do(http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Items)
	assert.Equal(t, "$0", cart.Total)

	_, cart = alice.do(http.MethodPost, "/api/v1/cart/items", `{"product_id": 1}`)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, "$299", cart.Items[0].DisplayPrice)

	_, cart = alice.do(http.MethodPost, "/api/v1/cart/items", `{"product_id": 1}`)
	_, cart = alice.do(http.MethodPost, "/api/v1/cart/items", `{"product_id": 2}`)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "598.00", cart.Items[0].LineTotal)
	assert.Equal(t, "$1097", cart.Total)
	assert.Equal(t, "1097.00", cart.Amount)
	assert.Equal(t, 3, cart.Units)

	_, cart = alice.do(http.MethodDelete, "/api/v1/cart/items/1", "")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].ProductID)

	for _, path := range []string{"/api/v1/cart/items/1", "/api/v1/cart/items/0", "/api/v1/cart/items/-9"} {
		w, cart = alice.do(http.MethodDelete, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Len(t, cart.Items, 1, path)
		assert.Equal(t, "$499", cart.Total, path)
	}

	bob := &shopper{t: t, router: router}
	_, cart = bob.do(http.MethodGet, "/api/v1/cart", "")
	assert.Empty(t, cart.Items, "carts are per session")
}

func TestCartHandler_AddItemErrors(t *testing.T) {
	router := newRouter(t, newCartService(t))
	s := &shopper{t: t, router: router}

	tests := []struct {
		name string
		body string
		want int
	}{
		{"Malformed json", `{"product_id":`, http.StatusBadRequest},
		{"Missing product id", `{}`, http.StatusBadRequest},
		{"Negative product id", `{"product_id": -3}`, http.StatusBadRequest},
		{"Unknown product", `{"product_id": 404}`, http.StatusNotFound},
		{"Related product", `{"product_id": 101}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := s.do(http.MethodPost, "/api/v1/cart/items", tt.body)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCartHandler_ServiceFailure(t *testing.T) {
	cs := new(mocks.MockCartService)
	router := newRouter(t, cs)
	cs.On("AddToCart", mock.Anything, mock.AnythingOfType("string"), 1).
		Return(domain.Snapshot{}, errors.New("catalog unavailable")).Once()

	s := &shopper{t: t, router: router}
	w, _ := s.do(http.MethodPost, "/api/v1/cart/items", `{"product_id": 1}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	cs.AssertExpectations(t)
}

func TestCartHandler_RemoveItemInvalidID(t *testing.T) {
	router := newRouter(t, newCartService(t))
	s := &shopper{t: t, router: router}

	w, _ := s.do(http.MethodDelete, "/api/v1/cart/items/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
