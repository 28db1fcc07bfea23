package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/grocery-order-bot/internal/domain/entity"
	"github.com/yourusername/grocery-order-bot/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

type fakeStore struct {
	products  []entity.Product
	lastQuery ProductQuery
	orders    map[int64]entity.Order
	nextNo    int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{orders: make(map[int64]entity.Order), nextNo: 1042}
}

func (f *fakeStore) ListProducts(_ context.Context, q ProductQuery) ([]entity.Product, error) {
	f.lastQuery = q
	return f.products, nil
}

func (f *fakeStore) CreateOrder(_ context.Context, order entity.Order) (entity.Order, error) {
	order.ID = "a7c9e7c2-0000-0000-0000-000000000000"
	order.OrderNo = f.nextNo
	if order.Status == "" {
		order.Status = entity.StatusOrderReceived
	}
	f.orders[f.nextNo] = order
	f.nextNo++
	return order, nil
}

func (f *fakeStore) OrderByNo(_ context.Context, orderNo int64) (entity.Order, error) {
	order, ok := f.orders[orderNo]
	if !ok {
		return entity.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeStore) AdvanceStatus(_ context.Context, orderNo int64, status string) (entity.Order, error) {
	order, ok := f.orders[orderNo]
	if !ok {
		return entity.Order{}, ErrOrderNotFound
	}
	next := entity.StatusIndex(status)
	if next < 0 || next < entity.StatusIndex(order.Status) {
		return entity.Order{}, fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, order.Status, status)
	}
	order.Status = status
	f.orders[orderNo] = order
	return order, nil
}

func newTestRouter(store Datastore, apiKey string) *gin.Engine {
	r := gin.New()
	NewHandler(store, apiKey).Register(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListProductsParsesPostgrestFilters(t *testing.T) {
	store := newFakeStore()
	store.products = []entity.Product{{ID: 1, Name: "Coconut Chutney", Price: 40}}
	r := newTestRouter(store, "")

	w := do(t, r, http.MethodGet, "/products?name=ilike.%25chutney%25&price=lte.50&select=*", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "chutney", store.lastQuery.NameLike)
	assert.Equal(t, 50.0, store.lastQuery.PriceMax)

	var products []entity.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
}

func TestListProductsBadPriceFilter(t *testing.T) {
	r := newTestRouter(newFakeStore(), "")
	w := do(t, r, http.MethodGet, "/products?price=lte.cheap", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderWithRepresentation(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, "")

	order := entity.Order{
		UserID: "7",
		Items:  []entity.CartLine{{ProductID: 1, Name: "Idly Dosa Batter", Price: 60, Quantity: 2}},
	}
	w := do(t, r, http.MethodPost, "/orders", order, map[string]string{"Prefer": "return=representation"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created []entity.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created, 1)
	assert.Equal(t, int64(1042), created[0].OrderNo)
	assert.Equal(t, entity.StatusOrderReceived, created[0].Status)
	assert.Equal(t, 120.0, created[0].Total)
}

func TestCreateOrderWithoutRepresentation(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, "")

	order := entity.Order{
		UserID: "7",
		Items:  []entity.CartLine{{ProductID: 1, Price: 60, Quantity: 1}},
	}
	w := do(t, r, http.MethodPost, "/orders", order, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCreateOrderRejectsEmpty(t *testing.T) {
	r := newTestRouter(newFakeStore(), "")
	w := do(t, r, http.MethodPost, "/orders", entity.Order{UserID: "7"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrdersEchoesArray(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, "")

	do(t, r, http.MethodPost, "/orders", entity.Order{
		UserID: "7",
		Items:  []entity.CartLine{{ProductID: 1, Price: 60, Quantity: 1}},
	}, nil)

	w := do(t, r, http.MethodGet, "/orders?order_no=eq.1042&select=*", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []entity.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)

	// unknown order comes back as an empty array, not an error
	w = do(t, r, http.MethodGet, "/orders?order_no=eq.9999", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Empty(t, orders)
}

func TestUpdateOrderStatus(t *testing.T) {
	store := newFakeStore()
	r := newTestRouter(store, "")

	do(t, r, http.MethodPost, "/orders", entity.Order{
		UserID: "7",
		Items:  []entity.CartLine{{ProductID: 1, Price: 60, Quantity: 1}},
	}, nil)

	w := do(t, r, http.MethodPatch, "/orders?order_no=eq.1042",
		map[string]string{"status": entity.StatusInTransit},
		map[string]string{"Prefer": "return=representation"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated []entity.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Len(t, updated, 1)
	assert.Equal(t, entity.StatusInTransit, updated[0].Status)

	// the lifecycle only moves forward
	w = do(t, r, http.MethodPatch, "/orders?order_no=eq.1042",
		map[string]string{"status": entity.StatusProcessing}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPatch, "/orders?order_no=eq.9999",
		map[string]string{"status": entity.StatusProcessing}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIKeyRequired(t *testing.T) {
	r := newTestRouter(newFakeStore(), "sekret")

	w := do(t, r, http.MethodGet, "/products", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, r, http.MethodGet, "/products", nil, map[string]string{"apikey": "sekret"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/products", nil, map[string]string{"Authorization": "Bearer sekret"})
	assert.Equal(t, http.StatusOK, w.Code)

	// health stays open
	w = do(t, r, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
