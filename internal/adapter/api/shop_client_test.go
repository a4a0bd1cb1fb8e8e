package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/domain"
)

func newShop(t *testing.T, h http.HandlerFunc) *ShopClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewShopClient("https://cdn.test", srv.URL, srv.Client())
}

func TestProducts(t *testing.T) {
	c := newShop(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/product", r.URL.Path)
		_, _ = w.Write([]byte(`{"total":2,"items":[
			{"id":"a","title":"Бэкенд-антистресс","price":1000,"image":"/a.svg","category":"другое"},
			{"id":"b","title":"Мамка-таймер","price":null,"image":"/b.svg","category":"софт-скил"}
		]}`))
	})

	items, err := c.Products(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "https://cdn.test/a.svg", items[0].Image)
	assert.True(t, decimal.NewFromInt(1000).Equal(items[0].Price.Decimal))
	assert.False(t, items[1].ForSale())
}

func TestProductItem(t *testing.T) {
	c := newShop(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/a", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"a","title":"A","price":5,"image":"/a.svg"}`))
	})

	p, err := c.ProductItem(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, "a", p.ID)
	assert.Equal(t, "https://cdn.test/a.svg", p.Image)
}

func TestSendOrder(t *testing.T) {
	c := newShop(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cash", body["payment"])
		assert.Equal(t, float64(300), body["total"])
		assert.Equal(t, []any{"a", "b"}, body["items"])
		_, _ = w.Write([]byte(`{"id":"order-1","total":300}`))
	})

	order := domain.NewOrderDraft()
	order.Payment = domain.PaymentCash
	order.Total = decimal.NewFromInt(300)
	order.Items = []string{"a", "b"}
	res, err := c.SendOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, "order-1", res.ID)
	assert.True(t, decimal.NewFromInt(300).Equal(res.Total.Decimal))
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "error field", status: http.StatusBadRequest, body: `{"error":"Неверная сумма заказа"}`, wantMsg: "Неверная сумма заказа"},
		{name: "no body", status: http.StatusInternalServerError, body: ``, wantMsg: "Internal Server Error"},
		{name: "no error field", status: http.StatusNotFound, body: `{}`, wantMsg: "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newShop(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Products(context.Background())

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}
