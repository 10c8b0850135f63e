package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-jewels/storefront-go/internal/domain/product"
	"github.com/velora-jewels/storefront-go/internal/gateway"
)

func testGateway(t *testing.T, handler http.Handler) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := gateway.New(gateway.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestProductsClient_ListSendsQueryParams(t *testing.T) {
	var got url.Values
	client := NewProductsClient(testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`[]`))
	})))

	min := decimal.RequireFromString("100")
	inStock := true
	_, err := client.List(context.Background(), product.ListQuery{
		CategoryID: "1",
		SearchTerm: "ring",
		MinPrice:   &min,
		InStock:    &inStock,
		SortBy:     "price-low",
		Page:       2,
		Limit:      12,
	})
	require.NoError(t, err)

	assert.Equal(t, "1", got.Get("categoryId"))
	assert.Equal(t, "ring", got.Get("search"))
	assert.Equal(t, "100", got.Get("minPrice"))
	assert.Equal(t, "true", got.Get("inStock"))
	assert.Equal(t, "price-low", got.Get("sortBy"))
	assert.Equal(t, "2", got.Get("page"))
	assert.Equal(t, "12", got.Get("limit"))
	assert.Empty(t, got.Get("maxPrice"), "unset filters are omitted")
}

func TestProductsClient_ListNormalizesBothShapes(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantTotal int
		wantPages int
		wantFirst string
	}{
		{
			name:      "bare array",
			body:      `[{"_id":"1","name":"Ring","price":"2500"}]`,
			wantTotal: 1,
			wantPages: 1,
			wantFirst: "1",
		},
		{
			name:      "wrapped envelope",
			body:      `{"products":[{"_id":"2","name":"Band","price":"850"}],"total":25,"page":1,"totalPages":3}`,
			wantTotal: 25,
			wantPages: 3,
			wantFirst: "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewProductsClient(testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.body))
			})))

			res, err := client.List(context.Background(), product.ListQuery{})
			require.NoError(t, err)

			require.Len(t, res.Products, 1)
			assert.Equal(t, tt.wantFirst, res.Products[0].ID)
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Equal(t, tt.wantPages, res.TotalPages)
		})
	}
}

func TestProductsClient_GetByID(t *testing.T) {
	client := NewProductsClient(testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/1", r.URL.Path)
		w.Write([]byte(`{"_id":"1","name":"Elegant Diamond Solitaire Ring","price":"2500","discount":"10"}`))
	})))

	p, err := client.GetByID(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "Elegant Diamond Solitaire Ring", p.Name)
	assert.True(t, decimal.RequireFromString("2250").Equal(p.EffectivePrice()))
}

func TestProductsClient_GetByIDNotFound(t *testing.T) {
	client := NewProductsClient(testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Product not found"}`))
	})))

	_, err := client.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, product.ErrNotFound)
}

func TestProductsClient_DeleteNotFound(t *testing.T) {
	client := NewProductsClient(testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})))

	err := client.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, product.ErrNotFound)
}
