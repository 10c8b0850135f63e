package rest

import (
	"net/http"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-jewels/storefront-go/internal/gateway"
)

type namedItem struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func TestNormalizeList_BareArray(t *testing.T) {
	raw := []byte(`[{"_id":"1","name":"Ring"},{"_id":"2","name":"Band"}]`)

	items, page, err := normalizeList[namedItem](raw, "products")
	require.NoError(t, err)

	assert.Len(t, items, 2)
	assert.Equal(t, "Ring", items[0].Name)
	assert.Equal(t, 2, page.total)
	assert.Equal(t, 1, page.page)
	assert.Equal(t, 1, page.totalPages)
}

func TestNormalizeList_WrappedEnvelope(t *testing.T) {
	raw := []byte(`{"products":[{"_id":"1","name":"Ring"}],"total":37,"page":2,"totalPages":4}`)

	items, page, err := normalizeList[namedItem](raw, "products")
	require.NoError(t, err)

	assert.Len(t, items, 1)
	assert.Equal(t, 37, page.total)
	assert.Equal(t, 2, page.page)
	assert.Equal(t, 4, page.totalPages)
}

func TestNormalizeList_EnvelopeIgnoresUnknownKeys(t *testing.T) {
	raw := []byte(`{"meta":{"elapsed":12},"orders":[{"_id":"o1"}],"total":1}`)

	items, page, err := normalizeList[namedItem](raw, "orders")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, page.total)
}

func TestNormalizeList_MissingKeyErrors(t *testing.T) {
	raw := []byte(`{"total":5,"page":1}`)

	_, _, err := normalizeList[namedItem](raw, "products")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products")
}

func TestNormalizeList_ScalarBodyErrors(t *testing.T) {
	_, _, err := normalizeList[namedItem]([]byte(`42`), "products")
	require.Error(t, err)
}

func TestNormalizeList_EmptyArrayHasZeroPages(t *testing.T) {
	items, page, err := normalizeList[namedItem]([]byte(`[]`), "products")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, page.total)
	assert.Equal(t, 0, page.totalPages)
}

func TestStatusIs(t *testing.T) {
	notFound := &gateway.APIError{StatusCode: http.StatusNotFound, Message: "gone"}

	assert.True(t, statusIs(notFound, http.StatusNotFound))
	assert.False(t, statusIs(notFound, http.StatusConflict))
	assert.True(t, statusIs(errors.Wrap(notFound, "get product"), http.StatusNotFound))
	assert.False(t, statusIs(errors.New("plain"), http.StatusNotFound))
}
