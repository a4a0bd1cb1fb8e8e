package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/domain"
)

func TestMemoryOrderCache(t *testing.T) {
	c := NewMemoryOrderCache()
	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("o1", domain.PlacedOrder{ID: "o1"})
	o, ok := c.Get("o1")
	require.True(t, ok)
	assert.Equal(t, "o1", o.ID)
}

func TestBoundedOrderCacheEvictsOldest(t *testing.T) {
	c := NewBoundedOrderCache(2)

	c.Set("o1", domain.PlacedOrder{ID: "o1"})
	c.Set("o2", domain.PlacedOrder{ID: "o2"})
	c.Set("o1", domain.PlacedOrder{ID: "o1", OrderDraft: domain.OrderDraft{Address: "new"}})
	c.Set("o3", domain.PlacedOrder{ID: "o3"})

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("o1")
	assert.False(t, ok, "o1 was cached first and must be evicted")
	_, ok = c.Get("o2")
	assert.True(t, ok)
	_, ok = c.Get("o3")
	assert.True(t, ok)
}

func TestUnboundedOrderCache(t *testing.T) {
	c := NewMemoryOrderCache()
	for i := 0; i < 100; i++ {
		c.Set(fmt.Sprintf("o%d", i), domain.PlacedOrder{})
	}
	assert.Equal(t, 100, c.Len())
}

func TestMemoryProductCatalog(t *testing.T) {
	a := &domain.Product{ID: "a", Title: "A"}
	b := &domain.Product{ID: "b", Title: "B"}
	c := NewMemoryProductCatalog([]*domain.Product{b, a})
	ctx := context.Background()

	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, domain.ProductIDs(list))

	list[0].Title = "mutated"
	got, err := c.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "B", got.Title)

	_, err = c.Get(ctx, "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	c.Replace([]*domain.Product{a})
	_, err = c.Get(ctx, "b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func BenchmarkCacheGet(b *testing.B) {
	c := NewMemoryOrderCache()
	for i := 0; i < 10000; i++ {
		c.Set(fmt.Sprintf("order-%d", i), domain.PlacedOrder{ID: fmt.Sprintf("order-%d", i)})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Get(fmt.Sprintf("order-%d", i%10000))
	}
}
