package cache

import (
	"context"
	"sync"

	"github.com/example/storefront/internal/domain"
)

// MemoryProductCatalog хранит каталог в памяти, сохраняя порядок товаров.
type MemoryProductCatalog struct {
	mu    sync.RWMutex
	items []*domain.Product
	byID  map[string]*domain.Product
}

func NewMemoryProductCatalog(items []*domain.Product) *MemoryProductCatalog {
	c := &MemoryProductCatalog{}
	c.Replace(items)
	return c
}

// Replace целиком заменяет содержимое каталога.
func (c *MemoryProductCatalog) Replace(items []*domain.Product) {
	byID := make(map[string]*domain.Product, len(items))
	for _, p := range items {
		byID[p.ID] = p
	}
	c.mu.Lock()
	c.items = append([]*domain.Product(nil), items...)
	c.byID = byID
	c.mu.Unlock()
}

func (c *MemoryProductCatalog) List(ctx context.Context) ([]*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*domain.Product, 0, len(c.items))
	for _, p := range c.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (c *MemoryProductCatalog) Get(ctx context.Context, id string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

var _ domain.ProductCatalog = (*MemoryProductCatalog)(nil)
