package cache

import (
	"sync"

	"github.com/example/storefront/internal/domain"
)

// MemoryOrderCache держит принятые заказы в памяти. При заданной ёмкости
// вытесняются заказы, попавшие в кэш раньше всех.
type MemoryOrderCache struct {
	mu       sync.RWMutex
	capacity int
	store    map[string]domain.PlacedOrder
	order    []string
}

// NewMemoryOrderCache создаёт кэш без ограничения размера.
func NewMemoryOrderCache() *MemoryOrderCache {
	return NewBoundedOrderCache(0)
}

// NewBoundedOrderCache создаёт кэш на capacity заказов; при 0 размер не ограничен.
func NewBoundedOrderCache(capacity int) *MemoryOrderCache {
	return &MemoryOrderCache{
		capacity: capacity,
		store:    make(map[string]domain.PlacedOrder),
	}
}

func (c *MemoryOrderCache) Get(id string) (domain.PlacedOrder, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.store[id]
	return o, ok
}

// Set добавляет или обновляет заказ. Обновление не продлевает жизнь записи.
func (c *MemoryOrderCache) Set(id string, o domain.PlacedOrder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.store[id]; !ok {
		c.order = append(c.order, id)
	}
	c.store[id] = o
	for c.capacity > 0 && len(c.order) > c.capacity {
		delete(c.store, c.order[0])
		c.order = c.order[1:]
	}
}

func (c *MemoryOrderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

var _ domain.OrderCache = (*MemoryOrderCache)(nil)
