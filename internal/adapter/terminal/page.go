package terminal

import (
	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/state"
)

// Page показывает галерею каталога и счётчик корзины.
type Page struct {
	view    *View
	catalog []*domain.Product
	counter int
}

func NewPage(v *View) *Page {
	return &Page{view: v}
}

func (p *Page) Bind(bus *state.Bus) {
	bus.On(domain.EventCatalogChanged, func(e events.Event[domain.Payload]) error {
		c, ok := e.Payload.(domain.CatalogChanged)
		if !ok {
			return unexpected(e)
		}
		p.catalog = c.Catalog
		p.Render()
		return nil
	})
	bus.On(domain.EventCounterChanged, func(e events.Event[domain.Payload]) error {
		c, ok := e.Payload.(domain.CounterChanged)
		if !ok {
			return unexpected(e)
		}
		p.counter = len(c.Items)
		p.view.Printf("Корзина: %d\n", p.counter)
		return nil
	})
}

// Render печатает галерею с номерами, по которым к товарам обращается консоль.
func (p *Page) Render() {
	if len(p.catalog) == 0 {
		p.view.Println("Каталог пуст")
		return
	}
	for i, it := range p.catalog {
		p.view.Printf("%d. [%s] %s: %s\n", i+1, it.Category, it.Title, p.view.Price(it))
	}
	p.view.Printf("Корзина: %d\n", p.counter)
}

func (p *Page) Counter() int {
	return p.counter
}

// Product возвращает товар галереи по номеру, начиная с 1.
func (p *Page) Product(n int) (*domain.Product, bool) {
	if n < 1 || n > len(p.catalog) {
		return nil, false
	}
	return p.catalog[n-1], true
}
