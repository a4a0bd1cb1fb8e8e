package terminal

import (
	"github.com/shopspring/decimal"

	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/state"
)

// Basket показывает товары корзины с итогом.
type Basket struct {
	view  *View
	items []*domain.Product
	total decimal.Decimal
}

func NewBasket(v *View) *Basket {
	return &Basket{view: v, total: decimal.Zero}
}

func (b *Basket) Bind(bus *state.Bus) {
	bus.On(domain.EventCartChanged, func(e events.Event[domain.Payload]) error {
		c, ok := e.Payload.(domain.CartChanged)
		if !ok {
			return unexpected(e)
		}
		b.items = c.Items
		b.total = domain.CartTotal(c.Items)
		return nil
	})
	bus.On(domain.EventBasketOpen, func(events.Event[domain.Payload]) error {
		b.Render()
		return nil
	})
}

func (b *Basket) Render() {
	if len(b.items) == 0 {
		b.view.Println("Корзина пуста")
	}
	for i, it := range b.items {
		b.view.Printf("%d. %s: %s\n", i+1, it.Title, b.view.Price(it))
	}
	b.view.Printf("Итого: %s\n", b.view.Amount(b.total))
	if !b.CanOrder() {
		b.view.Println("(оформление недоступно)")
	}
}

// CanOrder сообщает, можно ли оформить заказ: нулевая сумма не оформляется.
func (b *Basket) CanOrder() bool {
	return !b.total.IsZero()
}

// Item возвращает товар корзины по номеру, начиная с 1.
func (b *Basket) Item(n int) (*domain.Product, bool) {
	if n < 1 || n > len(b.items) {
		return nil, false
	}
	return b.items[n-1], true
}
