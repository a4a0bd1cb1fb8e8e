package terminal

import (
	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/state"
)

// Success сообщает результат оформления заказа и ошибки загрузки.
type Success struct {
	view *View
}

func NewSuccess(v *View) *Success {
	return &Success{view: v}
}

func (s *Success) Bind(bus *state.Bus) {
	bus.On(domain.EventOrderPlaced, func(e events.Event[domain.Payload]) error {
		c, ok := e.Payload.(domain.OrderPlaced)
		if !ok {
			return unexpected(e)
		}
		s.view.Println("Заказ оформлен")
		s.view.Printf("Списано %s\n", s.view.Amount(c.Result.Total.Decimal))
		return nil
	})
	bus.On(domain.EventOrderFailed, func(e events.Event[domain.Payload]) error {
		c, ok := e.Payload.(domain.OrderFailed)
		if !ok {
			return unexpected(e)
		}
		s.view.Printf("Не удалось оформить заказ: %v\n", c.Err)
		return nil
	})
	bus.On(domain.EventCatalogFailed, func(e events.Event[domain.Payload]) error {
		c, ok := e.Payload.(domain.CatalogFailed)
		if !ok {
			return unexpected(e)
		}
		s.view.Printf("Не удалось загрузить каталог: %v\n", c.Err)
		return nil
	})
}
