package terminal

import (
	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/state"
)

const (
	btnBuy    = "Купить"
	btnRemove = "Удалить из корзины"
	btnNoSale = "Недоступно"
)

// Preview показывает карточку выбранного товара.
type Preview struct {
	view    *View
	state   *state.AppState
	product *domain.Product
}

func NewPreview(v *View, s *state.AppState) *Preview {
	return &Preview{view: v, state: s}
}

func (p *Preview) Bind(bus *state.Bus) {
	bus.On(domain.EventPreviewChanged, func(e events.Event[domain.Payload]) error {
		c, ok := e.Payload.(domain.PreviewChanged)
		if !ok {
			return unexpected(e)
		}
		p.product = c.Product
		if p.product != nil {
			p.Render()
		}
		return nil
	})
}

func (p *Preview) Render() {
	it := p.product
	p.view.Printf("%s [%s]\n", it.Title, it.Category)
	if it.Description != "" {
		p.view.Println(it.Description)
	}
	p.view.Printf("%s  [%s]\n", p.view.Price(it), p.Button())
}

// Button возвращает надпись кнопки карточки для текущего состояния корзины.
func (p *Preview) Button() string {
	switch {
	case p.product == nil:
		return ""
	case p.state.InCart(p.product):
		return btnRemove
	case !p.product.ForSale():
		return btnNoSale
	}
	return btnBuy
}

func (p *Preview) Product() *domain.Product {
	return p.product
}
