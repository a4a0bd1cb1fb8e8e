package terminal

import (
	"io"

	"github.com/example/storefront/internal/state"
)

// UI собирает все виджеты витрины, подписанные на одну шину.
type UI struct {
	View    *View
	Page    *Page
	Preview *Preview
	Basket  *Basket
	Forms   *Forms
	Success *Success
	Console *Console
}

// Mount создаёт виджеты и подписывает их на bus. Подписки делаются после
// создания состояния, так что сумма заказа уже пересчитана, когда виджеты
// получают cart:changed.
func Mount(out io.Writer, bus *state.Bus, s *state.AppState) *UI {
	v := NewView(out)
	ui := &UI{
		View:    v,
		Page:    NewPage(v),
		Preview: NewPreview(v, s),
		Basket:  NewBasket(v),
		Forms:   NewForms(v, s),
		Success: NewSuccess(v),
	}
	ui.Page.Bind(bus)
	ui.Preview.Bind(bus)
	ui.Basket.Bind(bus)
	ui.Forms.Bind(bus)
	ui.Success.Bind(bus)
	ui.Console = NewConsole(bus, s, v, ui.Page, ui.Basket, ui.Forms)
	return ui
}
