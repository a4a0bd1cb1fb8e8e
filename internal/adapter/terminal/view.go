// Package terminal отображает витрину в текстовом терминале. Виджеты только
// слушают события состояния и публикуют намерения пользователя; своих данных
// о заказе они не меняют.
package terminal

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/events"
)

// View печатает вывод виджетов с русским форматированием чисел.
type View struct {
	out io.Writer
	p   *message.Printer
}

func NewView(out io.Writer) *View {
	return &View{out: out, p: message.NewPrinter(language.Russian)}
}

func (v *View) Printf(format string, args ...any) {
	_, _ = v.p.Fprintf(v.out, format, args...)
}

func (v *View) Println(s string) {
	_, _ = fmt.Fprintln(v.out, s)
}

// Amount форматирует сумму в синапсах.
func (v *View) Amount(d decimal.Decimal) string {
	if d.IsInteger() {
		return v.p.Sprintf("%d синапсов", d.IntPart())
	}
	return v.p.Sprintf("%v синапсов", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}

// Price форматирует цену товара; товар без цены бесценен.
func (v *View) Price(p *domain.Product) string {
	if !p.ForSale() {
		return "Бесценно"
	}
	return v.Amount(p.Price.Decimal)
}

func unexpected(e events.Event[domain.Payload]) error {
	return fmt.Errorf("%s: unexpected payload %T", e.Name, e.Payload)
}
