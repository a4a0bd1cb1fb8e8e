package terminal

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/state"
)

const helpText = `Команды:
  list              каталог
  show N            карточка товара N
  buy N             купить товар N или убрать его из корзины
  add N             положить товар N в корзину
  remove N          убрать позицию N корзины
  basket            корзина
  order             оформить заказ
  pay online|cash   способ оплаты (card = online)
  address ТЕКСТ     адрес доставки
  next              перейти к контактам
  email ТЕКСТ       email
  phone ТЕКСТ       телефон
  submit            отправить заказ
  quit              выход`

// Console разбирает строки ввода в события-намерения.
type Console struct {
	bus    *state.Bus
	view   *View
	page   *Page
	basket *Basket
	forms  *Forms
	state  *state.AppState

	payment func(...domain.Payload)
	address func(...domain.Payload)
	email   func(...domain.Payload)
	phone   func(...domain.Payload)
}

func NewConsole(bus *state.Bus, s *state.AppState, v *View, page *Page, basket *Basket, forms *Forms) *Console {
	field := func(form string, f domain.OrderField) func(...domain.Payload) {
		return bus.Trigger(domain.FieldChangeEvent(form, f), domain.FieldChanged{Form: form, Field: f})
	}
	return &Console{
		bus:     bus,
		view:    v,
		page:    page,
		basket:  basket,
		forms:   forms,
		state:   s,
		payment: field(domain.FormOrder, domain.FieldPayment),
		address: field(domain.FormOrder, domain.FieldAddress),
		email:   field(domain.FormContacts, domain.FieldEmail),
		phone:   field(domain.FormContacts, domain.FieldPhone),
	}
}

// Run читает команды построчно и выполняет каждую в цикле loop.
// Возвращается по quit, концу ввода или отмене ctx.
func (c *Console) Run(ctx context.Context, loop *events.Loop, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		quit := false
		if err := loop.Do(ctx, func() { quit = c.Execute(line) }); err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return sc.Err()
}

// Execute выполняет одну команду. Возвращает true на quit.
func (c *Console) Execute(line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
	case "help":
		c.view.Println(helpText)
	case "quit", "exit":
		return true
	case "list":
		c.page.Render()
	case "show":
		if p, ok := c.catalogItem(arg); ok {
			c.bus.Emit(domain.EventPreviewSelect, domain.ProductIntent{Product: p})
		}
	case "buy":
		if p, ok := c.saleItem(arg); ok {
			c.bus.Emit(domain.EventCardToggle, domain.ProductIntent{Product: p})
		}
	case "add":
		if p, ok := c.saleItem(arg); ok {
			c.bus.Emit(domain.EventCardAdd, domain.ProductIntent{Product: p})
		}
	case "remove":
		if p, ok := c.basketItem(arg); ok {
			c.bus.Emit(domain.EventCardDelete, domain.ProductIntent{Product: p})
		}
	case "basket":
		c.bus.Emit(domain.EventBasketOpen, nil)
	case "order":
		if !c.basket.CanOrder() {
			c.view.Println("Оформление недоступно: корзина пуста")
			return false
		}
		c.bus.Emit(domain.EventOrderOpen, nil)
	case "pay":
		m, ok := domain.ParsePayment(arg)
		if !ok {
			c.view.Printf("Неизвестный способ оплаты %q, доступны online и cash\n", arg)
			return false
		}
		c.payment(domain.FieldChanged{Value: string(m)})
	case "address":
		c.address(domain.FieldChanged{Value: arg})
	case "next":
		// Правило контактов может взвести флаг формы доставки, черновик проверяется заново.
		if errs := domain.ValidateDelivery(c.state.Order()); !c.forms.DeliveryValid() || !errs.Valid() {
			c.view.Println("Заполните форму доставки")
			return false
		}
		c.bus.Emit(domain.EventOrderSubmit, nil)
	case "email":
		c.email(domain.FieldChanged{Value: arg})
	case "phone":
		c.phone(domain.FieldChanged{Value: arg})
	case "submit":
		o := c.state.Order()
		if !c.forms.ContactValid() || !domain.ValidateContacts(o).Valid() {
			c.view.Println("Заполните контакты")
			return false
		}
		if len(o.Items) == 0 {
			c.view.Println("Оформление недоступно: корзина пуста")
			return false
		}
		c.bus.Emit(domain.EventContactsSubmit, nil)
	default:
		c.view.Printf("Неизвестная команда %q, help для списка\n", cmd)
	}
	return false
}

func (c *Console) catalogItem(arg string) (*domain.Product, bool) {
	n, err := strconv.Atoi(arg)
	if err == nil {
		if p, ok := c.page.Product(n); ok {
			return p, true
		}
	}
	c.view.Printf("Нет товара с номером %q\n", arg)
	return nil, false
}

// saleItem работает как catalogItem, но товар без цены купить нельзя.
func (c *Console) saleItem(arg string) (*domain.Product, bool) {
	p, ok := c.catalogItem(arg)
	if ok && !p.ForSale() {
		c.view.Printf("%s не продаётся\n", p.Title)
		return nil, false
	}
	return p, ok
}

func (c *Console) basketItem(arg string) (*domain.Product, bool) {
	n, err := strconv.Atoi(arg)
	if err == nil {
		if p, ok := c.basket.Item(n); ok {
			return p, true
		}
	}
	c.view.Printf("Нет позиции корзины с номером %q\n", arg)
	return nil, false
}
