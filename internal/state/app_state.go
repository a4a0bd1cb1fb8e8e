package state

import (
	"fmt"

	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/events"
)

// Bus: шина витрины с закрытым набором полезных нагрузок.
type Bus = events.Bus[domain.Payload]

// Data хранит данные состояния витрины.
type Data struct {
	Catalog []*domain.Product
	Cart    []*domain.Product
	Preview string
	Order   domain.OrderDraft
	Errors  domain.ValidationErrors
}

// AppState владеет каталогом, корзиной, черновиком заказа и ошибками
// валидации. Все изменения идут через его методы.
type AppState struct {
	Model[Data, domain.Payload]

	// ordering: заказ открыт через StartOrder и ещё не сброшен.
	ordering bool
}

// New создаёт состояние из частично заполненных данных; незаданный заказ
// получает значения по умолчанию.
func New(bus *Bus, initial Data) *AppState {
	if isBlankDraft(initial.Order) {
		initial.Order = domain.NewOrderDraft()
	}
	if initial.Order.Items == nil {
		initial.Order.Items = []string{}
	}
	if initial.Errors == nil {
		initial.Errors = domain.ValidationErrors{}
	}
	initial.Catalog = append([]*domain.Product(nil), initial.Catalog...)
	initial.Cart = append([]*domain.Product(nil), initial.Cart...)

	s := &AppState{Model: NewModel(initial, bus)}
	s.Listen(events.Exact(domain.EventCartChanged), s.syncOrder)
	return s
}

func isBlankDraft(o domain.OrderDraft) bool {
	return o.Payment == "" && o.Address == "" && o.Email == "" && o.Phone == "" &&
		o.Total.IsZero() && len(o.Items) == 0
}

// syncOrder держит сумму заказа равной сумме цен корзины, а у открытого
// заказа ещё и список товаров.
func (s *AppState) syncOrder(events.Event[domain.Payload]) error {
	s.data.Order.Total = domain.CartTotal(s.data.Cart)
	if s.ordering {
		s.data.Order.Items = domain.ProductIDs(s.data.Cart)
	}
	return nil
}

// SetCatalog целиком заменяет каталог.
func (s *AppState) SetCatalog(items []*domain.Product) {
	s.data.Catalog = append([]*domain.Product(nil), items...)
	s.EmitChange(domain.EventCatalogChanged, domain.CatalogChanged{Catalog: s.Catalog()})
}

// SetPreview запоминает товар, открытый для просмотра.
func (s *AppState) SetPreview(p *domain.Product) {
	s.data.Preview = ""
	if p != nil {
		s.data.Preview = p.ID
	}
	s.EmitChange(domain.EventPreviewChanged, domain.PreviewChanged{Product: p})
}

// AddToCart добавляет товар, если его ещё нет в корзине. Сравнение по ссылке.
func (s *AppState) AddToCart(p *domain.Product) bool {
	if p == nil || s.InCart(p) {
		return false
	}
	s.data.Cart = append(s.data.Cart, p)
	s.announceCart()
	return true
}

// RemoveFromCart убирает товар и всегда объявляет текущую корзину,
// даже если товара в ней не было.
func (s *AppState) RemoveFromCart(p *domain.Product) {
	kept := make([]*domain.Product, 0, len(s.data.Cart))
	for _, it := range s.data.Cart {
		if it != p {
			kept = append(kept, it)
		}
	}
	s.data.Cart = kept
	s.announceCart()
}

// ClearCart очищает корзину.
func (s *AppState) ClearCart() {
	s.data.Cart = nil
	s.announceCart()
}

func (s *AppState) announceCart() {
	s.EmitChange(domain.EventCartChanged, domain.CartChanged{Items: s.Cart()})
	s.EmitChange(domain.EventCounterChanged, domain.CounterChanged{Items: s.Cart()})
}

// ClearOrder сбрасывает черновик заказа к значениям по умолчанию. Корзину не трогает.
func (s *AppState) ClearOrder() {
	s.data.Order = domain.NewOrderDraft()
	s.ordering = false
}

// StartOrder переносит идентификаторы товаров корзины в заказ. До ClearOrder
// список товаров следует за корзиной.
func (s *AppState) StartOrder() {
	s.data.Order.Items = domain.ProductIDs(s.data.Cart)
	s.ordering = true
}

// SetDeliveryField записывает оплату или адрес и перепроверяет шаг доставки.
// delivery:ready публикуется только если проверка прошла.
func (s *AppState) SetDeliveryField(field domain.OrderField, value string) error {
	if !field.IsDelivery() {
		return fmt.Errorf("%w: %q is not a delivery field", domain.ErrUnknownField, field)
	}
	if err := s.data.Order.SetField(field, value); err != nil {
		return err
	}
	if s.validate(domain.ValidateDelivery) {
		s.EmitChange(domain.EventDeliveryReady, domain.DeliveryReady{Order: s.Order()})
	}
	return nil
}

// SetContactField записывает телефон или email и перепроверяет шаг контактов.
func (s *AppState) SetContactField(field domain.OrderField, value string) error {
	if !field.IsContact() {
		return fmt.Errorf("%w: %q is not a contact field", domain.ErrUnknownField, field)
	}
	if err := s.data.Order.SetField(field, value); err != nil {
		return err
	}
	if s.validate(domain.ValidateContacts) {
		s.EmitChange(domain.EventContactReady, domain.ContactReady{Order: s.Order()})
	}
	return nil
}

// validate целиком заменяет ошибки результатом одного правила, так что
// правила не складываются: вызов одного стирает ошибки другого.
func (s *AppState) validate(rule func(domain.OrderDraft) domain.ValidationErrors) bool {
	s.data.Errors = rule(s.data.Order)
	s.EmitChange(domain.EventValidationChanged, domain.ValidationChanged{Errors: s.Errors()})
	return s.data.Errors.Valid()
}

// Catalog возвращает копию каталога.
func (s *AppState) Catalog() []*domain.Product {
	return append([]*domain.Product(nil), s.data.Catalog...)
}

// Cart возвращает копию корзины в порядке добавления.
func (s *AppState) Cart() []*domain.Product {
	return append([]*domain.Product{}, s.data.Cart...)
}

// InCart проверяет наличие именно этого товара в корзине.
func (s *AppState) InCart(p *domain.Product) bool {
	for _, it := range s.data.Cart {
		if it == p {
			return true
		}
	}
	return false
}

// ProductByID ищет товар каталога.
func (s *AppState) ProductByID(id string) (*domain.Product, bool) {
	for _, p := range s.data.Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Preview возвращает идентификатор просматриваемого товара или "".
func (s *AppState) Preview() string {
	return s.data.Preview
}

// Order возвращает копию черновика заказа.
func (s *AppState) Order() domain.OrderDraft {
	return s.data.Order.Clone()
}

// Errors возвращает копию текущих ошибок валидации.
func (s *AppState) Errors() domain.ValidationErrors {
	return s.data.Errors.Clone()
}
