package domain

// Имена событий, которые публикует состояние витрины.
const (
	EventCatalogChanged    = "catalog:changed"
	EventPreviewChanged    = "preview:changed"
	EventCartChanged       = "cart:changed"
	EventCounterChanged    = "counter:changed"
	EventValidationChanged = "validation:changed"
	EventDeliveryReady     = "delivery:ready"
	EventContactReady      = "contact:ready"
)

// Имена событий-намерений от виджетов и результатов обращений к API.
const (
	EventPreviewSelect  = "preview:select"
	EventCardToggle     = "card:toggle"
	EventCardAdd        = "card:add"
	EventCardDelete     = "card:delete"
	EventBasketOpen     = "basket:open"
	EventOrderOpen      = "order:open"
	EventOrderSubmit    = "order:submit"
	EventContactsSubmit = "contacts:submit"
	EventOrderPlaced    = "order:placed"
	EventOrderFailed    = "order:failed"
	EventCatalogFailed  = "catalog:failed"
)

// Шаблоны событий редактирования полей форм.
const (
	PatternDeliveryFieldChange = `^order\..*:change`
	PatternContactFieldChange  = `^contacts\..*:change`
)

// Формы, чьи поля публикуют FieldChanged.
const (
	FormOrder    = "order"
	FormContacts = "contacts"
)

// FieldChangeEvent строит имя события вида "<form>.<field>:change".
func FieldChangeEvent(form string, field OrderField) string {
	return form + "." + string(field) + ":change"
}

// Payload закрывает набор данных, которые ходят по шине витрины.
type Payload interface {
	payload()
}

type CatalogChanged struct {
	Catalog []*Product
}

type PreviewChanged struct {
	Product *Product
}

type CartChanged struct {
	Items []*Product
}

type CounterChanged struct {
	Items []*Product
}

type ValidationChanged struct {
	Errors ValidationErrors
}

type DeliveryReady struct {
	Order OrderDraft
}

type ContactReady struct {
	Order OrderDraft
}

// ProductIntent: виджет просит что-то сделать с товаром.
type ProductIntent struct {
	Product *Product
}

// FieldChanged сообщает, что пользователь изменил поле формы.
type FieldChanged struct {
	Form  string
	Field OrderField
	Value string
}

// Merge дополняет пустые Form и Field значениями по умолчанию.
func (f FieldChanged) Merge(defaults Payload) Payload {
	d, ok := defaults.(FieldChanged)
	if !ok {
		return f
	}
	if f.Form == "" {
		f.Form = d.Form
	}
	if f.Field == "" {
		f.Field = d.Field
	}
	return f
}

type OrderPlaced struct {
	Result OrderResult
}

type OrderFailed struct {
	Err error
}

type CatalogFailed struct {
	Err error
}

func (CatalogChanged) payload()    {}
func (PreviewChanged) payload()    {}
func (CartChanged) payload()       {}
func (CounterChanged) payload()    {}
func (ValidationChanged) payload() {}
func (DeliveryReady) payload()     {}
func (ContactReady) payload()      {}
func (ProductIntent) payload()     {}
func (FieldChanged) payload()      {}
func (OrderPlaced) payload()       {}
func (OrderFailed) payload()       {}
func (CatalogFailed) payload()     {}
