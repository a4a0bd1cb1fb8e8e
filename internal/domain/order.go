package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod задаёт способ оплаты заказа.
type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "online"
	PaymentCash   PaymentMethod = "cash"
)

// ParsePayment разбирает способ оплаты; card означает оплату онлайн.
func ParsePayment(s string) (PaymentMethod, bool) {
	switch strings.ToLower(s) {
	case string(PaymentOnline), "card":
		return PaymentOnline, true
	case string(PaymentCash):
		return PaymentCash, true
	}
	return "", false
}

// OrderField называет поле заказа, которое заполняет пользователь.
type OrderField string

const (
	FieldPayment OrderField = "payment"
	FieldAddress OrderField = "address"
	FieldEmail   OrderField = "email"
	FieldPhone   OrderField = "phone"
)

// IsDelivery сообщает, относится ли поле к шагу доставки (оплата и адрес).
func (f OrderField) IsDelivery() bool {
	return f == FieldPayment || f == FieldAddress
}

// IsContact сообщает, относится ли поле к шагу контактов (телефон и email).
func (f OrderField) IsContact() bool {
	return f == FieldEmail || f == FieldPhone
}

// OrderDraft описывает заказ, который ещё собирается и не отправлен.
type OrderDraft struct {
	Payment PaymentMethod   `json:"payment"`
	Address string          `json:"address"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Total   decimal.Decimal `json:"total"`
	Items   []string        `json:"items"`
}

// NewOrderDraft возвращает пустой заказ со значениями по умолчанию.
func NewOrderDraft() OrderDraft {
	return OrderDraft{
		Payment: PaymentOnline,
		Total:   decimal.Zero,
		Items:   []string{},
	}
}

// Clone копирует заказ вместе со списком товаров.
func (o OrderDraft) Clone() OrderDraft {
	o.Items = append([]string{}, o.Items...)
	return o
}

// Field возвращает значение текстового поля заказа.
func (o OrderDraft) Field(f OrderField) (string, error) {
	switch f {
	case FieldPayment:
		return string(o.Payment), nil
	case FieldAddress:
		return o.Address, nil
	case FieldEmail:
		return o.Email, nil
	case FieldPhone:
		return o.Phone, nil
	}
	return "", unknownField(f)
}

// SetField записывает значение текстового поля заказа.
func (o *OrderDraft) SetField(f OrderField, value string) error {
	switch f {
	case FieldPayment:
		o.Payment = PaymentMethod(value)
	case FieldAddress:
		o.Address = value
	case FieldEmail:
		o.Email = value
	case FieldPhone:
		o.Phone = value
	default:
		return unknownField(f)
	}
	return nil
}

// OrderResult: ответ API на отправку заказа.
type OrderResult struct {
	ID    string              `json:"id"`
	Total decimal.NullDecimal `json:"total"`
}

// PlacedOrder описывает принятый бэкендом заказ.
type PlacedOrder struct {
	ID string `json:"id"`
	OrderDraft
	CreatedAt time.Time `json:"created_at"`
}
