package domain

import "strings"

const (
	MsgAddressRequired = "Необходимо указать адрес"
	MsgPaymentRequired = "Необходимо указать тип оплаты"
	MsgPhoneRequired   = "Необходимо указать телефон"
	MsgEmailRequired   = "Необходимо указать email"
)

// ValidationErrors хранит ошибки полей заказа; отсутствие ключа означает, что поле корректно.
type ValidationErrors map[OrderField]string

// Valid сообщает, что ошибок нет.
func (e ValidationErrors) Valid() bool {
	return len(e) == 0
}

// Join склеивает сообщения указанных полей через "; ", пропуская корректные.
func (e ValidationErrors) Join(fields ...OrderField) string {
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		if msg, ok := e[f]; ok && msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return strings.Join(msgs, "; ")
}

// Merge возвращает новый набор ошибок из обоих наборов.
func (e ValidationErrors) Merge(other ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, len(e)+len(other))
	for k, v := range e {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Clone копирует набор ошибок.
func (e ValidationErrors) Clone() ValidationErrors {
	return e.Merge(nil)
}

// ValidateDelivery проверяет шаг доставки: адрес и способ оплаты.
func ValidateDelivery(o OrderDraft) ValidationErrors {
	errs := ValidationErrors{}
	if o.Address == "" {
		errs[FieldAddress] = MsgAddressRequired
	}
	if o.Payment == "" {
		errs[FieldPayment] = MsgPaymentRequired
	}
	return errs
}

// ValidateContacts проверяет шаг контактов: телефон и email.
func ValidateContacts(o OrderDraft) ValidationErrors {
	errs := ValidationErrors{}
	if o.Phone == "" {
		errs[FieldPhone] = MsgPhoneRequired
	}
	if o.Email == "" {
		errs[FieldEmail] = MsgEmailRequired
	}
	return errs
}
