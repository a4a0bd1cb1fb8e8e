package terminal

import (
	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/state"
)

type step int

const (
	stepNone step = iota
	stepDelivery
	stepContacts
)

// Forms показывает ошибки форм доставки и контактов и решает, доступна ли кнопка «Далее».
type Forms struct {
	view  *View
	state *state.AppState
	step  step

	deliveryErrors string
	contactErrors  string
	deliveryValid  bool
	contactValid   bool
}

func NewForms(v *View, s *state.AppState) *Forms {
	return &Forms{view: v, state: s}
}

func (f *Forms) Bind(bus *state.Bus) {
	bus.On(domain.EventOrderOpen, func(events.Event[domain.Payload]) error {
		o := f.state.Order()
		f.step = stepDelivery
		f.deliveryValid = o.Address != ""
		f.view.Printf("Оплата: %s\nАдрес: %s\n", o.Payment, o.Address)
		return nil
	})
	bus.On(domain.EventOrderSubmit, func(events.Event[domain.Payload]) error {
		o := f.state.Order()
		f.step = stepContacts
		f.contactValid = o.Email != "" && o.Phone != ""
		f.view.Printf("Email: %s\nТелефон: %s\n", o.Email, o.Phone)
		return nil
	})
	bus.On(domain.EventValidationChanged, func(e events.Event[domain.Payload]) error {
		c, ok := e.Payload.(domain.ValidationChanged)
		if !ok {
			return unexpected(e)
		}
		f.apply(c.Errors)
		return nil
	})
	bus.On(domain.EventDeliveryReady, func(events.Event[domain.Payload]) error {
		f.deliveryValid = true
		return nil
	})
	bus.On(domain.EventContactReady, func(events.Event[domain.Payload]) error {
		f.contactValid = true
		return nil
	})
	bus.On(domain.EventOrderPlaced, func(events.Event[domain.Payload]) error {
		*f = Forms{view: f.view, state: f.state}
		return nil
	})
}

func (f *Forms) apply(errs domain.ValidationErrors) {
	f.deliveryValid = errs[domain.FieldPayment] == "" && errs[domain.FieldAddress] == ""
	f.contactValid = errs[domain.FieldEmail] == "" && errs[domain.FieldPhone] == ""
	f.deliveryErrors = errs.Join(domain.FieldPayment, domain.FieldAddress)
	f.contactErrors = errs.Join(domain.FieldPhone, domain.FieldEmail)

	switch {
	case f.step == stepDelivery && f.deliveryErrors != "":
		f.view.Printf("! %s\n", f.deliveryErrors)
	case f.step == stepContacts && f.contactErrors != "":
		f.view.Printf("! %s\n", f.contactErrors)
	}
}

func (f *Forms) DeliveryValid() bool    { return f.deliveryValid }
func (f *Forms) ContactValid() bool     { return f.contactValid }
func (f *Forms) DeliveryErrors() string { return f.deliveryErrors }
func (f *Forms) ContactErrors() string  { return f.contactErrors }
