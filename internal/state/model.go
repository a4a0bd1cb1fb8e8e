// Package state: единственное состояние витрины и реактивная модель, на
// которой оно построено.
package state

import "github.com/example/storefront/internal/events"

// Model связывает запись с данными и шину, через которую модель объявляет
// о своих изменениях.
type Model[D, P any] struct {
	data D
	bus  *events.Bus[P]
}

// NewModel оборачивает начальные данные и шину.
func NewModel[D, P any](data D, bus *events.Bus[P]) Model[D, P] {
	return Model[D, P]{data: data, bus: bus}
}

// EmitChange остаётся единственным способом, которым наследники сообщают об изменениях.
func (m *Model[D, P]) EmitChange(name string, payload P) {
	m.bus.Emit(name, payload)
}

// Listen подписывает собственную реакцию модели на события шины.
func (m *Model[D, P]) Listen(matcher events.Matcher, h events.Handler[P]) events.Subscription {
	return m.bus.Subscribe(matcher, h)
}
