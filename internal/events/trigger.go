package events

// Merger реализуют нагрузки, которые умеют заполнять пустые поля значениями
// по умолчанию из Trigger.
type Merger[P any] interface {
	Merge(defaults P) P
}

// Trigger возвращает функцию, публикующую name. Без аргументов она публикует
// defaults, нагрузку с Merger дополняет значениями defaults, остальные
// публикует как есть.
func (b *Bus[P]) Trigger(name string, defaults P) func(payload ...P) {
	return func(payload ...P) {
		if len(payload) == 0 {
			b.Emit(name, defaults)
			return
		}
		p := payload[0]
		if m, ok := any(p).(Merger[P]); ok {
			p = m.Merge(defaults)
		}
		b.Emit(name, p)
	}
}
