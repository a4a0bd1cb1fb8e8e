// Package events: внутрипроцессная шина событий, через которую виджеты и
// состояние витрины общаются, не зная друг о друге.
//
// Bus не безопасна для конкурентного использования. Все события публикуются
// из одной горутины, обычно из той, что крутит Loop.
package events

import (
	"fmt"
	"log"
)

// Event: одна публикация, имя события и полезная нагрузка.
type Event[P any] struct {
	Name    string
	Payload P
}

// Handler реагирует на событие. Возвращённая ошибка уходит в FaultReporter
// шины и до публикующего не доходит.
type Handler[P any] func(Event[P]) error

// FaultReporter получает ошибки обработчиков, включая перехваченные паники.
type FaultReporter func(event string, err error)

// Subscription: одна подписка, сделанная через Subscribe.
type Subscription struct {
	id      uint64
	matcher Matcher
}

// Matcher возвращает селектор, с которым сделана подписка.
func (s Subscription) Matcher() Matcher {
	return s.matcher
}

type subscriber[P any] struct {
	id      uint64
	matcher Matcher
	handler Handler[P]
	removed bool
}

type config struct {
	report FaultReporter
}

// Option настраивает Bus.
type Option func(*config)

// WithFaultReporter заменяет журнал ошибок обработчиков, по умолчанию log.Printf.
func WithFaultReporter(r FaultReporter) Option {
	return func(c *config) {
		if r != nil {
			c.report = r
		}
	}
}

// Bus раздаёт события подписчикам в порядке подписки.
type Bus[P any] struct {
	subs   []*subscriber[P]
	nextID uint64
	report FaultReporter
}

// New создаёт пустую шину.
func New[P any](opts ...Option) *Bus[P] {
	cfg := config{report: logFault}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Bus[P]{report: cfg.report}
}

func logFault(event string, err error) {
	log.Printf("events: handler for %q failed: %v", event, err)
}

// Subscribe подписывает h на все последующие события, которые выбирает m.
// Повторная подписка того же обработчика вызывает его дважды.
func (b *Bus[P]) Subscribe(m Matcher, h Handler[P]) Subscription {
	b.nextID++
	b.subs = append(b.subs, &subscriber[P]{id: b.nextID, matcher: m, handler: h})
	return Subscription{id: b.nextID, matcher: m}
}

// On: Subscribe по точному имени события.
func (b *Bus[P]) On(name string, h Handler[P]) Subscription {
	return b.Subscribe(Exact(name), h)
}

// Emit вызывает в порядке подписки все обработчики, чей селектор выбирает
// name, и возвращается, когда все они отработали. Вложенная публикация из
// обработчика завершается раньше, чем управление вернётся к нему.
// Подписки, сделанные во время публикации, действуют со следующей, а
// отписки сразу.
func (b *Bus[P]) Emit(name string, payload P) {
	snapshot := b.subs
	ev := Event[P]{Name: name, Payload: payload}
	for _, s := range snapshot {
		if s.removed || !s.matcher.Match(name) {
			continue
		}
		b.dispatch(s, ev)
	}
}

func (b *Bus[P]) dispatch(s *subscriber[P], ev Event[P]) {
	defer func() {
		if r := recover(); r != nil {
			b.report(ev.Name, fmt.Errorf("panic in subscriber %s: %v", s.matcher, r))
		}
	}()
	if err := s.handler(ev); err != nil {
		b.report(ev.Name, err)
	}
}

// Unsubscribe снимает одну подписку и сообщает, была ли она.
func (b *Bus[P]) Unsubscribe(sub Subscription) bool {
	return b.remove(func(s *subscriber[P]) bool { return s.id == sub.id }) > 0
}

// Off снимает все подписки с селектором, равным m, и возвращает их число.
func (b *Bus[P]) Off(m Matcher) int {
	return b.remove(func(s *subscriber[P]) bool { return s.matcher.Equal(m) })
}

// UnsubscribeAll снимает все подписки.
func (b *Bus[P]) UnsubscribeAll() {
	b.remove(func(*subscriber[P]) bool { return true })
}

// Len возвращает число действующих подписок.
func (b *Bus[P]) Len() int {
	return len(b.subs)
}

func (b *Bus[P]) remove(match func(*subscriber[P]) bool) int {
	kept := make([]*subscriber[P], 0, len(b.subs))
	n := 0
	for _, s := range b.subs {
		if match(s) {
			s.removed = true
			n++
			continue
		}
		kept = append(kept, s)
	}
	b.subs = kept
	return n
}
