package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/state"
)

// Storefront связывает намерения виджетов с состоянием витрины и API магазина.
// Обработчики выполняются в цикле Loop; обращения к API идут в отдельных
// горутинах и возвращаются в цикл ровно одной задачей.
type Storefront struct {
	Bus   *state.Bus
	State *state.AppState
	API   domain.ShopAPI
	Loop  *events.Loop

	pending sync.WaitGroup
}

// Bind подписывает обработчики намерений на шину.
func (sf *Storefront) Bind() {
	sf.Bus.On(domain.EventPreviewSelect, withProduct(sf.State.SetPreview))
	sf.Bus.On(domain.EventCardToggle, withProduct(func(p *domain.Product) {
		if sf.State.InCart(p) {
			sf.Bus.Emit(domain.EventCardDelete, domain.ProductIntent{Product: p})
			return
		}
		sf.Bus.Emit(domain.EventCardAdd, domain.ProductIntent{Product: p})
	}))
	sf.Bus.On(domain.EventCardAdd, withProduct(func(p *domain.Product) { sf.State.AddToCart(p) }))
	sf.Bus.On(domain.EventCardDelete, withProduct(sf.State.RemoveFromCart))
	sf.Bus.On(domain.EventOrderOpen, func(events.Event[domain.Payload]) error {
		sf.State.StartOrder()
		return nil
	})
	sf.Bus.Subscribe(events.MustPattern(domain.PatternDeliveryFieldChange), onField(sf.State.SetDeliveryField))
	sf.Bus.Subscribe(events.MustPattern(domain.PatternContactFieldChange), onField(sf.State.SetContactField))
	sf.Bus.On(domain.EventContactsSubmit, func(events.Event[domain.Payload]) error {
		sf.SubmitOrder(context.Background())
		return nil
	})
}

func withProduct(fn func(*domain.Product)) events.Handler[domain.Payload] {
	return func(e events.Event[domain.Payload]) error {
		intent, ok := e.Payload.(domain.ProductIntent)
		if !ok || intent.Product == nil {
			return fmt.Errorf("%s: expected a product, got %T", e.Name, e.Payload)
		}
		fn(intent.Product)
		return nil
	}
}

func onField(set func(domain.OrderField, string) error) events.Handler[domain.Payload] {
	return func(e events.Event[domain.Payload]) error {
		change, ok := e.Payload.(domain.FieldChanged)
		if !ok {
			return fmt.Errorf("%s: expected a field change, got %T", e.Name, e.Payload)
		}
		field := change.Field
		if field == "" {
			field = fieldFromEvent(e.Name)
		}
		return set(field, change.Value)
	}
}

// fieldFromEvent достаёт имя поля из "<form>.<field>:change".
func fieldFromEvent(name string) domain.OrderField {
	_, rest, ok := strings.Cut(name, ".")
	if !ok {
		return ""
	}
	field, _, _ := strings.Cut(rest, ":")
	return domain.OrderField(field)
}

// LoadCatalog загружает каталог при старте. Ошибка логируется и публикуется
// как catalog:failed; повторов нет.
func (sf *Storefront) LoadCatalog(ctx context.Context) {
	sf.async(func() func() {
		items, err := sf.API.Products(ctx)
		return func() {
			if err != nil {
				log.Printf("load catalog: %v", err)
				sf.Bus.Emit(domain.EventCatalogFailed, domain.CatalogFailed{Err: err})
				return
			}
			sf.State.SetCatalog(items)
		}
	})
}

// SubmitOrder отправляет снимок черновика заказа. При успехе очищает корзину
// и заказ; при ошибке состояние не откатывается.
// Вызывается из цикла Loop.
func (sf *Storefront) SubmitOrder(ctx context.Context) {
	order := sf.State.Order()
	sf.async(func() func() {
		res, err := sf.API.SendOrder(ctx, order)
		return func() {
			if err != nil {
				log.Printf("submit order: %v", err)
				sf.Bus.Emit(domain.EventOrderFailed, domain.OrderFailed{Err: err})
				return
			}
			sf.State.ClearCart()
			sf.State.ClearOrder()
			sf.Bus.Emit(domain.EventOrderPlaced, domain.OrderPlaced{Result: res})
		}
	})
}

// async выполняет call вне цикла и возвращает полученное продолжение в цикл.
func (sf *Storefront) async(call func() func()) {
	sf.pending.Add(1)
	go func() {
		next := call()
		if !sf.Loop.Post(func() {
			defer sf.pending.Done()
			next()
		}) {
			sf.pending.Done()
		}
	}()
}

// Wait ждёт, пока все начатые обращения к API вернутся в цикл.
func (sf *Storefront) Wait() {
	sf.pending.Wait()
}
