package domain

import (
	"context"
	"fmt"
)

// ShopAPI — порт HTTP-API магазина, которым пользуется витрина.
type ShopAPI interface {
	Products(ctx context.Context) ([]*Product, error)
	ProductItem(ctx context.Context, id string) (*Product, error)
	SendOrder(ctx context.Context, order OrderDraft) (OrderResult, error)
}

// ProductCatalog — порт чтения каталога на стороне бэкенда.
type ProductCatalog interface {
	List(ctx context.Context) ([]*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
}

// OrderRepository — порт для операций персистентности заказов.
type OrderRepository interface {
	Upsert(ctx context.Context, id string, raw []byte) error
	LoadAll(ctx context.Context, fn func(id string, raw []byte) error) error
}

// OrderCache — порт быстрого доступа к заказам (кэш).
type OrderCache interface {
	Get(id string) (PlacedOrder, bool)
	Set(id string, o PlacedOrder)
}

// MessageSubscriber — порт подписчика на входящие сообщения заказов.
type MessageSubscriber interface {
	// Subscribe регистрирует обработчик; ack/повторные доставки реализует адаптер.
	Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error
}

// MessagePublisher — порт публикации принятых заказов в шину сообщений.
type MessagePublisher interface {
	Publish(ctx context.Context, raw []byte) error
}

// Общие доменные ошибки
var (
	ErrNotFound     = notFoundError("not found")
	ErrValidation   = validationError("invalid data")
	ErrUnknownField = fieldError("unknown order field")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type validationError string

func (e validationError) Error() string { return string(e) }

type fieldError string

func (e fieldError) Error() string { return string(e) }

func unknownField(f OrderField) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, string(f))
}
