package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/example/storefront/internal/domain"
)

// GetOrderByID — получить заказ из кэша по идентификатору.
type GetOrderByID struct {
	Cache domain.OrderCache
}

func (uc GetOrderByID) Execute(id string) (domain.PlacedOrder, bool) {
	return uc.Cache.Get(id)
}

// LoadCache — загрузить все заказы из репозитория в кэш при старте.
type LoadCache struct {
	Repo  domain.OrderRepository
	Cache domain.OrderCache
}

func (uc LoadCache) Execute(ctx context.Context) error {
	return uc.Repo.LoadAll(ctx, func(id string, raw []byte) error {
		var o domain.PlacedOrder
		if err := json.Unmarshal(raw, &o); err != nil {
			// пропускаем битые записи, не прерывая полную загрузку
			return nil
		}
		uc.Cache.Set(id, o)
		return nil
	})
}

// ProcessIncomingOrder — сохранить входящее сообщение заказа и обновить кэш.
type ProcessIncomingOrder struct {
	Repo  domain.OrderRepository
	Cache domain.OrderCache
}

func (uc ProcessIncomingOrder) Execute(ctx context.Context, raw []byte) error {
	ctx, span := otel.Tracer("storefront/usecase").Start(ctx, "orders.process_incoming")
	defer span.End()

	var o domain.PlacedOrder
	if err := json.Unmarshal(raw, &o); err != nil {
		span.RecordError(err)
		return err
	}
	if o.ID == "" {
		return domain.ErrValidation
	}
	span.SetAttributes(attribute.String("order.id", o.ID))
	if err := uc.Repo.Upsert(ctx, o.ID, raw); err != nil {
		span.RecordError(err)
		return err
	}
	uc.Cache.Set(o.ID, o)
	return nil
}

// PlaceOrder — проверить заказ, присвоить идентификатор и опубликовать в шину сообщений.
type PlaceOrder struct {
	Catalog   domain.ProductCatalog
	Publisher domain.MessagePublisher
	Now       func() time.Time
}

func (uc PlaceOrder) Execute(ctx context.Context, draft domain.OrderDraft) (domain.OrderResult, error) {
	ctx, span := otel.Tracer("storefront/usecase").Start(ctx, "orders.place",
		trace.WithAttributes(attribute.Int("order.items", len(draft.Items))),
	)
	defer span.End()

	// на сервере обе проверки объединяются: показывать ошибки некому
	errs := domain.ValidateDelivery(draft).Merge(domain.ValidateContacts(draft))
	if !errs.Valid() {
		return domain.OrderResult{}, fmt.Errorf("%w: %s", domain.ErrValidation,
			errs.Join(domain.FieldPayment, domain.FieldAddress, domain.FieldEmail, domain.FieldPhone))
	}
	if draft.Payment != domain.PaymentOnline && draft.Payment != domain.PaymentCash {
		return domain.OrderResult{}, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, draft.Payment)
	}
	total, err := uc.priceItems(ctx, draft.Items)
	if err != nil {
		return domain.OrderResult{}, err
	}
	if !total.Equal(draft.Total) {
		return domain.OrderResult{}, fmt.Errorf("%w: total %s does not match %s", domain.ErrValidation, draft.Total, total)
	}

	now := time.Now
	if uc.Now != nil {
		now = uc.Now
	}
	placed := domain.PlacedOrder{
		ID:         uuid.NewString(),
		OrderDraft: draft.Clone(),
		CreatedAt:  now().UTC(),
	}
	raw, err := json.Marshal(placed)
	if err != nil {
		return domain.OrderResult{}, fmt.Errorf("marshal order: %w", err)
	}
	if err := uc.Publisher.Publish(ctx, raw); err != nil {
		span.RecordError(err)
		return domain.OrderResult{}, fmt.Errorf("publish order: %w", err)
	}
	span.SetAttributes(attribute.String("order.id", placed.ID))
	return domain.OrderResult{ID: placed.ID, Total: decimal.NewNullDecimal(total)}, nil
}

func (uc PlaceOrder) priceItems(ctx context.Context, ids []string) (decimal.Decimal, error) {
	if len(ids) == 0 {
		return decimal.Zero, fmt.Errorf("%w: order has no items", domain.ErrValidation)
	}
	total := decimal.Zero
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return decimal.Zero, fmt.Errorf("%w: product %q ordered twice", domain.ErrValidation, id)
		}
		seen[id] = true
		p, err := uc.Catalog.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: product %q not found", domain.ErrValidation, id)
		}
		if err != nil {
			return decimal.Zero, fmt.Errorf("get product %q: %w", id, err)
		}
		if !p.ForSale() {
			return decimal.Zero, fmt.Errorf("%w: product %q is not for sale", domain.ErrValidation, id)
		}
		total = total.Add(p.Price.Decimal)
	}
	return total, nil
}
