package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/adapter/cache"
	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/usecase"
)

type fakeRepo struct {
	rows      map[string][]byte
	upsertErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[string][]byte{}}
}

func (r *fakeRepo) Upsert(_ context.Context, id string, raw []byte) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.rows[id] = raw
	return nil
}

func (r *fakeRepo) LoadAll(_ context.Context, fn func(id string, raw []byte) error) error {
	for id, raw := range r.rows {
		if err := fn(id, raw); err != nil {
			return err
		}
	}
	return nil
}

type fakePublisher struct {
	sent [][]byte
	err  error
}

func (p *fakePublisher) Publish(_ context.Context, raw []byte) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, raw)
	return nil
}

type failingCatalog struct{}

func (failingCatalog) List(context.Context) ([]*domain.Product, error) {
	return nil, errors.New("db down")
}

func (failingCatalog) Get(context.Context, string) (*domain.Product, error) {
	return nil, errors.New("db down")
}

func validDraft() domain.OrderDraft {
	return domain.OrderDraft{
		Payment: domain.PaymentOnline,
		Address: "Спб",
		Email:   "a@b.c",
		Phone:   "+7",
		Total:   decimal.NewFromInt(300),
		Items:   []string{"a", "b"},
	}
}

func TestPlaceOrder(t *testing.T) {
	pub := &fakePublisher{}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("MSK", 3*3600))
	uc := usecase.PlaceOrder{
		Catalog:   cache.NewMemoryProductCatalog(products()),
		Publisher: pub,
		Now:       func() time.Time { return now },
	}

	res, err := uc.Execute(context.Background(), validDraft())

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.True(t, res.Total.Valid)
	assert.True(t, decimal.NewFromInt(300).Equal(res.Total.Decimal))

	require.Len(t, pub.sent, 1)
	var placed domain.PlacedOrder
	require.NoError(t, json.Unmarshal(pub.sent[0], &placed))
	assert.Equal(t, res.ID, placed.ID)
	assert.True(t, now.Equal(placed.CreatedAt))
	assert.Equal(t, time.UTC, placed.CreatedAt.Location())
	assert.Equal(t, "a@b.c", placed.Email)
}

func TestPlaceOrderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.OrderDraft)
		want   string
	}{
		{"all rules merged", func(o *domain.OrderDraft) { o.Address, o.Phone = "", "" }, domain.MsgAddressRequired + "; " + domain.MsgPhoneRequired},
		{"empty payment", func(o *domain.OrderDraft) { o.Payment = "" }, domain.MsgPaymentRequired},
		{"unknown payment", func(o *domain.OrderDraft) { o.Payment = "card" }, `unknown payment method "card"`},
		{"no items", func(o *domain.OrderDraft) { o.Items = nil }, "order has no items"},
		{"unknown product", func(o *domain.OrderDraft) { o.Items = []string{"a", "x"} }, `product "x" not found`},
		{"duplicate", func(o *domain.OrderDraft) { o.Items = []string{"a", "a"} }, `product "a" ordered twice`},
		{"total mismatch", func(o *domain.OrderDraft) { o.Total = decimal.NewFromInt(299) }, "total 299 does not match 300"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &fakePublisher{}
			uc := usecase.PlaceOrder{Catalog: cache.NewMemoryProductCatalog(products()), Publisher: pub}
			draft := validDraft()
			tt.mutate(&draft)

			_, err := uc.Execute(context.Background(), draft)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, pub.sent)
		})
	}
}

func TestPlaceOrderRejectsPricelessProduct(t *testing.T) {
	items := append(products(), &domain.Product{ID: "free", Title: "Бесценно"})
	uc := usecase.PlaceOrder{Catalog: cache.NewMemoryProductCatalog(items), Publisher: &fakePublisher{}}
	draft := validDraft()
	draft.Items = []string{"a", "free"}
	draft.Total = decimal.NewFromInt(100)

	_, err := uc.Execute(context.Background(), draft)

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "not for sale")
}

func TestPlaceOrderInfrastructureErrors(t *testing.T) {
	_, err := usecase.PlaceOrder{Catalog: failingCatalog{}, Publisher: &fakePublisher{}}.
		Execute(context.Background(), validDraft())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)

	boom := errors.New("stan: timeout")
	_, err = usecase.PlaceOrder{Catalog: cache.NewMemoryProductCatalog(products()), Publisher: &fakePublisher{err: boom}}.
		Execute(context.Background(), validDraft())
	require.ErrorIs(t, err, boom)
}

func TestProcessIncomingOrder(t *testing.T) {
	repo := newFakeRepo()
	c := cache.NewMemoryOrderCache()
	uc := usecase.ProcessIncomingOrder{Repo: repo, Cache: c}
	raw := []byte(`{"id":"o1","payment":"cash","address":"x","email":"e","phone":"p","total":300,"items":["a","b"],"created_at":"2024-05-01T09:00:00Z"}`)

	require.NoError(t, uc.Execute(context.Background(), raw))

	assert.JSONEq(t, string(raw), string(repo.rows["o1"]))
	o, ok := usecase.GetOrderByID{Cache: c}.Execute("o1")
	require.True(t, ok)
	assert.Equal(t, domain.PaymentCash, o.Payment)
	assert.True(t, decimal.NewFromInt(300).Equal(o.Total))
}

func TestProcessIncomingOrderRejects(t *testing.T) {
	c := cache.NewMemoryOrderCache()

	err := usecase.ProcessIncomingOrder{Repo: newFakeRepo(), Cache: c}.Execute(context.Background(), []byte(`{`))
	require.Error(t, err)

	err = usecase.ProcessIncomingOrder{Repo: newFakeRepo(), Cache: c}.Execute(context.Background(), []byte(`{"address":"x"}`))
	require.ErrorIs(t, err, domain.ErrValidation)

	boom := errors.New("db down")
	err = usecase.ProcessIncomingOrder{Repo: &fakeRepo{upsertErr: boom}, Cache: c}.
		Execute(context.Background(), []byte(`{"id":"o2"}`))
	require.ErrorIs(t, err, boom)
	_, ok := c.Get("o2")
	assert.False(t, ok, "order must not be cached before it is stored")
}

func TestLoadCacheSkipsCorruptRows(t *testing.T) {
	repo := newFakeRepo()
	repo.rows["good"] = []byte(`{"id":"good","payment":"online"}`)
	repo.rows["bad"] = []byte(`not json`)
	c := cache.NewMemoryOrderCache()

	require.NoError(t, usecase.LoadCache{Repo: repo, Cache: c}.Execute(context.Background()))

	_, ok := c.Get("good")
	assert.True(t, ok)
	_, ok = c.Get("bad")
	assert.False(t, ok)
}
