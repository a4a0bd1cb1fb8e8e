package state_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/state"
)

func drawCatalog(t *rapid.T) []*domain.Product {
	n := rapid.IntRange(1, 6).Draw(t, "catalog size")
	catalog := make([]*domain.Product, 0, n)
	for i := 0; i < n; i++ {
		p := &domain.Product{ID: fmt.Sprintf("p%d", i)}
		if rapid.Bool().Draw(t, "priced") {
			p.Price = decimal.NewNullDecimal(decimal.NewFromInt(rapid.Int64Range(0, 100000).Draw(t, "price")))
		}
		catalog = append(catalog, p)
	}
	return catalog
}

func TestCartProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bus := events.New[domain.Payload]()
		catalog := drawCatalog(t)
		s := state.New(bus, state.Data{Catalog: catalog})

		var announced []*domain.Product
		cartEvents, counterEvents := 0, 0
		bus.On(domain.EventCartChanged, func(e events.Event[domain.Payload]) error {
			cartEvents++
			announced = e.Payload.(domain.CartChanged).Items
			return nil
		})
		bus.On(domain.EventCounterChanged, func(events.Event[domain.Payload]) error {
			counterEvents++
			return nil
		})

		pick := func(t *rapid.T) *domain.Product {
			return rapid.SampledFrom(catalog).Draw(t, "product")
		}

		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				p := pick(t)
				before := len(s.Cart())
				added := s.AddToCart(p)
				if added == (len(s.Cart()) == before) {
					t.Fatalf("AddToCart reported %v but cart went %d -> %d", added, before, len(s.Cart()))
				}
			},
			"remove": func(t *rapid.T) {
				p := pick(t)
				wasIn := s.InCart(p)
				before := len(s.Cart())
				cartBefore := cartEvents
				s.RemoveFromCart(p)
				if cartEvents != cartBefore+1 {
					t.Fatalf("RemoveFromCart must always announce")
				}
				if !wasIn && len(s.Cart()) != before {
					t.Fatalf("removing an absent product changed the cart")
				}
			},
			"clear": func(t *rapid.T) {
				s.ClearCart()
				if len(s.Cart()) != 0 {
					t.Fatalf("cart not empty after clear")
				}
			},
			"": func(t *rapid.T) {
				cart := s.Cart()
				seen := map[*domain.Product]bool{}
				for _, p := range cart {
					if seen[p] {
						t.Fatalf("product %s is in the cart twice", p.ID)
					}
					seen[p] = true
				}
				if cartEvents > 0 && !domain.CartTotal(cart).Equal(s.Order().Total) {
					t.Fatalf("total %s != cart sum %s", s.Order().Total, domain.CartTotal(cart))
				}
				if cartEvents > 0 && len(announced) != len(cart) {
					t.Fatalf("last cart:changed carried %d items, cart has %d", len(announced), len(cart))
				}
				if cartEvents != counterEvents {
					t.Fatalf("cart:changed (%d) and counter:changed (%d) out of step", cartEvents, counterEvents)
				}
			},
		})
	})
}

func TestValidationIsRecomputedWholesale(t *testing.T) {
	fields := []domain.OrderField{domain.FieldPayment, domain.FieldAddress, domain.FieldEmail, domain.FieldPhone}
	rapid.Check(t, func(t *rapid.T) {
		s := state.New(events.New[domain.Payload](), state.Data{})
		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			f := rapid.SampledFrom(fields).Draw(t, "field")
			v := rapid.SampledFrom([]string{"", "x"}).Draw(t, "value")
			var want domain.ValidationErrors
			if f.IsDelivery() {
				if err := s.SetDeliveryField(f, v); err != nil {
					t.Fatal(err)
				}
				want = domain.ValidateDelivery(s.Order())
			} else {
				if err := s.SetContactField(f, v); err != nil {
					t.Fatal(err)
				}
				want = domain.ValidateContacts(s.Order())
			}
			got := s.Errors()
			if len(got) != len(want) {
				t.Fatalf("errors %v, want %v", got, want)
			}
			for k, msg := range want {
				if got[k] != msg {
					t.Fatalf("errors %v, want %v", got, want)
				}
			}
		}
	})
}
