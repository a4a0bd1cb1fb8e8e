package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/example/storefront/internal/domain"
)

// ShopClient ходит в API магазина. Картинки товаров дополняются адресом CDN.
type ShopClient struct {
	*Client
	cdn string
}

func NewShopClient(cdn, baseURL string, httpClient *http.Client) *ShopClient {
	return &ShopClient{Client: NewClient(baseURL, httpClient), cdn: cdn}
}

func (c *ShopClient) Products(ctx context.Context) ([]*domain.Product, error) {
	var list domain.ProductList
	if err := c.Get(ctx, "/product", &list); err != nil {
		return nil, err
	}
	for _, p := range list.Items {
		p.Image = c.cdn + p.Image
	}
	return list.Items, nil
}

func (c *ShopClient) ProductItem(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := c.Get(ctx, "/product/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	p.Image = c.cdn + p.Image
	return &p, nil
}

func (c *ShopClient) SendOrder(ctx context.Context, order domain.OrderDraft) (domain.OrderResult, error) {
	var res domain.OrderResult
	if err := c.Post(ctx, "/order", order, &res); err != nil {
		return domain.OrderResult{}, err
	}
	return res, nil
}

var _ domain.ShopAPI = (*ShopClient)(nil)
