package domain

import "github.com/shopspring/decimal"

// Product описывает позицию каталога. Цена без значения означает «не продаётся».
type Product struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Price       decimal.NullDecimal `json:"price"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Image       string              `json:"image"`
}

// ForSale сообщает, есть ли у товара цена.
func (p *Product) ForSale() bool {
	return p.Price.Valid
}

// PriceOrZero возвращает цену, а для товара без цены ноль.
func (p *Product) PriceOrZero() decimal.Decimal {
	if !p.Price.Valid {
		return decimal.Zero
	}
	return p.Price.Decimal
}

// CartTotal суммирует цены товаров; товары без цены дают ноль.
func CartTotal(items []*Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range items {
		total = total.Add(p.PriceOrZero())
	}
	return total
}

// ProductIDs возвращает идентификаторы в порядке следования.
func ProductIDs(items []*Product) []string {
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return ids
}

// ProductList: ответ API со списком товаров.
type ProductList struct {
	Total int        `json:"total"`
	Items []*Product `json:"items"`
}
