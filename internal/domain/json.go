package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// API магазина передаёт цены и суммы числами, а не строками, поэтому типы
// с decimal кодируются сами и не трогают глобальный decimal.MarshalJSONWithoutQuotes.

func number(d decimal.Decimal) json.RawMessage {
	return json.RawMessage(d.String())
}

func nullNumber(d decimal.NullDecimal) json.RawMessage {
	if !d.Valid {
		return json.RawMessage("null")
	}
	return number(d.Decimal)
}

func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		Price json.RawMessage `json:"price"`
	}{plain(p), nullNumber(p.Price)})
}

func (o OrderDraft) MarshalJSON() ([]byte, error) {
	type plain OrderDraft
	return json.Marshal(struct {
		plain
		Total json.RawMessage `json:"total"`
	}{plain(o), number(o.Total)})
}

func (r OrderResult) MarshalJSON() ([]byte, error) {
	type plain OrderResult
	return json.Marshal(struct {
		plain
		Total json.RawMessage `json:"total"`
	}{plain(r), nullNumber(r.Total)})
}

// MarshalJSON раскрывает поля черновика на верхний уровень, как при
// обычном встраивании.
func (o PlacedOrder) MarshalJSON() ([]byte, error) {
	type draft OrderDraft
	return json.Marshal(struct {
		ID string `json:"id"`
		draft
		Total     json.RawMessage `json:"total"`
		CreatedAt time.Time       `json:"created_at"`
	}{o.ID, draft(o.OrderDraft), number(o.Total), o.CreatedAt})
}
