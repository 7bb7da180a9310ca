package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrNotArray — сохранённый документ корзины не является JSON-массивом.
var ErrNotArray = errors.New("cart snapshot is not a json array")

// storedItem — элемент сохранённого снимка. Старый формат хранил количество в поле qty.
type storedItem struct {
	ID       json.RawMessage `json:"id"`
	Title    string          `json:"title"`
	Price    json.RawMessage `json:"price"`
	Image    *string         `json:"image"`
	Quantity *int            `json:"quantity"`
	Qty      *int            `json:"qty"`
}

// EncodeSnapshot — сериализует корзину целиком. Пустая корзина → "[]".
func EncodeSnapshot(items []LineItem) ([]byte, error) {
	if items == nil {
		items = []LineItem{}
	}
	return json.Marshal(items)
}

// DecodeSnapshot — разбирает сохранённый снимок и приводит его к инвариантам корзины.
// Ошибка означает, что снимок нужно считать пустой корзиной.
func DecodeSnapshot(raw []byte) ([]LineItem, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var stored []storedItem
	if err := json.Unmarshal(trimmed, &stored); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	items := make([]LineItem, 0, len(stored))
	for i := range stored {
		id, err := decodeID(stored[i].ID)
		if err != nil {
			return nil, fmt.Errorf("decode snapshot item %d: %w", i, err)
		}

		qty := 0
		switch {
		case stored[i].Quantity != nil:
			qty = *stored[i].Quantity
		case stored[i].Qty != nil:
			qty = *stored[i].Qty
		}

		price := CoercePrice(stored[i].Price)
		if math.IsNaN(price) || math.IsInf(price, 0) {
			return nil, fmt.Errorf("decode snapshot item %d: price is not a number", i)
		}

		image := ""
		if stored[i].Image != nil {
			image = *stored[i].Image
		}

		items = append(items, LineItem{
			ID:       NormalizeID(id),
			Title:    stored[i].Title,
			Price:    price,
			Image:    image,
			Quantity: qty,
		})
	}
	return Sanitize(items), nil
}

// Sanitize — убирает позиции с quantity <= 0 и склеивает дубликаты id
// (количество суммируется, позиция остаётся на месте первого вхождения).
func Sanitize(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if pos, ok := index[it.ID]; ok {
			out[pos].Quantity += it.Quantity
			continue
		}
		index[it.ID] = len(out)
		out = append(out, it)
	}
	return out
}
