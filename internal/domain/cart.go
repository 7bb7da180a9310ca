package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LineItem — одна позиция корзины вместе с количеством.
type LineItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// MarshalJSON — NaN/±Inf в цене пишутся как null (как JSON.stringify),
// иначе одна такая позиция сломала бы сохранение всей корзины.
func (li LineItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string   `json:"id"`
		Title    string   `json:"title"`
		Price    *float64 `json:"price"`
		Image    string   `json:"image"`
		Quantity int      `json:"quantity"`
	}{li.ID, li.Title, JSONPrice(li.Price), li.Image, li.Quantity})
}

// JSONPrice — nil для NaN/±Inf, иначе указатель на значение.
func JSONPrice(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Subtotal — price × quantity без округления.
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Candidate — товар, который кладут в корзину.
// ID может быть строкой или числом: сравнение идёт по NormalizeID.
type Candidate struct {
	ID    any     `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// UnmarshalJSON — принимает id строкой или числом, price числом или строкой (как Number() в браузере).
func (c *Candidate) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    json.RawMessage `json:"id"`
		Title string          `json:"title"`
		Price json.RawMessage `json:"price"`
		Image *string         `json:"image"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := decodeID(raw.ID)
	if err != nil {
		return err
	}

	c.ID = id
	c.Title = raw.Title
	c.Price = CoercePrice(raw.Price)
	c.Image = ""
	if raw.Image != nil {
		c.Image = *raw.Image
	}
	return nil
}

// CartView — состояние корзины с агрегатами.
type CartView struct {
	Items         []LineItem `json:"items"`
	TotalQuantity int        `json:"total_quantity"`
	TotalPrice    float64    `json:"total_price"`
}

// MarshalJSON — сумма с NaN-ценой внутри пишется как null.
func (v CartView) MarshalJSON() ([]byte, error) {
	type plain CartView
	return json.Marshal(struct {
		plain
		TotalPrice *float64 `json:"total_price"`
	}{plain(v), JSONPrice(v.TotalPrice)})
}

// NormalizeID приводит идентификатор к канонической строке.
// "7", 7, int64(7), 7.0 и json.Number("7") дают одно и то же значение "7".
func NormalizeID(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return normalizeNumberText(v.String())
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// CoercePrice — аналог Number(x): пусто/null → 0, число → число, строка → parse или NaN.
func CoercePrice(raw json.RawMessage) float64 {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err == nil {
		if f, err := n.Float64(); err == nil {
			return f
		}
		return math.NaN()
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return math.NaN()
}

func decodeID(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode id: %w", err)
	}

	switch v.(type) {
	case string, json.Number:
		return v, nil
	default:
		return nil, fmt.Errorf("decode id: unsupported type %T", v)
	}
}

// normalizeNumberText — "7.0" и "7e0" → "7", чтобы числовой id из JSON совпадал со строковым.
func normalizeNumberText(s string) string {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return s
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return formatFloat(f)
	}
	return s
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if f == 0 {
		return "0"
	}
	// Как String(x) в JS: экспонента вне [1e-6, 1e21), без ведущих нулей в порядке.
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
