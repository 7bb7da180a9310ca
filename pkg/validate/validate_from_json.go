package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Gunvolt24/swiftcart/internal/domain"
)

// ErrInvalidSnapshot — сохранённый снимок корзины нарушает инварианты.
var ErrInvalidSnapshot = errors.New("cart snapshot validation failed")

// SnapshotValidator — проверка сохранённого снимка корзины.
type SnapshotValidator struct{}

// NewSnapshotValidator — конструктор SnapshotValidator.
func NewSnapshotValidator() *SnapshotValidator { return &SnapshotValidator{} }

// Validate — инварианты корзины: непустой уникальный id, quantity >= 1, конечная неотрицательная цена.
func (v *SnapshotValidator) Validate(_ context.Context, items []domain.LineItem) error {
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		item := &items[i]
		idx := strconv.Itoa(i)

		if item.ID == "" {
			return fmt.Errorf("%w: items[%s].id обязателен", ErrInvalidSnapshot, idx)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: items[%s].id=%q повторяется", ErrInvalidSnapshot, idx, item.ID)
		}
		seen[item.ID] = struct{}{}

		if item.Quantity < 1 {
			return fmt.Errorf("%w: items[%s].quantity должен быть >= 1", ErrInvalidSnapshot, idx)
		}
		if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) || item.Price < 0 {
			return fmt.Errorf("%w: items[%s].price должен быть неотрицательным числом", ErrInvalidSnapshot, idx)
		}
	}
	return nil
}

// ValidateSnapshotFromJSON — разбор и проверка снимка без молчаливого исправления:
// дубликаты и нулевые количества считаются ошибкой, а не склеиваются.
func ValidateSnapshotFromJSON(ctx context.Context, validator *SnapshotValidator, raw []byte) ([]domain.LineItem, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, domain.ErrNotArray)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	items := make([]domain.LineItem, 0, len(elems))
	for i, elem := range elems {
		// по одному элементу, чтобы DecodeSnapshot ничего не склеил и не выбросил
		one, err := domain.DecodeSnapshot(append(append([]byte{'['}, elem...), ']'))
		if err != nil {
			return nil, fmt.Errorf("%w: items[%d]: %w", ErrInvalidSnapshot, i, err)
		}
		if len(one) == 0 {
			return nil, fmt.Errorf("%w: items[%d].quantity должен быть >= 1", ErrInvalidSnapshot, i)
		}
		items = append(items, one[0])
	}

	if err := validator.Validate(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}
