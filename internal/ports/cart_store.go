package ports

import (
	"context"

	"github.com/Gunvolt24/swiftcart/internal/domain"
)

// CartStore — хранилище состояния корзины.
// Изменяющие методы не возвращают ошибок: сбои сохранения обрабатываются внутри.
type CartStore interface {
	Initialize(ctx context.Context)
	AddItem(ctx context.Context, candidate domain.Candidate)
	RemoveItem(ctx context.Context, id any) bool
	IncreaseQuantity(ctx context.Context, id any) bool
	DecreaseQuantity(ctx context.Context, id any) bool
	Clear(ctx context.Context)

	Items() []domain.LineItem
	TotalQuantity() int
	TotalPrice() float64
}
