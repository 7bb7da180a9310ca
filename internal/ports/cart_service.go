package ports

import (
	"context"

	"github.com/Gunvolt24/swiftcart/internal/domain"
)

// CartService — прикладной сервис корзины для транспортного слоя.
type CartService interface {
	Cart(ctx context.Context) domain.CartView
	Items(ctx context.Context, limit, offset int) []domain.LineItem
	AddItem(ctx context.Context, candidate domain.Candidate) (domain.CartView, error)
	RemoveItem(ctx context.Context, id string) (domain.CartView, bool)
	IncreaseQuantity(ctx context.Context, id string) (domain.CartView, bool)
	DecreaseQuantity(ctx context.Context, id string) (domain.CartView, bool)
	Clear(ctx context.Context) domain.CartView
}
