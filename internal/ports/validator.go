package ports

import (
	"context"

	"github.com/Gunvolt24/swiftcart/internal/domain"
)

// CandidateValidator — проверка товара перед добавлением в корзину (на стороне вызывающего).
type CandidateValidator interface {
	Validate(ctx context.Context, candidate *domain.Candidate) error
}
