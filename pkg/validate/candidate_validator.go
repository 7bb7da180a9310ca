package validate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Gunvolt24/swiftcart/internal/domain"
	"github.com/Gunvolt24/swiftcart/internal/ports"
)

// Проверка, что CandidateValidator удовлетворяет интерфейсу CandidateValidator.
var _ ports.CandidateValidator = (*CandidateValidator)(nil)

// ErrInvalidCandidate — базовая (sentinel error) ошибка валидации товара.
var ErrInvalidCandidate = errors.New("cart candidate validation failed")

// maxTitleLen — ограничение на длину названия товара.
const maxTitleLen = 512

// CandidateValidator — проверка товара перед добавлением в корзину.
// Сама корзина данные не проверяет, это делает вызывающий слой (HTTP, Kafka).
type CandidateValidator struct{}

// NewCandidateValidator — конструктор CandidateValidator.
func NewCandidateValidator() *CandidateValidator { return &CandidateValidator{} }

// Validate — возвращает ErrInvalidCandidate (с обёрнутой причиной) при любой проблеме.
func (v *CandidateValidator) Validate(_ context.Context, c *domain.Candidate) error {
	if c == nil {
		return fmt.Errorf("%w: товар не может быть nil", ErrInvalidCandidate)
	}
	if strings.TrimSpace(domain.NormalizeID(c.ID)) == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidCandidate)
	}
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return fmt.Errorf("%w: title обязателен", ErrInvalidCandidate)
	}
	if len(title) > maxTitleLen {
		return fmt.Errorf("%w: title длиннее %d символов", ErrInvalidCandidate, maxTitleLen)
	}
	if math.IsNaN(c.Price) || math.IsInf(c.Price, 0) {
		return fmt.Errorf("%w: price должен быть числом", ErrInvalidCandidate)
	}
	if c.Price < 0 {
		return fmt.Errorf("%w: price должен быть неотрицательным", ErrInvalidCandidate)
	}
	return nil
}
