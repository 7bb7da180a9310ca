package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gunvolt24/swiftcart/internal/domain"
	"github.com/Gunvolt24/swiftcart/internal/ports"
	"github.com/Gunvolt24/swiftcart/pkg/validate"
)

// Проверка, что CartService удовлетворяет интерфейсу CartService.
var _ ports.CartService = (*CartService)(nil)

const tracerName = "github.com/Gunvolt24/swiftcart/internal/usecase"

// CartService — прикладная логика корзины (без знаний о транспорте).
type CartService struct {
	store     ports.CartStore          // состояние корзины
	log       ports.Logger             // прямой доступ к логгеру
	validator ports.CandidateValidator // проверка товара перед добавлением
	tracer    trace.Tracer
}

// NewCartService — DI-конструктор.
func NewCartService(
	store ports.CartStore,
	log ports.Logger,
	validator ports.CandidateValidator,
) *CartService {
	return &CartService{
		store:     store,
		log:       log,
		validator: validator,
		tracer:    otel.Tracer(tracerName),
	}
}

// Cart — текущее состояние корзины с агрегатами.
func (s *CartService) Cart(ctx context.Context) domain.CartView {
	_, span := s.tracer.Start(ctx, "cart.view")
	defer span.End()

	return s.view()
}

// Items — страница позиций (пагинация уже валидирована на верхнем уровне).
func (s *CartService) Items(ctx context.Context, limit, offset int) []domain.LineItem {
	_, span := s.tracer.Start(ctx, "cart.items",
		trace.WithAttributes(attribute.Int("limit", limit), attribute.Int("offset", offset)))
	defer span.End()

	items := s.store.Items()
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []domain.LineItem{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// AddItem — проверить товар и положить его в корзину.
func (s *CartService) AddItem(ctx context.Context, candidate domain.Candidate) (domain.CartView, error) {
	ctx, span := s.tracer.Start(ctx, "cart.add",
		trace.WithAttributes(attribute.String("cart.item_id", domain.NormalizeID(candidate.ID))))
	defer span.End()

	if err := s.validator.Validate(ctx, &candidate); err != nil {
		s.log.Warnf(ctx, "add rejected id=%v err=%v", candidate.ID, err)
		span.RecordError(err)
		return s.view(), err
	}

	s.store.AddItem(ctx, candidate)
	return s.view(), nil
}

// RemoveItem — удалить позицию целиком. found=false, если такого id в корзине не было.
func (s *CartService) RemoveItem(ctx context.Context, id string) (domain.CartView, bool) {
	ctx, span := s.startItemSpan(ctx, "cart.remove", id)
	defer span.End()

	found := s.store.RemoveItem(ctx, id)
	return s.view(), found
}

// IncreaseQuantity — +1 к количеству позиции.
func (s *CartService) IncreaseQuantity(ctx context.Context, id string) (domain.CartView, bool) {
	ctx, span := s.startItemSpan(ctx, "cart.increase", id)
	defer span.End()

	found := s.store.IncreaseQuantity(ctx, id)
	return s.view(), found
}

// DecreaseQuantity — -1 к количеству; при нуле позиция удаляется.
func (s *CartService) DecreaseQuantity(ctx context.Context, id string) (domain.CartView, bool) {
	ctx, span := s.startItemSpan(ctx, "cart.decrease", id)
	defer span.End()

	found := s.store.DecreaseQuantity(ctx, id)
	return s.view(), found
}

// Clear — очистить корзину.
func (s *CartService) Clear(ctx context.Context) domain.CartView {
	ctx, span := s.tracer.Start(ctx, "cart.clear")
	defer span.End()

	s.store.Clear(ctx)
	return s.view()
}

// HandleMessage — применить команду корзины, пришедшую из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields);
//  2. проверка операции и товара (вернёт validate.ErrInvalidCommand при проблемах);
//  3. применение к корзине (сохранение и уведомления делает сама корзина).
func (s *CartService) HandleMessage(ctx context.Context, raw []byte) error {
	ctx, span := s.tracer.Start(ctx, "cart.command")
	defer span.End()

	cmd, err := validate.CommandFromJSON(ctx, s.validator, raw)
	if err != nil {
		s.log.Warnf(ctx, "invalid cart command err=%v", err)
		span.RecordError(err)
		return fmt.Errorf("decode command: %w", err)
	}
	span.SetAttributes(attribute.String("cart.op", string(cmd.Op)))

	switch cmd.Op {
	case domain.OpAdd:
		s.store.AddItem(ctx, *cmd.Product)
	case domain.OpRemove:
		s.store.RemoveItem(ctx, cmd.ID)
	case domain.OpIncrease:
		s.store.IncreaseQuantity(ctx, cmd.ID)
	case domain.OpDecrease:
		s.store.DecreaseQuantity(ctx, cmd.ID)
	case domain.OpClear:
		s.store.Clear(ctx)
	}

	s.log.Infof(ctx, "cart command applied op=%s", cmd.Op)
	return nil
}

// Snapshot — состояние корзины для публикации события после изменения.
func (s *CartService) Snapshot() domain.CartView {
	return s.view()
}

// ------вспомогательные функции------

func (s *CartService) startItemSpan(ctx context.Context, name, id string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("cart.item_id", id)))
}

// view — согласованный снимок: позиции и агрегаты считаются по одной копии.
func (s *CartService) view() domain.CartView {
	items := s.store.Items()
	if items == nil {
		items = []domain.LineItem{}
	}
	view := domain.CartView{Items: items}
	for _, it := range items {
		view.TotalQuantity += it.Quantity
		view.TotalPrice += it.Subtotal()
	}
	return view
}
