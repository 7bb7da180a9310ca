package cart

import (
	"context"

	"github.com/Gunvolt24/swiftcart/internal/domain"
	"github.com/Gunvolt24/swiftcart/pkg/metrics"
)

// commit — метрики и сохранение после изменения. Вызывается под s.mu.
func (s *Store) commit(ctx context.Context, op string) {
	metrics.CartOps.WithLabelValues(op).Inc()
	s.updateGauges()
	s.persist(ctx)
}

// persist — перезаписывает снимок корзины целиком.
// Ошибка записи не пробрасывается: состояние в памяти остаётся главным.
func (s *Store) persist(ctx context.Context) {
	if s.storage == nil {
		return
	}

	raw, err := domain.EncodeSnapshot(s.items)
	if err != nil {
		metrics.CartPersistFailures.Inc()
		s.log.Warnf(ctx, "encode cart failed, persistence skipped: %v", err)
		return
	}

	if err := s.storage.SetItem(ctx, s.key, raw); err != nil {
		metrics.CartPersistFailures.Inc()
		s.log.Warnf(ctx, "save cart key=%s failed, persistence skipped: %v", s.key, err)
	}
}

// notify — синхронно вызывает подписчиков в порядке подписки. Вызывается без s.mu.
func (s *Store) notify() {
	s.lmu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		fns = append(fns, l.fn)
	}
	s.lmu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// reset — заменяет содержимое и перестраивает индекс.
func (s *Store) reset(items []domain.LineItem) {
	s.items = items
	s.index = make(map[string]int, len(items))
	for i, it := range items {
		s.index[it.ID] = i
	}
}

// removeAt — удаляет позицию с сохранением порядка остальных.
func (s *Store) removeAt(pos int) {
	delete(s.index, s.items[pos].ID)
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
}

func (s *Store) totalQuantity() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

func (s *Store) updateGauges() {
	metrics.CartLineItems.Set(float64(len(s.items)))
	metrics.CartTotalQuantity.Set(float64(s.totalQuantity()))
}
