package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/Gunvolt24/swiftcart/internal/domain"
	"github.com/Gunvolt24/swiftcart/internal/ports"
	"github.com/Gunvolt24/swiftcart/pkg/metrics"
)

// DefaultStorageKey — ключ, под которым корзина лежит в долговременном хранилище.
const DefaultStorageKey = "swiftcraft_cart_v1"

// Проверка, что Store удовлетворяет интерфейсу CartStore.
var _ ports.CartStore = (*Store)(nil)

type listener struct {
	id int
	fn func()
}

// Store — единственный источник правды о содержимом корзины.
// Каждое изменение целиком сохраняется в storage и затем синхронно оповещает подписчиков.
// Если storage == nil, корзина живёт только в памяти.
type Store struct {
	storage ports.KeyValueStorage
	key     string
	log     ports.Logger

	mu     sync.RWMutex
	items  []domain.LineItem
	index  map[string]int // нормализованный id -> позиция в items
	loaded bool

	lmu       sync.Mutex
	listeners []listener
	nextID    int
}

// NewStore — конструктор. Пустой key заменяется на DefaultStorageKey.
func NewStore(storage ports.KeyValueStorage, key string, log ports.Logger) *Store {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Store{
		storage: storage,
		key:     key,
		log:     log,
		index:   make(map[string]int),
	}
}

// Key — ключ корзины в хранилище.
func (s *Store) Key() string { return s.key }

// OnChange — подписка на изменения. Колбэк вызывается без аргументов после сохранения;
// он может читать Store, но не должен вызывать изменяющие методы.
func (s *Store) OnChange(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Initialize — загрузка сохранённой корзины. Выполняется один раз; повторные вызовы ничего не делают.
// Отсутствующий ключ, битый JSON, не-массив или выключенное хранилище дают пустую корзину.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return
	}
	s.loaded = true
	s.reset(nil)
	metrics.CartOps.WithLabelValues("load").Inc()

	if s.storage == nil {
		s.log.Infof(ctx, "cart storage disabled, using in-memory cart")
		return
	}

	raw, err := s.storage.GetItem(ctx, s.key)
	switch {
	case errors.Is(err, ports.ErrKeyNotFound):
		s.log.Infof(ctx, "no saved cart under key=%s, starting empty", s.key)
		return
	case err != nil:
		s.log.Warnf(ctx, "read saved cart key=%s failed, starting empty: %v", s.key, err)
		return
	}

	items, err := domain.DecodeSnapshot(raw)
	if err != nil {
		s.log.Warnf(ctx, "saved cart key=%s is unreadable, starting empty: %v", s.key, err)
		return
	}

	s.reset(items)
	s.updateGauges()
	s.log.Infof(ctx, "cart restored key=%s items=%d", s.key, len(s.items))
}

// AddItem — +1 к существующей позиции с тем же id или новая позиция с quantity=1.
func (s *Store) AddItem(ctx context.Context, candidate domain.Candidate) {
	id := domain.NormalizeID(candidate.ID)

	s.mu.Lock()
	if pos, ok := s.index[id]; ok {
		s.items[pos].Quantity++
	} else {
		s.index[id] = len(s.items)
		s.items = append(s.items, domain.LineItem{
			ID:       id,
			Title:    candidate.Title,
			Price:    candidate.Price,
			Image:    candidate.Image,
			Quantity: 1,
		})
	}
	s.commit(ctx, "add")
	s.mu.Unlock()

	s.notify()
}

// RemoveItem — удаляет позицию; отсутствие позиции не ошибка.
// Сохранение и оповещение выполняются в любом случае.
func (s *Store) RemoveItem(ctx context.Context, id any) bool {
	key := domain.NormalizeID(id)

	s.mu.Lock()
	_, found := s.index[key]
	if found {
		s.removeAt(s.index[key])
	}
	s.commit(ctx, "remove")
	s.mu.Unlock()

	s.notify()
	return found
}

// IncreaseQuantity — +1 к позиции; неизвестный id — ничего не происходит.
func (s *Store) IncreaseQuantity(ctx context.Context, id any) bool {
	key := domain.NormalizeID(id)

	s.mu.Lock()
	pos, ok := s.index[key]
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.items[pos].Quantity++
	s.commit(ctx, "increase")
	s.mu.Unlock()

	s.notify()
	return true
}

// DecreaseQuantity — -1 к позиции; при quantity <= 0 позиция удаляется целиком.
func (s *Store) DecreaseQuantity(ctx context.Context, id any) bool {
	key := domain.NormalizeID(id)

	s.mu.Lock()
	pos, ok := s.index[key]
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.items[pos].Quantity--
	if s.items[pos].Quantity <= 0 {
		s.removeAt(pos)
	}
	s.commit(ctx, "decrease")
	s.mu.Unlock()

	s.notify()
	return true
}

// Clear — очищает корзину и сохраняет пустое состояние.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.reset(nil)
	s.commit(ctx, "clear")
	s.mu.Unlock()

	s.notify()
}

// Items — копия позиций в порядке добавления.
func (s *Store) Items() []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.LineItem(nil), s.items...)
}

// Len — количество различных позиций.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// TotalQuantity — сумма количеств (0 для пустой корзины).
func (s *Store) TotalQuantity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalQuantity()
}

// TotalPrice — сумма price × quantity без округления.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, it := range s.items {
		total += it.Subtotal()
	}
	return total
}
