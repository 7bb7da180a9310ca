package domain

import "encoding/json"

// CommandOp — действие над корзиной, пришедшее из внешнего канала (Kafka).
type CommandOp string

const (
	OpAdd      CommandOp = "add"
	OpRemove   CommandOp = "remove"
	OpIncrease CommandOp = "increase"
	OpDecrease CommandOp = "decrease"
	OpClear    CommandOp = "clear"
)

// Command — сообщение с действием пользователя.
// Для add заполняется Product, для remove/increase/decrease — ID.
type Command struct {
	Op      CommandOp  `json:"op"`
	ID      any        `json:"id,omitempty"`
	Product *Candidate `json:"product,omitempty"`
}

// CartEvent — снимок корзины, публикуемый после каждого изменения.
type CartEvent struct {
	Type          string     `json:"type"`
	Items         []LineItem `json:"items"`
	TotalQuantity int        `json:"total_quantity"`
	TotalPrice    float64    `json:"total_price"`
	OccurredAt    string     `json:"occurred_at"`
}

// MarshalJSON — как у CartView: нечисловая сумма уходит в событие как null.
func (e CartEvent) MarshalJSON() ([]byte, error) {
	type plain CartEvent
	return json.Marshal(struct {
		plain
		TotalPrice *float64 `json:"total_price"`
	}{plain(e), JSONPrice(e.TotalPrice)})
}

// EventCartChanged — тип события об изменении корзины.
const EventCartChanged = "cart.changed"
