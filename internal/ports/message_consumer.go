package ports

import "context"

// MessageConsumer — фоновый обработчик входящих сообщений.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}

// EventPublisher — фоновая публикация событий корзины.
// Notify вызывается синхронно после каждого изменения корзины и не должен блокироваться.
type EventPublisher interface {
	Notify()
	Run(ctx context.Context) error
	Close() error
}
