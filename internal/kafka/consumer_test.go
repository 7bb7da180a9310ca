package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/swiftcart/internal/kafka/mocks"
	"github.com/Gunvolt24/swiftcart/pkg/ctxmeta"
	"github.com/Gunvolt24/swiftcart/pkg/validate"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

var testReaderConfig = kafka.ReaderConfig{Topic: "cart-commands", GroupID: "g1", Brokers: []string{"b:9092"}}

func newTestConsumer(r reader, h messageHandler) *Consumer {
	return &Consumer{
		reader:         r,
		handler:        h,
		log:            nopLogger{},
		processTimeout: 30 * time.Millisecond,
		backoff:        newBackoff(5*time.Millisecond, 10*time.Millisecond, 1),
	}
}

// blockUntilCancel — следующий FetchMessage висит до отмены контекста.
func blockUntilCancel(r *mocks.Mockreader) {
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
}

// runBriefly — запускает Run, даёт ему обработать первое сообщение и отменяет контекст.
func runBriefly(t *testing.T, c *Consumer) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for Run to stop")
	}
}

// Исход обработки определяет, коммитится ли оффсет.
func TestRun_CommitDependsOnOutcome(t *testing.T) {
	cases := []struct {
		name       string
		handlerErr error
		commit     bool
	}{
		{name: "applied", handlerErr: nil, commit: true},
		{name: "invalid command is skipped", handlerErr: validate.ErrInvalidCommand, commit: true},
		{name: "wrapped invalid command is skipped", handlerErr: errors.Join(errors.New("decode"), validate.ErrInvalidCommand), commit: true},
		{name: "temporary failure is redelivered", handlerErr: context.DeadlineExceeded, commit: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := mocks.NewMockreader(ctrl)
			h := mocks.NewMockmessageHandler(ctrl)

			r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
			r.EXPECT().FetchMessage(gomock.Any()).
				Return(kafka.Message{Offset: 1, Value: []byte(`{"op":"clear"}`)}, nil)
			h.EXPECT().HandleMessage(gomock.Any(), []byte(`{"op":"clear"}`)).Return(tc.handlerErr)
			if tc.commit {
				r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
			}
			// без EXPECT на CommitMessages лишний коммит упадёт как unexpected call
			blockUntilCancel(r)

			runBriefly(t, newTestConsumer(r, h))
		})
	}
}

// Ошибка коммита не останавливает цикл.
func TestRun_CommitErrorIsOnlyLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	gomock.InOrder(
		r.EXPECT().FetchMessage(gomock.Any()).
			Return(kafka.Message{Offset: 3, Value: []byte(`{"op":"clear"}`)}, nil),
		r.EXPECT().FetchMessage(gomock.Any()).
			Return(kafka.Message{Offset: 4, Value: []byte(`{"op":"clear"}`)}, nil),
	)
	h.EXPECT().HandleMessage(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(errors.New("temporary")).Times(2)
	blockUntilCancel(r)

	runBriefly(t, newTestConsumer(r, h))
}

// Ошибки FetchMessage повторяются; по истечении контекста Run выходит.
func TestRun_FetchErrorRetriedUntilDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).
		Return(kafka.Message{}, errors.New("broker error")).MinTimes(2)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	if err := newTestConsumer(r, h).Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

// Команда видит источник kafka и request_id из заголовка.
func TestRun_MessageContextCarriesMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	h := mocks.NewMockmessageHandler(ctrl)

	r.EXPECT().Config().Return(testReaderConfig).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{
		Offset:  9,
		Value:   []byte(`{"op":"clear"}`),
		Headers: []kafka.Header{{Key: headerRequestID, Value: []byte("ui-42")}},
	}, nil)

	var gotRID, gotSource string
	h.EXPECT().HandleMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []byte) error {
			gotRID, _ = ctxmeta.RequestIDFromContext(ctx)
			gotSource, _ = ctxmeta.SourceFromContext(ctx)
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("handler context must carry process timeout")
			}
			return nil
		})
	r.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil)
	blockUntilCancel(r)

	runBriefly(t, newTestConsumer(r, h))

	if gotRID != "ui-42" || gotSource != ctxmeta.SourceKafka {
		t.Fatalf("unexpected meta: request_id=%q source=%q", gotRID, gotSource)
	}
}

func TestMessageContext_FallbackRequestID(t *testing.T) {
	ctx := messageContext(context.Background(), "cart-commands", &kafka.Message{Partition: 2, Offset: 17})

	if rid, _ := ctxmeta.RequestIDFromContext(ctx); rid != "cart-commands/2/17" {
		t.Fatalf("want request_id from message coordinates, got %q", rid)
	}
}

func TestClose_Once(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)

	closeErr := errors.New("already closing")
	r.EXPECT().Close().Return(closeErr).Times(1)

	c := newTestConsumer(r, nil)
	if err := c.Close(); !errors.Is(err, closeErr) {
		t.Fatalf("first Close must return reader error, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close must be no-op, got %v", err)
	}
}
