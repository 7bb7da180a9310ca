package app_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/swiftcart/config"
	"github.com/Gunvolt24/swiftcart/internal/app"
	"github.com/Gunvolt24/swiftcart/internal/ports/mocks"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

var errBroker = errors.New("broker unavailable")

// фейковый фоновый компонент, который ждёт отмены контекста
type fakeRunner struct {
	runCalls   int32
	closeCalls int32
}

func (f *fakeRunner) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	<-ctx.Done()
	return ctx.Err()
}
func (f *fakeRunner) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

// фейковый публикатор: Notify не нужен в Run, но входит в контракт
type fakePublisher struct {
	fakeRunner
	notifies int32
}

func (f *fakePublisher) Notify() { atomic.AddInt32(&f.notifies, 1) }

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	fc := &fakeRunner{}
	fp := &fakePublisher{}
	a := &app.App{
		Logger:         nopLogger{},
		HTTPServer:     srv,
		KafkaConsumer:  fc,
		EventPublisher: fp,
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if atomic.LoadInt32(&fc.runCalls) == 0 || atomic.LoadInt32(&fp.runCalls) == 0 {
		t.Fatalf("consumer.Run and publisher.Run should be called")
	}
	if atomic.LoadInt32(&fc.closeCalls) == 0 || atomic.LoadInt32(&fp.closeCalls) == 0 {
		t.Fatalf("consumer.Close and publisher.Close should be called")
	}
}

// Фоновая ошибка консьюмера останавливает всё приложение, не дожидаясь отмены контекста.
func TestAppRun_BackgroundErrorStopsApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logg := mocks.NewMockLogger(ctrl)
	logg.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	logg.EXPECT().Warnf(gomock.Any(), "background error: %v", gomock.Any()).Times(1)

	consumer := mocks.NewMockMessageConsumer(ctrl)
	consumer.EXPECT().Run(gomock.Any()).Return(errBroker)
	consumer.EXPECT().Close().Return(nil)

	publisher := mocks.NewMockEventPublisher(ctrl)
	publisher.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}).AnyTimes()
	publisher.EXPECT().Close().Return(nil)

	a := &app.App{
		Logger:         logg,
		HTTPServer:     &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		KafkaConsumer:  consumer,
		EventPublisher: publisher,
	}

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not stop after background error")
	}
}

// Без Kafka приложение работает только с HTTP.
func TestAppRun_WithoutKafka(t *testing.T) {
	a := &app.App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func testConfig(t *testing.T, dir string) *config.Config {
	t.Helper()

	c, err := config.LoadWithPrefix("CART_TEST_BOOTSTRAP")
	if err != nil {
		t.Fatalf("LoadWithPrefix: %v", err)
	}
	c.HTTP.Addr = "127.0.0.1:0"
	c.HTTP.GinMode = "test"
	c.HTTP.StaticDir = ""
	c.Metrics.Addr = ""
	c.Storage.Backend = app.BackendFile
	c.Storage.Dir = dir
	c.Kafka.Enabled = false
	return c
}

func TestBootstrap_FileStorage_CartSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	a1, cleanup1, err := app.Bootstrap(ctx, testConfig(t, dir))
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if a1.KafkaConsumer != nil || a1.EventPublisher != nil || a1.MetricsServer != nil {
		t.Fatalf("kafka and metrics server must be disabled: %+v", a1)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"id":7,"title":"Backpack","price":109.95,"image":"bag.png"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a1.HTTPServer.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("add item: want 200, got %d body=%s", w.Code, w.Body.String())
	}
	cleanup1()

	a2, cleanup2, err := app.Bootstrap(ctx, testConfig(t, dir))
	if err != nil {
		t.Fatalf("Bootstrap again: %v", err)
	}
	defer cleanup2()

	items := a2.Store.Items()
	if len(items) != 1 || items[0].ID != "7" || items[0].Quantity != 1 {
		t.Fatalf("cart must be restored from disk, got %+v", items)
	}
}

func TestBootstrap_DisabledStorage(t *testing.T) {
	c := testConfig(t, t.TempDir())
	c.Storage.Enabled = false

	a, cleanup, err := app.Bootstrap(context.Background(), c)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	defer cleanup()

	if a.Store.Len() != 0 {
		t.Fatalf("cart must start empty, got %d items", a.Store.Len())
	}
}

func TestBootstrap_UnknownBackend(t *testing.T) {
	c := testConfig(t, t.TempDir())
	c.Storage.Backend = "redis"

	if _, _, err := app.Bootstrap(context.Background(), c); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestBootstrap_SeparateMetricsServer(t *testing.T) {
	c := testConfig(t, t.TempDir())
	c.Storage.Backend = app.BackendMemory
	c.Metrics.Addr = "127.0.0.1:0"

	a, cleanup, err := app.Bootstrap(context.Background(), c)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	defer cleanup()

	if a.MetricsServer == nil {
		t.Fatalf("metrics server expected when METRICS_ADDR differs from HTTP_ADDR")
	}
	w := httptest.NewRecorder()
	a.MetricsServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "cart_operations_total") {
		t.Fatalf("unexpected /metrics response: %d", w.Code)
	}
}
