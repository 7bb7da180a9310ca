package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/swiftcart/config"
	"github.com/Gunvolt24/swiftcart/internal/cart"
	"github.com/Gunvolt24/swiftcart/internal/kafka"
	"github.com/Gunvolt24/swiftcart/internal/ports"
	rest "github.com/Gunvolt24/swiftcart/internal/transport/http"
	"github.com/Gunvolt24/swiftcart/internal/usecase"
	"github.com/Gunvolt24/swiftcart/pkg/logger"
	"github.com/Gunvolt24/swiftcart/pkg/metrics"
	"github.com/Gunvolt24/swiftcart/pkg/telemetry"
	"github.com/Gunvolt24/swiftcart/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, Kafka).
// KafkaConsumer, EventPublisher и MetricsServer могут быть nil — тогда они просто не запускаются.
type App struct {
	Logger          ports.Logger          // логгер
	Store           *cart.Store           // корзина
	HTTPServer      *http.Server          // HTTP-сервер
	MetricsServer   *http.Server          // отдельный сервер /metrics
	KafkaConsumer   ports.MessageConsumer // консьюмер команд корзины
	EventPublisher  ports.EventPublisher  // публикация снимков корзины
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Долговременное хранилище корзины (nil — хранилище выключено).
	storage, closeStorage, err := newStorage(ctx, &cfg.Storage, &cfg.Postgres, logg)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Корзина: загрузка сохранённого состояния до приёма запросов.
	store := cart.NewStore(storage, cfg.Storage.Key, logg)
	store.Initialize(ctx)

	cartService := usecase.NewCartService(store, logg, validate.NewCandidateValidator())

	// Публикация снимков после каждого изменения (если Kafka включена).
	var (
		publisher *kafka.SnapshotPublisher
		consumer  *kafka.Consumer
	)
	if cfg.Kafka.Enabled {
		publisher = kafka.NewSnapshotPublisher(&kafka.PublisherConfig{
			Brokers:        cfg.Kafka.Brokers,
			Topic:          cfg.Kafka.EventsTopic,
			Key:            store.Key(),
			PublishTimeout: cfg.Kafka.PublishTimeout,
			QueueSize:      cfg.Kafka.QueueSize,
		}, cartService, logg)

		consumer = kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.CommandsTopic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, cartService, logg)
	}

	unsubscribe := store.OnChange(func() {
		logg.Infof(ctx, "cart changed items=%d quantity=%d", len(store.Items()), store.TotalQuantity())
		if publisher != nil {
			publisher.Notify()
		}
	})

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(cartService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		Store:           store,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// /metrics доступен и на основном роутере; отдельный адрес — для scrape изнутри кластера.
	if addr := strings.TrimSpace(cfg.Metrics.Addr); addr != "" && addr != cfg.HTTP.Addr {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		app.MetricsServer = &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		}
	}

	// Интерфейсные поля остаются nil, если Kafka выключена.
	if consumer != nil {
		app.KafkaConsumer = consumer
	}
	if publisher != nil {
		app.EventPublisher = publisher
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		unsubscribe()
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", err)
			}
		}

		closeStorage()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и фоновые компоненты; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 4)

	// Фоновые компоненты останавливаются вместе с Run, даже если ctx ещё жив.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(runCtx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(runCtx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск публикации событий.
	if a.EventPublisher != nil {
		go func() {
			a.Logger.Infof(runCtx, "cart event publisher starting")
			if err := a.EventPublisher.Run(runCtx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(runCtx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if a.MetricsServer != nil {
		go func() {
			a.Logger.Infof(runCtx, "metrics server starting (addr=%s)", a.MetricsServer.Addr)
			if err := a.MetricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}
	cancel()

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gt)
	defer shutdownCancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// Остановка Kafka-компонентов
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}
	if a.EventPublisher != nil {
		if err := a.EventPublisher.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka publisher close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
