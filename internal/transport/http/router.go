package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/swiftcart/internal/ports"
	"github.com/Gunvolt24/swiftcart/pkg/httpx"
)

const (
	defaultItemsLimit = 20
	maxItemsLimit     = 100
	maxBodyBytes      = 1 << 20
)

// Handler — HTTP-обработчики корзины (слой UI-событий: кнопки add/remove/+/−/clear).
type Handler struct {
	service        ports.CartService
	log            ports.Logger
	handlerTimeout time.Duration
}

// NewHandler — handlerTimeout <= 0 отключает таймаут запроса.
func NewHandler(service ports.CartService, log ports.Logger, handlerTimeout time.Duration) *Handler {
	return &Handler{service: service, log: log, handlerTimeout: handlerTimeout}
}

// NewRouter — gin-роутер со служебными маршрутами, API корзины и (опционально) статикой витрины.
// Пустой otelServiceName отключает otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/cart", h.withTimeout)
	{
		api.GET("", h.getCart)
		api.DELETE("", h.clearCart)
		api.GET("/items", h.listItems)
		api.POST("/items", h.addItem)
		api.DELETE("/items/:id", h.removeItem)
		api.POST("/items/:id/increase", h.increaseQuantity)
		api.POST("/items/:id/decrease", h.decreaseQuantity)
	}

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// withTimeout — ограничивает время обработки запроса (в т.ч. запись в хранилище).
func (h *Handler) withTimeout(c *gin.Context) {
	if h.handlerTimeout <= 0 {
		c.Next()
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.handlerTimeout)
	defer cancel()
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}
