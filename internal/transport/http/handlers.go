package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/swiftcart/internal/domain"
	"github.com/Gunvolt24/swiftcart/pkg/httpx"
	"github.com/Gunvolt24/swiftcart/pkg/validate"
)

// cartResponse — корзина для UI: позиции, агрегаты и готовая к показу сумма.
type cartResponse struct {
	Items         []domain.LineItem `json:"items"`
	TotalQuantity int               `json:"total_quantity"`
	TotalPrice    *float64          `json:"total_price"`
	TotalDisplay  string            `json:"total_display"`
}

const headerCartChanged = "X-Cart-Changed"

type itemsPage struct {
	Items  []domain.LineItem `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

func newCartResponse(v domain.CartView) cartResponse {
	items := v.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	return cartResponse{
		Items:         items,
		TotalQuantity: v.TotalQuantity,
		TotalPrice:    domain.JSONPrice(v.TotalPrice),
		TotalDisplay:  httpx.FormatMoney(v.TotalPrice),
	}
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, newCartResponse(h.service.Cart(c.Request.Context())))
}

func (h *Handler) listItems(c *gin.Context) {
	page := httpx.ParsePage(c, defaultItemsLimit, maxItemsLimit)
	items := h.service.Items(c.Request.Context(), page.Limit, page.Offset)
	if items == nil {
		items = []domain.LineItem{}
	}
	c.JSON(http.StatusOK, itemsPage{Items: items, Limit: page.Limit, Offset: page.Offset})
}

func (h *Handler) addItem(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var candidate domain.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		h.log.Warnf(c.Request.Context(), "add item: bad body err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	view, err := h.service.AddItem(c.Request.Context(), candidate)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, newCartResponse(view))
	case errors.Is(err, validate.ErrInvalidCandidate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Errorf(c.Request.Context(), "AddItem failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// removeItem, increaseQuantity, decreaseQuantity: неизвестный id — не ошибка, отдаём корзину как есть.
// Заголовок X-Cart-Changed говорит UI, изменилось ли что-нибудь.

func respondChanged(c *gin.Context, view domain.CartView, changed bool) {
	c.Header(headerCartChanged, strconv.FormatBool(changed))
	c.JSON(http.StatusOK, newCartResponse(view))
}

func (h *Handler) removeItem(c *gin.Context) {
	view, changed := h.service.RemoveItem(c.Request.Context(), httpx.PathID(c, "id"))
	respondChanged(c, view, changed)
}

func (h *Handler) increaseQuantity(c *gin.Context) {
	view, changed := h.service.IncreaseQuantity(c.Request.Context(), httpx.PathID(c, "id"))
	respondChanged(c, view, changed)
}

func (h *Handler) decreaseQuantity(c *gin.Context) {
	view, changed := h.service.DecreaseQuantity(c.Request.Context(), httpx.PathID(c, "id"))
	respondChanged(c, view, changed)
}

func (h *Handler) clearCart(c *gin.Context) {
	c.JSON(http.StatusOK, newCartResponse(h.service.Clear(c.Request.Context())))
}
