package httpx

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Page — окно списка позиций корзины.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage — limit/offset из query. limit приводится к [1, maxLimit] (в том числе дефолтный),
// нечисловой limit → defaultLimit, нечисловой или отрицательный offset → 0.
func ParsePage(c *gin.Context, defaultLimit, maxLimit int) Page {
	p := Page{Limit: clamp(defaultLimit, 1, maxLimit)}

	if raw, ok := c.GetQuery("limit"); ok {
		if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			p.Limit = clamp(v, 1, maxLimit)
		}
	}
	if raw, ok := c.GetQuery("offset"); ok {
		if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && v >= 0 {
			p.Offset = v
		}
	}
	return p
}

// PathID — id позиции из пути как есть: сопоставление id делает только корзина.
func PathID(c *gin.Context, name string) string {
	return c.Param(name)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
