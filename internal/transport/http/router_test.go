package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/swiftcart/internal/cart"
	"github.com/Gunvolt24/swiftcart/internal/domain"
	"github.com/Gunvolt24/swiftcart/internal/ports/mocks"
	"github.com/Gunvolt24/swiftcart/internal/storage/memory"
	rest "github.com/Gunvolt24/swiftcart/internal/transport/http"
	"github.com/Gunvolt24/swiftcart/internal/usecase"
	"github.com/Gunvolt24/swiftcart/pkg/validate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type cartBody struct {
	Items         []domain.LineItem `json:"items"`
	TotalQuantity int               `json:"total_quantity"`
	TotalPrice    float64           `json:"total_price"`
	TotalDisplay  string            `json:"total_display"`
}

func newRouter(t *testing.T) (*mocks.MockCartService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCartService(ctrl)
	h := rest.NewHandler(svc, noopLogger{}, 0)
	return svc, rest.NewRouter(h, "", "")
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartBody {
	t.Helper()
	var got cartBody
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
	}
	return got
}

func sampleView() domain.CartView {
	return domain.CartView{
		Items: []domain.LineItem{
			{ID: "1", Title: "Bag", Price: 10.5, Quantity: 2},
		},
		TotalQuantity: 2,
		TotalPrice:    21,
	}
}

func TestGetCart_OK(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Cart(gomock.Any()).Return(sampleView())

	w := serve(r, http.MethodGet, "/api/cart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	got := decodeCart(t, w)
	if got.TotalQuantity != 2 || got.TotalPrice != 21 || got.TotalDisplay != "21.00" || len(got.Items) != 1 {
		t.Fatalf("unexpected body: %+v", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("X-Request-ID must be set")
	}
}

func TestGetCart_EmptyIsArray(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Cart(gomock.Any()).Return(domain.CartView{})

	w := serve(r, http.MethodGet, "/api/cart", "")
	want := `{"items":[],"total_quantity":0,"total_price":0,"total_display":"0.00"}`
	if strings.TrimSpace(w.Body.String()) != want {
		t.Fatalf("want %s, got %s", want, w.Body.String())
	}
}

func TestAddItem_OK(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().AddItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c domain.Candidate) (domain.CartView, error) {
			if domain.NormalizeID(c.ID) != "1" || c.Price != 10.5 || c.Image != "" {
				t.Errorf("unexpected candidate: %+v", c)
			}
			return sampleView(), nil
		})

	w := serve(r, http.MethodPost, "/api/cart/items", `{"id":1,"title":"Bag","price":"10.5","image":null}`)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestAddItem_InvalidJSON_400(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().AddItem(gomock.Any(), gomock.Any()).Times(0)

	for _, body := range []string{"{", `{"id":{"x":1},"title":"A","price":1}`} {
		w := serve(r, http.MethodPost, "/api/cart/items", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body=%s: want 400, got %d", body, w.Code)
		}
	}
}

func TestAddItem_ValidationError_400(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().AddItem(gomock.Any(), gomock.Any()).
		Return(domain.CartView{}, fmt.Errorf("%w: title обязателен", validate.ErrInvalidCandidate))

	w := serve(r, http.MethodPost, "/api/cart/items", `{"id":1,"title":"","price":1}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	var got map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if !strings.Contains(got["error"], "title") {
		t.Fatalf("unexpected error body: %v", got)
	}
}

func TestItemActions_UnknownIDIsOK(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().RemoveItem(gomock.Any(), "42").Return(sampleView(), false)
	svc.EXPECT().IncreaseQuantity(gomock.Any(), "42").Return(sampleView(), false)
	svc.EXPECT().DecreaseQuantity(gomock.Any(), "42").Return(sampleView(), false)

	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/api/cart/items/42"},
		{http.MethodPost, "/api/cart/items/42/increase"},
		{http.MethodPost, "/api/cart/items/42/decrease"},
	} {
		w := serve(r, tc.method, tc.path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s %s: want 200, got %d", tc.method, tc.path, w.Code)
		}
		if w.Header().Get("X-Cart-Changed") != "false" {
			t.Fatalf("%s %s: want X-Cart-Changed=false, got %q", tc.method, tc.path, w.Header().Get("X-Cart-Changed"))
		}
		if got := decodeCart(t, w); got.TotalQuantity != 2 {
			t.Fatalf("%s %s: cart must be returned unchanged, got %+v", tc.method, tc.path, got)
		}
	}
}

func TestIncrease_ChangedHeader(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().IncreaseQuantity(gomock.Any(), "7").Return(sampleView(), true)

	w := serve(r, http.MethodPost, "/api/cart/items/7/increase", "")
	if w.Code != http.StatusOK || w.Header().Get("X-Cart-Changed") != "true" {
		t.Fatalf("want 200 with X-Cart-Changed=true, got %d %q", w.Code, w.Header().Get("X-Cart-Changed"))
	}
}

// id с пробелами по краям доходит до корзины без изменений: позицию можно изменить и удалить.
func TestItemActions_IDWithSpaces(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := cart.NewStore(memory.NewStorage(0), "", noopLogger{})
	store.Initialize(context.Background())
	svc := usecase.NewCartService(store, noopLogger{}, validate.NewCandidateValidator())
	r := rest.NewRouter(rest.NewHandler(svc, noopLogger{}, 0), "", "")

	w := serve(r, http.MethodPost, "/api/cart/items", `{"id":" 7","title":"Shirt","price":22.3,"image":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("add: unexpected status %d body=%s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodPost, "/api/cart/items/%207/increase", "")
	if w.Header().Get("X-Cart-Changed") != "true" || decodeCart(t, w).TotalQuantity != 2 {
		t.Fatalf("increase must hit the item, got %q body=%s", w.Header().Get("X-Cart-Changed"), w.Body.String())
	}

	w = serve(r, http.MethodDelete, "/api/cart/items/%207", "")
	if w.Header().Get("X-Cart-Changed") != "true" || store.Len() != 0 {
		t.Fatalf("remove must hit the item, got %q len=%d", w.Header().Get("X-Cart-Changed"), store.Len())
	}
}

func TestClearCart_OK(t *testing.T) {
	svc, r := newRouter(t)
	svc.EXPECT().Clear(gomock.Any()).Return(domain.CartView{})

	w := serve(r, http.MethodDelete, "/api/cart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if got := decodeCart(t, w); len(got.Items) != 0 || got.TotalDisplay != "0.00" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestListItems_Pagination(t *testing.T) {
	svc, r := newRouter(t)

	gomock.InOrder(
		svc.EXPECT().Items(gomock.Any(), 20, 0).Return(nil),
		svc.EXPECT().Items(gomock.Any(), 5, 10).Return([]domain.LineItem{{ID: "11", Quantity: 1}}),
		svc.EXPECT().Items(gomock.Any(), 100, 0).Return(nil),
	)

	w := serve(r, http.MethodGet, "/api/cart/items", "")
	if strings.TrimSpace(w.Body.String()) != `{"items":[],"limit":20,"offset":0}` {
		t.Fatalf("unexpected default page: %s", w.Body.String())
	}

	w = serve(r, http.MethodGet, "/api/cart/items?limit=5&offset=10", "")
	if !strings.Contains(w.Body.String(), `"id":"11"`) {
		t.Fatalf("unexpected page: %s", w.Body.String())
	}

	// limit выше максимума зажимается
	w = serve(r, http.MethodGet, "/api/cart/items?limit=1000", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
}

func TestMethodNotAllowed_405(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodPut, "/api/cart/items/1/increase", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d", w.Code)
	}
	if w.Header().Get("Allow") != "POST" {
		t.Fatalf("want Allow: POST, got %q", w.Header().Get("Allow"))
	}
}

func TestNoRoute_404(t *testing.T) {
	_, r := newRouter(t)

	w := serve(r, http.MethodGet, "/no/such/route", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "route not found") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPing(t *testing.T) {
	_, r := newRouter(t)
	w := serve(r, http.MethodGet, "/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("unexpected /ping: %d %q", w.Code, w.Body.String())
	}
}
