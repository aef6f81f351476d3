package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/YonatanCohen1020/nightwing-site/internal/cart"
	"github.com/YonatanCohen1020/nightwing-site/internal/catalog"
	"github.com/YonatanCohen1020/nightwing-site/internal/checkout"
	"github.com/YonatanCohen1020/nightwing-site/internal/combo"
	"github.com/YonatanCohen1020/nightwing-site/internal/geo"
	"github.com/YonatanCohen1020/nightwing-site/internal/session"
)

type noopSink struct{}

func (noopSink) Submit(ctx context.Context, order *checkout.Order) error { return nil }

type fixedLocator struct{}

func (fixedLocator) Locate(ctx context.Context, ip string) (*geo.Location, error) {
	return &geo.Location{Latitude: 32.0853, Longitude: 34.7818}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *session.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogService := catalog.NewService(catalog.NewInMemoryRepository(catalog.Seed()), nil)
	cartService := cart.NewService(cart.NewInMemoryRepository(), catalogService)
	comboService := combo.NewService(catalogService, cartService)
	checkoutService := checkout.NewService(cartService, noopSink{})

	tokens, err := session.NewTokenManager("test-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sessionService := session.NewService(tokens, session.NewInMemoryRepository())

	r := New(Handlers{
		Catalog:      catalog.NewHandler(catalogService),
		CatalogAdmin: catalog.NewAdminHandler(catalogService),
		Cart:         cart.NewHandler(cartService),
		Combo:        combo.NewHandler(comboService, cartService),
		Checkout:     checkout.NewHandler(checkoutService),
		Geo:          geo.NewHandler(fixedLocator{}),
		Session:      session.NewHandler(sessionService),

		Tokens:         tokens,
		AdminToken:     "admin-secret",
		AllowedOrigins: []string{"http://localhost:5173"},
	})
	return r, tokens
}

func TestHealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestMenuIsPublic(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Items []catalog.MenuItem `json:"items"`
		Dir   string             `json:"dir"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(resp.Items) == 0 {
		t.Fatalf("expected menu items")
	}
	if resp.Dir != "rtl" {
		t.Fatalf("expected default direction rtl, got %q", resp.Dir)
	}
}

func TestCartRequiresSession(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	body := bytes.NewBufferString(`{"isAvailable":false}`)
	req := httptest.NewRequest(http.MethodPatch, "/admin/menu/wings-1/availability", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}

// Full flow: open session, build a combo, check out.
func TestOrderFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	// Open a session
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/session", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 from /session, got %d", w.Code)
	}
	var sess struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sess); err != nil {
		t.Fatalf("invalid session response: %v", err)
	}

	authed := func(method, path string, payload any) *httptest.ResponseRecorder {
		var body *bytes.Buffer
		if payload != nil {
			raw, _ := json.Marshal(payload)
			body = bytes.NewBuffer(raw)
		} else {
			body = bytes.NewBuffer(nil)
		}
		req := httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+sess.Token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	// Add a combo
	rec := authed(http.MethodPost, "/cart/combo", map[string]any{
		"itemId":    "combo-1",
		"comboType": "wings",
		"sauces":    []string{"sauce-chili", "sauce-peanut"},
		"drink":     "drink-fanta",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 from /cart/combo, got %d: %s", rec.Code, rec.Body.String())
	}

	// Cart shows one line, total 65
	rec = authed(http.MethodGet, "/cart", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /cart, got %d", rec.Code)
	}
	var cartResp struct {
		Items []cart.Item `json:"items"`
		Total int         `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &cartResp); err != nil {
		t.Fatalf("invalid cart response: %v", err)
	}
	if len(cartResp.Items) != 1 || cartResp.Total != 65 {
		t.Fatalf("unexpected cart: %+v", cartResp)
	}

	// Checkout
	rec = authed(http.MethodPost, "/checkout", map[string]any{
		"customerName":  "Dana",
		"phoneNumber":   "050-0000000",
		"orderType":     "pickup",
		"paymentMethod": "cash",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /checkout, got %d: %s", rec.Code, rec.Body.String())
	}

	// Cart cleared
	rec = authed(http.MethodGet, "/cart", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &cartResp); err != nil {
		t.Fatalf("invalid cart response: %v", err)
	}
	if len(cartResp.Items) != 0 {
		t.Fatalf("expected empty cart after checkout, got %d items", len(cartResp.Items))
	}
}
