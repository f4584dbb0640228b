package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/gorravana/boutique-backend/api/middleware"
	cartsvc "github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/internal/catalog"
	"github.com/gorravana/boutique-backend/pkg/enums"
	"github.com/gorravana/boutique-backend/pkg/logger"
)

type memoryCartStore struct {
	lines map[string][]cartsvc.Line
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{lines: map[string][]cartsvc.Line{}}
}

func (s *memoryCartStore) Load(_ context.Context, sessionID string) ([]cartsvc.Line, error) {
	return s.lines[sessionID], nil
}

func (s *memoryCartStore) Save(_ context.Context, sessionID string, lines []cartsvc.Line) error {
	s.lines[sessionID] = lines
	return nil
}

func (s *memoryCartStore) Delete(_ context.Context, sessionID string) error {
	delete(s.lines, sessionID)
	return nil
}

// stubCatalog overrides only ResolveRef; the embedded interface panics on
// anything else, which is what we want in these tests.
type stubCatalog struct {
	catalog.Service
	product cartsvc.Product
	err     error
}

func (s *stubCatalog) ResolveRef(context.Context, string) (cartsvc.Product, error) {
	if s.err != nil {
		return cartsvc.Product{}, s.err
	}
	return s.product, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func sessionRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(middleware.WithSessionID(req.Context(), "sess-1"))
}

func addRouteParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

type cartEnvelope struct {
	Data struct {
		Cart struct {
			Lines      []cartsvc.Line  `json:"lines"`
			TotalItems int             `json:"total_items"`
			TotalPrice decimal.Decimal `json:"total_price"`
		} `json:"cart"`
		Event *cartsvc.Event `json:"event"`
	} `json:"data"`
}

func decodeCartEnvelope(t *testing.T, resp *httptest.ResponseRecorder) cartEnvelope {
	t.Helper()
	var envelope cartEnvelope
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return envelope
}

func TestCartAddCreatesLine(t *testing.T) {
	store := newMemoryCartStore()
	svc := cartsvc.NewService(store)
	cat := &stubCatalog{product: cartsvc.Product{
		ID:    "cap:00000000-0000-0000-0000-000000000001",
		Name:  "Gorra Clásica",
		Price: decimal.NewFromInt(349),
	}}

	req := sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"ref":"cap:00000000-0000-0000-0000-000000000001"}`)
	resp := httptest.NewRecorder()
	CartAdd(svc, cat, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	envelope := decodeCartEnvelope(t, resp)
	if envelope.Data.Cart.TotalItems != 1 {
		t.Fatalf("total_items = %d", envelope.Data.Cart.TotalItems)
	}
	if envelope.Data.Event == nil || envelope.Data.Event.Kind != enums.CartEventAdded {
		t.Fatalf("expected added event, got %+v", envelope.Data.Event)
	}
}

func TestCartAddRejectsInvalidBody(t *testing.T) {
	req := sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"nope":true}`)
	resp := httptest.NewRecorder()
	CartAdd(cartsvc.NewService(newMemoryCartStore()), &stubCatalog{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCartRemoveNotifiesEvenWhenAbsent(t *testing.T) {
	svc := cartsvc.NewService(newMemoryCartStore())

	req := sessionRequest(http.MethodDelete, "/api/v1/cart/items/cap:missing", "")
	req = addRouteParam(req, "ref", "cap:missing")
	resp := httptest.NewRecorder()
	CartRemove(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	envelope := decodeCartEnvelope(t, resp)
	if envelope.Data.Event == nil || envelope.Data.Event.Kind != enums.CartEventRemoved {
		t.Fatalf("removal must notify even for a no-op, got %+v", envelope.Data.Event)
	}
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	store := newMemoryCartStore()
	store.lines["sess-1"] = []cartsvc.Line{{
		Product:  cartsvc.Product{ID: "cap:a", Name: "Gorra", Price: decimal.NewFromInt(349)},
		Quantity: 2,
	}}
	svc := cartsvc.NewService(store)

	req := sessionRequest(http.MethodPatch, "/api/v1/cart/items/cap:a", `{"quantity":0}`)
	req = addRouteParam(req, "ref", "cap:a")
	resp := httptest.NewRecorder()
	CartUpdateQuantity(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	envelope := decodeCartEnvelope(t, resp)
	if len(envelope.Data.Cart.Lines) != 0 {
		t.Fatalf("quantity 0 must remove the line, got %d lines", len(envelope.Data.Cart.Lines))
	}
	if envelope.Data.Event == nil || envelope.Data.Event.Kind != enums.CartEventRemoved {
		t.Fatalf("quantity 0 must surface the removal, got %+v", envelope.Data.Event)
	}
}

func TestCartUpdateQuantityIsSilent(t *testing.T) {
	store := newMemoryCartStore()
	store.lines["sess-1"] = []cartsvc.Line{{
		Product:  cartsvc.Product{ID: "cap:a", Name: "Gorra", Price: decimal.NewFromInt(349)},
		Quantity: 2,
	}}
	svc := cartsvc.NewService(store)

	req := sessionRequest(http.MethodPatch, "/api/v1/cart/items/cap:a", `{"quantity":5}`)
	req = addRouteParam(req, "ref", "cap:a")
	resp := httptest.NewRecorder()
	CartUpdateQuantity(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	envelope := decodeCartEnvelope(t, resp)
	if envelope.Data.Cart.TotalItems != 5 {
		t.Fatalf("total_items = %d", envelope.Data.Cart.TotalItems)
	}
	if envelope.Data.Event != nil {
		t.Fatalf("plain quantity updates are silent, got %+v", envelope.Data.Event)
	}
}
