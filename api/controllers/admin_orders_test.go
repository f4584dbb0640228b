package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/gorravana/boutique-backend/internal/orders"
	"github.com/gorravana/boutique-backend/pkg/db/models"
	"github.com/gorravana/boutique-backend/pkg/enums"
)

// stubOrders overrides only what a test needs; the embedded interface panics
// on anything else.
type stubOrders struct {
	orders.Service
	listFn    func(ctx context.Context, input orders.ListInput) (*orders.ListResult, error)
	getFn     func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	byFolioFn func(ctx context.Context, folio string) (*models.Order, error)
	updateFn  func(ctx context.Context, id uuid.UUID, target enums.OrderStatus) (*models.Order, error)
}

func (s *stubOrders) List(ctx context.Context, input orders.ListInput) (*orders.ListResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubOrders) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrders) GetByFolio(ctx context.Context, folio string) (*models.Order, error) {
	return s.byFolioFn(ctx, folio)
}

func (s *stubOrders) UpdateStatus(ctx context.Context, id uuid.UUID, target enums.OrderStatus) (*models.Order, error) {
	return s.updateFn(ctx, id, target)
}

func TestAdminListOrdersMapsQueryParams(t *testing.T) {
	var got orders.ListInput
	svc := &stubOrders{
		listFn: func(_ context.Context, input orders.ListInput) (*orders.ListResult, error) {
			got = input
			return &orders.ListResult{NextCursor: "abc"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders?limit=5&status=pending&cursor=xyz", nil)
	resp := httptest.NewRecorder()
	AdminListOrders(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if got.Limit != 5 || got.Status != "pending" || got.Cursor != "xyz" {
		t.Fatalf("list input = %+v", got)
	}
}

func TestAdminListOrdersRejectsBadLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders?limit=zero", nil)
	resp := httptest.NewRecorder()
	AdminListOrders(&stubOrders{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestAdminOrderDetailByID(t *testing.T) {
	orderID := uuid.New()
	svc := &stubOrders{
		getFn: func(_ context.Context, id uuid.UUID) (*models.Order, error) {
			if id != orderID {
				t.Fatalf("unexpected id %s", id)
			}
			return &models.Order{ID: id, Folio: "GV-20250901-0042"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders/"+orderID.String(), nil)
	req = addRouteParam(req, "orderId", orderID.String())
	resp := httptest.NewRecorder()
	AdminOrderDetail(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAdminOrderDetailByFolio(t *testing.T) {
	svc := &stubOrders{
		byFolioFn: func(_ context.Context, folio string) (*models.Order, error) {
			if folio != "GV-20250901-0042" {
				t.Fatalf("unexpected folio %q", folio)
			}
			return &models.Order{Folio: folio}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders/GV-20250901-0042", nil)
	req = addRouteParam(req, "orderId", "GV-20250901-0042")
	resp := httptest.NewRecorder()
	AdminOrderDetail(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	orderID := uuid.New()
	svc := &stubOrders{
		updateFn: func(_ context.Context, id uuid.UUID, target enums.OrderStatus) (*models.Order, error) {
			if id != orderID || target != enums.OrderStatusConfirmed {
				t.Fatalf("update called with id=%s target=%s", id, target)
			}
			return &models.Order{ID: id, Status: target}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/orders/"+orderID.String()+"/status", strings.NewReader(`{"status":"confirmed"}`))
	req = addRouteParam(req, "orderId", orderID.String())
	resp := httptest.NewRecorder()
	AdminUpdateOrderStatus(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAdminUpdateOrderStatusRejectsUnknown(t *testing.T) {
	orderID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/orders/"+orderID.String()+"/status", strings.NewReader(`{"status":"teleported"}`))
	req = addRouteParam(req, "orderId", orderID.String())
	resp := httptest.NewRecorder()
	AdminUpdateOrderStatus(&stubOrders{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
