package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	checkoutsvc "github.com/gorravana/boutique-backend/internal/checkout"
	"github.com/gorravana/boutique-backend/pkg/db/models"
	pkgerrors "github.com/gorravana/boutique-backend/pkg/errors"
)

type stubCheckout struct {
	quoteFn  func(ctx context.Context, sessionID, region string) (*checkoutsvc.QuoteView, error)
	submitFn func(ctx context.Context, sessionID string, input checkoutsvc.SubmitInput) (*models.Order, error)
}

func (s *stubCheckout) Quote(ctx context.Context, sessionID, region string) (*checkoutsvc.QuoteView, error) {
	if s.quoteFn != nil {
		return s.quoteFn(ctx, sessionID, region)
	}
	return &checkoutsvc.QuoteView{}, nil
}

func (s *stubCheckout) Submit(ctx context.Context, sessionID string, input checkoutsvc.SubmitInput) (*models.Order, error) {
	if s.submitFn != nil {
		return s.submitFn(ctx, sessionID, input)
	}
	return &models.Order{}, nil
}

const submitBody = `{
	"customer_name": "Dana Cliente",
	"email": "dana@example.mx",
	"phone": "5512345678",
	"region": "Ciudad de México",
	"address": {
		"street": "Av. Insurgentes",
		"exterior": "1200",
		"colonia": "Del Valle",
		"city": "CDMX",
		"state": "Ciudad de México",
		"postal_code": "03100"
	}
}`

func TestCheckoutQuotePassesRegion(t *testing.T) {
	var gotRegion string
	svc := &stubCheckout{
		quoteFn: func(_ context.Context, sessionID, region string) (*checkoutsvc.QuoteView, error) {
			if sessionID != "sess-1" {
				t.Fatalf("unexpected session %q", sessionID)
			}
			gotRegion = region
			return &checkoutsvc.QuoteView{Total: decimal.NewFromInt(379)}, nil
		},
	}

	req := sessionRequest(http.MethodPost, "/api/v1/checkout/quote", `{"region":"Ciudad de México"}`)
	resp := httptest.NewRecorder()
	CheckoutQuote(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if gotRegion != "Ciudad de México" {
		t.Fatalf("region = %q", gotRegion)
	}
}

func TestCheckoutQuoteRequiresRegion(t *testing.T) {
	req := sessionRequest(http.MethodPost, "/api/v1/checkout/quote", `{}`)
	resp := httptest.NewRecorder()
	CheckoutQuote(&stubCheckout{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCheckoutSubmitCreatesOrder(t *testing.T) {
	svc := &stubCheckout{
		submitFn: func(_ context.Context, _ string, input checkoutsvc.SubmitInput) (*models.Order, error) {
			if input.CustomerName != "Dana Cliente" {
				t.Fatalf("customer = %q", input.CustomerName)
			}
			if input.Address.PostalCode != "03100" {
				t.Fatalf("postal code = %q", input.Address.PostalCode)
			}
			return &models.Order{Folio: "GV-20250901-0042"}, nil
		},
	}

	req := sessionRequest(http.MethodPost, "/api/v1/checkout", submitBody)
	resp := httptest.NewRecorder()
	CheckoutSubmit(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data struct {
			Folio string
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Folio != "GV-20250901-0042" {
		t.Fatalf("folio = %q", envelope.Data.Folio)
	}
}

func TestCheckoutSubmitRejectsBadEmail(t *testing.T) {
	body := `{
		"customer_name": "Dana",
		"email": "not-an-email",
		"phone": "5512345678",
		"region": "Ciudad de México",
		"address": {
			"street": "Av. Insurgentes",
			"exterior": "1200",
			"colonia": "Del Valle",
			"city": "CDMX",
			"state": "Ciudad de México",
			"postal_code": "03100"
		}
	}`
	req := sessionRequest(http.MethodPost, "/api/v1/checkout", body)
	resp := httptest.NewRecorder()
	CheckoutSubmit(&stubCheckout{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCheckoutSubmitMapsStateConflict(t *testing.T) {
	svc := &stubCheckout{
		submitFn: func(context.Context, string, checkoutsvc.SubmitInput) (*models.Order, error) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "insufficient stock")
		},
	}

	req := sessionRequest(http.MethodPost, "/api/v1/checkout", submitBody)
	resp := httptest.NewRecorder()
	CheckoutSubmit(svc, testLogger())(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}
