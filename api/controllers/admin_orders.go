package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gorravana/boutique-backend/api/responses"
	"github.com/gorravana/boutique-backend/api/validators"
	"github.com/gorravana/boutique-backend/internal/orders"
	"github.com/gorravana/boutique-backend/pkg/enums"
	pkgerrors "github.com/gorravana/boutique-backend/pkg/errors"
	"github.com/gorravana/boutique-backend/pkg/logger"
	"github.com/gorravana/boutique-backend/pkg/pagination"
)

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminListOrders returns one keyset page of orders, newest first.
func AdminListOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := orders.ListInput{
			Status: strings.TrimSpace(r.URL.Query().Get("status")),
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
			Limit:  limit,
		}

		result, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"orders":      result.Orders,
			"next_cursor": result.NextCursor,
		})
	}
}

// AdminOrderDetail loads one order with its line items, by id or folio.
func AdminOrderDetail(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "orderId")

		// Folios look like GV-20250901-0042; anything that is not a UUID is
		// treated as one.
		if id, err := pathUUID(r, "orderId"); err == nil {
			order, err := svc.Get(r.Context(), id)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, order)
			return
		}

		order, err := svc.GetByFolio(r.Context(), raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// AdminUpdateOrderStatus moves an order along its lifecycle.
func AdminUpdateOrderStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload orderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := parseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.UpdateStatus(r.Context(), id, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func parseOrderStatus(value string) (enums.OrderStatus, error) {
	status, err := enums.ParseOrderStatus(strings.TrimSpace(value))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status")
	}
	return status, nil
}

// AdminOrderCounts returns the per-status totals for the console dashboard.
func AdminOrderCounts(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.CountByStatus(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, counts)
	}
}
