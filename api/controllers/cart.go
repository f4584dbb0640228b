package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gorravana/boutique-backend/api/middleware"
	"github.com/gorravana/boutique-backend/api/responses"
	"github.com/gorravana/boutique-backend/api/validators"
	cartsvc "github.com/gorravana/boutique-backend/internal/cart"
	"github.com/gorravana/boutique-backend/internal/catalog"
	pkgerrors "github.com/gorravana/boutique-backend/pkg/errors"
	"github.com/gorravana/boutique-backend/pkg/logger"
)

type cartAddRequest struct {
	Ref           string  `json:"ref" validate:"required"`
	SelectedColor *string `json:"selected_color,omitempty"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartMutationResponse pairs the updated cart with the notification the
// storefront shows for it. The event is omitted for silent mutations.
type cartMutationResponse struct {
	Cart  cartsvc.View   `json:"cart"`
	Event *cartsvc.Event `json:"event,omitempty"`
}

func newCartMutationResponse(view cartsvc.View, event cartsvc.Event, notify bool) cartMutationResponse {
	resp := cartMutationResponse{Cart: view}
	if notify && event.Kind != "" {
		resp.Event = &event
	}
	return resp
}

// CartFetch returns the session's current cart.
func CartFetch(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		view, err := svc.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CartAdd resolves the catalog ref and adds one unit to the session cart.
func CartAdd(svc *cartsvc.Service, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())

		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.ResolveRef(r.Context(), strings.TrimSpace(payload.Ref))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, event, err := svc.AddItem(r.Context(), sessionID, product, payload.SelectedColor)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartMutationResponse(view, event, true))
	}
}

// CartRemove drops every color variant of the referenced product. The
// notification fires even when the product was not in the cart.
func CartRemove(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		ref := chi.URLParam(r, "ref")
		if ref == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product ref is required"))
			return
		}

		view, event, err := svc.RemoveItem(r.Context(), sessionID, ref)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartMutationResponse(view, event, true))
	}
}

// CartUpdateQuantity sets the quantity of the first matching line. Zero and
// negative values remove the product and surface the removal notification;
// other updates stay silent.
func CartUpdateQuantity(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		ref := chi.URLParam(r, "ref")
		if ref == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product ref is required"))
			return
		}

		var payload cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, event, notify, err := svc.UpdateQuantity(r.Context(), sessionID, ref, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartMutationResponse(view, event, notify))
	}
}

// CartClear empties the session cart.
func CartClear(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())
		view, event, err := svc.Clear(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartMutationResponse(view, event, true))
	}
}
