package controllers

import (
	"net/http"
	"strings"

	"github.com/gorravana/boutique-backend/api/middleware"
	"github.com/gorravana/boutique-backend/api/responses"
	"github.com/gorravana/boutique-backend/api/validators"
	"github.com/gorravana/boutique-backend/internal/catalog"
	wishlistsvc "github.com/gorravana/boutique-backend/internal/wishlist"
	"github.com/gorravana/boutique-backend/pkg/logger"
)

type wishlistToggleRequest struct {
	Ref string `json:"ref" validate:"required"`
}

type wishlistMutationResponse struct {
	Wishlist wishlistsvc.View  `json:"wishlist"`
	Event    wishlistsvc.Event `json:"event"`
}

// WishlistFetch returns the session's saved products.
func WishlistFetch(svc *wishlistsvc.Service, logg *logger.Logger) http.HandlerFunc {
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

// WishlistToggle flips the product's membership in the session wishlist.
func WishlistToggle(svc *wishlistsvc.Service, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())

		var payload wishlistToggleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.ResolveRef(r.Context(), strings.TrimSpace(payload.Ref))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, event, err := svc.Toggle(r.Context(), sessionID, product)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, wishlistMutationResponse{Wishlist: view, Event: event})
	}
}
