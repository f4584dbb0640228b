package controllers

import (
	"net/http"

	"github.com/gorravana/boutique-backend/api/middleware"
	"github.com/gorravana/boutique-backend/api/responses"
	"github.com/gorravana/boutique-backend/api/validators"
	checkoutsvc "github.com/gorravana/boutique-backend/internal/checkout"
	"github.com/gorravana/boutique-backend/internal/shipping"
	"github.com/gorravana/boutique-backend/pkg/logger"
	"github.com/gorravana/boutique-backend/pkg/types"
)

type checkoutQuoteRequest struct {
	Region string `json:"region" validate:"required"`
}

type checkoutAddress struct {
	Street     string  `json:"street" validate:"required,max=200"`
	Exterior   string  `json:"exterior" validate:"required,max=20"`
	Interior   *string `json:"interior,omitempty" validate:"omitempty,max=20"`
	Colonia    string  `json:"colonia" validate:"required,max=120"`
	City       string  `json:"city" validate:"required,max=120"`
	State      string  `json:"state" validate:"required,max=60"`
	PostalCode string  `json:"postal_code" validate:"required,len=5"`
	References *string `json:"references,omitempty" validate:"omitempty,max=300"`
}

type checkoutSubmitRequest struct {
	CustomerName string          `json:"customer_name" validate:"required,max=150"`
	Email        string          `json:"email" validate:"required,email"`
	Phone        string          `json:"phone" validate:"required,min=10,max=15"`
	Region       string          `json:"region" validate:"required"`
	Address      checkoutAddress `json:"address" validate:"required"`
	Notes        *string         `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ShippingRegions lists the regions the rate table knows, so the storefront
// can render the destination selector.
func ShippingRegions(calc *shipping.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{
			"regions":        calc.Regions(),
			"free_threshold": calc.FreeThreshold(),
		})
	}
}

// CheckoutQuote prices the session cart for a destination without touching
// stock or creating anything.
func CheckoutQuote(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())

		var payload checkoutQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.Quote(r.Context(), sessionID, payload.Region)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

// CheckoutSubmit turns the session cart into a persisted order.
func CheckoutSubmit(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.SessionIDFromContext(r.Context())

		var payload checkoutSubmitRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := checkoutsvc.SubmitInput{
			CustomerName: validators.SanitizeString(payload.CustomerName, 150),
			Email:        validators.SanitizeString(payload.Email, 254),
			Phone:        validators.SanitizeString(payload.Phone, 15),
			Region:       payload.Region,
			Address: types.Address{
				Street:     validators.SanitizeString(payload.Address.Street, 200),
				Exterior:   validators.SanitizeString(payload.Address.Exterior, 20),
				Interior:   payload.Address.Interior,
				Colonia:    validators.SanitizeString(payload.Address.Colonia, 120),
				City:       validators.SanitizeString(payload.Address.City, 120),
				State:      validators.SanitizeString(payload.Address.State, 60),
				PostalCode: payload.Address.PostalCode,
				References: payload.Address.References,
			},
			Notes: payload.Notes,
		}

		order, err := svc.Submit(r.Context(), sessionID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
