package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gorravana/boutique-backend/api/responses"
	"github.com/gorravana/boutique-backend/api/validators"
	"github.com/gorravana/boutique-backend/internal/auth"
	pkgerrors "github.com/gorravana/boutique-backend/pkg/errors"
	"github.com/gorravana/boutique-backend/pkg/logger"
)

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type adminVerifyRequest struct {
	AdminID uuid.UUID `json:"admin_id" validate:"required"`
	Code    string    `json:"code" validate:"required,len=6,numeric"`
}

// AdminLogin checks credentials and emails a one-time code.
func AdminLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload adminLoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		challenge, err := svc.Login(r.Context(), strings.ToLower(strings.TrimSpace(payload.Email)), payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, challenge)
	}
}

// AdminVerifyCode exchanges the emailed code for a session token.
func AdminVerifyCode(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload adminVerifyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.VerifyCode(r.Context(), payload.AdminID, payload.Code)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, session)
	}
}
