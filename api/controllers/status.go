package controllers

import (
	"net/http"

	"github.com/techstore3d/techstore-backend/api/responses"
	"github.com/techstore3d/techstore-backend/api/validators"
	statussvc "github.com/techstore3d/techstore-backend/internal/status"
	pkgerrors "github.com/techstore3d/techstore-backend/pkg/errors"
	"github.com/techstore3d/techstore-backend/pkg/logger"
)

type createStatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}

// StatusCreate records a diagnostic heartbeat from a named client.
func StatusCreate(svc statussvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "status service unavailable"))
			return
		}

		var payload createStatusCheckRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		check, err := svc.CreateCheck(r.Context(), payload.ClientName)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, check)
	}
}

// StatusList returns recorded heartbeats, bounded server-side.
func StatusList(svc statussvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "status service unavailable"))
			return
		}

		checks, err := svc.ListChecks(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, checks)
	}
}
