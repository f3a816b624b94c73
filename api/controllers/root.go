package controllers

import (
	"net/http"

	"github.com/techstore3d/techstore-backend/api/responses"
)

// APIRoot reports a small service banner so frontends and probes can confirm
// they reached the right API.
func APIRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"message": "TechStore 3D API",
		})
	}
}
