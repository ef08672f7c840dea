package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/alert"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
)

// listAlertsHandler returns the ranked active alerts, or every alert when
// ?all=true is set.
func listAlertsHandler(svc *alert.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserID(r.Context())

		list := svc.Active
		if r.URL.Query().Get("all") == "true" {
			list = svc.All
		}

		alerts, err := list(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		if alerts == nil {
			alerts = []health.HealthAlert{}
		}
		writeJSON(w, http.StatusOK, alerts)
	}
}

func markAlertReadHandler(svc *alert.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alertID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_alert_id", "id must be a valid UUID")
			return
		}

		userID, _ := GetUserID(r.Context())
		a, err := svc.MarkRead(r.Context(), userID, alertID)
		if err != nil {
			if errors.Is(err, alert.ErrAlertNotFound) {
				writeError(w, http.StatusNotFound, "alert_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}
