package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/appointment"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/metrics"
)

func bookAppointmentHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		date, err := parseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
			return
		}

		userID, _ := GetUserID(r.Context())
		appt, err := svc.Book(r.Context(), userID, appointment.BookInput{
			DoctorName:   req.DoctorName,
			HospitalName: req.HospitalName,
			Department:   req.Department,
			Date:         date,
			Time:         req.Time,
			Type:         req.Type,
			Notes:        req.Notes,
		})
		if err != nil {
			handleAppointmentError(w, err)
			return
		}

		metrics.RecordAppointmentBooked(string(appt.Type))
		writeJSON(w, http.StatusCreated, appt)
	}
}

func listAppointmentsHandler(svc *appointment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserID(r.Context())
		schedule, err := svc.List(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, ScheduleResponse{
			Upcoming: schedule.Upcoming,
			Past:     schedule.Past,
		})
	}
}

func handleAppointmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appointment.ErrMissingField):
		writeError(w, http.StatusBadRequest, "missing_field", err.Error())
	case errors.Is(err, health.ErrInvalidValue):
		writeError(w, http.StatusBadRequest, "invalid_value", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
