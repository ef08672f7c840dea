package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/metrics"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/record"
)

// maxUploadBytes caps record file uploads at 10 MiB.
const maxUploadBytes = 10 << 20

func createRecordHandler(svc *record.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		date, err := parseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
			return
		}
		var followUp *time.Time
		if req.NextFollowUp != "" {
			t, err := parseDate(req.NextFollowUp)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_date", "nextFollowUp must be YYYY-MM-DD")
				return
			}
			followUp = &t
		}

		userID, _ := GetUserID(r.Context())
		rec, err := svc.Create(r.Context(), userID, record.CreateInput{
			Type:         req.Type,
			Title:        req.Title,
			Description:  req.Description,
			DoctorName:   req.DoctorName,
			HospitalName: req.HospitalName,
			Date:         date,
			NextFollowUp: followUp,
		})
		if err != nil {
			handleRecordError(w, err)
			return
		}

		metrics.RecordHealthRecordCreated(string(rec.Type))
		writeJSON(w, http.StatusCreated, rec)
	}
}

// listRecordsHandler serves both the plain listing and the dashboard search
// via the q and type query parameters.
func listRecordsHandler(svc *record.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserID(r.Context())

		q := r.URL.Query().Get("q")
		typeFilter := r.URL.Query().Get("type")

		var (
			recs []health.HealthRecord
			err  error
		)
		if q == "" && (typeFilter == "" || typeFilter == "all") {
			recs, err = svc.List(r.Context(), userID)
		} else {
			recs, err = svc.Search(r.Context(), userID, q, typeFilter)
		}
		if err != nil {
			handleRecordError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

func addMedicationHandler(svc *record.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_record_id", "id must be a valid UUID")
			return
		}

		var req AddMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		userID, _ := GetUserID(r.Context())
		med, err := svc.AddMedication(r.Context(), userID, recordID, record.MedicationInput{
			Name:          req.Name,
			Dosage:        req.Dosage,
			Frequency:     req.Frequency,
			Duration:      req.Duration,
			Instructions:  req.Instructions,
			ReminderTimes: req.ReminderTimes,
		})
		if err != nil {
			handleRecordError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, med)
	}
}

func uploadFileHandler(svc *record.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_record_id", "id must be a valid UUID")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_upload", "expected multipart form with a file field")
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_upload", "file field is required")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_upload", "could not read file")
			return
		}

		userID, _ := GetUserID(r.Context())
		f, err := svc.UploadFile(r.Context(), userID, recordID, header.Filename, data)
		if err != nil {
			handleRecordError(w, err)
			return
		}

		metrics.RecordFileUploaded(string(f.Type))
		writeJSON(w, http.StatusCreated, f)
	}
}

func downloadFileHandler(svc *record.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_file_id", "id must be a valid UUID")
			return
		}

		userID, _ := GetUserID(r.Context())
		body, f, err := svc.DownloadFile(r.Context(), userID, fileID)
		if err != nil {
			handleRecordError(w, err)
			return
		}
		defer body.Close()

		w.Header().Set("Content-Disposition", `attachment; filename="`+f.Name+`"`)
		w.Header().Set("Content-Type", "application/octet-stream")
		if _, err := io.Copy(w, body); err != nil {
			// Headers already sent, nothing left to do but log.
			logCopyError(r, err)
		}
	}
}

func logCopyError(r *http.Request, err error) {
	// Client disconnects are routine during downloads.
	if r.Context().Err() != nil {
		return
	}
	log.Printf("stream file %s: %v", r.URL.Path, err)
}

func handleRecordError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, record.ErrMissingField):
		writeError(w, http.StatusBadRequest, "missing_field", err.Error())
	case errors.Is(err, health.ErrInvalidValue):
		writeError(w, http.StatusBadRequest, "invalid_value", err.Error())
	case errors.Is(err, record.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "record_not_found", err.Error())
	case errors.Is(err, record.ErrFileNotFound):
		writeError(w, http.StatusNotFound, "file_not_found", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
