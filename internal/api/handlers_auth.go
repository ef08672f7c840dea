package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/i18n"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/metrics"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/user"
)

func registerHandler(svc *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		u, token, err := svc.Register(r.Context(), user.RegisterInput{
			Name:              req.Name,
			Email:             req.Email,
			Phone:             req.Phone,
			Password:          req.Password,
			AbhaID:            req.AbhaID,
			UserType:          req.UserType,
			PreferredLanguage: req.PreferredLanguage,
			DateOfBirth:       req.DateOfBirth,
			Gender:            req.Gender,
			Address:           req.Address,
			EmergencyContact:  req.EmergencyContact,
		})
		if err != nil {
			handleUserError(w, err)
			return
		}

		metrics.RecordUserRegistered(string(u.UserType))
		writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: *u})
	}
}

func loginHandler(svc *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		u, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			handleUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: *u})
	}
}

func logoutHandler(svc *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserID(r.Context())
		if err := svc.Logout(r.Context(), userID); err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func getProfileHandler(svc *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserID(r.Context())
		u, err := svc.Profile(r.Context(), userID)
		if err != nil {
			handleUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

func updateProfileHandler(svc *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		userID, _ := GetUserID(r.Context())
		u, err := svc.UpdateProfile(r.Context(), userID, user.UpdateInput{
			Name:              req.Name,
			Email:             req.Email,
			Phone:             req.Phone,
			AbhaID:            req.AbhaID,
			UserType:          req.UserType,
			PreferredLanguage: req.PreferredLanguage,
			DateOfBirth:       req.DateOfBirth,
			Gender:            req.Gender,
			Address:           req.Address,
			EmergencyContact:  req.EmergencyContact,
		})
		if err != nil {
			handleUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

func getLanguageHandler(svc *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserID(r.Context())
		lang := svc.Language(r.Context(), userID)
		writeJSON(w, http.StatusOK, LanguageResponse{
			Language: lang,
			Strings:  i18n.Table(lang),
		})
	}
}

func setLanguageHandler(svc *user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetLanguageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		userID, _ := GetUserID(r.Context())
		lang, err := svc.SetLanguage(r.Context(), userID, req.Language)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_language", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, LanguageResponse{
			Language: lang,
			Strings:  i18n.Table(lang),
		})
	}
}

func handleUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrMissingField):
		writeError(w, http.StatusBadRequest, "missing_field", err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email_taken", err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, health.ErrInvalidValue):
		writeError(w, http.StatusBadRequest, "invalid_value", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
