package api

import (
	"time"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
)

type RegisterRequest struct {
	Name              string                  `json:"name"`
	Email             string                  `json:"email"`
	Phone             string                  `json:"phone"`
	Password          string                  `json:"password"`
	AbhaID            string                  `json:"abhaId"`
	UserType          string                  `json:"userType"`
	PreferredLanguage string                  `json:"preferredLanguage"`
	DateOfBirth       string                  `json:"dateOfBirth"`
	Gender            string                  `json:"gender"`
	Address           string                  `json:"address"`
	EmergencyContact  health.EmergencyContact `json:"emergencyContact"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  health.User `json:"user"`
}

type UpdateProfileRequest struct {
	Name              *string                  `json:"name"`
	Email             *string                  `json:"email"`
	Phone             *string                  `json:"phone"`
	AbhaID            *string                  `json:"abhaId"`
	UserType          *string                  `json:"userType"`
	PreferredLanguage *string                  `json:"preferredLanguage"`
	DateOfBirth       *string                  `json:"dateOfBirth"`
	Gender            *string                  `json:"gender"`
	Address           *string                  `json:"address"`
	EmergencyContact  *health.EmergencyContact `json:"emergencyContact"`
}

type SetLanguageRequest struct {
	Language string `json:"language"`
}

type LanguageResponse struct {
	Language health.Language   `json:"language"`
	Strings  map[string]string `json:"strings,omitempty"`
}

type BookAppointmentRequest struct {
	DoctorName   string `json:"doctorName"`
	HospitalName string `json:"hospitalName"`
	Department   string `json:"department"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // HH:MM
	Type         string `json:"type"`
	Notes        string `json:"notes"`
}

type ScheduleResponse struct {
	Upcoming []health.Appointment `json:"upcoming"`
	Past     []health.Appointment `json:"past"`
}

type CreateRecordRequest struct {
	Type         string `json:"type"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DoctorName   string `json:"doctorName"`
	HospitalName string `json:"hospitalName"`
	Date         string `json:"date"` // YYYY-MM-DD
	NextFollowUp string `json:"nextFollowUp"`
}

type AddMedicationRequest struct {
	Name          string   `json:"name"`
	Dosage        string   `json:"dosage"`
	Frequency     string   `json:"frequency"`
	Duration      string   `json:"duration"`
	Instructions  string   `json:"instructions"`
	ReminderTimes []string `json:"reminderTimes"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatTurnResponse struct {
	UserMessage      health.ChatMessage `json:"userMessage"`
	AssistantMessage health.ChatMessage `json:"assistantMessage"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// parseDate accepts the date-only form the app sends, plus RFC3339 for
// API clients.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
