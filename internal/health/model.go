package health

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidValue marks a value outside one of the closed enumerations.
var ErrInvalidValue = errors.New("invalid value")

type UserType string

const (
	UserMigrant   UserType = "migrant"
	UserLocal     UserType = "local"
	UserReturning UserType = "returning_indian"
	UserForeigner UserType = "foreigner"
)

func ParseUserType(raw string) (UserType, error) {
	switch UserType(raw) {
	case UserMigrant, UserLocal, UserReturning, UserForeigner:
		return UserType(raw), nil
	}
	return "", fmt.Errorf("%w: user type %q", ErrInvalidValue, raw)
}

type Language string

const (
	LangEnglish   Language = "en"
	LangMalayalam Language = "ml"
	LangHindi     Language = "hi"
	LangTamil     Language = "ta"
)

func ParseLanguage(raw string) (Language, error) {
	switch Language(raw) {
	case LangEnglish, LangMalayalam, LangHindi, LangTamil:
		return Language(raw), nil
	}
	return "", fmt.Errorf("%w: language %q", ErrInvalidValue, raw)
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func ParseGender(raw string) (Gender, error) {
	switch Gender(raw) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(raw), nil
	}
	return "", fmt.Errorf("%w: gender %q", ErrInvalidValue, raw)
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type User struct {
	ID                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	AbhaID            string           `json:"abhaId,omitempty"` // free-text national health id, not validated
	UserType          UserType         `json:"userType"`
	PreferredLanguage Language         `json:"preferredLanguage"`
	DateOfBirth       string           `json:"dateOfBirth,omitempty"`
	Gender            Gender           `json:"gender,omitempty"`
	Address           string           `json:"address,omitempty"`
	EmergencyContact  EmergencyContact `json:"emergencyContact"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

type AppointmentType string

const (
	AppointmentInPerson AppointmentType = "in-person"
	AppointmentVideo    AppointmentType = "video"
	AppointmentPhone    AppointmentType = "phone"
)

func ParseAppointmentType(raw string) (AppointmentType, error) {
	switch AppointmentType(raw) {
	case AppointmentInPerson, AppointmentVideo, AppointmentPhone:
		return AppointmentType(raw), nil
	}
	return "", fmt.Errorf("%w: appointment type %q", ErrInvalidValue, raw)
}

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no-show"
)

type Appointment struct {
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"userId"`
	DoctorName   string            `json:"doctorName"`
	HospitalName string            `json:"hospitalName"`
	Department   string            `json:"department,omitempty"`
	Date         time.Time         `json:"date"`
	Time         string            `json:"time"` // clock time as entered, e.g. "14:30"
	Type         AppointmentType   `json:"type"`
	Status       AppointmentStatus `json:"status"`
	Notes        string            `json:"notes,omitempty"`
	MeetingLink  string            `json:"meetingLink,omitempty"` // present iff Type is video
	CreatedAt    time.Time         `json:"createdAt"`
}

type RecordType string

const (
	RecordCheckup      RecordType = "checkup"
	RecordTest         RecordType = "test"
	RecordImmunization RecordType = "immunization"
	RecordConsultation RecordType = "consultation"
	RecordEmergency    RecordType = "emergency"
)

func ParseRecordType(raw string) (RecordType, error) {
	switch RecordType(raw) {
	case RecordCheckup, RecordTest, RecordImmunization, RecordConsultation, RecordEmergency:
		return RecordType(raw), nil
	}
	return "", fmt.Errorf("%w: record type %q", ErrInvalidValue, raw)
}

type RecordStatus string

const (
	RecordStatusCompleted RecordStatus = "completed"
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusCancelled RecordStatus = "cancelled"
)

type FileType string

const (
	FilePDF   FileType = "pdf"
	FileImage FileType = "image"
	FileDoc   FileType = "doc"
)

func ParseFileType(raw string) (FileType, error) {
	switch FileType(raw) {
	case FilePDF, FileImage, FileDoc:
		return FileType(raw), nil
	}
	return "", fmt.Errorf("%w: file type %q", ErrInvalidValue, raw)
}

type HealthFile struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Type       FileType  `json:"type"`
	Path       string    `json:"path"` // object storage key
	UploadedAt time.Time `json:"uploadedAt"`
}

type Medication struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Dosage        string    `json:"dosage"`
	Frequency     string    `json:"frequency"`
	Duration      string    `json:"duration"`
	Instructions  string    `json:"instructions,omitempty"`
	ReminderTimes []string  `json:"reminderTimes,omitempty"`
}

type HealthRecord struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"userId"`
	Type         RecordType   `json:"type"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	DoctorName   string       `json:"doctorName"`
	HospitalName string       `json:"hospitalName"`
	Date         time.Time    `json:"date"`
	Files        []HealthFile `json:"files"`
	Medications  []Medication `json:"medications"`
	NextFollowUp *time.Time   `json:"nextFollowUp,omitempty"`
	Status       RecordStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

type AlertType string

const (
	AlertMedication  AlertType = "medication"
	AlertAppointment AlertType = "appointment"
	AlertCheckup     AlertType = "checkup"
	AlertEmergency   AlertType = "emergency"
	AlertVaccination AlertType = "vaccination"
)

type AlertPriority string

const (
	PriorityLow    AlertPriority = "low"
	PriorityMedium AlertPriority = "medium"
	PriorityHigh   AlertPriority = "high"
	PriorityUrgent AlertPriority = "urgent"
)

// Rank orders priorities for display: urgent > high > medium > low.
// Unknown priorities rank below low so bad data sinks instead of surfacing.
func (p AlertPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type HealthAlert struct {
	ID           uuid.UUID     `json:"id"`
	UserID       uuid.UUID     `json:"userId"`
	Type         AlertType     `json:"type"`
	Title        string        `json:"title"`
	Message      string        `json:"message"`
	ScheduledFor time.Time     `json:"scheduledFor"`
	IsRead       bool          `json:"isRead"`
	Priority     AlertPriority `json:"priority"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Active reports whether the alert should surface: unread and already due.
func (a HealthAlert) Active(now time.Time) bool {
	return !a.IsRead && !a.ScheduledFor.After(now)
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
