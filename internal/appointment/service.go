// Package appointment handles booking and the upcoming/past dashboard view.
package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/store"
)

var ErrMissingField = errors.New("required field missing")

const meetingHost = "https://meet.kerala.health"

type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

type BookInput struct {
	DoctorName   string
	HospitalName string
	Department   string
	Date         time.Time
	Time         string
	Type         string
	Notes        string
}

// Book validates the form and appends a scheduled appointment to the user's
// collection. Video consultations get a generated meeting link; other types
// leave it empty.
func (s *Service) Book(ctx context.Context, userID uuid.UUID, in BookInput) (*health.Appointment, error) {
	if in.DoctorName == "" {
		return nil, fmt.Errorf("%w: doctorName", ErrMissingField)
	}
	if in.HospitalName == "" {
		return nil, fmt.Errorf("%w: hospitalName", ErrMissingField)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("%w: date", ErrMissingField)
	}
	if in.Time == "" {
		return nil, fmt.Errorf("%w: time", ErrMissingField)
	}

	apptType, err := health.ParseAppointmentType(in.Type)
	if err != nil {
		return nil, err
	}

	appt := health.Appointment{
		ID:           uuid.New(),
		UserID:       userID,
		DoctorName:   in.DoctorName,
		HospitalName: in.HospitalName,
		Department:   in.Department,
		Date:         in.Date,
		Time:         in.Time,
		Type:         apptType,
		Status:       health.AppointmentScheduled,
		Notes:        in.Notes,
		CreatedAt:    s.now(),
	}
	if apptType == health.AppointmentVideo {
		appt.MeetingLink = fmt.Sprintf("%s/%s", meetingHost, uuid.NewString())
	}

	key := store.UserKey(store.KeyAppointments, userID.String())
	appts := []health.Appointment{}
	if err := s.store.Read(ctx, key, &appts); err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}
	appts = append(appts, appt)
	if err := s.store.Write(ctx, key, appts); err != nil {
		return nil, fmt.Errorf("save appointments: %w", err)
	}

	return &appt, nil
}

// Schedule is the partitioned dashboard view.
type Schedule struct {
	Upcoming []health.Appointment
	Past     []health.Appointment
}

// List partitions the user's appointments into upcoming and past/completed
// as of now.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (*Schedule, error) {
	appts := []health.Appointment{}
	if err := s.store.Read(ctx, store.UserKey(store.KeyAppointments, userID.String()), &appts); err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	now := s.now()
	return &Schedule{
		Upcoming: health.UpcomingAppointments(appts, now),
		Past:     health.PastAppointments(appts, now),
	}, nil
}
