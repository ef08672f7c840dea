package appointment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/store"
)

func validBooking() BookInput {
	return BookInput{
		DoctorName:   "Dr. Nair",
		HospitalName: "General Hospital Ernakulam",
		Department:   "Cardiology",
		Date:         time.Now().Add(48 * time.Hour),
		Time:         "10:30",
		Type:         "in-person",
	}
}

func TestBookVideoGeneratesMeetingLink(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()
	uid := uuid.New()

	in := validBooking()
	in.Type = "video"
	appt, err := svc.Book(ctx, uid, in)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if appt.MeetingLink == "" {
		t.Fatal("video appointment has no meeting link")
	}
	if !strings.HasPrefix(appt.MeetingLink, meetingHost) {
		t.Fatalf("unexpected meeting link %q", appt.MeetingLink)
	}

	in = validBooking()
	appt, err = svc.Book(ctx, uid, in)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if appt.MeetingLink != "" {
		t.Fatal("in-person appointment got a meeting link")
	}
}

func TestBookValidation(t *testing.T) {
	svc := NewService(store.NewMemoryStore())

	tests := []struct {
		name   string
		mutate func(*BookInput)
	}{
		{"missing doctor", func(in *BookInput) { in.DoctorName = "" }},
		{"missing hospital", func(in *BookInput) { in.HospitalName = "" }},
		{"missing date", func(in *BookInput) { in.Date = time.Time{} }},
		{"missing time", func(in *BookInput) { in.Time = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validBooking()
			tt.mutate(&in)
			_, err := svc.Book(context.Background(), uuid.New(), in)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
		})
	}

	t.Run("bad type", func(t *testing.T) {
		in := validBooking()
		in.Type = "hologram"
		if _, err := svc.Book(context.Background(), uuid.New(), in); err == nil {
			t.Fatal("expected enum error")
		}
	})
}

func TestBookingStatusStartsScheduled(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	appt, err := svc.Book(context.Background(), uuid.New(), validBooking())
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if appt.Status != health.AppointmentScheduled {
		t.Fatalf("expected scheduled status, got %s", appt.Status)
	}
}

func TestListPartitionsSchedule(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	ctx := context.Background()
	uid := uuid.New()

	future := validBooking()
	future.Date = time.Now().Add(24 * time.Hour)
	if _, err := svc.Book(ctx, uid, future); err != nil {
		t.Fatalf("book future: %v", err)
	}

	// booking is always scheduled, so plant a completed one directly
	done := health.Appointment{
		ID:           uuid.New(),
		UserID:       uid,
		DoctorName:   "Dr. Menon",
		HospitalName: "City Clinic",
		Date:         time.Now().Add(-72 * time.Hour),
		Time:         "09:00",
		Type:         health.AppointmentPhone,
		Status:       health.AppointmentCompleted,
	}
	key := store.UserKey(store.KeyAppointments, uid.String())
	appts := []health.Appointment{}
	if err := svc.store.Read(ctx, key, &appts); err != nil {
		t.Fatalf("read: %v", err)
	}
	appts = append(appts, done)
	if err := svc.store.Write(ctx, key, appts); err != nil {
		t.Fatalf("write: %v", err)
	}

	sched, err := svc.List(ctx, uid)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sched.Upcoming) != 1 || len(sched.Past) != 1 {
		t.Fatalf("expected 1/1 partition, got %d/%d", len(sched.Upcoming), len(sched.Past))
	}
	if sched.Past[0].ID != done.ID {
		t.Fatal("completed appointment missing from past")
	}
}

func TestListEmptyForNewUser(t *testing.T) {
	svc := NewService(store.NewMemoryStore())
	sched, err := svc.List(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sched.Upcoming) != 0 || len(sched.Past) != 0 {
		t.Fatal("expected empty schedule")
	}
}
