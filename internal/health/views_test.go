package health

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func appt(status AppointmentStatus, date time.Time) Appointment {
	return Appointment{ID: uuid.New(), Status: status, Date: date}
}

func TestAppointmentPartition(t *testing.T) {
	future1 := appt(AppointmentScheduled, now.Add(24*time.Hour))
	future2 := appt(AppointmentScheduled, now.Add(72*time.Hour))
	missed := appt(AppointmentScheduled, now.Add(-24*time.Hour)) // never completed
	done := appt(AppointmentCompleted, now.Add(-48*time.Hour))

	all := []Appointment{future2, done, missed, future1}

	upcoming := UpcomingAppointments(all, now)
	past := PastAppointments(all, now)

	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(upcoming))
	}
	if upcoming[0].ID != future1.ID || upcoming[1].ID != future2.ID {
		t.Fatal("upcoming not sorted soonest first")
	}

	if len(past) != 2 {
		t.Fatalf("expected 2 past, got %d", len(past))
	}
	// most recent first
	if past[0].ID != missed.ID || past[1].ID != done.ID {
		t.Fatal("past not sorted most recent first")
	}

	// missed scheduled appointment must not appear in both partitions
	for _, u := range upcoming {
		if u.ID == missed.ID {
			t.Fatal("missed appointment leaked into upcoming")
		}
	}
}

func TestPartitionCoversAllScheduledOrCompleted(t *testing.T) {
	all := []Appointment{
		appt(AppointmentScheduled, now.Add(time.Hour)),
		appt(AppointmentScheduled, now.Add(-time.Hour)),
		appt(AppointmentCompleted, now.Add(-time.Hour)),
		appt(AppointmentCompleted, now.Add(-200*time.Hour)),
	}

	seen := map[uuid.UUID]int{}
	for _, a := range UpcomingAppointments(all, now) {
		seen[a.ID]++
	}
	for _, a := range PastAppointments(all, now) {
		seen[a.ID]++
	}

	for _, a := range all {
		if seen[a.ID] != 1 {
			t.Fatalf("appointment %s appeared %d times across partitions", a.ID, seen[a.ID])
		}
	}
}

func TestActiveAlertsFilterAndRank(t *testing.T) {
	due := func(p AlertPriority) HealthAlert {
		return HealthAlert{ID: uuid.New(), Priority: p, ScheduledFor: now.Add(-time.Hour)}
	}

	read := due(PriorityUrgent)
	read.IsRead = true
	future := HealthAlert{ID: uuid.New(), Priority: PriorityUrgent, ScheduledFor: now.Add(time.Hour)}

	low := due(PriorityLow)
	high := due(PriorityHigh)
	urgent := due(PriorityUrgent)

	got := ActiveAlerts([]HealthAlert{low, read, high, future, urgent}, now, 0)

	if len(got) != 3 {
		t.Fatalf("expected 3 active alerts, got %d", len(got))
	}
	if got[0].ID != urgent.ID || got[1].ID != high.ID || got[2].ID != low.ID {
		t.Fatal("alerts not ranked by priority")
	}
	for _, a := range got {
		if a.IsRead {
			t.Fatal("read alert surfaced")
		}
		if a.ScheduledFor.After(now) {
			t.Fatal("future alert surfaced")
		}
	}
}

func TestActiveAlertsStableWithinPriority(t *testing.T) {
	a := HealthAlert{ID: uuid.New(), Priority: PriorityHigh, ScheduledFor: now.Add(-2 * time.Hour)}
	b := HealthAlert{ID: uuid.New(), Priority: PriorityHigh, ScheduledFor: now.Add(-1 * time.Hour)}

	got := ActiveAlerts([]HealthAlert{a, b}, now, 0)
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Fatal("equal-priority alerts reordered")
	}
}

func TestActiveAlertsCap(t *testing.T) {
	var alerts []HealthAlert
	for i := 0; i < 10; i++ {
		alerts = append(alerts, HealthAlert{ID: uuid.New(), Priority: PriorityMedium, ScheduledFor: now.Add(-time.Hour)})
	}
	if got := ActiveAlerts(alerts, now, 3); len(got) != 3 {
		t.Fatalf("expected cap of 3, got %d", len(got))
	}
}

func TestSearchRecords(t *testing.T) {
	rec := func(title, doctor, hospital string, typ RecordType, d time.Time) HealthRecord {
		return HealthRecord{ID: uuid.New(), Title: title, DoctorName: doctor, HospitalName: hospital, Type: typ, Date: d}
	}

	cardio1 := rec("Cardiology Checkup", "Dr. Nair", "City Hospital", RecordCheckup, now.Add(-24*time.Hour))
	cardio2 := rec("Blood Test", "Dr. Menon", "CardioCare Clinic", RecordTest, now.Add(-12*time.Hour))
	other := rec("Eye Exam", "Dr. Thomas", "Vision Center", RecordCheckup, now.Add(-6*time.Hour))

	all := []HealthRecord{cardio1, cardio2, other}

	got := SearchRecords(all, "cardio", "")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for cardio, got %d", len(got))
	}
	// newest first
	if got[0].ID != cardio2.ID || got[1].ID != cardio1.ID {
		t.Fatal("search results not sorted newest first")
	}

	got = SearchRecords(all, "cardio", RecordTest)
	if len(got) != 1 || got[0].ID != cardio2.ID {
		t.Fatal("type filter not ANDed with search")
	}

	got = SearchRecords(all, "", RecordCheckup)
	if len(got) != 2 {
		t.Fatalf("expected 2 checkups, got %d", len(got))
	}

	if got := SearchRecords(all, "nonexistent", ""); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestRecentRecords(t *testing.T) {
	a := HealthRecord{ID: uuid.New(), Date: now.Add(-3 * time.Hour)}
	b := HealthRecord{ID: uuid.New(), Date: now.Add(-1 * time.Hour)}
	c := HealthRecord{ID: uuid.New(), Date: now.Add(-2 * time.Hour)}

	got := RecentRecords([]HealthRecord{a, b, c}, 2)
	if len(got) != 2 || got[0].ID != b.ID || got[1].ID != c.ID {
		t.Fatal("recent records wrong order or cap")
	}
}

func TestParseEnums(t *testing.T) {
	tests := []struct {
		name  string
		parse func() error
		ok    bool
	}{
		{"valid user type", func() error { _, err := ParseUserType("migrant"); return err }, true},
		{"invalid user type", func() error { _, err := ParseUserType("alien"); return err }, false},
		{"valid language", func() error { _, err := ParseLanguage("ml"); return err }, true},
		{"invalid language", func() error { _, err := ParseLanguage("fr"); return err }, false},
		{"valid appointment type", func() error { _, err := ParseAppointmentType("video"); return err }, true},
		{"invalid appointment type", func() error { _, err := ParseAppointmentType("telepathy"); return err }, false},
		{"valid record type", func() error { _, err := ParseRecordType("immunization"); return err }, true},
		{"invalid record type", func() error { _, err := ParseRecordType("all"); return err }, false},
		{"valid gender", func() error { _, err := ParseGender("other"); return err }, true},
		{"invalid gender", func() error { _, err := ParseGender(""); return err }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityUrgent.Rank() <= PriorityHigh.Rank() ||
		PriorityHigh.Rank() <= PriorityMedium.Rank() ||
		PriorityMedium.Rank() <= PriorityLow.Rank() ||
		PriorityLow.Rank() <= AlertPriority("bogus").Rank() {
		t.Fatal("priority ranks not strictly ordered")
	}
}
