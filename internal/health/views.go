package health

import (
	"sort"
	"strings"
	"time"
)

// View helpers for the dashboard. All functions are pure: they copy before
// sorting and never mutate the input collection.

// UpcomingAppointments returns scheduled appointments that have not passed
// yet, soonest first.
func UpcomingAppointments(appts []Appointment, now time.Time) []Appointment {
	var out []Appointment
	for _, a := range appts {
		if a.Status == AppointmentScheduled && !a.Date.Before(now) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// PastAppointments returns completed appointments plus anything whose date
// has passed, most recent first. A scheduled appointment with a past date
// lands here rather than in the upcoming list: a missed appointment is shown
// as history even though its status was never updated.
func PastAppointments(appts []Appointment, now time.Time) []Appointment {
	var out []Appointment
	for _, a := range appts {
		if a.Status == AppointmentCompleted || a.Date.Before(now) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// ActiveAlerts returns unread alerts whose scheduled time has passed, ranked
// by priority (urgent first). The sort is stable so alerts of equal priority
// keep their original order. limit <= 0 means no cap.
func ActiveAlerts(alerts []HealthAlert, now time.Time, limit int) []HealthAlert {
	var out []HealthAlert
	for _, a := range alerts {
		if a.Active(now) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SearchRecords filters by a case-insensitive substring match on title,
// doctor name or hospital name, optionally narrowed to one record type
// (empty typ means all), newest first.
func SearchRecords(records []HealthRecord, query string, typ RecordType) []HealthRecord {
	q := strings.ToLower(query)

	var out []HealthRecord
	for _, r := range records {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.DoctorName), q) ||
			strings.Contains(strings.ToLower(r.HospitalName), q)
		matchesType := typ == "" || r.Type == typ
		if matchesSearch && matchesType {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// RecentRecords returns the newest records, capped at limit.
func RecentRecords(records []HealthRecord, limit int) []HealthRecord {
	out := make([]HealthRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
