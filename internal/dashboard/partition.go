// Package dashboard contains the admin-side view logic: an API client that
// holds the session token, and pure derivations (day partitions, next
// appointment, countdown) computed from the full appointment list and an
// explicit "now" so they stay trivially testable.
package dashboard

import (
	"sort"
	"time"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/models"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/schedule"
)

type Partition struct {
	Today    []models.Appointment
	Upcoming []models.Appointment
	Past     []models.Appointment
}

// Split buckets appointments relative to now's calendar day:
//
//	Today:    dated today and still scheduled.
//	Upcoming: dated strictly after today.
//	Past:     dated strictly before today, or dated today once the visit is
//	          resolved (completed, no-show, or cancelled).
//
// Every appointment lands in exactly one bucket; records whose date no
// longer parses are treated as past.
func Split(appointments []models.Appointment, now time.Time, loc *time.Location) Partition {
	var p Partition
	today := time.Date(now.In(loc).Year(), now.In(loc).Month(), now.In(loc).Day(), 0, 0, 0, 0, loc)

	for _, a := range appointments {
		date, err := schedule.ParseDate(a.AppointmentDate, loc)
		if err != nil {
			p.Past = append(p.Past, a)
			continue
		}
		switch {
		case date.After(today):
			p.Upcoming = append(p.Upcoming, a)
		case date.Before(today):
			p.Past = append(p.Past, a)
		case a.Status == models.StatusScheduled:
			p.Today = append(p.Today, a)
		default:
			p.Past = append(p.Past, a)
		}
	}
	return p
}

// StartTime resolves an appointment's date and time label to an instant.
func StartTime(a models.Appointment, loc *time.Location) (time.Time, error) {
	return schedule.ParseDateTime(a.AppointmentDate, a.AppointmentTime, loc)
}

// NextScheduled picks the earliest scheduled appointment whose start is
// after now. Appointments with unparseable date/time are skipped.
func NextScheduled(appointments []models.Appointment, now time.Time, loc *time.Location) (models.Appointment, bool) {
	type timed struct {
		appointment models.Appointment
		start       time.Time
	}

	future := make([]timed, 0)
	for _, a := range appointments {
		if a.Status != models.StatusScheduled {
			continue
		}
		start, err := StartTime(a, loc)
		if err != nil {
			continue
		}
		if start.After(now) {
			future = append(future, timed{appointment: a, start: start})
		}
	}
	if len(future) == 0 {
		return models.Appointment{}, false
	}

	sort.Slice(future, func(i, j int) bool {
		return future[i].start.Before(future[j].start)
	})
	return future[0].appointment, true
}
