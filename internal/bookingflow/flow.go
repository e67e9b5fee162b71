// Package bookingflow drives the visitor-facing booking sequence: pick a
// date and time, pick a service, enter contact details, confirm. The flow is
// a small state machine that validates sections in that order and, once a
// booking is submitted, refuses further changes.
package bookingflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/models"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/salon"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/schedule"
)

type State int

const (
	StateSelectingDateTime State = iota
	StateSelectingService
	StateEnteringDetails
	StateSubmitted
)

// Section identifies the part of the form a failed confirmation points at.
type Section string

const (
	SectionDateTime Section = "date-time"
	SectionService  Section = "service"
	SectionDetails  Section = "details"
)

var (
	ErrAlreadySubmitted = errors.New("booking already submitted")
	ErrClosedDay        = errors.New("closed on the selected day")
	ErrPastDate         = errors.New("date is in the past")
	ErrNoDateSelected   = errors.New("no date selected")
	ErrSlotNotOffered   = errors.New("time slot not offered for the selected date")
)

// IncompleteError names the first section that blocks confirmation.
type IncompleteError struct {
	Section Section
	Reason  string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("booking incomplete: %s (%s)", e.Reason, e.Section)
}

// Submitter posts a finished booking to the public intake endpoint.
type Submitter interface {
	Submit(ctx context.Context, req BookingRequest) (models.Appointment, error)
}

type BookingRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	ServiceName     string `json:"serviceName"`
	ServicePrice    int    `json:"servicePrice"`
}

type Flow struct {
	loc *time.Location
	now func() time.Time

	date         string
	timeLabel    string
	serviceName  string
	servicePrice int
	name         string
	email        string
	phone        string
	submitted    bool
}

func New(loc *time.Location) *Flow {
	return &Flow{loc: loc, now: time.Now}
}

// SetClock injects a fixed clock for tests.
func (f *Flow) SetClock(now func() time.Time) {
	f.now = now
}

func (f *Flow) State() State {
	switch {
	case f.submitted:
		return StateSubmitted
	case f.date == "" || f.timeLabel == "":
		return StateSelectingDateTime
	case f.serviceName == "":
		return StateSelectingService
	default:
		return StateEnteringDetails
	}
}

// SelectDate rejects past dates and the two closed weekdays up front, the
// same way the calendar widget disables them. Changing the date clears any
// chosen time since the offered slots differ per day.
func (f *Flow) SelectDate(dateStr string) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	date, err := schedule.ParseDate(dateStr, f.loc)
	if err != nil {
		return err
	}
	past, err := schedule.IsDatePast(dateStr, f.loc, f.now())
	if err != nil {
		return err
	}
	if past {
		return ErrPastDate
	}
	if !schedule.IsOpen(date.Weekday()) {
		return ErrClosedDay
	}
	f.date = dateStr
	f.timeLabel = ""
	return nil
}

// TimeSlots lists the offered slots for the selected date.
func (f *Flow) TimeSlots() ([]string, error) {
	if f.date == "" {
		return nil, ErrNoDateSelected
	}
	return schedule.Slots(f.date, f.loc)
}

func (f *Flow) SelectTime(label string) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	slots, err := f.TimeSlots()
	if err != nil {
		return err
	}
	for _, s := range slots {
		if s == label {
			f.timeLabel = label
			return nil
		}
	}
	return ErrSlotNotOffered
}

// SelectService records the chosen service and derives its numeric price
// from the menu label ("$45+" -> 45).
func (f *Flow) SelectService(name, priceLabel string) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	f.serviceName = name
	f.servicePrice = salon.PriceValue(priceLabel)
	return nil
}

func (f *Flow) SetContact(name, email, phone string) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	f.name = name
	f.email = email
	f.phone = phone
	return nil
}

// Confirm checks the sections in display order and reports the first one
// that is incomplete, so the caller can direct attention to it.
func (f *Flow) Confirm() error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	if f.date == "" || f.timeLabel == "" {
		return &IncompleteError{Section: SectionDateTime, Reason: "select date and time"}
	}
	if f.serviceName == "" {
		return &IncompleteError{Section: SectionService, Reason: "select a service"}
	}
	if f.name == "" || f.email == "" || f.phone == "" {
		return &IncompleteError{Section: SectionDetails, Reason: "fill in all contact details"}
	}
	return nil
}

// Submit confirms and posts the booking. On success the flow becomes
// non-interactive; starting over requires a fresh Flow.
func (f *Flow) Submit(ctx context.Context, submitter Submitter) (models.Appointment, error) {
	if err := f.Confirm(); err != nil {
		return models.Appointment{}, err
	}

	created, err := submitter.Submit(ctx, BookingRequest{
		CustomerName:    f.name,
		CustomerEmail:   f.email,
		CustomerPhone:   f.phone,
		AppointmentDate: f.date,
		AppointmentTime: f.timeLabel,
		ServiceName:     f.serviceName,
		ServicePrice:    f.servicePrice,
	})
	if err != nil {
		return models.Appointment{}, err
	}

	f.submitted = true
	return created, nil
}
