package schedule

import (
	"errors"
	"time"
)

// SlotMinutes is the spacing between offered appointment slots.
const SlotMinutes = 45

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "03:04 PM"
)

var (
	ErrInvalidDate = errors.New("invalid date format")
	ErrInvalidTime = errors.New("invalid time format")
)

type openingHours struct {
	open  int // minutes after midnight
	close int
}

// Salon hours: closed Sunday and Monday, 10:00-5:30 Tuesday through Friday,
// 9:30-5:30 on Saturday.
func hoursFor(day time.Weekday) (openingHours, bool) {
	switch day {
	case time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
		return openingHours{open: 10 * 60, close: 17*60 + 30}, true
	case time.Saturday:
		return openingHours{open: 9*60 + 30, close: 17*60 + 30}, true
	default:
		return openingHours{}, false
	}
}

func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, dateStr, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// ParseClock converts a 12-hour slot label such as "04:45 PM" to minutes
// after midnight.
func ParseClock(label string) (int, error) {
	tm, err := time.Parse(ClockLayout, label)
	if err != nil {
		return 0, ErrInvalidTime
	}
	return tm.Hour()*60 + tm.Minute(), nil
}

func ClockLabel(minutes int) string {
	return time.Date(0, time.January, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format(ClockLayout)
}

func ParseDateTime(dateStr, label string, loc *time.Location) (time.Time, error) {
	date, err := ParseDate(dateStr, loc)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := ParseClock(label)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}

func IsDatePast(dateStr string, loc *time.Location, now time.Time) (bool, error) {
	date, err := ParseDate(dateStr, loc)
	if err != nil {
		return false, err
	}
	startToday := time.Date(now.In(loc).Year(), now.In(loc).Month(), now.In(loc).Day(), 0, 0, 0, 0, loc)
	return date.Before(startToday), nil
}

func IsOpen(day time.Weekday) bool {
	_, open := hoursFor(day)
	return open
}

// Slots returns the offered time slots for a date: 45-minute steps from
// opening, plus a final slot 45 minutes before close when the steps do not
// land on it. An open day always ends with that closing slot, so Saturday
// offers "09:30 AM" through "04:45 PM" (11 slots) and Tuesday-Friday offer
// "10:00 AM" through "04:45 PM" (10 slots). Closed days yield no slots.
func Slots(dateStr string, loc *time.Location) ([]string, error) {
	date, err := ParseDate(dateStr, loc)
	if err != nil {
		return nil, err
	}

	hours, open := hoursFor(date.Weekday())
	if !open {
		return []string{}, nil
	}

	slots := make([]string, 0, 12)
	last := -1
	for cursor := hours.open; cursor+SlotMinutes <= hours.close; cursor += SlotMinutes {
		slots = append(slots, ClockLabel(cursor))
		last = cursor
	}
	if closing := hours.close - SlotMinutes; closing != last {
		slots = append(slots, ClockLabel(closing))
	}
	return slots, nil
}
