package models

import "time"

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusNoShow    = "no-show"
	StatusCancelled = "cancelled"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusScheduled, StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	}
	return false
}

// Appointment is the single persisted entity. Dates and times are kept as
// strings in the form the booking flow produces ("2006-01-02" / "03:04 PM").
type Appointment struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	CustomerName    string    `bson:"customerName" json:"customerName"`
	CustomerEmail   string    `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone   string    `bson:"customerPhone" json:"customerPhone"`
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"`
	AppointmentTime string    `bson:"appointmentTime" json:"appointmentTime"`
	ServiceName     string    `bson:"serviceName" json:"serviceName"`
	ServicePrice    int       `bson:"servicePrice" json:"servicePrice"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
