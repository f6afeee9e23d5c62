package models

import "time"

// TimeSlot is the visiting window for a reservation.
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotFullDay   TimeSlot = "full_day"
)

// TimeSlotRange maps each slot to its fixed display window.
var TimeSlotRange = map[TimeSlot]string{
	TimeSlotMorning:   "8:00 am - 1:00 pm",
	TimeSlotAfternoon: "2:00 pm - 7:00 pm",
	TimeSlotFullDay:   "8:00 am - 7:00 pm",
}

// VisitType distinguishes per-head casual visits from privately priced events.
type VisitType string

const (
	VisitCasual VisitType = "casual"
	VisitEvent  VisitType = "event"
)

// Status is the administrative lifecycle stage after creation.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// ValidTimeSlot reports whether s is a recognized slot value.
func ValidTimeSlot(s TimeSlot) bool {
	_, ok := TimeSlotRange[s]
	return ok
}

// ValidVisitType reports whether v is a recognized visit type.
func ValidVisitType(v VisitType) bool {
	return v == VisitCasual || v == VisitEvent
}

// Reservation is one persisted booking attempt.
// People, UnitaryPrice and TotalPrice are nil for event visits;
// RejectionReason is set only while Status is rejected.
type Reservation struct {
	ID              int64      `json:"reservation_id"`
	Name            string     `json:"name"`
	LastName        string     `json:"last_name"`
	Identification  string     `json:"identification"`
	PhoneNumber     string     `json:"phone_number"`
	Email           string     `json:"email"`
	VisitDate       string     `json:"visit_date"` // YYYY-MM-DD
	TimeSlot        TimeSlot   `json:"time_slot"`
	VisitType       VisitType  `json:"visit_type"`
	People          *int       `json:"people"`
	UnitaryPrice    *int64     `json:"unitary_price"`
	TotalPrice      *int64     `json:"total_price"`
	Status          Status     `json:"status"`
	RejectionReason *string    `json:"rejection_reason"`
	Code            string     `json:"code"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

// ReservationInput carries raw form data before validation and pricing.
// People is a pointer so "not provided" is distinguishable from zero.
type ReservationInput struct {
	Name           string    `json:"name"`
	LastName       string    `json:"last_name"`
	Identification string    `json:"identification"`
	PhoneNumber    string    `json:"phone_number"`
	Email          string    `json:"email"`
	VisitDate      string    `json:"visit_date"`
	TimeSlot       TimeSlot  `json:"time_slot"`
	VisitType      VisitType `json:"visit_type"`
	People         *int      `json:"people"`
}
