package model

import (
	"strings"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending  AppointmentStatus = "pending"  // waiting for the advisor's decision
	AppointmentStatusApproved AppointmentStatus = "approved" // confirmed by the advisor
	AppointmentStatusRejected AppointmentStatus = "rejected" // declined with a reason, terminal
)

// Appointment type values as selected by the student.
const (
	AppointmentTypeIndividualInPerson = "individual-in-person"
	AppointmentTypeIndividualVirtual  = "individual-virtual"
	AppointmentTypeIndividualPhone    = "individual-phone"
	AppointmentTypeGroup              = "group"
)

// AppointmentRequest is a student's proposed meeting slot, tracked through
// pending/approved/rejected. Student and advisor names are denormalized so
// message composition needs no extra lookups.
type AppointmentRequest struct {
	ID              string            `json:"id"`
	StudentID       string            `json:"student_id"`
	AdvisorID       string            `json:"advisor_id"`
	StudentName     string            `json:"student_name"`
	AdvisorName     string            `json:"advisor_name"`
	Day             string            `json:"day"`  // weekday name
	Date            string            `json:"date"` // formatted date string
	Time            string            `json:"time"` // slot label, e.g. "08:00"
	Type            string            `json:"appointment_type"`
	Topic           string            `json:"session_topic"`
	Description     string            `json:"description"`
	Status          AppointmentStatus `json:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	IsEdited        bool              `json:"is_edited"`
	EditedAt        *time.Time        `json:"edited_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (r *AppointmentRequest) IsPending() bool {
	return r.Status == AppointmentStatusPending
}

func (r *AppointmentRequest) IsApproved() bool {
	return r.Status == AppointmentStatusApproved
}

func (r *AppointmentRequest) IsRejected() bool {
	return r.Status == AppointmentStatusRejected
}

// Approve moves a pending request to approved.
func (r *AppointmentRequest) Approve(now time.Time) error {
	if r.Status != AppointmentStatusPending {
		return ErrInvalidTransition
	}
	r.Status = AppointmentStatusApproved
	r.UpdatedAt = now
	return nil
}

// Reject moves a pending request to rejected. The reason is mandatory and
// kept verbatim after trimming; rejected is terminal.
func (r *AppointmentRequest) Reject(reason string, now time.Time) error {
	if r.Status != AppointmentStatusPending {
		return ErrInvalidTransition
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	r.Status = AppointmentStatusRejected
	r.RejectionReason = reason
	r.UpdatedAt = now
	return nil
}

// ScheduleChange describes one edited schedule field, for the outbound
// change notice. Label is the field name as shown to the recipient.
type ScheduleChange struct {
	Label string
	From  string
	To    string
}

// Field labels used in change notices.
const (
	ChangeLabelDay  = "روز"
	ChangeLabelDate = "تاریخ"
	ChangeLabelTime = "ساعت"
)

// EditSchedule moves an approved request to a new day/date/time. Returns the
// per-field diff; if nothing differs the request is left untouched and
// ErrNoChange is returned.
func (r *AppointmentRequest) EditSchedule(newDay, newDate, newTime string, now time.Time) ([]ScheduleChange, error) {
	if r.Status != AppointmentStatusApproved {
		return nil, ErrInvalidTransition
	}

	var changes []ScheduleChange
	if newDay != r.Day {
		changes = append(changes, ScheduleChange{Label: ChangeLabelDay, From: r.Day, To: newDay})
	}
	if newDate != r.Date {
		changes = append(changes, ScheduleChange{Label: ChangeLabelDate, From: r.Date, To: newDate})
	}
	if newTime != r.Time {
		changes = append(changes, ScheduleChange{Label: ChangeLabelTime, From: r.Time, To: newTime})
	}
	if len(changes) == 0 {
		return nil, ErrNoChange
	}

	r.Day = newDay
	r.Date = newDate
	r.Time = newTime
	r.IsEdited = true
	editedAt := now
	r.EditedAt = &editedAt
	r.UpdatedAt = now
	return changes, nil
}

// FindStaleUnconfirmed returns every pending request whose age strictly
// exceeds the threshold. Pure query, no transition.
func FindStaleUnconfirmed(requests []*AppointmentRequest, now time.Time, threshold time.Duration) []*AppointmentRequest {
	var stale []*AppointmentRequest
	for _, r := range requests {
		if !r.IsPending() {
			continue
		}
		if now.Sub(r.CreatedAt) > threshold {
			stale = append(stale, r)
		}
	}
	return stale
}

// StatusCounts tallies requests by status for dashboard views.
type StatusCounts struct {
	Pending  int
	Approved int
	Rejected int
}

func CountByStatus(requests []*AppointmentRequest) StatusCounts {
	var c StatusCounts
	for _, r := range requests {
		switch r.Status {
		case AppointmentStatusPending:
			c.Pending++
		case AppointmentStatusApproved:
			c.Approved++
		case AppointmentStatusRejected:
			c.Rejected++
		}
	}
	return c
}
