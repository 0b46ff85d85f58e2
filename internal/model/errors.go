package model

import "errors"

// Validation errors. All of these are recoverable: the caller re-prompts,
// nothing is mutated.
var (
	ErrInvalidSlot      = errors.New("time label is not on the slot grid")
	ErrInvalidWeekday   = errors.New("unknown weekday")
	ErrDateNotAvailable = errors.New("date is not available for this advisor")
	ErrTimeNotAvailable = errors.New("time is not available for this advisor")
	ErrInvalidType      = errors.New("unknown appointment type")
	ErrInvalidTopic     = errors.New("invalid session topic")
	ErrReasonRequired   = errors.New("rejection reason is required")
)

// State errors. Usually a sequencing bug in the caller, logged as unexpected
// when coming from a trusted path.
var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNoChange          = errors.New("no schedule fields changed")
)

var (
	ErrAdvisorNotFound     = errors.New("advisor not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrForbidden           = errors.New("operation not permitted for this actor")
)
