package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamyar-edu/advising_bot/internal/catalog"
	"github.com/hamyar-edu/advising_bot/internal/clock"
	"github.com/hamyar-edu/advising_bot/internal/dates"
	"github.com/hamyar-edu/advising_bot/internal/model"
	"github.com/hamyar-edu/advising_bot/internal/notify"
)

// DefaultDescription is recorded when the student leaves the free-text
// description empty.
const DefaultDescription = "جلسه مشاوره"

// StaleThreshold is how long a request may sit pending before it counts as
// unconfirmed in escalation reports.
const StaleThreshold = 24 * time.Hour

// AppointmentService turns a slot selection into a tracked request and
// drives its pending/approved/rejected lifecycle.
type AppointmentService struct {
	advisors     AdvisorStore
	students     StudentStore
	appointments AppointmentStore
	catalog      *catalog.Catalog
	clock        clock.Clock
	logger       *zap.Logger
}

func NewAppointmentService(
	advisors AdvisorStore,
	students StudentStore,
	appointments AppointmentStore,
	cat *catalog.Catalog,
	clk clock.Clock,
	logger *zap.Logger,
) *AppointmentService {
	return &AppointmentService{
		advisors:     advisors,
		students:     students,
		appointments: appointments,
		catalog:      cat,
		clock:        clk,
		logger:       logger,
	}
}

// CreateRequestInput is the student's slot selection.
type CreateRequestInput struct {
	StudentID   string
	AdvisorID   string
	Date        string // formatted date, must come from the advisor's window
	Time        string // slot label
	Type        string
	Topic       string
	Description string
}

// AvailableDates returns the advisor's bookable days inside the rolling
// window: dates whose weekday has at least one open time label.
func (s *AppointmentService) AvailableDates(ctx context.Context, advisorID string) ([]dates.Entry, error) {
	advisor, err := s.advisors.GetByID(ctx, advisorID)
	if err != nil {
		return nil, err
	}
	window := dates.Window(s.clock.Now(), dates.DefaultWindowDays, s.catalog.Weekdays)
	return dates.FilterByAvailability(window, advisor.Availability), nil
}

// CreateRequest validates the selection and records a pending request.
// Returns the request plus the drafted confirmation and advisor notices.
func (s *AppointmentService) CreateRequest(ctx context.Context, in CreateRequestInput) (*model.AppointmentRequest, []notify.Draft, error) {
	student, err := s.students.GetByID(ctx, in.StudentID)
	if err != nil {
		return nil, nil, err
	}
	if student.AdvisorID != in.AdvisorID {
		return nil, nil, fmt.Errorf("%w: student %s is not assigned to advisor %s",
			model.ErrForbidden, in.StudentID, in.AdvisorID)
	}

	advisor, err := s.advisors.GetByID(ctx, in.AdvisorID)
	if err != nil {
		return nil, nil, err
	}

	candidates := dates.FilterByAvailability(
		dates.Window(s.clock.Now(), dates.DefaultWindowDays, s.catalog.Weekdays),
		advisor.Availability,
	)
	var selected *dates.Entry
	for i := range candidates {
		if candidates[i].Persian == in.Date {
			selected = &candidates[i]
			break
		}
	}
	if selected == nil {
		return nil, nil, fmt.Errorf("%w: %q", model.ErrDateNotAvailable, in.Date)
	}

	if !advisor.Availability.HasSlot(selected.Weekday, in.Time) {
		return nil, nil, fmt.Errorf("%w: %s %q", model.ErrTimeNotAvailable, selected.Weekday, in.Time)
	}
	if !s.catalog.ValidAppointmentType(in.Type) {
		return nil, nil, fmt.Errorf("%w: %q", model.ErrInvalidType, in.Type)
	}
	if !s.catalog.ValidBookingTopic(in.Topic) {
		return nil, nil, fmt.Errorf("%w: %q", model.ErrInvalidTopic, in.Topic)
	}

	description := in.Description
	if description == "" {
		description = DefaultDescription
	}

	now := s.clock.Now()
	req := &model.AppointmentRequest{
		ID:          uuid.NewString(),
		StudentID:   student.ID,
		AdvisorID:   advisor.ID,
		StudentName: student.FullName(),
		AdvisorName: advisor.FullName(),
		Day:         selected.Weekday,
		Date:        selected.Persian,
		Time:        in.Time,
		Type:        in.Type,
		Topic:       in.Topic,
		Description: description,
		Status:      model.AppointmentStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.appointments.Create(ctx, req); err != nil {
		return nil, nil, err
	}

	s.logger.Info("Appointment request created",
		zap.String("request_id", req.ID),
		zap.String("student_id", req.StudentID),
		zap.String("advisor_id", req.AdvisorID),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
	)

	drafts := notify.RequestCreated(req, s.catalog.AppointmentTypeLabel(req.Type))
	return req, drafts, nil
}

// Approve confirms a pending request. Only the assigned advisor may decide.
func (s *AppointmentService) Approve(ctx context.Context, requestID, advisorID string) (*model.AppointmentRequest, notify.Draft, error) {
	req, err := s.ownedRequest(ctx, requestID, advisorID)
	if err != nil {
		return nil, notify.Draft{}, err
	}

	if err := req.Approve(s.clock.Now()); err != nil {
		return nil, notify.Draft{}, err
	}
	if err := s.appointments.Update(ctx, req); err != nil {
		return nil, notify.Draft{}, err
	}

	s.logger.Info("Appointment approved",
		zap.String("request_id", req.ID),
		zap.String("advisor_id", advisorID),
	)

	return req, notify.RequestApproved(req), nil
}

// Reject declines a pending request with a mandatory reason.
func (s *AppointmentService) Reject(ctx context.Context, requestID, advisorID, reason string) (*model.AppointmentRequest, notify.Draft, error) {
	req, err := s.ownedRequest(ctx, requestID, advisorID)
	if err != nil {
		return nil, notify.Draft{}, err
	}

	if err := req.Reject(reason, s.clock.Now()); err != nil {
		return nil, notify.Draft{}, err
	}
	if err := s.appointments.Update(ctx, req); err != nil {
		return nil, notify.Draft{}, err
	}

	s.logger.Info("Appointment rejected",
		zap.String("request_id", req.ID),
		zap.String("advisor_id", advisorID),
		zap.String("reason", req.RejectionReason),
	)

	return req, notify.RequestRejected(req), nil
}

// Edit moves an approved request to a new day/date/time. When nothing
// differs, the record is left untouched and model.ErrNoChange is returned
// without drafting anything.
func (s *AppointmentService) Edit(ctx context.Context, requestID, advisorID, newDay, newDate, newTime string) (*model.AppointmentRequest, notify.Draft, error) {
	req, err := s.ownedRequest(ctx, requestID, advisorID)
	if err != nil {
		return nil, notify.Draft{}, err
	}

	changes, err := req.EditSchedule(newDay, newDate, newTime, s.clock.Now())
	if err != nil {
		return nil, notify.Draft{}, err
	}
	if err := s.appointments.Update(ctx, req); err != nil {
		return nil, notify.Draft{}, err
	}

	s.logger.Info("Appointment schedule edited",
		zap.String("request_id", req.ID),
		zap.String("advisor_id", advisorID),
		zap.Int("changed_fields", len(changes)),
	)

	return req, notify.ScheduleChanged(req, changes), nil
}

// ListByAdvisor returns the advisor's requests in creation order.
func (s *AppointmentService) ListByAdvisor(ctx context.Context, advisorID string) ([]*model.AppointmentRequest, error) {
	return s.appointments.ListByAdvisor(ctx, advisorID)
}

// ListByStudent returns the student's requests in creation order.
func (s *AppointmentService) ListByStudent(ctx context.Context, studentID string) ([]*model.AppointmentRequest, error) {
	return s.appointments.ListByStudent(ctx, studentID)
}

// StaleUnconfirmed returns every pending request older than the threshold.
func (s *AppointmentService) StaleUnconfirmed(ctx context.Context, threshold time.Duration) ([]*model.AppointmentRequest, error) {
	pending, err := s.appointments.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return model.FindStaleUnconfirmed(pending, s.clock.Now(), threshold), nil
}

func (s *AppointmentService) ownedRequest(ctx context.Context, requestID, advisorID string) (*model.AppointmentRequest, error) {
	req, err := s.appointments.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.AdvisorID != advisorID {
		return nil, fmt.Errorf("%w: request %s belongs to another advisor", model.ErrForbidden, requestID)
	}
	return req, nil
}
