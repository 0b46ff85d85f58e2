package service

import (
	"context"

	"github.com/hamyar-edu/advising_bot/internal/model"
)

// Store interfaces are declared on the consumer side so services can be
// exercised against in-memory fakes. The pgx repositories implement them.

type AdvisorStore interface {
	GetByID(ctx context.Context, id string) (*model.Advisor, error)
	SetAvailability(ctx context.Context, id string, availability model.Availability) error
}

type StudentStore interface {
	GetByID(ctx context.Context, id string) (*model.Student, error)
	UpdateSessions(ctx context.Context, id string, totalSessions int, sessions []model.Session) error
}

type AppointmentStore interface {
	Create(ctx context.Context, req *model.AppointmentRequest) error
	GetByID(ctx context.Context, id string) (*model.AppointmentRequest, error)
	Update(ctx context.Context, req *model.AppointmentRequest) error
	ListByAdvisor(ctx context.Context, advisorID string) ([]*model.AppointmentRequest, error)
	ListByStudent(ctx context.Context, studentID string) ([]*model.AppointmentRequest, error)
	ListPending(ctx context.Context) ([]*model.AppointmentRequest, error)
}
