package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamyar-edu/advising_bot/internal/model"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const appointmentColumns = `
	id, student_id, advisor_id, student_name, advisor_name,
	day, date, time, appointment_type, session_topic, description,
	status, rejection_reason, is_edited, edited_at, created_at, updated_at
`

// Create inserts a new appointment request.
func (r *AppointmentRepository) Create(ctx context.Context, req *model.AppointmentRequest) error {
	query := `
		INSERT INTO appointments (
			id, student_id, advisor_id, student_name, advisor_name,
			day, date, time, appointment_type, session_topic, description,
			status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(
		ctx, query,
		req.ID,
		req.StudentID,
		req.AdvisorID,
		req.StudentName,
		req.AdvisorName,
		req.Day,
		req.Date,
		req.Time,
		req.Type,
		req.Topic,
		req.Description,
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

// GetByID fetches one appointment request.
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*model.AppointmentRequest, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	req, err := scanAppointment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment by id: %w", err)
	}

	return req, nil
}

// Update writes back the mutable fields: status, reason, schedule, edit
// markers. Identity and creation fields never change after insert.
func (r *AppointmentRepository) Update(ctx context.Context, req *model.AppointmentRequest) error {
	query := `
		UPDATE appointments
		SET day = $1, date = $2, time = $3,
		    status = $4, rejection_reason = $5,
		    is_edited = $6, edited_at = $7, updated_at = $8
		WHERE id = $9
	`

	result, err := r.pool.Exec(
		ctx, query,
		req.Day,
		req.Date,
		req.Time,
		req.Status,
		nullableString(req.RejectionReason),
		req.IsEdited,
		req.EditedAt,
		req.UpdatedAt,
		req.ID,
	)

	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrAppointmentNotFound
	}

	return nil
}

// ListByAdvisor returns the advisor's requests in creation order.
func (r *AppointmentRepository) ListByAdvisor(ctx context.Context, advisorID string) ([]*model.AppointmentRequest, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE advisor_id = $1 ORDER BY created_at ASC`
	return r.list(ctx, query, advisorID)
}

// ListByStudent returns the student's requests in creation order.
func (r *AppointmentRepository) ListByStudent(ctx context.Context, studentID string) ([]*model.AppointmentRequest, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE student_id = $1 ORDER BY created_at ASC`
	return r.list(ctx, query, studentID)
}

// ListPending returns every pending request, oldest first. The escalation
// task filters these further by age.
func (r *AppointmentRepository) ListPending(ctx context.Context) ([]*model.AppointmentRequest, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE status = 'pending' ORDER BY created_at ASC`
	return r.list(ctx, query)
}

func (r *AppointmentRepository) list(ctx context.Context, query string, args ...any) ([]*model.AppointmentRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var requests []*model.AppointmentRequest
	for rows.Next() {
		req, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func scanAppointment(row pgx.Row) (*model.AppointmentRequest, error) {
	var req model.AppointmentRequest
	var rejectionReason *string
	err := row.Scan(
		&req.ID,
		&req.StudentID,
		&req.AdvisorID,
		&req.StudentName,
		&req.AdvisorName,
		&req.Day,
		&req.Date,
		&req.Time,
		&req.Type,
		&req.Topic,
		&req.Description,
		&req.Status,
		&rejectionReason,
		&req.IsEdited,
		&req.EditedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rejectionReason != nil {
		req.RejectionReason = *rejectionReason
	}
	return &req, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
