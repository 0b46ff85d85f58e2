package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamyar-edu/advising_bot/internal/model"
)

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// Create inserts a student with an empty session history unless one is set.
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	sessions, err := json.Marshal(emptyIfNil(student.Sessions))
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}

	query := `
		INSERT INTO students (
			id, first_name, last_name, student_number, gpa, phone_number,
			advisor_id, advisor_name, semester, total_sessions, sessions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err = r.pool.QueryRow(
		ctx, query,
		student.ID,
		student.FirstName,
		student.LastName,
		student.StudentNumber,
		student.GPA,
		student.PhoneNumber,
		student.AdvisorID,
		student.AdvisorName,
		student.Semester,
		student.TotalSessions,
		sessions,
	).Scan(&student.CreatedAt)

	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	return nil
}

// GetByID fetches a student with their session history.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*model.Student, error) {
	query := `
		SELECT id, first_name, last_name, student_number, gpa, phone_number,
		       advisor_id, advisor_name, semester, total_sessions, sessions, created_at
		FROM students
		WHERE id = $1
	`

	student, err := scanStudent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrStudentNotFound
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}

	return student, nil
}

// GetByAdvisorID fetches an advisor's students, optionally filtered by
// semester (empty string keeps all).
func (r *StudentRepository) GetByAdvisorID(ctx context.Context, advisorID, semester string) ([]*model.Student, error) {
	query := `
		SELECT id, first_name, last_name, student_number, gpa, phone_number,
		       advisor_id, advisor_name, semester, total_sessions, sessions, created_at
		FROM students
		WHERE advisor_id = $1 AND ($2 = '' OR semester = $2)
		ORDER BY student_number ASC
	`

	rows, err := r.pool.Query(ctx, query, advisorID, semester)
	if err != nil {
		return nil, fmt.Errorf("get students by advisor: %w", err)
	}
	defer rows.Close()

	var students []*model.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, student)
	}

	return students, nil
}

// UpdateSessions overwrites the student's session data in one statement.
func (r *StudentRepository) UpdateSessions(ctx context.Context, id string, totalSessions int, sessions []model.Session) error {
	data, err := json.Marshal(emptyIfNil(sessions))
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}

	query := `
		UPDATE students
		SET total_sessions = $1, sessions = $2
		WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, totalSessions, data, id)
	if err != nil {
		return fmt.Errorf("update sessions: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrStudentNotFound
	}

	return nil
}

func scanStudent(row pgx.Row) (*model.Student, error) {
	var student model.Student
	var sessions []byte
	err := row.Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.StudentNumber,
		&student.GPA,
		&student.PhoneNumber,
		&student.AdvisorID,
		&student.AdvisorName,
		&student.Semester,
		&student.TotalSessions,
		&sessions,
		&student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sessions, &student.Sessions); err != nil {
		return nil, fmt.Errorf("unmarshal sessions: %w", err)
	}
	return &student, nil
}

func emptyIfNil(sessions []model.Session) []model.Session {
	if sessions == nil {
		return []model.Session{}
	}
	return sessions
}
