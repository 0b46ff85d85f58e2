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

type AdvisorRepository struct {
	pool *pgxpool.Pool
}

func NewAdvisorRepository(pool *pgxpool.Pool) *AdvisorRepository {
	return &AdvisorRepository{pool: pool}
}

// Create inserts an advisor.
func (r *AdvisorRepository) Create(ctx context.Context, advisor *model.Advisor) error {
	availability, err := json.Marshal(advisor.Availability.Normalize())
	if err != nil {
		return fmt.Errorf("marshal availability: %w", err)
	}

	query := `
		INSERT INTO advisors (id, first_name, last_name, availability)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err = r.pool.QueryRow(
		ctx, query,
		advisor.ID,
		advisor.FirstName,
		advisor.LastName,
		availability,
	).Scan(&advisor.CreatedAt)

	if err != nil {
		return fmt.Errorf("create advisor: %w", err)
	}

	return nil
}

// GetByID fetches an advisor with their availability map.
func (r *AdvisorRepository) GetByID(ctx context.Context, id string) (*model.Advisor, error) {
	query := `
		SELECT id, first_name, last_name, availability, created_at
		FROM advisors
		WHERE id = $1
	`

	var advisor model.Advisor
	var availability []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&advisor.ID,
		&advisor.FirstName,
		&advisor.LastName,
		&availability,
		&advisor.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAdvisorNotFound
		}
		return nil, fmt.Errorf("get advisor by id: %w", err)
	}

	if err := json.Unmarshal(availability, &advisor.Availability); err != nil {
		return nil, fmt.Errorf("unmarshal availability: %w", err)
	}

	return &advisor, nil
}

// SetAvailability replaces the advisor's full availability mapping.
func (r *AdvisorRepository) SetAvailability(ctx context.Context, id string, availability model.Availability) error {
	data, err := json.Marshal(availability)
	if err != nil {
		return fmt.Errorf("marshal availability: %w", err)
	}

	query := `
		UPDATE advisors
		SET availability = $1
		WHERE id = $2
	`

	result, err := r.pool.Exec(ctx, query, data, id)
	if err != nil {
		return fmt.Errorf("set availability: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrAdvisorNotFound
	}

	return nil
}
