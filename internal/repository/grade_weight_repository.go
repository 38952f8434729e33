package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/acad-api/internal/models"
)

// GradeWeightRepository reads the bobot_nilai reference table.
type GradeWeightRepository struct {
	db *sqlx.DB
}

// NewGradeWeightRepository constructs the repository.
func NewGradeWeightRepository(db *sqlx.DB) *GradeWeightRepository {
	return &GradeWeightRepository{db: db}
}

// List returns every grade-to-weight mapping ordered by weight
// descending so "A" grades lead the listing.
func (r *GradeWeightRepository) List(ctx context.Context) ([]models.GradeWeight, error) {
	const query = `SELECT nilai, bobot FROM bobot_nilai ORDER BY bobot DESC, nilai`
	var weights []models.GradeWeight
	if err := r.db.SelectContext(ctx, &weights, query); err != nil {
		return nil, fmt.Errorf("list grade weights: %w", err)
	}
	return weights, nil
}
