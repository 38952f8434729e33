package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/acad-api/internal/models"
)

// StatusRepository gathers read-only diagnostics about the store.
type StatusRepository struct {
	db *sqlx.DB
}

// NewStatusRepository constructs the repository.
func NewStatusRepository(db *sqlx.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// Counts returns row totals for each entity collection.
func (r *StatusRepository) Counts(ctx context.Context) (*models.DBStatistics, error) {
	const query = `SELECT
        (SELECT COUNT(*) FROM mahasiswa) AS total_mahasiswa,
        (SELECT COUNT(*) FROM mata_kuliah) AS total_mata_kuliah,
        (SELECT COUNT(*) FROM krs) AS total_krs`
	var stats struct {
		TotalMahasiswa  int `db:"total_mahasiswa"`
		TotalMataKuliah int `db:"total_mata_kuliah"`
		TotalKRS        int `db:"total_krs"`
	}
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("count tables: %w", err)
	}
	return &models.DBStatistics{
		TotalMahasiswa:  stats.TotalMahasiswa,
		TotalMataKuliah: stats.TotalMataKuliah,
		TotalKRS:        stats.TotalKRS,
	}, nil
}

// Version returns the storage engine's version string.
func (r *StatusRepository) Version(ctx context.Context) (string, error) {
	var version string
	if err := r.db.GetContext(ctx, &version, "SELECT version()"); err != nil {
		return "", fmt.Errorf("select version: %w", err)
	}
	return version, nil
}
