package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/acad-api/internal/models"
)

// StudentRepository manages persistence for mahasiswa records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns all students ordered by NIM.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT nim, nama, jurusan, angkatan FROM mahasiswa ORDER BY nim`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByNIM fetches a single student. Callers translate sql.ErrNoRows.
func (r *StudentRepository) FindByNIM(ctx context.Context, nim string) (*models.Student, error) {
	const query = `SELECT nim, nama, jurusan, angkatan FROM mahasiswa WHERE nim = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, nim); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByNIM reports whether a student with the given NIM exists.
func (r *StudentRepository) ExistsByNIM(ctx context.Context, nim string) (bool, error) {
	const query = `SELECT 1 FROM mahasiswa WHERE nim = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, nim); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check nim: %w", err)
	}
	return true, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO mahasiswa (nim, nama, jurusan, angkatan)
        VALUES (:nim, :nama, :jurusan, :angkatan)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}
