package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/acad-api/internal/models"
)

// CourseRepository manages persistence for mata kuliah records.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns all courses ordered by course code.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT kode_mk, nama_mk, sks FROM mata_kuliah ORDER BY kode_mk`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// ExistsByCode reports whether a course with the given code exists.
func (r *CourseRepository) ExistsByCode(ctx context.Context, kodeMK string) (bool, error) {
	const query = `SELECT 1 FROM mata_kuliah WHERE kode_mk = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, kodeMK); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check kode_mk: %w", err)
	}
	return true, nil
}

// Create inserts a new course record.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	const query = `INSERT INTO mata_kuliah (kode_mk, nama_mk, sks)
        VALUES (:kode_mk, :nama_mk, :sks)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}
