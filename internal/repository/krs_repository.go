package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/acad-api/internal/models"
)

// KRSRepository handles persistence of enrollments and the joined
// views built on them.
type KRSRepository struct {
	db *sqlx.DB
}

// NewKRSRepository constructs the repository.
func NewKRSRepository(db *sqlx.DB) *KRSRepository {
	return &KRSRepository{db: db}
}

// ListDetails returns denormalized enrollment rows for a student,
// optionally narrowed to one semester. Ordering by semester then
// course code is a presentation contract callers depend on.
func (r *KRSRepository) ListDetails(ctx context.Context, filter models.KRSFilter) ([]models.KRSDetail, error) {
	query := `SELECT k.id_krs, k.nim, m.nama AS nama_mahasiswa, mk.kode_mk, mk.nama_mk, mk.sks, k.nilai, k.semester
        FROM krs k
        JOIN mahasiswa m ON m.nim = k.nim
        JOIN mata_kuliah mk ON mk.kode_mk = k.kode_mk
        WHERE k.nim = $1`
	args := []interface{}{filter.NIM}
	if filter.Semester != nil {
		query += fmt.Sprintf(" AND k.semester = $%d", len(args)+1)
		args = append(args, *filter.Semester)
	}
	query += " ORDER BY k.semester, mk.kode_mk"

	var details []models.KRSDetail
	if err := r.db.SelectContext(ctx, &details, query, args...); err != nil {
		return nil, fmt.Errorf("list krs: %w", err)
	}
	return details, nil
}

// SemesterGrades returns the graded enrollments for one student and
// semester resolved against course credits and grade weights. Rows
// whose nilai is NULL or unknown drop out of the inner join.
func (r *KRSRepository) SemesterGrades(ctx context.Context, nim string, semester int) ([]models.SemesterGrade, error) {
	const query = `SELECT mk.nama_mk, mk.sks, k.nilai, b.bobot
        FROM krs k
        JOIN mata_kuliah mk ON mk.kode_mk = k.kode_mk
        JOIN bobot_nilai b ON b.nilai = k.nilai
        WHERE k.nim = $1 AND k.semester = $2`
	var grades []models.SemesterGrade
	if err := r.db.SelectContext(ctx, &grades, query, nim, semester); err != nil {
		return nil, fmt.Errorf("semester grades: %w", err)
	}
	return grades, nil
}

// Create inserts one enrollment. The surrogate id is store-assigned.
func (r *KRSRepository) Create(ctx context.Context, krs *models.KRS) error {
	const query = `INSERT INTO krs (nim, kode_mk, nilai, semester)
        VALUES ($1, $2, $3, $4) RETURNING id_krs`
	if err := r.db.QueryRowxContext(ctx, query, krs.NIM, krs.KodeMK, krs.Nilai, krs.Semester).Scan(&krs.IDKRS); err != nil {
		return fmt.Errorf("create krs: %w", err)
	}
	return nil
}
