package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeWeightRepositoryListOrderedByWeight(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeWeightRepository(db)

	rows := sqlmock.NewRows([]string{"nilai", "bobot"}).
		AddRow("A", 4.0).
		AddRow("B+", 3.5).
		AddRow("B", 3.0)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT nilai, bobot FROM bobot_nilai ORDER BY bobot DESC, nilai")).
		WillReturnRows(rows)

	weights, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, weights, 3)
	assert.Equal(t, "A", weights[0].Nilai)
	assert.Equal(t, 4.0, weights[0].Bobot)
	assert.Equal(t, "B", weights[2].Nilai)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeWeightRepositoryListQueryError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeWeightRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT nilai, bobot FROM bobot_nilai")).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list grade weights")
	require.NoError(t, mock.ExpectationsWereMet())
}
