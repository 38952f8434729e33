package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/acad-api/internal/models"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
)

type mockGradeWeightRepo struct {
	weights []models.GradeWeight
	err     error
}

func (m *mockGradeWeightRepo) List(ctx context.Context) ([]models.GradeWeight, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.weights, nil
}

func TestGradeWeightServiceList(t *testing.T) {
	repo := &mockGradeWeightRepo{weights: []models.GradeWeight{
		{Nilai: "A", Bobot: 4.0},
		{Nilai: "B", Bobot: 3.0},
	}}
	svc := NewGradeWeightService(repo, zap.NewNop())

	weights, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, weights, 2)
	assert.Equal(t, "A", weights[0].Nilai)
}

func TestGradeWeightServiceListEmptyIsNotAnError(t *testing.T) {
	svc := NewGradeWeightService(&mockGradeWeightRepo{}, zap.NewNop())

	weights, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, weights)
	assert.Empty(t, weights)
}

func TestGradeWeightServiceListRepositoryError(t *testing.T) {
	svc := NewGradeWeightService(&mockGradeWeightRepo{err: errors.New("boom")}, zap.NewNop())

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Status, appErrors.FromError(err).Status)
}
