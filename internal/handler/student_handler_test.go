package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/acad-api/internal/models"
	"github.com/noah-isme/acad-api/internal/service"
)

type studentRepoStub struct {
	students map[string]models.Student
}

func (s *studentRepoStub) List(ctx context.Context) ([]models.Student, error) {
	students := make([]models.Student, 0, len(s.students))
	for _, st := range s.students {
		students = append(students, st)
	}
	return students, nil
}

func (s *studentRepoStub) FindByNIM(ctx context.Context, nim string) (*models.Student, error) {
	if st, ok := s.students[nim]; ok {
		return &st, nil
	}
	return nil, sql.ErrNoRows
}

func (s *studentRepoStub) ExistsByNIM(ctx context.Context, nim string) (bool, error) {
	_, ok := s.students[nim]
	return ok, nil
}

func (s *studentRepoStub) Create(ctx context.Context, student *models.Student) error {
	if s.students == nil {
		s.students = make(map[string]models.Student)
	}
	s.students[student.NIM] = *student
	return nil
}

func newStudentHandler(repo *studentRepoStub) *StudentHandler {
	return NewStudentHandler(service.NewStudentService(repo, nil, nil))
}

func TestStudentHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newStudentHandler(&studentRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/acad/mahasiswa/404", nil)
	c.Params = gin.Params{{Key: "nim", Value: "404"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "mahasiswa not found", body["detail"])
}

func TestStudentHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &studentRepoStub{}
	handler := newStudentHandler(repo)

	payload, _ := json.Marshal(service.CreateStudentRequest{NIM: "001", Nama: "Andi", Jurusan: "Informatika", Angkatan: 2023})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/acad/mahasiswa", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    models.Student `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "001", envelope.Data.NIM)
	assert.Len(t, repo.students, 1)
}

func TestStudentHandlerCreateConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &studentRepoStub{students: map[string]models.Student{"001": {NIM: "001"}}}
	handler := newStudentHandler(repo)

	payload, _ := json.Marshal(service.CreateStudentRequest{NIM: "001", Nama: "Andi", Angkatan: 2023})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/acad/mahasiswa", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestStudentHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newStudentHandler(&studentRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/acad/mahasiswa", bytes.NewBufferString(`{"nim":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &studentRepoStub{students: map[string]models.Student{"001": {NIM: "001", Nama: "Andi"}}}
	handler := newStudentHandler(repo)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/acad/mahasiswa", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool             `json:"success"`
		Data    []models.Student `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 1)
}
