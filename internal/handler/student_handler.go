package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acad-api/internal/service"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
	"github.com/noah-isme/acad-api/pkg/response"
)

// StudentHandler exposes mahasiswa endpoints.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List mahasiswa
// @Tags Mahasiswa
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/acad/mahasiswa [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// Get godoc
// @Summary Get one mahasiswa by NIM
// @Tags Mahasiswa
// @Produce json
// @Param nim path string true "NIM"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Router /api/acad/mahasiswa/{nim} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("nim"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Create godoc
// @Summary Register a mahasiswa
// @Tags Mahasiswa
// @Accept json
// @Produce json
// @Param payload body service.CreateStudentRequest true "Mahasiswa payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.ErrorBody
// @Router /api/acad/mahasiswa [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Mahasiswa created successfully", student)
}
