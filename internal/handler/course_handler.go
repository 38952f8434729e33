package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acad-api/internal/service"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
	"github.com/noah-isme/acad-api/pkg/response"
)

// CourseHandler exposes mata kuliah endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List mata kuliah
// @Tags MataKuliah
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/acad/matakuliah [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, courses)
}

// Create godoc
// @Summary Create a mata kuliah
// @Tags MataKuliah
// @Accept json
// @Produce json
// @Param payload body service.CreateCourseRequest true "Mata kuliah payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.ErrorBody
// @Router /api/acad/matakuliah [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Mata kuliah created successfully", course)
}
