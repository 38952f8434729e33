package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acad-api/internal/models"
	"github.com/noah-isme/acad-api/internal/service"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
	"github.com/noah-isme/acad-api/pkg/response"
)

// KRSHandler exposes enrollment endpoints.
type KRSHandler struct {
	krs    *service.KRSService
	export *service.ExportService
}

// NewKRSHandler constructs KRSHandler.
func NewKRSHandler(krs *service.KRSService, export *service.ExportService) *KRSHandler {
	return &KRSHandler{krs: krs, export: export}
}

// List godoc
// @Summary List enrollments for a student
// @Tags KRS
// @Produce json
// @Param nim path string true "NIM"
// @Param semester query int false "Semester filter"
// @Success 200 {object} response.Envelope
// @Router /api/acad/krs/{nim} [get]
func (h *KRSHandler) List(c *gin.Context) {
	filter, err := krsFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	details, err := h.krs.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, details)
}

// Create godoc
// @Summary Record one enrollment
// @Tags KRS
// @Accept json
// @Produce json
// @Param payload body service.CreateKRSRequest true "KRS payload"
// @Success 201 {object} response.Envelope
// @Router /api/acad/krs [post]
func (h *KRSHandler) Create(c *gin.Context) {
	var req service.CreateKRSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	krs, err := h.krs.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "KRS created successfully", krs)
}

// Export godoc
// @Summary Download the enrollment listing as CSV or PDF
// @Tags KRS
// @Produce text/csv
// @Produce application/pdf
// @Param nim path string true "NIM"
// @Param semester query int false "Semester filter"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /api/acad/krs/{nim}/export [get]
func (h *KRSHandler) Export(c *gin.Context) {
	filter, err := krsFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := c.DefaultQuery("format", service.FormatCSV)
	file, err := h.export.RenderKRS(c.Request.Context(), filter, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func krsFilter(c *gin.Context) (models.KRSFilter, error) {
	filter := models.KRSFilter{NIM: c.Param("nim")}
	if raw := c.Query("semester"); raw != "" {
		semester, err := strconv.Atoi(raw)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, "semester must be an integer")
		}
		filter.Semester = &semester
	}
	return filter, nil
}
