package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acad-api/internal/service"
	appErrors "github.com/noah-isme/acad-api/pkg/errors"
	"github.com/noah-isme/acad-api/pkg/response"
)

// IPSHandler exposes the semester GPA calculation.
type IPSHandler struct {
	ips *service.IPSService
}

// NewIPSHandler constructs IPSHandler.
func NewIPSHandler(ips *service.IPSService) *IPSHandler {
	return &IPSHandler{ips: ips}
}

// Calculate godoc
// @Summary Calculate the credit-weighted semester GPA
// @Tags IPS
// @Accept json
// @Produce json
// @Param payload body service.CalculateIPSRequest true "Student and semester"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Router /api/acad/calculate-ips [post]
func (h *IPSHandler) Calculate(c *gin.Context) {
	var req service.CalculateIPSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	report, err := h.ips.Calculate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}
