package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acad-api/internal/service"
	"github.com/noah-isme/acad-api/pkg/response"
)

// GradeWeightHandler exposes the bobot nilai reference listing.
type GradeWeightHandler struct {
	weights *service.GradeWeightService
}

// NewGradeWeightHandler constructs GradeWeightHandler.
func NewGradeWeightHandler(weights *service.GradeWeightService) *GradeWeightHandler {
	return &GradeWeightHandler{weights: weights}
}

// List godoc
// @Summary List grade-to-weight mappings
// @Tags Bobot
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/acad/bobot [get]
func (h *GradeWeightHandler) List(c *gin.Context) {
	weights, err := h.weights.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, weights)
}
