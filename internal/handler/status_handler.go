package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acad-api/internal/service"
	"github.com/noah-isme/acad-api/pkg/response"
)

// StatusHandler exposes liveness and the db-status diagnostic.
type StatusHandler struct {
	status *service.StatusService
}

// NewStatusHandler constructs StatusHandler.
func NewStatusHandler(status *service.StatusService) *StatusHandler {
	return &StatusHandler{status: status}
}

// Root godoc
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Academic Service Online", "type": "sqlx"})
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "Academic Service running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// DBStatus godoc
// @Summary Database diagnostic: row counts and engine version
// @Tags Health
// @Produce json
// @Success 200 {object} models.DBStatus
// @Failure 503 {object} response.ErrorBody
// @Router /api/acad/db-status [get]
func (h *StatusHandler) DBStatus(c *gin.Context) {
	status, err := h.status.Check(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Raw(c, http.StatusOK, status)
}
