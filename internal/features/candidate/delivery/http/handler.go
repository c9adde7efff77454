package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"interview-admin-backend/internal/features/candidate/models"
	"interview-admin-backend/internal/features/candidate/service"
)

type CandidateHandler struct {
	service service.CandidateService
}

func NewCandidateHandler(service service.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		service: service,
	}
}

func (h *CandidateHandler) RegisterRoutes(router *gin.RouterGroup) {
	candidates := router.Group("/candidates")
	{
		candidates.GET("", h.listCandidates)
		candidates.GET("/export", h.exportCandidates)
	}
}

// @Summary List candidates
// @Description Get all interview candidates, newest first, with computed average ratings
// @Tags candidates
// @Produce json
// @Success 200 {object} models.CandidatesResponse "Candidates"
// @Failure 502 {object} models.ErrorResponse "Backend unavailable"
// @Router /candidates [get]
func (h *CandidateHandler) listCandidates(c *gin.Context) {
	views, err := h.service.ListCandidates(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Failed to load candidates"})
		return
	}

	c.JSON(http.StatusOK, models.CandidatesResponse{Items: views, Total: len(views)})
}

// @Summary Export candidates as CSV
// @Description Download the candidate listing as a CSV attachment
// @Tags candidates
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Failure 502 {object} models.ErrorResponse "Backend unavailable"
// @Router /candidates/export [get]
func (h *CandidateHandler) exportCandidates(c *gin.Context) {
	filename, data, err := h.service.ExportCandidates(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Failed to export candidates"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
