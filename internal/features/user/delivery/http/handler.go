package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"interview-admin-backend/internal/features/user/models"
	"interview-admin-backend/internal/features/user/query"
	"interview-admin-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.GET("/stats", h.getStats)

		users := admin.Group("/users")
		{
			users.GET("", h.listUsers)
			users.GET("/export", h.exportUsers)
			users.PUT("/:id/ban", h.updateBan)
			users.DELETE("/:id", h.deleteUser)
		}
	}
}

// @Summary List users
// @Description Get all users enriched with interview and candidate counts, filtered and sorted
// @Tags admin
// @Produce json
// @Param search query string false "Match against name or email, case-insensitive"
// @Param sort query string false "Sort key" Enums(created_at, name, email, interviews)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Param include_banned query bool false "Include banned accounts"
// @Success 200 {object} models.UsersResponse "Filtered users"
// @Failure 400 {object} models.ErrorResponse "Invalid query parameters"
// @Failure 502 {object} models.ErrorResponse "Backend unavailable"
// @Router /admin/users [get]
func (h *UserHandler) listUsers(c *gin.Context) {
	state, err := parseQueryState(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	views, err := h.service.ListUsers(c.Request.Context(), state)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Failed to load users"})
		return
	}

	c.JSON(http.StatusOK, models.UsersResponse{Items: views, Total: len(views)})
}

// @Summary Export users as CSV
// @Description Download the visible (filtered, sorted) users as a CSV attachment
// @Tags admin
// @Produce text/csv
// @Param search query string false "Match against name or email, case-insensitive"
// @Param sort query string false "Sort key" Enums(created_at, name, email, interviews)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Param include_banned query bool false "Include banned accounts"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} models.ErrorResponse "Invalid query parameters"
// @Failure 502 {object} models.ErrorResponse "Backend unavailable"
// @Router /admin/users/export [get]
func (h *UserHandler) exportUsers(c *gin.Context) {
	state, err := parseQueryState(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filename, data, err := h.service.ExportUsers(c.Request.Context(), state)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Failed to export users"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// @Summary Summary statistics
// @Description Totals over the whole user base, unaffected by any filter
// @Tags admin
// @Produce json
// @Success 200 {object} models.Stats "Summary statistics"
// @Failure 502 {object} models.ErrorResponse "Backend unavailable"
// @Router /admin/stats [get]
func (h *UserHandler) getStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Ban or unban a user
// @Description Set the ban flag of a single account. Repeating the call with the same value is a no-op.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param ban body models.BanUpdate true "Desired ban state"
// @Success 200 {object} models.Overview "Refreshed user view"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 502 {object} models.ErrorResponse "Backend unavailable"
// @Router /admin/users/{id}/ban [put]
func (h *UserHandler) updateBan(c *gin.Context) {
	var input models.BanUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.service.SetBanned(c.Request.Context(), c.Param("id"), input.Banned)
	if err != nil {
		if err == service.ErrUserNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete a user
// @Description Remove the account after its interviews and candidates. Dependent steps are best effort; the response lists each step's outcome.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.DeleteReport "Step-by-step outcome"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 502 {object} models.ErrorResponse "Account record could not be removed"
// @Router /admin/users/{id} [delete]
func (h *UserHandler) deleteUser(c *gin.Context) {
	report, err := h.service.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == service.ErrUserNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if report != nil {
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Failed to delete user", "report": report})
			return
		}
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func parseQueryState(c *gin.Context) (query.State, error) {
	state := query.Default()
	state.Search = c.Query("search")

	sortKey, err := query.ParseSortKey(c.Query("sort"))
	if err != nil {
		return query.State{}, err
	}
	state.Sort = sortKey

	switch c.Query("order") {
	case "", "desc":
		state.Desc = true
	case "asc":
		state.Desc = false
	default:
		return query.State{}, fmt.Errorf("unknown order %q", c.Query("order"))
	}

	if raw := c.Query("include_banned"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return query.State{}, fmt.Errorf("invalid include_banned %q", raw)
		}
		state.IncludeBanned = include
	}

	return state, nil
}
