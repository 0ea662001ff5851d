package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Dashboard counts
// @Tags         admin
// @Produce      json
// @Success      200  {object}  models.Stats
// @Failure      401  {object}  taskflow.ErrorResponse
// @Failure      403  {object}  taskflow.ErrorResponse
// @Router       /api/admin/stats [get]
// @Security     BearerAuth
func (h *Handler) adminStats(c *gin.Context) {
	st, err := h.services.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, "admin_stats_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      All users
// @Description  Newest registrations first
// @Tags         admin
// @Produce      json
// @Success      200  {array}   models.User
// @Failure      401  {object}  taskflow.ErrorResponse
// @Failure      403  {object}  taskflow.ErrorResponse
// @Router       /api/admin/users [get]
// @Security     BearerAuth
func (h *Handler) adminUsers(c *gin.Context) {
	users, err := h.services.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, "admin_users_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary      All tasks with owner
// @Description  Moderation view, newest first
// @Tags         admin
// @Produce      json
// @Success      200  {array}   models.TaskWithOwner
// @Failure      401  {object}  taskflow.ErrorResponse
// @Failure      403  {object}  taskflow.ErrorResponse
// @Router       /api/admin/all-tasks [get]
// @Security     BearerAuth
func (h *Handler) adminAllTasks(c *gin.Context) {
	tasks, err := h.services.ListAllTasks(c.Request.Context())
	if err != nil {
		h.respondError(c, "admin_all_tasks_failed", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}
