package handlers

import (
	"net/http"

	"taskflow/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Calendar events
// @Description  Dated tasks of the caller as FullCalendar events. Without a valid token the list is empty.
// @Tags         calendar
// @Produce      json
// @Success      200  {array}   models.CalendarEvent
// @Failure      500  {object}  taskflow.ErrorResponse
// @Router       /api/calendar/tasks [get]
// @Security     BearerAuth
func (h *Handler) calendarTasks(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, []models.CalendarEvent{})
		return
	}
	events, err := h.services.CalendarEvents(c.Request.Context(), userId)
	if err != nil {
		h.respondError(c, "calendar_list_failed", err, "user_id", userId)
		return
	}
	c.JSON(http.StatusOK, events)
}
