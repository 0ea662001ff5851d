package handlers

import (
	"net/http"
	"strconv"

	"taskflow"
	"taskflow/internal/apperrors"
	"taskflow/internal/models"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgTaskCreated = "Tarea creada"
	msgTaskUpdated = "Tarea actualizada"
	msgTaskDeleted = "Tarea eliminada"
)

type createTaskRequest struct {
	Title       string  `json:"titulo" binding:"required" example:"Buy milk"`
	Description *string `json:"descripcion" example:"two litres"`
	Category    *string `json:"categoria" example:"Casa"`
	Priority    string  `json:"prioridad" example:"alta"`
	DueDate     string  `json:"fecha_limite" example:"2025-06-01"`
}

// Completed is a pointer so an absent field is distinguishable from false.
type updateTaskRequest struct {
	Completed *bool `json:"completada" binding:"required" example:"true"`
}

func taskIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, apperrors.New(apperrors.CodeValidation, "invalid task id")
	}
	return id, nil
}

// @Summary      List my tasks
// @Description  Ordered by due date (undated last), then priority alta > media > baja. Without a valid token the list is empty.
// @Tags         tasks
// @Produce      json
// @Success      200  {array}   models.Task
// @Failure      500  {object}  taskflow.ErrorResponse
// @Router       /api/tasks [get]
// @Security     BearerAuth
func (h *Handler) listTasks(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusOK, []models.Task{})
		return
	}
	tasks, err := h.services.ListTasks(c.Request.Context(), userId)
	if err != nil {
		h.respondError(c, "tasks_list_failed", err, "user_id", userId)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Create task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task"
// @Success      201   {object}  taskflow.CreatedResponse
// @Failure      400   {object}  taskflow.ErrorResponse
// @Failure      401   {object}  taskflow.ErrorResponse
// @Router       /api/tasks [post]
// @Security     BearerAuth
func (h *Handler) createTask(c *gin.Context) {
	userId, _ := currentUserID(c)
	var input createTaskRequest
	if ok := h.bindJSONOrBadRequest(c, &input, "tasks_bad_request_body"); !ok {
		return
	}

	id, err := h.services.CreateTask(c.Request.Context(), userId, service.TaskInput{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		h.respondError(c, "tasks_create_failed", err, "user_id", userId)
		return
	}
	c.JSON(http.StatusCreated, taskflow.CreatedResponse{Message: msgTaskCreated, ID: id})
}

// @Summary      Mark task completed or pending
// @Description  Only completada is mutable. Unknown or foreign ids succeed without effect.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Completion flag"
// @Success      200   {object}  taskflow.MessageResponse
// @Failure      400   {object}  taskflow.ErrorResponse
// @Failure      401   {object}  taskflow.ErrorResponse
// @Router       /api/tasks/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTask(c *gin.Context) {
	userId, _ := currentUserID(c)
	taskID, err := taskIDParam(c)
	if err != nil {
		h.respondError(c, "tasks_bad_id", err, "id", c.Param("id"))
		return
	}
	var input updateTaskRequest
	if ok := h.bindJSONOrBadRequest(c, &input, "tasks_bad_request_body"); !ok {
		return
	}

	if err := h.services.SetTaskCompleted(c.Request.Context(), userId, taskID, *input.Completed); err != nil {
		h.respondError(c, "tasks_update_failed", err, "user_id", userId, "task_id", taskID)
		return
	}
	c.JSON(http.StatusOK, taskflow.MessageResponse{Message: msgTaskUpdated})
}

// @Summary      Delete task
// @Description  Unknown or foreign ids succeed without effect.
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task id"
// @Success      200  {object}  taskflow.MessageResponse
// @Failure      400  {object}  taskflow.ErrorResponse
// @Failure      401  {object}  taskflow.ErrorResponse
// @Router       /api/tasks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTask(c *gin.Context) {
	userId, _ := currentUserID(c)
	taskID, err := taskIDParam(c)
	if err != nil {
		h.respondError(c, "tasks_bad_id", err, "id", c.Param("id"))
		return
	}

	if err := h.services.DeleteTask(c.Request.Context(), userId, taskID); err != nil {
		h.respondError(c, "tasks_delete_failed", err, "user_id", userId, "task_id", taskID)
		return
	}
	c.JSON(http.StatusOK, taskflow.MessageResponse{Message: msgTaskDeleted})
}
