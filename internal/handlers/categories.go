package handlers

import (
	"net/http"

	"taskflow"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
)

const msgCategoryCreated = "Categoría creada"

type createCategoryRequest struct {
	Name  string `json:"nombre" binding:"required" example:"Casa"`
	Color string `json:"color" example:"#4361ee"`
}

// @Summary      List my categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   models.Category
// @Failure      401  {object}  taskflow.ErrorResponse
// @Router       /api/categories [get]
// @Security     BearerAuth
func (h *Handler) listCategories(c *gin.Context) {
	userId, _ := currentUserID(c)
	cats, err := h.services.ListCategories(c.Request.Context(), userId)
	if err != nil {
		h.respondError(c, "categories_list_failed", err, "user_id", userId)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoryRequest  true  "Category"
// @Success      201   {object}  taskflow.CreatedResponse
// @Failure      400   {object}  taskflow.ErrorResponse
// @Failure      401   {object}  taskflow.ErrorResponse
// @Router       /api/categories [post]
// @Security     BearerAuth
func (h *Handler) createCategory(c *gin.Context) {
	userId, _ := currentUserID(c)
	var input createCategoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input, "categories_bad_request_body"); !ok {
		return
	}

	id, err := h.services.CreateCategory(c.Request.Context(), userId, service.CategoryInput{
		Name:  input.Name,
		Color: input.Color,
	})
	if err != nil {
		h.respondError(c, "categories_create_failed", err, "user_id", userId)
		return
	}
	c.JSON(http.StatusCreated, taskflow.CreatedResponse{Message: msgCategoryCreated, ID: id})
}
