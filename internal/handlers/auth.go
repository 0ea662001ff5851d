package handlers

import (
	"net/http"

	"taskflow"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	redirectAdmin = "/admin"
	redirectTasks = "/tasks"

	msgRegistered = "Registrado"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required" example:"ana@x.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

type registerRequest struct {
	Name     string `json:"nombre" binding:"required" example:"Ana"`
	Email    string `json:"email" binding:"required,email" example:"ana@x.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// @Summary      Log in
// @Description  Returns a bearer token valid for seven days
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  taskflow.LoginResponse
// @Failure      400   {object}  taskflow.ErrorResponse
// @Failure      401   {object}  taskflow.ErrorResponse
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input, "auth_bad_request_body"); !ok {
		return
	}

	sess, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, "auth_sign_in_failed", err, "email", input.Email)
		return
	}

	redirect := redirectTasks
	if sess.User.IsAdmin {
		redirect = redirectAdmin
	}
	c.JSON(http.StatusOK, taskflow.LoginResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		User: taskflow.UserSummary{
			ID:      sess.User.ID,
			Name:    sess.User.Name,
			Email:   sess.User.Email,
			IsAdmin: sess.User.IsAdmin,
		},
		Redirect: redirect,
	})
}

// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "New account"
// @Success      201   {object}  taskflow.RegisterResponse
// @Failure      400   {object}  taskflow.ErrorResponse
// @Router       /api/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input, "auth_bad_request_body"); !ok {
		return
	}

	id, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		h.respondError(c, "auth_sign_up_failed", err, "email", input.Email)
		return
	}

	c.JSON(http.StatusCreated, taskflow.RegisterResponse{Message: msgRegistered, UserID: id})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  taskflow.HealthResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, taskflow.HealthResponse{Status: "ok"})
}
