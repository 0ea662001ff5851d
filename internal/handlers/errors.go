package handlers

import (
	"net/http"

	"taskflow"
	"taskflow/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps err to its status, logs it and aborts with a generic body.
// Token failure kinds are logged but never returned to the client.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	status := apperrors.HTTPStatus(err)
	if h.log != nil {
		fields := append([]interface{}{
			"code", string(apperrors.CodeOf(err)),
			"status", status,
			"request_id", c.GetString(ctxRequestID),
			"err", err,
		}, kv...)
		if status >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.AbortWithStatusJSON(status, taskflow.ErrorResponse{Error: apperrors.PublicMessage(err)})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any, logKey string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.respondError(c, logKey, apperrors.Wrap(apperrors.CodeValidation, "invalid request body", err))
		return false
	}
	return true
}
