package handlers

import (
	"fmt"
	"strings"
	"time"

	"taskflow/internal/models"
	"taskflow/internal/service"
	"taskflow/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Gin context keys.
const (
	ctxUserID    = "userId"
	ctxUser      = "user"
	ctxRequestID = "requestId"

	headerRequestID = "X-Request-ID"
)

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", service.ErrTokenMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", service.ErrTokenMalformed
	}
	return strings.TrimSpace(parts[1]), nil
}

func (h *Handler) identify(c *gin.Context) (int, error) {
	token, err := bearerToken(c)
	if err != nil {
		return 0, err
	}
	return h.services.ParseToken(token)
}

// userIdMiddleware rejects the request with 401 unless it carries a valid token.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	userId, err := h.identify(c)
	if err != nil {
		h.respondError(c, "auth_token_rejected", err, "path", c.FullPath())
		return
	}

	// store in Gin context
	c.Set(ctxUserID, userId)
	c.Next()
}

// optionalUserIdMiddleware sets the user id when a valid token is present and
// lets the request through either way.
func (h *Handler) optionalUserIdMiddleware(c *gin.Context) {
	if userId, err := h.identify(c); err == nil {
		c.Set(ctxUserID, userId)
	} else if h.log != nil && c.GetHeader("Authorization") != "" {
		h.log.Debugw("auth_optional_token_ignored", "err", err)
	}
	c.Next()
}

// authorizedAs must run after userIdMiddleware. The role is checked against the
// stored user on every request.
func (h *Handler) authorizedAs(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			h.respondError(c, "auth_identity_missing", service.ErrTokenMissing)
			return
		}
		u, err := h.services.AuthorizedAs(c.Request.Context(), userId, role)
		if err != nil {
			h.respondError(c, "auth_role_rejected", err, "user_id", userId, "role", role)
			return
		}
		c.Set(ctxUser, u)
		c.Next()
	}
}

func currentUserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(headerRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Header(headerRequestID, id)
	c.Next()
}

// tracingMiddleware opens a server span per request. Without a configured
// provider the global tracer is a no-op.
func (h *Handler) tracingMiddleware(c *gin.Context) {
	ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	ctx, span := telemetry.Tracer().Start(ctx, fmt.Sprintf("%s %s", c.Request.Method, route),
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("request.id", c.GetString(ctxRequestID)),
		),
	)
	defer span.End()

	c.Request = c.Request.WithContext(ctx)
	c.Next()

	status := c.Writer.Status()
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= 500 {
		span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
	}
}

func (h *Handler) accessLogMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}

	kv := []interface{}{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"request_id", c.GetString(ctxRequestID),
	}
	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.IsValid() {
		kv = append(kv, "trace_id", sc.TraceID().String())
	}
	h.log.Infow("http_request", kv...)
}
