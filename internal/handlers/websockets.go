package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 5 * time.Second
	minInterval      = 10 * time.Millisecond
	maxInterval      = 60 * time.Second
	maxIntervalMilli = 60_000
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Live task list
// @Description  WebSocket stream of the caller's tasks. The token is taken from ?token= or the Authorization header. Refresh period via ?interval=5s or ?interval_ms=5000.
// @Tags         tasks
// @Param        token        query  string  false  "Bearer token"
// @Param        interval     query  string  false  "Refresh period, e.g. 2s"
// @Param        interval_ms  query  int     false  "Refresh period in milliseconds"
// @Success      101  {string}  string  "switching protocols"
// @Failure      401  {object}  taskflow.ErrorResponse
// @Router       /ws/tasks [get]
func (h *Handler) wsTasks(c *gin.Context) {
	userId, err := h.wsIdentify(c)
	if err != nil {
		h.respondError(c, "ws_auth_rejected", err)
		return
	}
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendTasks(ctx, conn, userId); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "user_id", userId, "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendTasks(ctx, conn, userId); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "user_id", userId, "err", err)
				}
				return
			}
		}
	}
}

// wsIdentify accepts ?token= since browsers cannot set headers on a WebSocket handshake.
func (h *Handler) wsIdentify(c *gin.Context) (int, error) {
	if token := c.Query("token"); token != "" {
		return h.services.ParseToken(token)
	}
	return h.identify(c)
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= minInterval && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			if d := time.Duration(v) * time.Millisecond; d >= minInterval {
				return d
			}
		}
	}

	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Debugw("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// sendTasks writes the user's current task list. A load failure is reported to
// the client as an error envelope before the connection closes.
func (h *Handler) sendTasks(ctx context.Context, conn *websocket.Conn, userID int) error {
	tasks, err := h.services.ListTasks(ctx, userID)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_list_tasks_failed", "user_id", userID, "err", err)
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: "internal error"})
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: "tasks", Data: tasks})
}
