package http

import (
	"context"
	"time"

	"insight-srv/internal/dashboard"
	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const streamWriteTimeout = 10 * time.Second

// AlertsStream - Pushes the alerts page over a websocket every stream interval while
// real-time updates are enabled. Query parameters are those of the alerts page.
// @Router /api/v1/pages/alerts/stream [get]
func (h *handler) AlertsStream(c *gin.Context) {
	ctx := c.Request.Context()

	brand, q, err := h.processAlertsRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "dashboard.delivery.http.AlertsStream: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go h.drain(conn, cancel)

	h.l.Infof(ctx, "dashboard.delivery.http.AlertsStream: client connected for %q", brand)
	h.stream(ctx, conn, brand, q)
	h.l.Infof(ctx, "dashboard.delivery.http.AlertsStream: client disconnected")
}

func (h *handler) stream(ctx context.Context, conn *websocket.Conn, brand string, q dashboard.AlertsQuery) {
	push := func() bool {
		if !h.state.Snapshot().RealTimeEnabled {
			return true
		}
		page := h.uc.Alerts(ctx, brand, q)
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
		if err := conn.WriteJSON(page); err != nil {
			h.l.Warnf(ctx, "dashboard.delivery.http.AlertsStream: write failed: %v", err)
			return false
		}
		return true
	}

	if !push() {
		return
	}

	ticker := time.NewTicker(h.cfg.StreamInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			return
		case <-ticker.C:
			if !push() {
				return
			}
		}
	}
}

// drain reads until the client goes away so control frames are processed.
func (h *handler) drain(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
