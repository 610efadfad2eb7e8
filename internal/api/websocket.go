package api

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Origin checking is delegated to the CORS middleware
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleWebSocket handles GET /api/v1/ws/events
// @Summary Subscribe to entity change events
// @Description Upgrade to a WebSocket connection delivering tenant-scoped entity change events
// @Tags WebSocket
// @Security BearerAuth
// @Success 101 "Switching protocols"
// @Failure 401 {object} APIError "Unauthorized"
// @Router /ws/events [get]
func (s *Server) handleWebSocket(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		hub:      s.wsHub,
		conn:     ws,
		tenantID: s.authMiddle.Tenant(c),
		send:     make(chan []byte, 256),
	}
	s.wsHub.register <- client

	go client.writePump()
	go client.readPump()

	return nil
}

// getWebSocketStats handles GET /api/v1/ws/stats
// @Summary WebSocket connection stats
// @Description Report the number of connected WebSocket clients
// @Tags WebSocket
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int "Connection stats"
// @Router /ws/stats [get]
func (s *Server) getWebSocketStats(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{
		"clients": s.wsHub.ClientCount(),
	})
}

// broadcast publishes an entity change to the tenant's connected clients.
func (s *Server) broadcast(tenantID, resource string, eventType EntityEventType, data interface{}) {
	s.wsHub.BroadcastEvent(EntityEvent{
		Resource: resource,
		Type:     eventType,
		TenantID: tenantID,
		Data:     data,
	})
}
