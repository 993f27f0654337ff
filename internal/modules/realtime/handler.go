package realtime

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	jwtsvc "studiobooking/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// TODO: restrict origins once the staff frontend host is fixed
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	hub    *Hub
	tokens *jwtsvc.Service
}

func NewWSHandler(hub *Hub, tokens *jwtsvc.Service) *WSHandler {
	return &WSHandler{hub: hub, tokens: tokens}
}

// HandleWebSocket upgrades GET /ws?token=JWT to a push connection.
// The token travels as a query parameter because browsers cannot set
// headers on WebSocket requests.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token is required"})
		return
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed user_id=%d error=%v", claims.UserID, err)
		return
	}

	h.hub.Register(claims.UserID, conn)
	log.Printf("websocket connected user_id=%d online=%d", claims.UserID, h.hub.OnlineCount())

	defer func() {
		h.hub.Unregister(claims.UserID)
		log.Printf("websocket disconnected user_id=%d", claims.UserID)
	}()

	// Drain the connection; clients only receive.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
