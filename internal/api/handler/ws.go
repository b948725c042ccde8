package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Дозволяє з'єднання з будь-якого домену. У продакшені налаштувати!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeEventFeed оновлює HTTP-з'єднання до WebSocket та транслює
// адмін-панелі події життєвого циклу скарг із Redis Pub/Sub.
func (h *Handler) ServeEventFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}
	defer conn.Close()

	pubsub := h.Storage.SubscribeEvents()
	defer pubsub.Close()

	// Дзеркалимо кожну подію з Redis у WebSocket до розриву з'єднання.
	for msg := range pubsub.Channel() {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			log.Printf("INFO: Event feed client disconnected: %v", err)
			return
		}
	}
}
