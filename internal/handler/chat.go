package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hassanadil1/Panora-sub000/internal/model"
	"github.com/hassanadil1/Panora-sub000/internal/service"
)

// ChatHandler handles chat assistant HTTP requests
type ChatHandler struct {
	chatService *service.ChatService
	log         *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		log:         log,
	}
}

// Chat handles POST /api/chat. Only the last message's content is acted on;
// the rest of the transcript is accepted for frontend convenience.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	last := req.Messages[len(req.Messages)-1]
	message := strings.TrimSpace(last.Content)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message content is empty"})
		return
	}

	reply, err := h.chatService.Respond(c.Request.Context(), message)
	if err != nil {
		h.log.Error("chat request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.ChatResponse{Message: reply})
}
