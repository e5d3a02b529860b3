package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fairgate/eventrag"
	"github.com/fairgate/eventrag/pkg/server/dto"
)

// Responder answers one chat query. The pipeline guarantees a well-formed
// answer for any input, so the handler never maps answers to error codes.
type Responder interface {
	Answer(ctx context.Context, query string) eventrag.Answer
}

// ChatHandler handles chat requests.
type ChatHandler struct {
	assistant Responder
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(assistant Responder) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// Chat handles POST /api/v1/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    "invalid_request",
			Message: err.Error(),
		})
		return
	}

	answer := h.assistant.Answer(c.Request.Context(), req.Text)

	c.JSON(http.StatusOK, dto.ChatResponse{
		MsgID:            uuid.NewString(),
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		SelectedQuestion: answer.SelectedQuestion,
		HumanizedAnswer:  answer.HumanizedAnswer,
	})
}
