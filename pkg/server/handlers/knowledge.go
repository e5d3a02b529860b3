package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fairgate/eventrag/pkg/knowledge"
	"github.com/fairgate/eventrag/pkg/server/dto"
)

// KnowledgeHandler exposes the knowledge base directly, alongside the chat
// pipeline.
type KnowledgeHandler struct {
	kb *knowledge.Base
}

// NewKnowledgeHandler creates a new knowledge handler.
func NewKnowledgeHandler(kb *knowledge.Base) *KnowledgeHandler {
	return &KnowledgeHandler{kb: kb}
}

// AddFact handles POST /api/v1/knowledge.
func (h *KnowledgeHandler) AddFact(c *gin.Context) {
	var req dto.AddFactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    "invalid_request",
			Message: err.Error(),
		})
		return
	}

	confirmation := h.kb.AddKnowledge(req.Relation, req.Subject, req.Value)
	c.JSON(http.StatusCreated, dto.AddFactResponse{Confirmation: confirmation})
}

// SearchEvents handles GET /api/v1/events/search?q=...
func (h *KnowledgeHandler) SearchEvents(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    "invalid_request",
			Message: "q query parameter is required",
		})
		return
	}

	c.JSON(http.StatusOK, dto.SearchEventsResponse{
		Query:  query,
		Events: h.kb.SearchEvents(query),
	})
}

// EventSummary handles GET /api/v1/events/:key.
func (h *KnowledgeHandler) EventSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.kb.EventSummary(c.Param("key")))
}

// SideEvents handles GET /api/v1/side-events.
func (h *KnowledgeHandler) SideEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.kb.SideEvents())
}
