package chat

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/llm"
)

type Handler struct {
	service *Service
	apiKey  string
}

// NewHandler takes the completion API key separately so the configuration
// check stays a per-request concern, like the original function deployment.
func NewHandler(service *Service, apiKey string) *Handler {
	return &Handler{service: service, apiKey: apiKey}
}

func (h *Handler) Chat(c *gin.Context) {
	if h.apiKey == "" {
		log.Println("chat: ANTHROPIC_API_KEY not set")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
		return
	}

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	visible, err := h.service.Respond(c.Request.Context(), &req)
	if err != nil {
		var upstream *llm.UpstreamError
		if errors.As(err, &upstream) {
			// Raw upstream body stays in the log; the caller gets the
			// status code and a generic message.
			log.Printf("chat: completion api error: status %d, body: %s", upstream.StatusCode, upstream.Body)
			c.JSON(upstream.StatusCode, gin.H{"error": "Failed to get response from AI"})
			return
		}
		log.Printf("chat: internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{Response: visible})
}
