package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"literacy-service/internal/tts"
	"literacy-service/internal/utils"
)

type TTSHandler struct {
	Client *tts.Client
}

func NewTTSHandler(client *tts.Client) *TTSHandler {
	return &TTSHandler{Client: client}
}

type ttsRequest struct {
	Text string `json:"text" binding:"required"`
}

// Speak converts a reading passage into a playable audio reference.
func (h *TTSHandler) Speak(c *gin.Context) {
	var req ttsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Text is required")
		return
	}

	audio, err := h.Client.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, tts.ErrUnavailable) {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "Read-aloud is not available", nil)
			return
		}
		utils.ErrorResponse(c, http.StatusBadGateway, "Failed to synthesize audio", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audio": audio})
}
