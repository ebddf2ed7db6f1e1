package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"literacy-service/internal/service"
	"literacy-service/internal/utils"
)

type LeaderboardHandler struct {
	Users *service.UserService
}

func NewLeaderboardHandler(users *service.UserService) *LeaderboardHandler {
	return &LeaderboardHandler{Users: users}
}

// Leaderboard is public; the caller's rank is resolved when a valid token is
// present.
func (h *LeaderboardHandler) Leaderboard(c *gin.Context) {
	callerID := ""
	if claims, err := utils.ClaimsFromRequest(c); err == nil && claims != nil {
		callerID = claims.UserID
	}

	entries, rank, err := h.Users.RankedLeaderboard(context.Background(), callerID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load leaderboard", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entries":    entries,
		"callerRank": rank,
	})
}
