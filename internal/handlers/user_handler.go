package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"literacy-service/internal/models"
	"literacy-service/internal/service"
	"literacy-service/internal/utils"
)

type UserHandler struct {
	Users *service.UserService
	Stats *service.StatsService
}

func NewUserHandler(users *service.UserService, stats *service.StatsService) *UserHandler {
	return &UserHandler{Users: users, Stats: stats}
}

type profileResponse struct {
	*models.User
	Level        models.Level `json:"level"`
	StudentLevel int          `json:"studentLevel"`
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.Users.GetUser(context.Background(), c.GetString(ctxUserID))
	if err != nil {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, profileResponse{
		User:         user,
		Level:        models.ResolveLevel(user.Points),
		StudentLevel: models.StudentLevel(user.Points),
	})
}

func (h *UserHandler) Records(c *gin.Context) {
	stats, err := h.Stats.Records(context.Background(), c.GetString(ctxUserID))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load records", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *UserHandler) Daily(c *gin.Context) {
	status, err := h.Stats.Daily(context.Background(), c.GetString(ctxUserID))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load daily status", err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *UserHandler) DrawTreasure(c *gin.Context) {
	won, user, err := h.Users.ClaimTreasure(context.Background(), c.GetString(ctxUserID))
	if err != nil {
		if errors.Is(err, service.ErrTreasureAlreadyClaimed) {
			utils.ErrorResponse(c, http.StatusConflict, "오늘은 이미 참여했어요. 내일 다시 만나요!", nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to draw treasure", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"wonPoints":   won,
		"totalPoints": user.Points,
		"badge":       user.Badge,
	})
}
