package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"literacy-service/internal/llm"
	"literacy-service/internal/models"
	"literacy-service/internal/service"
	"literacy-service/internal/utils"
)

type ChallengeHandler struct {
	Challenges  *service.ChallengeService
	Submissions *service.SubmissionService
	Users       *service.UserService
}

func NewChallengeHandler(challenges *service.ChallengeService, submissions *service.SubmissionService, users *service.UserService) *ChallengeHandler {
	return &ChallengeHandler{Challenges: challenges, Submissions: submissions, Users: users}
}

// GetChallenge serves the daily challenge for the caller's tier. The reading
// category accepts ?topic= which bypasses the daily cache.
func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		utils.NotFoundResponse(c, "Unknown challenge category")
		return
	}
	topic := c.Query("topic")
	if topic != "" && category != models.CategoryReading {
		utils.BadRequestResponse(c, "Topic selection is only available for reading challenges")
		return
	}

	userID := c.GetString(ctxUserID)
	user, err := h.Users.GetUser(c.Request.Context(), userID)
	if err != nil {
		utils.NotFoundResponse(c, "User not found")
		return
	}

	resp, err := h.Challenges.GetChallenge(c.Request.Context(), userID, category, user.Points, topic)
	if err != nil {
		if errors.Is(err, llm.ErrGeneration) {
			utils.ErrorResponse(c, http.StatusBadGateway, "챌린지를 불러오는 중 문제가 발생했습니다. 잠시 후 다시 시도해주세요.", err)
			return
		}
		utils.InternalErrorResponse(c, "Failed to load challenge", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Submit grades a completed challenge and records progress. Idempotent per
// challenge session.
func (h *ChallengeHandler) Submit(c *gin.Context) {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		utils.NotFoundResponse(c, "Unknown challenge category")
		return
	}

	var req service.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid submission payload")
		return
	}

	result, err := h.Submissions.Submit(c.Request.Context(), c.GetString(ctxUserID), category, req)
	if err != nil {
		if errors.Is(err, service.ErrEmptySubmission) {
			utils.BadRequestResponse(c, "Submission has no answers")
			return
		}
		utils.InternalErrorResponse(c, "Failed to process submission", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
