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

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
	ClassID  string `json:"classId"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid signup payload")
		return
	}

	user, token, err := h.Service.Register(context.Background(), req.Name, req.Email, req.Password, req.Role, req.ClassID)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			utils.ErrorResponse(c, http.StatusConflict, "Email already registered", nil)
			return
		}
		utils.InternalErrorResponse(c, "Signup failed", err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid login payload")
		return
	}

	user, token, err := h.Service.Login(context.Background(), req.Email, req.Password)
	if err != nil {
		// Same message for unknown account and wrong password.
		utils.UnauthorizedResponse(c, "이메일 또는 비밀번호가 올바르지 않습니다.")
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}
