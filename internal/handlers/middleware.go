package handlers

import (
	"github.com/gin-gonic/gin"

	"literacy-service/internal/models"
	"literacy-service/internal/utils"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

// AuthRequired validates the bearer token and stores the caller identity on
// the context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.ClaimsFromRequest(c)
		if err != nil || claims == nil {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// TeacherOnly guards the teacher dashboard routes.
func TeacherOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != models.RoleTeacher {
			utils.ForbiddenResponse(c, "Teacher role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
