package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"literacy-service/internal/service"
	"literacy-service/internal/utils"
)

type TeacherHandler struct {
	Users *service.UserService
	Stats *service.StatsService
}

func NewTeacherHandler(users *service.UserService, stats *service.StatsService) *TeacherHandler {
	return &TeacherHandler{Users: users, Stats: stats}
}

// Students lists the roster of the teacher's own class.
func (h *TeacherHandler) Students(c *gin.Context) {
	teacher, err := h.Users.GetUser(context.Background(), c.GetString(ctxUserID))
	if err != nil {
		utils.NotFoundResponse(c, "User not found")
		return
	}
	if teacher.ClassID == "" {
		c.JSON(http.StatusOK, gin.H{"students": []interface{}{}})
		return
	}

	students, err := h.Users.ClassStudents(context.Background(), teacher.ClassID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load students", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students})
}

// StudentLogs returns one student's quiz logs, newest first, for the wrong
// answer review view.
func (h *TeacherHandler) StudentLogs(c *gin.Context) {
	teacher, err := h.Users.GetUser(context.Background(), c.GetString(ctxUserID))
	if err != nil {
		utils.NotFoundResponse(c, "User not found")
		return
	}

	student, err := h.Users.GetUser(context.Background(), c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Student not found")
		return
	}
	if teacher.ClassID == "" || student.ClassID != teacher.ClassID {
		utils.ForbiddenResponse(c, "Student is not in your class")
		return
	}

	logs, err := h.Stats.QuizLogs(context.Background(), student.ID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load quiz logs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
