package service

import (
	"context"
	"errors"
	"time"

	"literacy-service/internal/event"
	"literacy-service/internal/models"
	"literacy-service/internal/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown accounts and wrong passwords so
// nothing about account existence leaks.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthService struct {
	Users     *UserService
	Publisher *event.Publisher
}

func NewAuthService(users *UserService, publisher *event.Publisher) *AuthService {
	return &AuthService{Users: users, Publisher: publisher}
}

func (s *AuthService) Register(ctx context.Context, name, email, password, role, classID string) (*models.User, string, error) {
	if role != models.RoleTeacher {
		role = models.RoleStudent
	}

	_, err := s.Users.Repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		ClassID:      classID,
		Points:       0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.SyncBadge()

	if err := s.Users.Repo.Create(ctx, user); err != nil {
		return nil, "", err
	}
	s.Users.refreshLeaderboard(ctx, user)
	s.Publisher.Publish(event.UserRegistered, map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.Users.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
