package services

import (
	"time"

	"nbhd_backend/internal/auth"
	"nbhd_backend/internal/logger"
	"nbhd_backend/internal/models"
	"nbhd_backend/internal/repositories"
	"nbhd_backend/internal/services/dto"
	"nbhd_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a user account and returns its shaped view. Usernames are
// unique; a taken one answers 409.
func (s *AuthService) Register(db *gorm.DB, req dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		DateJoined:   time.Now(),
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "user", "That username is already taken.")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "username", user.Username, "user_id", user.ID)

	response := dto.NewUserResponse(user)
	return &response, nil
}

// Login verifies credentials and issues an access token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user logged in", "username", user.Username, "user_id", user.ID)

	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.NewUserResponse(user),
	}, nil
}
