package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
	Storage  StorageProvider
}

func NewUserService(userRepo *repository.UserRepository, storage StorageProvider) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

type UpdateProfileRequest struct {
	Username  *string `json:"username"`
	Level     *string `json:"language_level"`
	DailyGoal *int    `json:"daily_goal"`
	AvatarURL *string `json:"avatar_url"`
}

func (s *UserService) UpdateProfile(userID uint, req *UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		name := strings.TrimSpace(*req.Username)
		if len(name) < 2 || len(name) > 80 {
			return nil, util.ErrInvalidInput
		}
		user.Username = name
	}
	if req.Level != nil {
		level, ok := model.NormalizeLevel(*req.Level)
		if !ok {
			return nil, util.ErrInvalidInput
		}
		user.LanguageLevel = level
	}
	if req.DailyGoal != nil {
		if *req.DailyGoal < 1 || *req.DailyGoal > 100 {
			return nil, util.ErrInvalidInput
		}
		user.DailyGoal = *req.DailyGoal
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar dosyayı depolamaya yazar ve profildeki URL'i günceller
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range util.AllowedAvatarExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", util.ErrInvalidInput
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("avatars/%d/%s%s", userID, uuid.New().String(), ext)
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	user.AvatarURL = url
	user.UpdatedAt = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}
	return url, nil
}
