package service

import (
	"testing"
	"time"

	"talkify_backend/internal/config"
	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAuth(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret!"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegister_IssuesTokenAndHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuth(db)

	result, err := svc.Register(&RegisterRequest{
		Username: "ayse",
		Email:    "ayse@test.com",
		Password: "gizli123",
		Level:    "b1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, model.LevelB1, result.User.LanguageLevel)
	assert.NotEqual(t, "gizli123", result.User.PasswordHash)

	claims, err := util.ParseJWT(result.Token, "test-secret-test-secret-test-secret!")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuth(db)

	_, err := svc.Register(&RegisterRequest{Username: "a", Email: "dup@test.com", Password: "123456"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterRequest{Username: "b", Email: "dup@test.com", Password: "654321"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestRegister_InvalidLevelFallsBackToA1(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuth(db)

	result, err := svc.Register(&RegisterRequest{
		Username: "c", Email: "c@test.com", Password: "123456", Level: "Z9",
	})
	require.NoError(t, err)
	assert.Equal(t, model.LevelA1, result.User.LanguageLevel)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuth(db)

	_, err := svc.Register(&RegisterRequest{Username: "d", Email: "d@test.com", Password: "correct1"})
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Email: "d@test.com", Password: "wrong"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuth(db)

	// Kayıtlı olmayan e-posta da aynı hatayı döner, hesap varlığı sızmaz
	_, err := svc.Login(&LoginRequest{Email: "ghost@test.com", Password: "x"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLogin_UpdatesLastLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuth(db)

	reg, err := svc.Register(&RegisterRequest{Username: "e", Email: "e@test.com", Password: "123456"})
	require.NoError(t, err)
	require.Nil(t, reg.User.LastLogin)

	result, err := svc.Login(&LoginRequest{Email: "e@test.com", Password: "123456"})
	require.NoError(t, err)
	assert.NotNil(t, result.User.LastLogin)
}
