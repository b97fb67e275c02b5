package service

import (
	"fmt"
	"testing"
	"time"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB her test için izole bir in-memory sqlite açar
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Word{},
		&model.DailyWord{},
		&model.GrammarContent{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.TestResult{},
		&model.UserProgress{},
		&model.LearningSession{},
		&model.Conversation{},
		&model.ChatMessage{},
		&model.Achievement{},
		&model.UserAchievement{},
	))
	return db
}

func newTestGamification(db *gorm.DB) *GamificationService {
	return NewGamificationService(
		db,
		repository.NewUserRepository(db),
		repository.NewAchievementRepository(db),
		repository.NewProgressRepository(db),
		repository.NewTestResultRepository(db),
	)
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{
		Username:      "tester",
		Email:         email,
		PasswordHash:  "x",
		LanguageLevel: model.LevelA1,
		DailyGoal:     10,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestWord(t *testing.T, db *gorm.DB, text, meaning string) *model.Word {
	t.Helper()
	word := &model.Word{Word: text, Meaning: meaning, Level: "A1", Category: "general"}
	require.NoError(t, db.Create(word).Error)
	return word
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
