package service

import (
	"context"
	"testing"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestWord(db *gorm.DB) *WordService {
	return NewWordService(repository.NewWordRepository(db), nil)
}

func seedWords(t *testing.T, db *gorm.DB) {
	t.Helper()
	words := []model.Word{
		{Word: "apple", Meaning: "elma", Level: "A1", Category: "food"},
		{Word: "Application", Meaning: "başvuru", Level: "B2", Category: "business"},
		{Word: "house", Meaning: "ev", Level: "A1", Category: "home"},
	}
	require.NoError(t, db.Create(&words).Error)
}

func TestListWords_InvalidLevelIgnored(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWord(db)
	seedWords(t, db)

	words, pagination, err := svc.ListWords(WordFilter{Level: "Z9"}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, words, 3)
	assert.Equal(t, int64(3), pagination.TotalItems)
}

func TestListWords_LevelNormalized(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWord(db)
	seedWords(t, db)

	words, _, err := svc.ListWords(WordFilter{Level: " a1 "}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, words, 2)
}

func TestListWords_SearchCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWord(db)
	seedWords(t, db)

	words, _, err := svc.ListWords(WordFilter{Search: "APPL"}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, words, 2)

	// Anlam alanında da arar
	words, _, err = svc.ListWords(WordFilter{Search: "elma"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "apple", words[0].Word)
}

func TestListWords_PageBeyondEndIsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWord(db)
	seedWords(t, db)

	words, pagination, err := svc.ListWords(WordFilter{}, 50, 20)
	require.NoError(t, err)
	assert.Empty(t, words)
	assert.Equal(t, int64(3), pagination.TotalItems)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestListWords_FiltersCombineWithAnd(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWord(db)
	seedWords(t, db)

	words, _, err := svc.ListWords(WordFilter{Level: "A1", Category: "food"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "apple", words[0].Word)
}

func TestCreateWord_DuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWord(db)

	_, err := svc.CreateWord(&WordRequest{Word: "apple", Meaning: "elma"})
	require.NoError(t, err)

	_, err = svc.CreateWord(&WordRequest{Word: "apple", Meaning: "başka anlam"})
	assert.ErrorIs(t, err, util.ErrWordExists)
}

func TestDailyWord_PersistsForTheDay(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWord(db)
	seedWords(t, db)

	ctx := context.Background()
	first, err := svc.DailyWord(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Aynı gün ikinci çağrı aynı kelimeyi döner
	second, err := svc.DailyWord(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.DailyWord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDailyWord_EmptyPool(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWord(db)

	_, err := svc.DailyWord(context.Background())
	assert.ErrorIs(t, err, util.ErrWordNotFound)
}

func TestGetWord_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWord(db)

	_, err := svc.GetWord(123)
	assert.ErrorIs(t, err, util.ErrWordNotFound)
}
