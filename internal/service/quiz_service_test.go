package service

import (
	"testing"
	"time"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"
	"talkify_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestQuiz(db *gorm.DB) *QuizService {
	return NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewTestResultRepository(db),
		newTestGamification(db),
	)
}

func TestSubmitResult_StoresPercentage(t *testing.T) {
	db := newTestDB(t)
	svc := newTestQuiz(db)
	user := createTestUser(t, db, "q1@test.com")

	resp, err := svc.SubmitResult(user.ID, &SubmitResultRequest{Score: 7, TotalQuestions: 10})
	require.NoError(t, err)
	assert.InDelta(t, 70.0, resp.Result.Percentage, 0.001)
	assert.Equal(t, "quiz", resp.Result.TestType)
	assert.Equal(t, 1, resp.Streak.StreakCount)
}

func TestSubmitResult_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newTestQuiz(db)
	user := createTestUser(t, db, "q2@test.com")

	tests := []struct {
		name  string
		score int
		total int
	}{
		{"toplam sıfır", 0, 0},
		{"negatif puan", -1, 10},
		{"puan toplamı aşıyor", 11, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitResult(user.ID, &SubmitResultRequest{Score: tt.score, TotalQuestions: tt.total})
			assert.ErrorIs(t, err, util.ErrInvalidInput)
		})
	}
}

func TestSubmitResult_UnknownQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := newTestQuiz(db)
	user := createTestUser(t, db, "q3@test.com")

	missing := uint(42)
	_, err := svc.SubmitResult(user.ID, &SubmitResultRequest{QuizID: &missing, Score: 1, TotalQuestions: 2})
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}

func TestSyncResults_TrustsSuppliedPercentage(t *testing.T) {
	db := newTestDB(t)
	svc := newTestQuiz(db)
	user := createTestUser(t, db, "q4@test.com")

	supplied := 88.5
	completed := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	synced, err := svc.SyncResults(user.ID, []LegacyResult{
		{Score: 5, TotalQuestions: 10, Percentage: &supplied, CompletedAt: &completed},
		{Score: 3, TotalQuestions: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, synced)

	var results []model.TestResult
	require.NoError(t, db.Where("user_id = ?", user.ID).Order("id ASC").Find(&results).Error)
	require.Len(t, results, 2)
	assert.InDelta(t, 88.5, results[0].Percentage, 0.001)
	assert.True(t, results[0].CompletedAt.Equal(completed))
	assert.InDelta(t, 75.0, results[1].Percentage, 0.001)
}

func TestSyncResults_SkipsInvalidEntries(t *testing.T) {
	db := newTestDB(t)
	svc := newTestQuiz(db)
	user := createTestUser(t, db, "q5@test.com")

	synced, err := svc.SyncResults(user.ID, []LegacyResult{
		{Score: 5, TotalQuestions: 0},
		{Score: 2, TotalQuestions: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, synced)
}

func TestSyncResults_RollsBackBatchOnWriteError(t *testing.T) {
	db := newTestDB(t)
	svc := newTestQuiz(db)
	user := createTestUser(t, db, "q6@test.com")

	// İşaretli kayıtta yazmayı bilinçli patlatan tetikleyici
	require.NoError(t, db.Exec(`
		CREATE TRIGGER fail_marked_insert BEFORE INSERT ON test_results
		WHEN NEW.total_questions = 777
		BEGIN SELECT RAISE(ABORT, 'yazma hatasi'); END
	`).Error)

	_, err := svc.SyncResults(user.ID, []LegacyResult{
		{Score: 5, TotalQuestions: 10},
		{Score: 7, TotalQuestions: 777},
	})
	require.Error(t, err)

	// İlk kayıt da görünmemeli: parti bütün halinde geri alınır
	var count int64
	require.NoError(t, db.Model(&model.TestResult{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetQuestions_OrderedByID(t *testing.T) {
	db := newTestDB(t)
	svc := newTestQuiz(db)

	quiz := model.Quiz{Title: "Sıralama", IsActive: true}
	require.NoError(t, db.Create(&quiz).Error)

	// Kimlikler bilinçli olarak ekleme sırasının tersine
	for _, q := range []model.QuizQuestion{
		{BaseModel: model.BaseModel{ID: 9}, QuizID: quiz.ID, Question: "ikinci", Options: []string{"a", "b"}},
		{BaseModel: model.BaseModel{ID: 4}, QuizID: quiz.ID, Question: "birinci", Options: []string{"a", "b"}},
	} {
		q := q
		require.NoError(t, db.Create(&q).Error)
	}

	questions, err := svc.GetQuestions(quiz.ID, false)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, uint(4), questions[0].ID)
	assert.Equal(t, uint(9), questions[1].ID)
}

func TestGetQuestions_ExamModeHidesAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newTestQuiz(db)

	quiz, err := svc.CreateQuiz(&QuizRequest{
		Title: "Basics",
		Questions: []QuizQuestionRequest{
			{Question: "cat?", Options: []string{"kedi", "köpek"}, CorrectAnswer: 0, Explanation: "kedi = cat"},
		},
	})
	require.NoError(t, err)

	questions, err := svc.GetQuestions(quiz.ID, true)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Nil(t, questions[0].CorrectAnswer)
	assert.Empty(t, questions[0].Explanation)

	questions, err = svc.GetQuestions(quiz.ID, false)
	require.NoError(t, err)
	require.NotNil(t, questions[0].CorrectAnswer)
	assert.Equal(t, 0, *questions[0].CorrectAnswer)
}

func TestCreateQuiz_AnswerMustIndexOptions(t *testing.T) {
	db := newTestDB(t)
	svc := newTestQuiz(db)

	_, err := svc.CreateQuiz(&QuizRequest{
		Title: "Broken",
		Questions: []QuizQuestionRequest{
			{Question: "x?", Options: []string{"a", "b"}, CorrectAnswer: 2},
		},
	})
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestListQuizzes_HidesInactive(t *testing.T) {
	db := newTestDB(t)
	svc := newTestQuiz(db)

	inactive := false
	_, err := svc.CreateQuiz(&QuizRequest{Title: "Visible"})
	require.NoError(t, err)
	_, err = svc.CreateQuiz(&QuizRequest{Title: "Hidden", IsActive: &inactive})
	require.NoError(t, err)

	quizzes, pagination, err := svc.ListQuizzes(QuizFilter{}, 1, 20)
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	assert.Equal(t, "Visible", quizzes[0].Title)
	assert.Equal(t, int64(1), pagination.TotalItems)
}
