package service

import (
	"testing"
	"time"

	"talkify_backend/internal/model"
	"talkify_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveStreak(t *testing.T) {
	today := date(2025, 6, 15)
	yesterday := date(2025, 6, 14)
	lastWeek := date(2025, 6, 8)
	tomorrow := date(2025, 6, 16)

	tests := []struct {
		name           string
		last           *time.Time
		current        int
		wantBase       int
		wantTransition streakTransition
	}{
		{"ilk aktivite", nil, 0, 0, transitionStart},
		{"dün aktifti", &yesterday, 4, 4, transitionContinue},
		{"bugün zaten loglanmış", &today, 5, 5, transitionSameDay},
		{"seri kopmuş", &lastWeek, 9, 0, transitionStart},
		{"gelecek tarih", &tomorrow, 3, 3, transitionFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, transition := resolveStreak(tt.last, tt.current, today)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantTransition, transition)
		})
	}
}

func TestLogActivity_StartsAndContinues(t *testing.T) {
	db := newTestDB(t)
	svc := newTestGamification(db)
	user := createTestUser(t, db, "streak@test.com")

	day1 := date(2025, 6, 15)
	svc.Now = fixedClock(day1)

	status, err := svc.LogActivity(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, status.StreakCount)
	assert.True(t, status.ActiveToday)

	// Ertesi gün seri uzar
	svc.Now = fixedClock(day1.AddDate(0, 0, 1))
	status, err = svc.LogActivity(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, status.StreakCount)
}

func TestLogActivity_IdempotentPerDay(t *testing.T) {
	db := newTestDB(t)
	svc := newTestGamification(db)
	user := createTestUser(t, db, "idem@test.com")

	svc.Now = fixedClock(date(2025, 6, 15))

	for i := 0; i < 3; i++ {
		status, err := svc.LogActivity(user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, status.StreakCount)
	}
}

func TestLogActivity_LapseResetsToOne(t *testing.T) {
	db := newTestDB(t)
	svc := newTestGamification(db)
	user := createTestUser(t, db, "lapse@test.com")

	svc.Now = fixedClock(date(2025, 6, 1))
	_, err := svc.LogActivity(user.ID)
	require.NoError(t, err)

	// İki günden uzun ara: taban sıfırlanır, yeni seri 1'den başlar
	svc.Now = fixedClock(date(2025, 6, 10))
	status, err := svc.LogActivity(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, status.StreakCount)
}

func TestLogActivity_FutureDateIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := newTestGamification(db)
	user := createTestUser(t, db, "future@test.com")

	future := date(2025, 6, 20)
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"last_activity_date": future, "streak_count": 3}).Error)

	svc.Now = fixedClock(date(2025, 6, 15))
	status, err := svc.LogActivity(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, status.StreakCount)
	assert.False(t, status.ActiveToday)
}

func TestGetStreak_PersistsLapseWithoutIncrement(t *testing.T) {
	db := newTestDB(t)
	svc := newTestGamification(db)
	user := createTestUser(t, db, "read@test.com")

	svc.Now = fixedClock(date(2025, 6, 1))
	_, err := svc.LogActivity(user.ID)
	require.NoError(t, err)

	svc.Now = fixedClock(date(2025, 6, 10))
	status, err := svc.GetStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, status.StreakCount)

	// Sıfırlama kalıcı
	var fresh model.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 0, fresh.StreakCount)
}

func TestGetStreak_DoesNotTouchActiveStreak(t *testing.T) {
	db := newTestDB(t)
	svc := newTestGamification(db)
	user := createTestUser(t, db, "active@test.com")

	day := date(2025, 6, 15)
	svc.Now = fixedClock(day)
	_, err := svc.LogActivity(user.ID)
	require.NoError(t, err)

	// Aynı gün ve ertesi gün okumalar seriyi değiştirmez
	status, err := svc.GetStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, status.StreakCount)
	assert.True(t, status.ActiveToday)

	svc.Now = fixedClock(day.AddDate(0, 0, 1))
	status, err = svc.GetStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, status.StreakCount)
	assert.False(t, status.ActiveToday)
}

func TestGetStreak_ResetDoesNotEraseNewActivity(t *testing.T) {
	db := newTestDB(t)
	svc := newTestGamification(db)
	user := createTestUser(t, db, "race@test.com")

	today := date(2025, 6, 15)
	svc.Now = fixedClock(today)

	old := date(2025, 6, 10)
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"last_activity_date": old, "streak_count": 3}).Error)

	// Aktivite bugünü yazar
	_, err := svc.LogActivity(user.ID)
	require.NoError(t, err)

	// Kopmuş seri görmüş bayat bir okumanın tetiklediği sıfırlama koşula
	// takılır: bugünkü kayıt ezilmez
	users := repository.NewUserRepository(db)
	reset, err := users.ResetLapsedStreak(user.ID, today.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.False(t, reset)

	var fresh model.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 1, fresh.StreakCount)
	require.NotNil(t, fresh.LastActivityDate)
	assert.True(t, today.Equal(truncateToDay(*fresh.LastActivityDate)))
}

func TestGetStreak_DoesNotWriteActivityDate(t *testing.T) {
	db := newTestDB(t)
	svc := newTestGamification(db)
	user := createTestUser(t, db, "readonly@test.com")

	old := date(2025, 6, 1)
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).
		Updates(map[string]interface{}{"last_activity_date": old, "streak_count": 7}).Error)

	svc.Now = fixedClock(date(2025, 6, 15))
	status, err := svc.GetStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, status.StreakCount)

	// Okuma yolu sıfırlamayı kalıcılaştırır ama tarihi asla yazmaz
	var fresh model.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, 0, fresh.StreakCount)
	require.NotNil(t, fresh.LastActivityDate)
	assert.True(t, old.Equal(truncateToDay(*fresh.LastActivityDate)))
}

func TestCheckAchievements_UnlocksOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newTestGamification(db)
	user := createTestUser(t, db, "badge@test.com")

	require.NoError(t, db.Create(&model.Achievement{
		Name:             "First Steps",
		RequirementType:  model.RequirementWordCount,
		RequirementValue: 2,
	}).Error)

	for i := 0; i < 2; i++ {
		word := createTestWord(t, db, "word"+string(rune('a'+i)), "anlam")
		require.NoError(t, db.Create(&model.UserProgress{
			UserID: user.ID, WordID: word.ID, Learned: true,
		}).Error)
	}

	unlocked, err := svc.CheckAchievements(user.ID)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "First Steps", unlocked[0].Name)

	// İkinci değerlendirme aynı başarımı tekrar vermez
	unlocked, err = svc.CheckAchievements(user.ID)
	require.NoError(t, err)
	assert.Empty(t, unlocked)
}

func TestCheckAchievements_BelowThreshold(t *testing.T) {
	db := newTestDB(t)
	svc := newTestGamification(db)
	user := createTestUser(t, db, "none@test.com")

	require.NoError(t, db.Create(&model.Achievement{
		Name:             "Word Master",
		RequirementType:  model.RequirementWordCount,
		RequirementValue: 100,
	}).Error)

	unlocked, err := svc.CheckAchievements(user.ID)
	require.NoError(t, err)
	assert.Empty(t, unlocked)
}
