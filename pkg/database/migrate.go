package database

import (
	"time"

	"talkify_backend/internal/model"
	"talkify_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SchemaMigration uygulanmış migrasyonların meta tablosu
type SchemaMigration struct {
	ID        string    `gorm:"primaryKey;size:64"`
	AppliedAt time.Time `gorm:"not null"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

// Migration sıralı, bir kez uygulanan şema adımı
type Migration struct {
	ID  string
	Run func(tx *gorm.DB) error
}

// Migrations sıra önemlidir; yeni adımlar her zaman listenin sonuna eklenir.
var Migrations = []Migration{
	{
		ID: "001_create_core_tables",
		Run: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
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
			)
		},
	},
	{
		ID: "002_seed_achievements",
		Run: func(tx *gorm.DB) error {
			for _, a := range model.DefaultAchievements {
				var count int64
				if err := tx.Model(&model.Achievement{}).Where("name = ?", a.Name).Count(&count).Error; err != nil {
					return err
				}
				if count == 0 {
					if err := tx.Create(&a).Error; err != nil {
						return err
					}
				}
			}
			return nil
		},
	},
	{
		ID: "003_backfill_streak_defaults",
		Run: func(tx *gorm.DB) error {
			// Eski kayıtlarda streak_count NULL kalmış olabilir
			return tx.Model(&model.User{}).
				Where("streak_count IS NULL").
				Update("streak_count", 0).Error
		},
	},
}

// Migrate bekleyen migrasyonları sırayla uygular; her adım kendi
// transaction'ında çalışır ve schema_migrations tablosuna işlenir.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return err
	}

	for _, m := range Migrations {
		var count int64
		if err := db.Model(&SchemaMigration{}).Where("id = ?", m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Run(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{ID: m.ID, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			logger.Log.Error("Migration failed", zap.String("migration", m.ID), zap.Error(err))
			return err
		}

		logger.Log.Info("Migration applied", zap.String("migration", m.ID))
	}

	return nil
}
