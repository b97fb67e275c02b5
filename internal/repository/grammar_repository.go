package repository

import (
	"talkify_backend/internal/model"

	"gorm.io/gorm"
)

type GrammarRepository struct {
	DB *gorm.DB
}

func NewGrammarRepository(db *gorm.DB) *GrammarRepository {
	return &GrammarRepository{DB: db}
}

func (r *GrammarRepository) Create(content *model.GrammarContent) error {
	return r.DB.Create(content).Error
}

func (r *GrammarRepository) FindByID(id uint) (*model.GrammarContent, error) {
	var content model.GrammarContent
	err := r.DB.First(&content, id).Error
	return &content, err
}

func (r *GrammarRepository) Update(content *model.GrammarContent) error {
	return r.DB.Save(content).Error
}

func (r *GrammarRepository) Delete(id uint) error {
	return r.DB.Delete(&model.GrammarContent{}, id).Error
}

func (r *GrammarRepository) Query(level string) *gorm.DB {
	query := r.DB.Model(&model.GrammarContent{}).Order("id ASC")
	if level != "" {
		query = query.Where("level = ?", level)
	}
	return query
}
