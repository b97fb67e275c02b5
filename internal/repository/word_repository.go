package repository

import (
	"talkify_backend/internal/model"

	"gorm.io/gorm"
)

type WordRepository struct {
	DB *gorm.DB
}

func NewWordRepository(db *gorm.DB) *WordRepository {
	return &WordRepository{DB: db}
}

func (r *WordRepository) Create(word *model.Word) error {
	return r.DB.Create(word).Error
}

func (r *WordRepository) FindByID(id uint) (*model.Word, error) {
	var word model.Word
	err := r.DB.First(&word, id).Error
	return &word, err
}

// FindByText aynı kelime metni var mı diye bakar (tekillik kontrolü)
func (r *WordRepository) FindByText(word string) (*model.Word, error) {
	var w model.Word
	err := r.DB.Where("word = ?", word).First(&w).Error
	return &w, err
}

func (r *WordRepository) Update(word *model.Word) error {
	return r.DB.Save(word).Error
}

func (r *WordRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Word{}, id).Error
}

// Query filtreleri uygular; sıralamayı çağıran verir. Boş filtreler atlanır,
// arama kelime ve anlam üzerinde case-insensitive yapılır.
func (r *WordRepository) Query(level, category, search string) *gorm.DB {
	query := r.DB.Model(&model.Word{})
	if level != "" {
		query = query.Where("level = ?", level)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("LOWER(word) LIKE LOWER(?) OR LOWER(meaning) LIKE LOWER(?)", like, like)
	}
	return query
}

func (r *WordRepository) Categories() ([]string, error) {
	var categories []string
	err := r.DB.Model(&model.Word{}).
		Where("category <> ''").
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *WordRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Word{}).Count(&count).Error
	return count, err
}

// Random seviye filtresine uyan rastgele bir kelime döner
func (r *WordRepository) Random(level string) (*model.Word, error) {
	var word model.Word
	query := r.DB.Model(&model.Word{})
	if level != "" {
		query = query.Where("level = ?", level)
	}
	// MySQL RAND(), sqlite RANDOM()
	orderExpr := "RAND()"
	if r.DB.Dialector.Name() == "sqlite" {
		orderExpr = "RANDOM()"
	}
	err := query.Order(orderExpr).First(&word).Error
	return &word, err
}

func (r *WordRepository) FindDailyByDate(date string) (*model.DailyWord, error) {
	var daily model.DailyWord
	err := r.DB.Preload("Word").Where("date = ?", date).First(&daily).Error
	return &daily, err
}

func (r *WordRepository) CreateDaily(daily *model.DailyWord) error {
	return r.DB.Create(daily).Error
}
