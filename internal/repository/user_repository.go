package repository

import (
	"time"

	"talkify_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByFirebaseUID(uid string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("firebase_uid = ?", uid).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint, at time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", at).Error
}

// Query admin listesi için temel sorgu; sıralamayı çağıran verir
func (r *UserRepository) Query(search string) *gorm.DB {
	query := r.DB.Model(&model.User{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("username LIKE ? OR email LIKE ?", like, like)
	}
	return query
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Count(&count).Error
	return count, err
}

// ResetLapsedStreak koşullu tek UPDATE: son aktivitesi lastValidDay veya
// sonrası olan satıra dokunmaz, last_activity_date asla yazılmaz. Araya giren
// bir aktivite kaydı bu sayede ezilmez.
func (r *UserRepository) ResetLapsedStreak(userID uint, lastValidDay time.Time) (bool, error) {
	res := r.DB.Model(&model.User{}).
		Where("id = ? AND streak_count <> 0 AND last_activity_date < ?",
			userID, lastValidDay.Format("2006-01-02")).
		Update("streak_count", 0)
	return res.RowsAffected > 0, res.Error
}

// CountActiveSince son aktivite tarihi verilen günden yeni olan kullanıcılar
func (r *UserRepository) CountActiveSince(date time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("last_activity_date >= ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}
