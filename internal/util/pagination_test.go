package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name        string
		page        string
		perPage     string
		wantPage    int
		wantPerPage int
	}{
		{"boş girdi", "", "", 1, 20},
		{"sayısal olmayan", "abc", "xyz", 1, 20},
		{"sıfır", "0", "0", 1, 1},
		{"negatif", "-3", "-5", 1, 1},
		{"üst sınırın üstü", "2", "500", 2, 100},
		{"aralık içi", "3", "50", 3, 50},
		{"tam sınırlar", "1", "100", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := NormalizePagination(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}

type pagedRow struct {
	ID uint `gorm:"primaryKey;autoIncrement"`
}

func TestPaginate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&pagedRow{}))

	rows := make([]pagedRow, 25)
	require.NoError(t, db.Create(&rows).Error)

	var page2 []pagedRow
	pagination, err := Paginate(db.Model(&pagedRow{}).Order("id ASC"), 2, 10, &page2)
	require.NoError(t, err)
	assert.Len(t, page2, 10)
	assert.Equal(t, uint(11), page2[0].ID)
	assert.Equal(t, int64(25), pagination.TotalItems)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)

	// Son sayfa artan kayıtları döner, per_page asla aşılmaz
	var page3 []pagedRow
	pagination, err = Paginate(db.Model(&pagedRow{}).Order("id ASC"), 3, 10, &page3)
	require.NoError(t, err)
	assert.Len(t, page3, 5)
	assert.False(t, pagination.HasNext)

	// Sonun ötesindeki sayfa hata değil boş liste
	var beyond []pagedRow
	pagination, err = Paginate(db.Model(&pagedRow{}).Order("id ASC"), 9, 10, &beyond)
	require.NoError(t, err)
	assert.Empty(t, beyond)
	assert.True(t, pagination.HasPrev)
}
