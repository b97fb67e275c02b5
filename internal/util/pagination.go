package util

import (
	"strconv"

	"gorm.io/gorm"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Pagination sayfalama meta bilgisi
// swagger:model Pagination
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NormalizePagination sayfalama parametrelerini doğrular ve sınırlar.
// page: sayısal değilse veya <1 ise 1. per_page: sayısal değilse 20,
// aksi halde [1, MaxPerPage] aralığına sıkıştırılır.
func NormalizePagination(pageStr, perPageStr string) (page, perPage int) {
	page = DefaultPage
	if v, err := strconv.Atoi(pageStr); err == nil && v >= 1 {
		page = v
	}

	perPage = DefaultPerPage
	if v, err := strconv.Atoi(perPageStr); err == nil {
		perPage = v
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// Paginate sıralanmış bir sorguyu sayfalandırır ve sonuçları dest'e yazar.
// Çağıran sorguya deterministik bir Order vermek zorundadır; son sayfanın
// ötesindeki sayfa istekleri hata değil boş liste döner.
func Paginate(query *gorm.DB, page, perPage int, dest interface{}) (*Pagination, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	offset := (page - 1) * perPage
	if err := query.Offset(offset).Limit(perPage).Find(dest).Error; err != nil {
		return nil, err
	}

	return &Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		TotalItems: total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}
