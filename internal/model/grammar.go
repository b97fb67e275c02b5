package model

// swagger:model GrammarContent
type GrammarContent struct {
	BaseModel
	Title   string `gorm:"size:100;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Level   string `gorm:"size:10;index" json:"level"`
}

func (GrammarContent) TableName() string {
	return "grammar_content"
}
