package model

// swagger:model Word
type Word struct {
	BaseModel
	Word               string `gorm:"size:100;not null;index" json:"word"`
	Meaning            string `gorm:"size:255;not null" json:"meaning"`
	Category           string `gorm:"size:50;index" json:"category"`
	Level              string `gorm:"size:10;index" json:"level"`
	ExampleSentence    string `gorm:"type:text" json:"exampleSentence"`
	ExampleTranslation string `gorm:"type:text" json:"exampleTranslation"`
	Pronunciation      string `gorm:"size:100" json:"pronunciation"`
}

func (Word) TableName() string {
	return "words"
}

// DailyWord günün kelimesi; her takvim günü için en fazla bir kayıt
type DailyWord struct {
	BaseModel
	WordID uint   `gorm:"index;not null" json:"wordId"`
	Word   *Word  `gorm:"foreignKey:WordID" json:"word,omitempty"`
	Date   string `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD
}

func (DailyWord) TableName() string {
	return "daily_words"
}
