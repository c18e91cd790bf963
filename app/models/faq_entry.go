package models

import (
	"time"

	"gorm.io/gorm"
)

// FaqEntry is one question/answer pair on the public FAQ page
type FaqEntry struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Question  string         `gorm:"type:varchar(512);not null" json:"question" validate:"required,min=3,max=512"`
	Answer    string         `gorm:"type:text;not null" json:"answer" validate:"required"`
	Position  int            `gorm:"not null;default:0" json:"position"`
	Published bool           `gorm:"type:tinyint(1);default:0" json:"published"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FaqEntry) TableName() string {
	return "faq_entries"
}
