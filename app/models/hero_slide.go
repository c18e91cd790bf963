package models

import (
	"time"

	"gorm.io/gorm"
)

// HeroSlide is one slide in the start-page hero carousel. Images are
// referenced by URL; binary assets live outside this application.
type HeroSlide struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	Subtitle  string         `gorm:"type:varchar(512)" json:"subtitle" validate:"max=512"`
	ImageURL  string         `gorm:"type:varchar(512);not null" json:"image_url" validate:"required,url"`
	CTALabel  string         `gorm:"type:varchar(100)" json:"cta_label"`
	CTALink   string         `gorm:"type:varchar(512)" json:"cta_link"`
	Position  int            `gorm:"not null;default:0" json:"position"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (HeroSlide) TableName() string {
	return "hero_slides"
}
