package models

import (
	"time"
)

// GoogleReview is a locally stored copy of one review from the external
// reviews feed (or a manually entered review). ExternalReviewID is the
// natural dedup key: a sync run must never insert the same key twice.
type GoogleReview struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	ExternalReviewID        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"external_review_id"`
	AuthorName              string    `gorm:"type:varchar(255);not null" json:"author_name" validate:"required,min=1,max=255"`
	AuthorPhotoURL          string    `gorm:"type:varchar(512)" json:"author_photo_url"`
	Rating                  int       `gorm:"not null" json:"rating" validate:"required,min=1,max=5"`
	Text                    string    `gorm:"type:text" json:"text"`
	ReviewTime              time.Time `gorm:"not null" json:"review_time"`
	RelativeTimeDescription string    `gorm:"type:varchar(100)" json:"relative_time_description"`
	IsVisible               bool      `gorm:"default:true" json:"is_visible"`
	IsFeatured              bool      `gorm:"default:false" json:"is_featured"`
	CreatedAt               time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (GoogleReview) TableName() string {
	return "google_reviews"
}

// ReviewSyncLog is one append-only audit record per sync attempt. The core
// never mutates or prunes these rows.
type ReviewSyncLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TotalFetched int       `gorm:"not null;default:0" json:"total_fetched"`
	NewCount     int       `gorm:"not null;default:0" json:"new_count"`
	Status       string    `gorm:"type:varchar(20);not null" json:"status"` // success, error
	ErrorMessage string    `gorm:"type:text" json:"error_message"`
	TriggeredBy  string    `gorm:"type:varchar(20);not null" json:"triggered_by"` // manual, scheduled
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ReviewSyncLog) TableName() string {
	return "review_sync_logs"
}
