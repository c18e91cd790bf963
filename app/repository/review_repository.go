package repository

import (
	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"gorm.io/gorm"
)

// reviewRepository implements the ReviewRepository interface
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository instance
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a new review row
func (r *reviewRepository) Create(review *models.GoogleReview) error {
	return r.db.Create(review).Error
}

// ExistsByExternalID checks whether a review with the given dedup key is
// already stored
func (r *reviewRepository) ExistsByExternalID(externalReviewID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.GoogleReview{}).
		Where("external_review_id = ?", externalReviewID).
		Count(&count).Error
	return count > 0, err
}

// GetByID retrieves a review by its ID
func (r *reviewRepository) GetByID(id uint) (*models.GoogleReview, error) {
	var review models.GoogleReview
	err := r.db.First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetAll retrieves all stored reviews, newest first
func (r *reviewRepository) GetAll() ([]models.GoogleReview, error) {
	var reviews []models.GoogleReview
	err := r.db.Order("review_time DESC").Find(&reviews).Error
	return reviews, err
}

// GetVisible retrieves the publicly shown reviews, featured first
func (r *reviewRepository) GetVisible(limit int) ([]models.GoogleReview, error) {
	var reviews []models.GoogleReview
	err := r.db.Where("is_visible = ?", true).
		Order("is_featured DESC, review_time DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

// Update updates an existing review (admin visibility/featured flags)
func (r *reviewRepository) Update(review *models.GoogleReview) error {
	return r.db.Save(review).Error
}

// AppendSyncLog appends one audit record for a sync attempt. Log rows are
// never updated or pruned.
func (r *reviewRepository) AppendSyncLog(entry *models.ReviewSyncLog) error {
	return r.db.Create(entry).Error
}

// GetSyncLogs retrieves the most recent sync audit records
func (r *reviewRepository) GetSyncLogs(limit int) ([]models.ReviewSyncLog, error) {
	var logs []models.ReviewSyncLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
