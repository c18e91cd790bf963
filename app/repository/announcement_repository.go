package repository

import (
	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"gorm.io/gorm"
)

// announcementRepository implements the AnnouncementRepository interface
type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository instance
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create creates a new announcement in the database
func (r *announcementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// GetByID retrieves an announcement by its ID
func (r *announcementRepository) GetByID(id uint) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.Preload("User").First(&announcement, id).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// GetBySlug retrieves an announcement by its slug
func (r *announcementRepository) GetBySlug(slug string) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.Preload("User").Where("slug = ?", slug).First(&announcement).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// GetPublished retrieves published announcements with pagination
func (r *announcementRepository) GetPublished(offset, limit int) ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.Preload("User").Where("published = ?", true).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&announcements).Error
	return announcements, err
}

// GetAll retrieves all announcements without pagination
func (r *announcementRepository) GetAll() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.Preload("User").Order("created_at DESC").Find(&announcements).Error
	return announcements, err
}

// Update updates an existing announcement in the database
func (r *announcementRepository) Update(announcement *models.Announcement) error {
	return r.db.Save(announcement).Error
}

// Delete soft deletes an announcement by its ID
func (r *announcementRepository) Delete(id uint) error {
	return r.db.Delete(&models.Announcement{}, id).Error
}

// SlugExists checks if a slug already exists
func (r *announcementRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Announcement{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *announcementRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Announcement{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
