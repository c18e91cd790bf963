package repository

import (
	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"gorm.io/gorm"
)

// faqRepository implements the FaqRepository interface
type faqRepository struct {
	db *gorm.DB
}

// NewFaqRepository creates a new FAQ repository instance
func NewFaqRepository(db *gorm.DB) FaqRepository {
	return &faqRepository{db: db}
}

// Create creates a new FAQ entry
func (r *faqRepository) Create(entry *models.FaqEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a FAQ entry by its ID
func (r *faqRepository) GetByID(id uint) (*models.FaqEntry, error) {
	var entry models.FaqEntry
	err := r.db.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetPublished retrieves the published FAQ entries in display order
func (r *faqRepository) GetPublished() ([]models.FaqEntry, error) {
	var entries []models.FaqEntry
	err := r.db.Where("published = ?", true).Order("position ASC, id ASC").Find(&entries).Error
	return entries, err
}

// GetAll retrieves all FAQ entries in display order
func (r *faqRepository) GetAll() ([]models.FaqEntry, error) {
	var entries []models.FaqEntry
	err := r.db.Order("position ASC, id ASC").Find(&entries).Error
	return entries, err
}

// Update updates an existing FAQ entry
func (r *faqRepository) Update(entry *models.FaqEntry) error {
	return r.db.Save(entry).Error
}

// Delete soft deletes a FAQ entry by its ID
func (r *faqRepository) Delete(id uint) error {
	return r.db.Delete(&models.FaqEntry{}, id).Error
}
