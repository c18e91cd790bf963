package repository

import (
	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"gorm.io/gorm"
)

// heroSlideRepository implements the HeroSlideRepository interface
type heroSlideRepository struct {
	db *gorm.DB
}

// NewHeroSlideRepository creates a new hero slide repository instance
func NewHeroSlideRepository(db *gorm.DB) HeroSlideRepository {
	return &heroSlideRepository{db: db}
}

// Create creates a new hero slide
func (r *heroSlideRepository) Create(slide *models.HeroSlide) error {
	return r.db.Create(slide).Error
}

// GetByID retrieves a hero slide by its ID
func (r *heroSlideRepository) GetByID(id uint) (*models.HeroSlide, error) {
	var slide models.HeroSlide
	err := r.db.First(&slide, id).Error
	if err != nil {
		return nil, err
	}
	return &slide, nil
}

// GetActive retrieves the active slides in carousel order
func (r *heroSlideRepository) GetActive() ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	err := r.db.Where("is_active = ?", true).Order("position ASC, id ASC").Find(&slides).Error
	return slides, err
}

// GetAll retrieves all slides in carousel order
func (r *heroSlideRepository) GetAll() ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	err := r.db.Order("position ASC, id ASC").Find(&slides).Error
	return slides, err
}

// Update updates an existing hero slide
func (r *heroSlideRepository) Update(slide *models.HeroSlide) error {
	return r.db.Save(slide).Error
}

// Delete soft deletes a hero slide by its ID
func (r *heroSlideRepository) Delete(id uint) error {
	return r.db.Delete(&models.HeroSlide{}, id).Error
}
