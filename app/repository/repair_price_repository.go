package repository

import (
	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"gorm.io/gorm"
)

// repairPriceRepository implements the RepairPriceRepository interface
type repairPriceRepository struct {
	db *gorm.DB
}

// NewRepairPriceRepository creates a new repair price repository instance
func NewRepairPriceRepository(db *gorm.DB) RepairPriceRepository {
	return &repairPriceRepository{db: db}
}

// GetByID retrieves a catalog row by its ID
func (r *repairPriceRepository) GetByID(id uint) (*models.RepairPrice, error) {
	var row models.RepairPrice
	err := r.db.First(&row, id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetManufacturers groups the catalog by manufacturer and counts the
// distinct models per manufacturer
func (r *repairPriceRepository) GetManufacturers() ([]models.ManufacturerSummary, error) {
	var summaries []models.ManufacturerSummary
	err := r.db.Model(&models.RepairPrice{}).
		Select("manufacturer, COUNT(DISTINCT model) AS model_count").
		Group("manufacturer").
		Order("manufacturer ASC").
		Scan(&summaries).Error
	return summaries, err
}

// GetModels retrieves the distinct models for one manufacturer
func (r *repairPriceRepository) GetModels(manufacturer string) ([]string, error) {
	var names []string
	err := r.db.Model(&models.RepairPrice{}).
		Distinct("model").
		Where("manufacturer = ?", manufacturer).
		Order("model ASC").
		Pluck("model", &names).Error
	return names, err
}

// GetRepairs retrieves all catalog rows for one (manufacturer, model) pair
func (r *repairPriceRepository) GetRepairs(manufacturer, model string) ([]models.RepairPrice, error) {
	var rows []models.RepairPrice
	err := r.db.Where("manufacturer = ? AND model = ?", manufacturer, model).
		Order("repair_type ASC").
		Find(&rows).Error
	return rows, err
}

// SearchRanked performs the primary fuzzy search path: a full-text match
// over manufacturer, model and repair type, ordered by relevance. Requires
// the ft_repair_prices fulltext index from the migrations.
func (r *repairPriceRepository) SearchRanked(query string, limit int) ([]models.RepairPrice, error) {
	var rows []models.RepairPrice
	err := r.db.
		Select("*, MATCH(manufacturer, model, repair_type) AGAINST(? IN NATURAL LANGUAGE MODE) AS score", query).
		Where("MATCH(manufacturer, model, repair_type) AGAINST(? IN NATURAL LANGUAGE MODE)", query).
		Order("score DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// SearchSubstring is the degraded fallback path: a case-insensitive
// substring match OR'd across manufacturer, model and repair type
func (r *repairPriceRepository) SearchSubstring(query string, limit int) ([]models.RepairPrice, error) {
	var rows []models.RepairPrice
	like := "%" + query + "%"
	err := r.db.
		Where("LOWER(manufacturer) LIKE LOWER(?) OR LOWER(model) LIKE LOWER(?) OR LOWER(repair_type) LIKE LOWER(?)", like, like, like).
		Order("manufacturer ASC, model ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// GetAll retrieves the whole catalog for the admin listing
func (r *repairPriceRepository) GetAll() ([]models.RepairPrice, error) {
	var rows []models.RepairPrice
	err := r.db.Order("manufacturer ASC, model ASC, repair_type ASC").Find(&rows).Error
	return rows, err
}

// Create creates a new catalog row
func (r *repairPriceRepository) Create(row *models.RepairPrice) error {
	return r.db.Create(row).Error
}

// Update updates an existing catalog row
func (r *repairPriceRepository) Update(row *models.RepairPrice) error {
	return r.db.Save(row).Error
}

// Delete removes a catalog row by its ID
func (r *repairPriceRepository) Delete(id uint) error {
	return r.db.Delete(&models.RepairPrice{}, id).Error
}

// Count returns the total number of catalog rows
func (r *repairPriceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.RepairPrice{}).Count(&count).Error
	return count, err
}
