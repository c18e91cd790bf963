package repository

import (
	"time"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"gorm.io/gorm"
)

// voucherRepository implements the VoucherRepository interface
type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a new voucher repository instance
func NewVoucherRepository(db *gorm.DB) VoucherRepository {
	return &voucherRepository{db: db}
}

// Create inserts a new voucher. The unique index on code surfaces
// collisions as an error for the caller to retry on.
func (r *voucherRepository) Create(voucher *models.Voucher) error {
	return r.db.Create(voucher).Error
}

// GetByID retrieves a voucher by its ID
func (r *voucherRepository) GetByID(id uint) (*models.Voucher, error) {
	var voucher models.Voucher
	err := r.db.Preload("RedeemedBy").First(&voucher, id).Error
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

// GetByCode retrieves a voucher by its exact code
func (r *voucherRepository) GetByCode(code string) (*models.Voucher, error) {
	var voucher models.Voucher
	err := r.db.Preload("RedeemedBy").Where("code = ?", code).First(&voucher).Error
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

// List retrieves vouchers, optionally filtered by status and by a
// substring match on the code
func (r *voucherRepository) List(status, codeQuery string) ([]models.Voucher, error) {
	var vouchers []models.Voucher
	q := r.db.Preload("RedeemedBy").Order("generated_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if codeQuery != "" {
		q = q.Where("code LIKE ?", "%"+codeQuery+"%")
	}
	err := q.Find(&vouchers).Error
	return vouchers, err
}

// RecordPrint stamps printed_at and increments print_count atomically, so
// the count stays strictly increasing under concurrent print actions
func (r *voucherRepository) RecordPrint(id uint, printedAt time.Time) error {
	return r.db.Model(&models.Voucher{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"print_count": gorm.Expr("print_count + 1"),
			"printed_at":  printedAt,
		}).Error
}

// Redeem transitions a voucher active -> redeemed. The status guard in the
// WHERE clause is the final authority: a second concurrent redeem attempt
// matches zero rows and is reported back via the affected-row count.
func (r *voucherRepository) Redeem(id uint, redeemedBy uint, notes string, redeemedAt time.Time) (int64, error) {
	result := r.db.Model(&models.Voucher{}).
		Where("id = ? AND status = ?", id, models.VoucherStatusActive).
		Updates(map[string]interface{}{
			"status":         models.VoucherStatusRedeemed,
			"redeemed_at":    redeemedAt,
			"redeemed_by_id": redeemedBy,
			"notes":          notes,
		})
	return result.RowsAffected, result.Error
}

// Expire transitions a voucher active -> expired with the same status
// guard as Redeem. No other fields change.
func (r *voucherRepository) Expire(id uint, expiredAt time.Time) (int64, error) {
	result := r.db.Model(&models.Voucher{}).
		Where("id = ? AND status = ?", id, models.VoucherStatusActive).
		Updates(map[string]interface{}{
			"status":     models.VoucherStatusExpired,
			"updated_at": expiredAt,
		})
	return result.RowsAffected, result.Error
}

// Stats folds the current voucher table into aggregate counts and sums.
// Nothing here is cached or stored, so the numbers cannot drift.
func (r *voucherRepository) Stats() (*models.VoucherStats, error) {
	stats := &models.VoucherStats{}

	type statusRow struct {
		Status string
		Count  int64
		Cents  int64
	}
	var rows []statusRow
	err := r.db.Model(&models.Voucher{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount_cents), 0) AS cents").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		stats.TotalCount += row.Count
		switch row.Status {
		case models.VoucherStatusActive:
			stats.ActiveCount = row.Count
			stats.ActiveCents = row.Cents
		case models.VoucherStatusRedeemed:
			stats.RedeemedCount = row.Count
			stats.RedeemedCents = row.Cents
		case models.VoucherStatusExpired:
			stats.ExpiredCount = row.Count
			stats.ExpiredCents = row.Cents
		}
	}

	err = r.db.Model(&models.Voucher{}).Where("print_count > 0").Count(&stats.PrintedCount).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
