package models

import (
	"time"
)

const (
	VoucherStatusActive   = "active"
	VoucherStatusRedeemed = "redeemed"
	VoucherStatusExpired  = "expired"
)

// Voucher is a fixed-value, single-use discount code. Status only ever
// moves active -> redeemed or active -> expired; both are terminal.
// Vouchers are never deleted, only closed out via status.
type Voucher struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UUID         string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	Code         string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	AmountCents  int64      `gorm:"not null" json:"amount_cents"`
	Status       string     `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	GeneratedAt  time.Time  `gorm:"not null" json:"generated_at"`
	PrintedAt    *time.Time `json:"printed_at"`
	PrintCount   int        `gorm:"not null;default:0" json:"print_count"`
	RedeemedAt   *time.Time `json:"redeemed_at"`
	RedeemedByID *uint      `gorm:"index" json:"redeemed_by_id"`
	RedeemedBy   *User      `gorm:"foreignKey:RedeemedByID" json:"redeemed_by,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Voucher) TableName() string {
	return "vouchers"
}

// IsActive reports whether the voucher can still be redeemed or expired
func (v *Voucher) IsActive() bool {
	return v.Status == VoucherStatusActive
}

// VoucherStats are derived counts over the current voucher list. They are
// never stored; callers fold them from the table so they cannot drift.
type VoucherStats struct {
	TotalCount    int64 `json:"total_count"`
	ActiveCount   int64 `json:"active_count"`
	RedeemedCount int64 `json:"redeemed_count"`
	ExpiredCount  int64 `json:"expired_count"`
	PrintedCount  int64 `json:"printed_count"`
	ActiveCents   int64 `json:"active_cents"`
	RedeemedCents int64 `json:"redeemed_cents"`
	ExpiredCents  int64 `json:"expired_cents"`
}
