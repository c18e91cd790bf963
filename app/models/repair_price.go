package models

import (
	"fmt"
	"strings"
	"time"
)

// RepairPrice represents one (manufacturer, model, repair type) -> price
// record in the repair catalog. The catalog is maintained by admins and is
// read-only for the public quote flow.
type RepairPrice struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Manufacturer string    `gorm:"type:varchar(100);not null;index:idx_catalog,priority:1" json:"manufacturer" validate:"required,min=1,max=100"`
	Model        string    `gorm:"type:varchar(100);not null;index:idx_catalog,priority:2" json:"model" validate:"required,min=1,max=100"`
	RepairType   string    `gorm:"type:varchar(100);not null" json:"repair_type" validate:"required,min=1,max=100"`
	PriceCents   int64     `gorm:"not null" json:"price_cents" validate:"gte=0"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RepairPrice) TableName() string {
	return "repair_prices"
}

// HasMinimumPrice reports whether the price is a lower bound rather than a
// fixed price. Backcover repairs vary by damage, so they are always quoted
// as "from X".
func (rp *RepairPrice) HasMinimumPrice() bool {
	return strings.Contains(strings.ToLower(rp.RepairType), "backcover")
}

// PriceText renders the customer-facing price, applying the minimum-price
// prefix where needed. Used on cards, detail panels and outbound messages
// alike.
func (rp *RepairPrice) PriceText() string {
	text := fmt.Sprintf("%d.%02d €", rp.PriceCents/100, rp.PriceCents%100)
	if rp.HasMinimumPrice() {
		return "from " + text
	}
	return text
}

// ManufacturerSummary is a grouped catalog row for the first configurator
// step: one manufacturer with its distinct model count.
type ManufacturerSummary struct {
	Manufacturer string `json:"manufacturer"`
	ModelCount   int64  `json:"model_count"`
}
