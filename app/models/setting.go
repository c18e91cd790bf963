package models

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Setting represents a system setting
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key" validate:"required,min=1,max=255"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"size:50;not null" json:"type" validate:"required"` // string, boolean, integer
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppSettings is the in-memory snapshot of all editable shop settings.
// Secrets (Google API key) and feature flags are owned here but edited
// only through the admin settings form.
type AppSettings struct {
	SiteTitle             string `json:"site_title" validate:"required,min=1,max=255"`
	VoucherFaceValueCents int64  `json:"voucher_face_value_cents" validate:"gte=0"`
	VacationMode          bool   `json:"vacation_mode"`
	VacationMessage       string `json:"vacation_message" validate:"max=500"`
	VacationFrom          string `json:"vacation_from"`
	VacationUntil         string `json:"vacation_until"`
	GoogleAPIKey          string `json:"google_api_key"`
	GooglePlaceID         string `json:"google_place_id"`
	GoogleAutoSyncEnabled bool   `json:"google_auto_sync_enabled"`
}

// Global settings instance
var (
	appSettings *AppSettings
	settingsMu  sync.RWMutex
)

// GetAppSettings returns the current application settings
func GetAppSettings() *AppSettings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if appSettings == nil {
		return &AppSettings{SiteTitle: "SmartfixWerk", VoucherFaceValueCents: 1000}
	}
	return appSettings
}

// LoadSettings loads settings from database into memory
func LoadSettings(db *gorm.DB) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	// Initialize with defaults
	appSettings = &AppSettings{
		SiteTitle:             "SmartfixWerk",
		VoucherFaceValueCents: 1000,
	}

	var settings []Setting
	if err := db.Find(&settings).Error; err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	for _, setting := range settings {
		switch setting.Key {
		case "site_title":
			appSettings.SiteTitle = setting.Value
		case "voucher_face_value_cents":
			if v, err := strconv.ParseInt(setting.Value, 10, 64); err == nil {
				appSettings.VoucherFaceValueCents = v
			}
		case "vacation_mode":
			appSettings.VacationMode = setting.Value == "true"
		case "vacation_message":
			appSettings.VacationMessage = setting.Value
		case "vacation_from":
			appSettings.VacationFrom = setting.Value
		case "vacation_until":
			appSettings.VacationUntil = setting.Value
		case "google_api_key":
			appSettings.GoogleAPIKey = setting.Value
		case "google_place_id":
			appSettings.GooglePlaceID = setting.Value
		case "google_auto_sync_enabled":
			appSettings.GoogleAutoSyncEnabled = setting.Value == "true"
		}
	}

	return nil
}

// SaveSettings saves current settings to database
func SaveSettings(db *gorm.DB, settings *AppSettings) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	settingsMap := map[string]string{
		"site_title":               settings.SiteTitle,
		"voucher_face_value_cents": strconv.FormatInt(settings.VoucherFaceValueCents, 10),
		"vacation_mode":            fmt.Sprintf("%t", settings.VacationMode),
		"vacation_message":         settings.VacationMessage,
		"vacation_from":            settings.VacationFrom,
		"vacation_until":           settings.VacationUntil,
		"google_api_key":           settings.GoogleAPIKey,
		"google_place_id":          settings.GooglePlaceID,
		"google_auto_sync_enabled": fmt.Sprintf("%t", settings.GoogleAutoSyncEnabled),
	}

	for key, value := range settingsMap {
		var setting Setting
		result := db.Where("setting_key = ?", key).First(&setting)

		if result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				setting = Setting{
					Key:   key,
					Value: value,
					Type:  getSettingType(key),
				}
				if err := db.Create(&setting).Error; err != nil {
					return fmt.Errorf("failed to create setting %s: %w", key, err)
				}
			} else {
				return fmt.Errorf("failed to query setting %s: %w", key, result.Error)
			}
		} else {
			setting.Value = value
			if err := db.Save(&setting).Error; err != nil {
				return fmt.Errorf("failed to update setting %s: %w", key, err)
			}
		}
	}

	appSettings = settings
	return nil
}

// getSettingType returns the type of a setting based on its key
func getSettingType(key string) string {
	switch key {
	case "vacation_mode", "google_auto_sync_enabled":
		return "boolean"
	case "voucher_face_value_cents":
		return "integer"
	default:
		return "string"
	}
}

// Validate validates the settings
func (s *AppSettings) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
