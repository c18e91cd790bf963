package repository

import (
	"time"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	List() ([]models.User, error)
}

// RepairPriceRepository defines read and admin operations over the repair
// catalog. The public quote flow only ever reads.
type RepairPriceRepository interface {
	GetByID(id uint) (*models.RepairPrice, error)
	GetManufacturers() ([]models.ManufacturerSummary, error)
	GetModels(manufacturer string) ([]string, error)
	GetRepairs(manufacturer, model string) ([]models.RepairPrice, error)
	SearchRanked(query string, limit int) ([]models.RepairPrice, error)
	SearchSubstring(query string, limit int) ([]models.RepairPrice, error)
	GetAll() ([]models.RepairPrice, error)
	Create(row *models.RepairPrice) error
	Update(row *models.RepairPrice) error
	Delete(id uint) error
	Count() (int64, error)
}

// VoucherRepository defines the interface for voucher persistence. Redeem
// and Expire are status-guarded at the SQL layer: they report the number
// of rows actually changed so callers can detect lost races.
type VoucherRepository interface {
	Create(voucher *models.Voucher) error
	GetByID(id uint) (*models.Voucher, error)
	GetByCode(code string) (*models.Voucher, error)
	List(status, codeQuery string) ([]models.Voucher, error)
	RecordPrint(id uint, printedAt time.Time) error
	Redeem(id uint, redeemedBy uint, notes string, redeemedAt time.Time) (int64, error)
	Expire(id uint, expiredAt time.Time) (int64, error)
	Stats() (*models.VoucherStats, error)
}

// ReviewRepository defines the interface for locally stored Google reviews
// and the append-only sync audit log.
type ReviewRepository interface {
	Create(review *models.GoogleReview) error
	ExistsByExternalID(externalReviewID string) (bool, error)
	GetByID(id uint) (*models.GoogleReview, error)
	GetAll() ([]models.GoogleReview, error)
	GetVisible(limit int) ([]models.GoogleReview, error)
	Update(review *models.GoogleReview) error
	AppendSyncLog(entry *models.ReviewSyncLog) error
	GetSyncLogs(limit int) ([]models.ReviewSyncLog, error)
}

// AnnouncementRepository defines the interface for announcement operations
type AnnouncementRepository interface {
	Create(announcement *models.Announcement) error
	GetByID(id uint) (*models.Announcement, error)
	GetBySlug(slug string) (*models.Announcement, error)
	GetPublished(offset, limit int) ([]models.Announcement, error)
	GetAll() ([]models.Announcement, error)
	Update(announcement *models.Announcement) error
	Delete(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// FaqRepository defines the interface for FAQ operations
type FaqRepository interface {
	Create(entry *models.FaqEntry) error
	GetByID(id uint) (*models.FaqEntry, error)
	GetPublished() ([]models.FaqEntry, error)
	GetAll() ([]models.FaqEntry, error)
	Update(entry *models.FaqEntry) error
	Delete(id uint) error
}

// HeroSlideRepository defines the interface for hero slide operations
type HeroSlideRepository interface {
	Create(slide *models.HeroSlide) error
	GetByID(id uint) (*models.HeroSlide, error)
	GetActive() ([]models.HeroSlide, error)
	GetAll() ([]models.HeroSlide, error)
	Update(slide *models.HeroSlide) error
	Delete(id uint) error
}

// PageRepository defines the interface for page-related operations
type PageRepository interface {
	Create(page *models.Page) error
	GetByID(id uint) (*models.Page, error)
	GetBySlug(slug string) (*models.Page, error)
	GetAll() ([]models.Page, error)
	GetActive() ([]models.Page, error)
	Update(page *models.Page) error
	Delete(id uint) error
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// SettingRepository defines the interface for application settings
type SettingRepository interface {
	Get() (*models.AppSettings, error)
	Save(settings *models.AppSettings) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	RepairPrice  RepairPriceRepository
	Voucher      VoucherRepository
	Review       ReviewRepository
	Announcement AnnouncementRepository
	Faq          FaqRepository
	HeroSlide    HeroSlideRepository
	Page         PageRepository
	Setting      SettingRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		RepairPrice:  NewRepairPriceRepository(db),
		Voucher:      NewVoucherRepository(db),
		Review:       NewReviewRepository(db),
		Announcement: NewAnnouncementRepository(db),
		Faq:          NewFaqRepository(db),
		HeroSlide:    NewHeroSlideRepository(db),
		Page:         NewPageRepository(db),
		Setting:      NewSettingRepository(db),
	}
}
