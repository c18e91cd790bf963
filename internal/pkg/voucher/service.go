package voucher

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
	"github.com/smartfixwerk/SmartfixWerk/app/repository"
)

// Service drives the voucher lifecycle over an injected repository
type Service struct {
	repo repository.VoucherRepository
	now  func() time.Time
}

// NewService creates a voucher service from an injected repository
func NewService(repo repository.VoucherRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Generate creates a new active voucher with the program's face value. A
// code collision on the unique index is re-rolled exactly once; the
// suffix space makes a second collision practically impossible.
func (s *Service) Generate(amountCents int64) (*models.Voucher, error) {
	now := s.now()

	for attempt := 0; attempt < 2; attempt++ {
		code, err := GenerateCode(now)
		if err != nil {
			return nil, err
		}

		voucher := &models.Voucher{
			UUID:        uuid.NewString(),
			Code:        code,
			AmountCents: amountCents,
			Status:      models.VoucherStatusActive,
			GeneratedAt: now,
			PrintCount:  0,
		}

		err = s.repo.Create(voucher)
		if err == nil {
			return voucher, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	return nil, ErrCodeCollision
}

// RecordPrint stamps the print timestamp and increments the print count.
// One call per physical print attempt; whether the print dialog completes
// is not observable, the count is a best-effort usage signal.
func (s *Service) RecordPrint(id uint) (*models.Voucher, error) {
	if err := s.repo.RecordPrint(id, s.now()); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// Redeem transitions an active voucher to redeemed on behalf of the
// acting operator. Non-active vouchers are rejected with ErrNotActive,
// backed by the status guard in the store.
func (s *Service) Redeem(id uint, operatorID uint, notes string) (*models.Voucher, error) {
	affected, err := s.repo.Redeem(id, operatorID, notes, s.now())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotActive
	}
	return s.repo.GetByID(id)
}

// Expire transitions an active voucher to expired. There is no automatic
// expiry sweep; this is always an explicit operator action.
func (s *Service) Expire(id uint) (*models.Voucher, error) {
	affected, err := s.repo.Expire(id, s.now())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotActive
	}
	return s.repo.GetByID(id)
}

// List filters vouchers by status and/or a substring of the code
func (s *Service) List(status, codeQuery string) ([]models.Voucher, error) {
	return s.repo.List(status, codeQuery)
}

// GetByCode resolves an exact voucher code, e.g. scanned at the counter
func (s *Service) GetByCode(code string) (*models.Voucher, error) {
	return s.repo.GetByCode(code)
}

// Stats folds the current voucher list into aggregate numbers
func (s *Service) Stats() (*models.VoucherStats, error) {
	return s.repo.Stats()
}
