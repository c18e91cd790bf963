package voucher

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/smartfixwerk/SmartfixWerk/app/models"
)

// fakeVoucherRepo mimics the store including the status guard on redeem
// and expire.
type fakeVoucherRepo struct {
	vouchers map[uint]*models.Voucher
	nextID   uint

	createErrs []error
}

func newFakeVoucherRepo() *fakeVoucherRepo {
	return &fakeVoucherRepo{vouchers: make(map[uint]*models.Voucher)}
}

func (f *fakeVoucherRepo) Create(voucher *models.Voucher) error {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	f.nextID++
	voucher.ID = f.nextID
	clone := *voucher
	f.vouchers[voucher.ID] = &clone
	return nil
}

func (f *fakeVoucherRepo) GetByID(id uint) (*models.Voucher, error) {
	voucher, ok := f.vouchers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *voucher
	return &clone, nil
}

func (f *fakeVoucherRepo) GetByCode(code string) (*models.Voucher, error) {
	for _, voucher := range f.vouchers {
		if voucher.Code == code {
			clone := *voucher
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVoucherRepo) List(status, codeQuery string) ([]models.Voucher, error) {
	var out []models.Voucher
	for _, voucher := range f.vouchers {
		if status != "" && voucher.Status != status {
			continue
		}
		if codeQuery != "" && !strings.Contains(voucher.Code, codeQuery) {
			continue
		}
		out = append(out, *voucher)
	}
	return out, nil
}

func (f *fakeVoucherRepo) RecordPrint(id uint, printedAt time.Time) error {
	voucher, ok := f.vouchers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	voucher.PrintedAt = &printedAt
	voucher.PrintCount++
	return nil
}

func (f *fakeVoucherRepo) Redeem(id uint, redeemedBy uint, notes string, redeemedAt time.Time) (int64, error) {
	voucher, ok := f.vouchers[id]
	if !ok || voucher.Status != models.VoucherStatusActive {
		return 0, nil
	}
	voucher.Status = models.VoucherStatusRedeemed
	voucher.RedeemedAt = &redeemedAt
	voucher.RedeemedByID = &redeemedBy
	voucher.Notes = notes
	return 1, nil
}

func (f *fakeVoucherRepo) Expire(id uint, expiredAt time.Time) (int64, error) {
	voucher, ok := f.vouchers[id]
	if !ok || voucher.Status != models.VoucherStatusActive {
		return 0, nil
	}
	voucher.Status = models.VoucherStatusExpired
	return 1, nil
}

func (f *fakeVoucherRepo) Stats() (*models.VoucherStats, error) {
	stats := &models.VoucherStats{}
	for _, voucher := range f.vouchers {
		stats.TotalCount++
		switch voucher.Status {
		case models.VoucherStatusActive:
			stats.ActiveCount++
			stats.ActiveCents += voucher.AmountCents
		case models.VoucherStatusRedeemed:
			stats.RedeemedCount++
			stats.RedeemedCents += voucher.AmountCents
		case models.VoucherStatusExpired:
			stats.ExpiredCount++
			stats.ExpiredCents += voucher.AmountCents
		}
		if voucher.PrintedAt != nil {
			stats.PrintedCount++
		}
	}
	return stats, nil
}

func newTestService(repo *fakeVoucherRepo) *Service {
	s := NewService(repo)
	s.now = func() time.Time {
		return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestGenerate(t *testing.T) {
	repo := newFakeVoucherRepo()
	s := newTestService(repo)

	voucher, err := s.Generate(1000)
	require.NoError(t, err)

	assert.NotEmpty(t, voucher.UUID)
	assert.Regexp(t, codePattern, voucher.Code)
	assert.Equal(t, int64(1000), voucher.AmountCents)
	assert.Equal(t, models.VoucherStatusActive, voucher.Status)
	assert.Zero(t, voucher.PrintCount)
	assert.Nil(t, voucher.RedeemedAt)
}

func TestGenerateRetriesOnceOnCodeCollision(t *testing.T) {
	repo := newFakeVoucherRepo()
	repo.createErrs = []error{gorm.ErrDuplicatedKey}
	s := newTestService(repo)

	voucher, err := s.Generate(1000)
	require.NoError(t, err)
	assert.Regexp(t, codePattern, voucher.Code)
}

func TestGenerateGivesUpAfterSecondCollision(t *testing.T) {
	repo := newFakeVoucherRepo()
	repo.createErrs = []error{gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey}
	s := newTestService(repo)

	_, err := s.Generate(1000)
	assert.ErrorIs(t, err, ErrCodeCollision)
}

func TestGeneratePropagatesStoreErrors(t *testing.T) {
	repo := newFakeVoucherRepo()
	storeErr := errors.New("db gone")
	repo.createErrs = []error{storeErr}
	s := newTestService(repo)

	_, err := s.Generate(1000)
	assert.ErrorIs(t, err, storeErr)
}

func TestRecordPrint(t *testing.T) {
	repo := newFakeVoucherRepo()
	s := newTestService(repo)

	voucher, err := s.Generate(1000)
	require.NoError(t, err)

	printed, err := s.RecordPrint(voucher.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, printed.PrintCount)
	require.NotNil(t, printed.PrintedAt)

	printed, err = s.RecordPrint(voucher.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, printed.PrintCount)
	// Printing never touches the lifecycle status.
	assert.Equal(t, models.VoucherStatusActive, printed.Status)
}

func TestRedeem(t *testing.T) {
	repo := newFakeVoucherRepo()
	s := newTestService(repo)

	voucher, err := s.Generate(1000)
	require.NoError(t, err)

	redeemed, err := s.Redeem(voucher.ID, 7, "counter sale")
	require.NoError(t, err)
	assert.Equal(t, models.VoucherStatusRedeemed, redeemed.Status)
	require.NotNil(t, redeemed.RedeemedAt)
	require.NotNil(t, redeemed.RedeemedByID)
	assert.Equal(t, uint(7), *redeemed.RedeemedByID)
	assert.Equal(t, "counter sale", redeemed.Notes)
}

func TestRedeemTwiceRejected(t *testing.T) {
	repo := newFakeVoucherRepo()
	s := newTestService(repo)

	voucher, err := s.Generate(1000)
	require.NoError(t, err)

	_, err = s.Redeem(voucher.ID, 7, "")
	require.NoError(t, err)

	_, err = s.Redeem(voucher.ID, 8, "")
	assert.ErrorIs(t, err, ErrNotActive)

	// The first redemption stands.
	stored, err := repo.GetByID(voucher.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(7), *stored.RedeemedByID)
}

func TestRedeemExpiredRejected(t *testing.T) {
	repo := newFakeVoucherRepo()
	s := newTestService(repo)

	voucher, err := s.Generate(1000)
	require.NoError(t, err)

	_, err = s.Expire(voucher.ID)
	require.NoError(t, err)

	_, err = s.Redeem(voucher.ID, 7, "")
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestExpire(t *testing.T) {
	repo := newFakeVoucherRepo()
	s := newTestService(repo)

	voucher, err := s.Generate(1000)
	require.NoError(t, err)

	expired, err := s.Expire(voucher.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VoucherStatusExpired, expired.Status)

	_, err = s.Expire(voucher.ID)
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestStats(t *testing.T) {
	repo := newFakeVoucherRepo()
	s := newTestService(repo)

	first, err := s.Generate(1000)
	require.NoError(t, err)
	second, err := s.Generate(1500)
	require.NoError(t, err)
	_, err = s.Generate(1000)
	require.NoError(t, err)

	_, err = s.RecordPrint(first.ID)
	require.NoError(t, err)
	_, err = s.Redeem(second.ID, 7, "")
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalCount)
	assert.Equal(t, int64(1), stats.RedeemedCount)
	assert.Equal(t, int64(2), stats.ActiveCount)
	assert.Equal(t, int64(1), stats.PrintedCount)
	assert.Equal(t, int64(2000), stats.ActiveCents)
	assert.Equal(t, int64(1500), stats.RedeemedCents)
}
