package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVoucherIsActive(t *testing.T) {
	assert.True(t, (&Voucher{Status: VoucherStatusActive}).IsActive())
	assert.False(t, (&Voucher{Status: VoucherStatusRedeemed}).IsActive())
	assert.False(t, (&Voucher{Status: VoucherStatusExpired}).IsActive())
}
