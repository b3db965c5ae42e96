package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileMetadataScanNilYieldsEmptyBag(t *testing.T) {
	var meta ProfileMetadata
	require.NoError(t, meta.Scan(nil))
	assert.Nil(t, meta.FreeSpinsLeft)
	assert.Nil(t, meta.PaidCreditsCents)
}

func TestProfileMetadataScanDistinguishesUnsetFromZero(t *testing.T) {
	var unset ProfileMetadata
	require.NoError(t, unset.Scan([]byte(`{}`)))
	assert.Nil(t, unset.FreeSpinsLeft, "absent attribute stays unset")

	var zero ProfileMetadata
	require.NoError(t, zero.Scan([]byte(`{"free_spins_left": 0}`)))
	require.NotNil(t, zero.FreeSpinsLeft)
	assert.Zero(t, *zero.FreeSpinsLeft)
}

func TestProfileMetadataScanReadsUpstreamShape(t *testing.T) {
	raw := `{
		"free_spins_left": 1,
		"paid_credits_cents": 200,
		"processed_spin_sessions": ["evt_123", "order_9"],
		"coupons": [{"code": "HAGI-5OFF-04217", "type": "per_item", "amount_per_item": 5, "used": false}]
	}`

	var meta ProfileMetadata
	require.NoError(t, meta.Scan([]byte(raw)))

	require.NotNil(t, meta.FreeSpinsLeft)
	assert.Equal(t, 1, *meta.FreeSpinsLeft)
	require.NotNil(t, meta.PaidCreditsCents)
	assert.Equal(t, int64(200), *meta.PaidCreditsCents)
	assert.Equal(t, []string{"evt_123", "order_9"}, meta.ProcessedSpinSessions)
	require.Len(t, meta.Coupons, 1)
	assert.Equal(t, CouponTypePerItem, meta.Coupons[0].Type)
}

func TestProfileMetadataScanRejectsUnsupportedType(t *testing.T) {
	var meta ProfileMetadata
	assert.Error(t, meta.Scan(42))
}
