package controllers

import (
	"context"
	"errors"
	"testing"

	"github.com/hagi-aesthetics/hagi-store/models"
	"github.com/hagi-aesthetics/hagi-store/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useProfileStore(t *testing.T, profiles *fakeProfileStore) {
	t.Helper()
	prev := ProfileRepo
	ProfileRepo = profiles
	t.Cleanup(func() { ProfileRepo = prev })
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestGetCreditBalancesAppliesDefaults(t *testing.T) {
	useProfileStore(t, newFakeProfileStore(models.User{ID: "user-1"}))

	balances, err := GetCreditBalances(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, utils.DefaultFreeSpins, balances.FreeSpinsLeft)
	assert.Zero(t, balances.PaidCreditsCents)
}

func TestGetCreditBalancesReadsStoredValues(t *testing.T) {
	useProfileStore(t, newFakeProfileStore(models.User{
		ID: "user-1",
		Metadata: models.ProfileMetadata{
			FreeSpinsLeft:    intPtr(1),
			PaidCreditsCents: int64Ptr(250),
		},
	}))

	balances, err := GetCreditBalances(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, 1, balances.FreeSpinsLeft)
	assert.Equal(t, int64(250), balances.PaidCreditsCents)
}

func TestDebitSpinFreeDecrementsFromDefault(t *testing.T) {
	profiles := newFakeProfileStore(models.User{ID: "user-1"})
	useProfileStore(t, profiles)

	balances, err := DebitSpin(context.Background(), "user-1", SpinKindFree)

	require.NoError(t, err)
	assert.Equal(t, utils.DefaultFreeSpins-1, balances.FreeSpinsLeft)

	stored := profiles.users["user-1"].Metadata
	require.NotNil(t, stored.FreeSpinsLeft)
	assert.Equal(t, utils.DefaultFreeSpins-1, *stored.FreeSpinsLeft)
}

func TestDebitSpinFreeFloorsAtZero(t *testing.T) {
	profiles := newFakeProfileStore(models.User{
		ID:       "user-1",
		Metadata: models.ProfileMetadata{FreeSpinsLeft: intPtr(0)},
	})
	useProfileStore(t, profiles)

	balances, err := DebitSpin(context.Background(), "user-1", SpinKindFree)

	require.NoError(t, err)
	assert.Zero(t, balances.FreeSpinsLeft)
}

func TestDebitSpinPaidCostsOneHundredCents(t *testing.T) {
	profiles := newFakeProfileStore(models.User{
		ID:       "user-1",
		Metadata: models.ProfileMetadata{PaidCreditsCents: int64Ptr(250)},
	})
	useProfileStore(t, profiles)

	balances, err := DebitSpin(context.Background(), "user-1", SpinKindPaid)

	require.NoError(t, err)
	assert.Equal(t, int64(150), balances.PaidCreditsCents)
}

func TestDebitSpinPaidFloorsAtZero(t *testing.T) {
	profiles := newFakeProfileStore(models.User{
		ID:       "user-1",
		Metadata: models.ProfileMetadata{PaidCreditsCents: int64Ptr(40)},
	})
	useProfileStore(t, profiles)

	balances, err := DebitSpin(context.Background(), "user-1", SpinKindPaid)

	require.NoError(t, err)
	assert.Zero(t, balances.PaidCreditsCents)
}

func TestDebitSpinSurfacesStoreFailure(t *testing.T) {
	profiles := newFakeProfileStore(models.User{ID: "user-1"})
	profiles.updateErr = errors.New("connection reset")
	useProfileStore(t, profiles)

	_, err := DebitSpin(context.Background(), "user-1", SpinKindFree)

	var updateErr *utils.ProfileUpdateError
	require.ErrorAs(t, err, &updateErr)
	assert.Equal(t, "user-1", updateErr.UserID)
}

func TestCreditSpinBalanceAddsAndRecordsSession(t *testing.T) {
	profiles := newFakeProfileStore(models.User{
		ID:       "user-1",
		Metadata: models.ProfileMetadata{PaidCreditsCents: int64Ptr(50)},
	})
	useProfileStore(t, profiles)

	result, err := CreditSpinBalance(context.Background(), "user-1", 100, "evt_123")

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, int64(150), result.NewBalanceCents)

	stored := profiles.users["user-1"].Metadata
	assert.Contains(t, stored.ProcessedSpinSessions, "evt_123")
	assert.Equal(t, 1, profiles.updates)
}

func TestCreditSpinBalanceSkipsDuplicateSession(t *testing.T) {
	profiles := newFakeProfileStore(models.User{
		ID: "user-1",
		Metadata: models.ProfileMetadata{
			PaidCreditsCents:      int64Ptr(150),
			ProcessedSpinSessions: []string{"evt_123"},
		},
	})
	useProfileStore(t, profiles)

	result, err := CreditSpinBalance(context.Background(), "user-1", 100, "evt_123")

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, int64(150), result.NewBalanceCents)
	assert.Zero(t, profiles.updates)
}

func TestCreditSpinBalanceCreditsOnceAcrossRedeliveries(t *testing.T) {
	profiles := newFakeProfileStore(models.User{ID: "user-1"})
	useProfileStore(t, profiles)

	for i := 0; i < 3; i++ {
		_, err := CreditSpinBalance(context.Background(), "user-1", 100, "evt_123")
		require.NoError(t, err)
	}

	stored := profiles.users["user-1"].Metadata
	require.NotNil(t, stored.PaidCreditsCents)
	assert.Equal(t, int64(100), *stored.PaidCreditsCents)
	assert.Equal(t, []string{"evt_123"}, stored.ProcessedSpinSessions)
}

func TestCreditSpinBalanceFailureCarriesAttemptedAmount(t *testing.T) {
	profiles := newFakeProfileStore(models.User{ID: "user-1"})
	profiles.updateErr = errors.New("write timeout")
	useProfileStore(t, profiles)

	_, err := CreditSpinBalance(context.Background(), "user-1", 100, "evt_999")

	var updateErr *utils.ProfileUpdateError
	require.ErrorAs(t, err, &updateErr)
	assert.Equal(t, int64(100), updateErr.AttemptedCts)
}
