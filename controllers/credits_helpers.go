package controllers

import (
	"context"

	"github.com/hagi-aesthetics/hagi-store/utils"
)

// SpinKind selects which balance a spin debits.
type SpinKind string

// Spin kinds
const (
	SpinKindFree SpinKind = "free"
	SpinKindPaid SpinKind = "paid"
)

// CreditBalances is the spin-wallet surface of a profile.
type CreditBalances struct {
	FreeSpinsLeft    int   `json:"free_spins_left"`
	PaidCreditsCents int64 `json:"paid_credits_cents"`
}

// CreditResult reports the outcome of applying a paid credit.
type CreditResult struct {
	NewBalanceCents int64 `json:"new_balance_cents"`
	Skipped         bool  `json:"skipped"`
}

// GetCreditBalances reads the user's spin balances, applying the
// profile defaults for attributes that were never set.
func GetCreditBalances(ctx context.Context, userID string) (CreditBalances, error) {
	user, err := ProfileRepo.Get(ctx, userID)
	if err != nil {
		return CreditBalances{}, utils.NewProfileUpdateError(userID, 0, err)
	}

	balances := CreditBalances{FreeSpinsLeft: utils.DefaultFreeSpins}
	if user.Metadata.FreeSpinsLeft != nil {
		balances.FreeSpinsLeft = *user.Metadata.FreeSpinsLeft
	}
	if user.Metadata.PaidCreditsCents != nil {
		balances.PaidCreditsCents = *user.Metadata.PaidCreditsCents
	}
	return balances, nil
}

// DebitSpin spends one spin of the given kind: a free spin, or 100
// cents of paid credit. Balances floor at zero. The profile store
// offers no compare-and-swap, so this is a plain read-modify-write;
// two concurrent debits can lose one decrement, which the product
// accepts for spin balances.
func DebitSpin(ctx context.Context, userID string, kind SpinKind) (CreditBalances, error) {
	user, err := ProfileRepo.Get(ctx, userID)
	if err != nil {
		return CreditBalances{}, utils.NewProfileUpdateError(userID, 0, err)
	}

	meta := user.Metadata
	balances := CreditBalances{FreeSpinsLeft: utils.DefaultFreeSpins}
	if meta.FreeSpinsLeft != nil {
		balances.FreeSpinsLeft = *meta.FreeSpinsLeft
	}
	if meta.PaidCreditsCents != nil {
		balances.PaidCreditsCents = *meta.PaidCreditsCents
	}

	switch kind {
	case SpinKindFree:
		next := balances.FreeSpinsLeft - 1
		if next < 0 {
			next = 0
		}
		balances.FreeSpinsLeft = next
	case SpinKindPaid:
		next := balances.PaidCreditsCents - utils.PaidSpinCostCents
		if next < 0 {
			next = 0
		}
		balances.PaidCreditsCents = next
	default:
		return balances, utils.BadRequestError("Unknown spin kind", nil)
	}

	freeSpins := balances.FreeSpinsLeft
	paidCents := balances.PaidCreditsCents
	meta.FreeSpinsLeft = &freeSpins
	meta.PaidCreditsCents = &paidCents

	if err := ProfileRepo.UpdateMetadata(ctx, userID, meta); err != nil {
		return balances, utils.NewProfileUpdateError(userID, 0, err)
	}

	utils.LogInfo("Debited %s spin for user %s - free: %d, paid: %d cents", kind, userID, freeSpins, paidCents)
	return balances, nil
}

// CreditSpinBalance applies a paid credit exactly once per payment
// session. A session id already in the processed set is skipped without
// touching balances, which is how duplicate webhook deliveries and
// repeated client-side crediting attempts stay harmless. The balance
// bump and the session id land in the same profile write.
func CreditSpinBalance(ctx context.Context, userID string, amountCents int64, sessionID string) (CreditResult, error) {
	user, err := ProfileRepo.Get(ctx, userID)
	if err != nil {
		return CreditResult{}, utils.NewProfileUpdateError(userID, amountCents, err)
	}

	meta := user.Metadata
	var current int64
	if meta.PaidCreditsCents != nil {
		current = *meta.PaidCreditsCents
	}

	if sessionID != "" {
		for _, processed := range meta.ProcessedSpinSessions {
			if processed == sessionID {
				utils.LogInfo("Session %s already processed, skipping credit update", sessionID)
				return CreditResult{NewBalanceCents: current, Skipped: true}, nil
			}
		}
	}

	newBalance := current + amountCents
	meta.PaidCreditsCents = &newBalance
	if sessionID != "" {
		meta.ProcessedSpinSessions = append(meta.ProcessedSpinSessions, sessionID)
	}

	if err := ProfileRepo.UpdateMetadata(ctx, userID, meta); err != nil {
		return CreditResult{}, utils.NewProfileUpdateError(userID, amountCents, err)
	}

	utils.LogInfo("Credited %d cents to user %s (session %s) - new balance: %d", amountCents, userID, sessionID, newBalance)
	return CreditResult{NewBalanceCents: newBalance}, nil
}
