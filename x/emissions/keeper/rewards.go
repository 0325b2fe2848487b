package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

// GetInflationaryClaim returns the inflationary reward claimed by a user for
// an epoch, zero when no claim was recorded.
func (k Keeper) GetInflationaryClaim(ctx context.Context, addr sdk.AccAddress, epoch uint64) (math.Int, error) {
	return k.getIntOrZero(ctx, k.InflationaryClaims.Get, addr, epoch)
}

// GetProtocolFeeClaim returns the protocol fees claimed by a user for an
// epoch, zero when no claim was recorded.
func (k Keeper) GetProtocolFeeClaim(ctx context.Context, addr sdk.AccAddress, epoch uint64) (math.Int, error) {
	return k.getIntOrZero(ctx, k.ProtocolFeeClaims.Get, addr, epoch)
}

// TotalClaimedForEpoch returns the aggregate inflationary rewards claimed
// for an epoch.
func (k Keeper) TotalClaimedForEpoch(ctx context.Context, epoch uint64) (math.Int, error) {
	return k.getEpochIntOrZero(ctx, k.EpochClaimedTotals.Get, epoch)
}

// TotalFeesClaimedForEpoch returns the aggregate protocol fees claimed for
// an epoch.
func (k Keeper) TotalFeesClaimedForEpoch(ctx context.Context, epoch uint64) (math.Int, error) {
	return k.getEpochIntOrZero(ctx, k.EpochClaimedFees.Get, epoch)
}

// GetMaxClaimableFeesForEpoch returns the one-time protocol fee ceiling of
// an epoch, zero when it was never set.
func (k Keeper) GetMaxClaimableFeesForEpoch(ctx context.Context, epoch uint64) (math.Int, error) {
	return k.getEpochIntOrZero(ctx, k.MaxClaimableFees.Get, epoch)
}

// SetMaxClaimableFeesForPreviousEpoch records the protocol fee ceiling for
// the epoch immediately preceding the current one. It may be called at most
// once per epoch, only by the utilization provider, and is a silent no-op
// during epoch 0. The amount is clamped to the fees the provider actually
// accumulated for that epoch.
func (k Keeper) SetMaxClaimableFeesForPreviousEpoch(ctx context.Context, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrap("max claimable fees must be non-negative")
	}

	current, err := k.CurrentEpoch(ctx)
	if err != nil {
		return err
	}
	if current == 0 {
		return nil
	}
	prev := current - 1

	has, err := k.MaxClaimableFees.Has(ctx, prev)
	if err != nil {
		return err
	}
	if has {
		return types.ErrMaxClaimableFeesAlreadySet.Wrapf("epoch %d", prev)
	}

	accumulated, err := k.utilizationKeeper.AccumulatedProtocolFees(ctx, prev)
	if err != nil {
		return err
	}
	if amount.GT(accumulated) {
		amount = accumulated
	}

	return k.MaxClaimableFees.Set(ctx, prev, amount)
}

// ClaimRewards settles the sender's claim for the previous epoch and pays the
// reward (plus any protocol fee share) to the recipient. Every ledger
// mutation is committed before the value transfer; a transfer failure aborts
// the whole operation with no side effects.
func (k Keeper) ClaimRewards(ctx context.Context, sender, recipient sdk.AccAddress) (epoch uint64, amount, feeAmount math.Int, err error) {
	paused, err := k.IsClaimsPaused(ctx)
	if err != nil {
		return 0, math.Int{}, math.Int{}, err
	}
	if paused {
		return 0, math.Int{}, math.Int{}, types.ErrClaimsPaused
	}

	current, err := k.CurrentEpoch(ctx)
	if err != nil {
		return 0, math.Int{}, math.Int{}, err
	}
	if current == 0 {
		return 0, math.Int{}, math.Int{}, types.ErrNoClaimingDuringFirstEpoch
	}
	prev := current - 1

	amount, feeAmount, err = k.claimableForEpoch(ctx, sender, prev)
	if err != nil {
		return 0, math.Int{}, math.Int{}, err
	}

	// commit the ledger before any value transfer
	if err := k.recordClaim(ctx, sender, prev, amount, feeAmount); err != nil {
		return 0, math.Int{}, math.Int{}, err
	}

	params := k.GetParams(ctx)
	payout := sdk.NewCoins(sdk.NewCoin(params.RewardDenom, amount.Add(feeAmount)))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, payout); err != nil {
		return 0, math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimRewards,
			sdk.NewAttribute(types.AttributeKeyEpoch, math.NewIntFromUint64(prev).String()),
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyFeeAmount, feeAmount.String()),
		),
	)
	k.Logger(sdkCtx).Info("claimed rewards", "epoch", prev, "sender", sender.String(), "amount", amount.String(), "fee_amount", feeAmount.String())

	return prev, amount, feeAmount, nil
}

// claimableForEpoch computes the claim a user can settle for an epoch,
// without mutating any state. It fails with the same named conditions as the
// claim itself.
func (k Keeper) claimableForEpoch(ctx context.Context, sender sdk.AccAddress, epoch uint64) (amount, feeAmount math.Int, err error) {
	end, err := k.EpochEnd(ctx, epoch)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	totalBonded, err := k.bondingKeeper.TotalBondedAt(ctx, end)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	balance, err := k.bondingKeeper.BondedBalanceAt(ctx, sender, end)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !totalBonded.IsPositive() || !balance.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrNoRewardsToClaim
	}

	emissions, err := k.EmissionsForEpoch(ctx, epoch)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	rawReward := balance.Mul(emissions).Quo(totalBonded)
	if rawReward.IsZero() {
		return math.Int{}, math.Int{}, types.ErrNoRewardsToClaim
	}

	ratio, err := k.PersonalUtilizationRatio(ctx, sender, epoch)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amount = rawReward.Mul(math.NewIntFromUint64(ratio)).Quo(math.NewIntFromUint64(types.BasisPointsDivisor))
	if amount.IsZero() {
		return math.Int{}, math.Int{}, types.ErrNoRewardsToClaim
	}

	claimed, err := k.GetInflationaryClaim(ctx, sender, epoch)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !claimed.IsZero() {
		return math.Int{}, math.Int{}, types.ErrRewardsAlreadyClaimedForEpoch.Wrapf("epoch %d", epoch)
	}

	feeAmount, err = k.claimableFees(ctx, sender, epoch, balance, totalBonded, amount)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amount, feeAmount, nil
}

// claimableFees settles the optional protocol fee side-claim for an epoch:
// the same bonded-balance pro-rata share applied to the one-time fee ceiling
// the utilization provider recorded, bounded by the ceiling and by module
// account liquidity.
func (k Keeper) claimableFees(ctx context.Context, sender sdk.AccAddress, epoch uint64, balance, totalBonded, rewardAmount math.Int) (math.Int, error) {
	enabled, err := k.utilizationKeeper.ProtocolFeeDistributionEnabled(ctx, epoch)
	if err != nil {
		return math.Int{}, err
	}
	if !enabled {
		return math.ZeroInt(), nil
	}

	maxFees, err := k.GetMaxClaimableFeesForEpoch(ctx, epoch)
	if err != nil {
		return math.Int{}, err
	}
	if !maxFees.IsPositive() {
		return math.ZeroInt(), nil
	}

	alreadyClaimed, err := k.GetProtocolFeeClaim(ctx, sender, epoch)
	if err != nil {
		return math.Int{}, err
	}
	if !alreadyClaimed.IsZero() {
		return math.ZeroInt(), nil
	}

	share := balance.Mul(maxFees).Quo(totalBonded)
	if share.IsZero() {
		return math.ZeroInt(), nil
	}

	claimedFees, err := k.TotalFeesClaimedForEpoch(ctx, epoch)
	if err != nil {
		return math.Int{}, err
	}
	if claimedFees.Add(share).GT(maxFees) {
		return math.Int{}, types.ErrProtocolFeesExceedMaxClaimable.Wrapf("epoch %d", epoch)
	}

	moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
	moduleBalance := k.bankKeeper.GetBalance(ctx, moduleAddr, k.GetParams(ctx).RewardDenom)
	if moduleBalance.Amount.LT(rewardAmount.Add(share)) {
		return math.Int{}, types.ErrClaimableProtocolFeesExceedBalance.Wrapf("epoch %d", epoch)
	}

	return share, nil
}

// recordClaim commits the claim ledger mutations: the terminal (user, epoch)
// records and the per-epoch aggregates.
func (k Keeper) recordClaim(ctx context.Context, sender sdk.AccAddress, epoch uint64, amount, feeAmount math.Int) error {
	if err := k.InflationaryClaims.Set(ctx, collections.Join(sender, epoch), amount); err != nil {
		return err
	}
	total, err := k.TotalClaimedForEpoch(ctx, epoch)
	if err != nil {
		return err
	}
	if err := k.EpochClaimedTotals.Set(ctx, epoch, total.Add(amount)); err != nil {
		return err
	}

	if feeAmount.IsZero() {
		return nil
	}
	if err := k.ProtocolFeeClaims.Set(ctx, collections.Join(sender, epoch), feeAmount); err != nil {
		return err
	}
	totalFees, err := k.TotalFeesClaimedForEpoch(ctx, epoch)
	if err != nil {
		return err
	}
	return k.EpochClaimedFees.Set(ctx, epoch, totalFees.Add(feeAmount))
}

// UnclaimedRewards sums the effective emissions that were never claimed
// across every epoch whose claim window has closed, clamped at zero per
// epoch. The bridging collaborator uses it to reclaim idle minted supply.
func (k Keeper) UnclaimedRewards(ctx context.Context) (math.Int, error) {
	current, err := k.CurrentEpoch(ctx)
	if err != nil {
		return math.Int{}, err
	}
	unclaimed := math.ZeroInt()
	if current == 0 {
		return unclaimed, nil
	}

	// every epoch strictly older than the previous one is out of its claim window
	for epoch := uint64(0); epoch+1 < current; epoch++ {
		emissions, err := k.EmissionsForEpoch(ctx, epoch)
		if err != nil {
			return math.Int{}, err
		}
		claimed, err := k.TotalClaimedForEpoch(ctx, epoch)
		if err != nil {
			return math.Int{}, err
		}
		if emissions.GT(claimed) {
			unclaimed = unclaimed.Add(emissions.Sub(claimed))
		}
	}
	return unclaimed, nil
}

// IsClaimsPaused reports whether reward claims are paused.
func (k Keeper) IsClaimsPaused(ctx context.Context) (bool, error) {
	paused, err := k.ClaimsPaused.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return paused, nil
}

// SetClaimsPaused flips the claims pause switch.
func (k Keeper) SetClaimsPaused(ctx context.Context, paused bool) error {
	return k.ClaimsPaused.Set(ctx, paused)
}

func (k Keeper) getIntOrZero(ctx context.Context, get func(context.Context, collections.Pair[sdk.AccAddress, uint64]) (math.Int, error), addr sdk.AccAddress, epoch uint64) (math.Int, error) {
	v, err := get(ctx, collections.Join(addr, epoch))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return v, nil
}

func (k Keeper) getEpochIntOrZero(ctx context.Context, get func(context.Context, uint64) (math.Int, error), epoch uint64) (math.Int, error) {
	v, err := get(ctx, epoch)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return v, nil
}
