package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

// SystemUtilizationRatio resolves the system-wide utilization ratio for an
// epoch, in basis points within [system lower bound, divisor]. The ratio
// throttles how much of the epoch's theoretical emissions is actually
// released: full reward when the utilization delta reached the previous
// epoch's claimed total, the floor when utilization did not grow, linear
// in between.
func (k Keeper) SystemUtilizationRatio(ctx context.Context, epoch uint64) (uint64, error) {
	return k.utilizationRatio(
		ctx,
		epoch,
		k.GetParams(ctx).SystemUtilizationLowerBound,
		func(e uint64) (math.Int, error) { return k.utilizationKeeper.SystemUtilization(ctx, e) },
		func(e uint64) (math.Int, error) { return k.TotalClaimedForEpoch(ctx, e) },
		func(e uint64) (math.Int, error) { return k.EmissionsForEpoch(ctx, e) },
	)
}

// PersonalUtilizationRatio resolves a user's utilization ratio for an epoch,
// in basis points within [personal lower bound, divisor].
func (k Keeper) PersonalUtilizationRatio(ctx context.Context, addr sdk.AccAddress, epoch uint64) (uint64, error) {
	return k.utilizationRatio(
		ctx,
		epoch,
		k.GetParams(ctx).PersonalUtilizationLowerBound,
		func(e uint64) (math.Int, error) { return k.utilizationKeeper.UserUtilization(ctx, addr, e) },
		func(e uint64) (math.Int, error) { return k.GetInflationaryClaim(ctx, addr, e) },
		func(e uint64) (math.Int, error) { return k.eligibleRewards(ctx, addr, e) },
	)
}

// utilizationRatio is the shared normalization function behind both ratio
// granularities. For a resolvable epoch it reads the cumulative utilization
// delta across (epoch-1, epoch] and scales it against the target: the
// entity's claimed amount in the previous epoch.
//
//   - epoch < 2: the bootstrap period has no prior target, fixed at the divisor
//   - epoch beyond the current one: unresolved, 0
//   - delta <= 0: the floor
//   - no target and no prior eligibility: the divisor (a first-ever positive
//     contribution is never penalized; deliberate policy, not arithmetic)
//   - no target despite prior eligibility: the floor
//   - delta >= target: the divisor
//   - otherwise: linear interpolation between floor and divisor
func (k Keeper) utilizationRatio(
	ctx context.Context,
	epoch uint64,
	lowerBound uint64,
	utilization func(epoch uint64) (math.Int, error),
	claimedTarget func(epoch uint64) (math.Int, error),
	eligible func(epoch uint64) (math.Int, error),
) (uint64, error) {
	current, err := k.CurrentEpoch(ctx)
	if err != nil {
		return 0, err
	}
	if epoch > current {
		return 0, nil
	}
	if epoch < 2 {
		return types.BasisPointsDivisor, nil
	}

	cur, err := utilization(epoch)
	if err != nil {
		return 0, err
	}
	prev, err := utilization(epoch - 1)
	if err != nil {
		return 0, err
	}
	delta := cur.Sub(prev)
	if !delta.IsPositive() {
		return lowerBound, nil
	}

	target, err := claimedTarget(epoch - 1)
	if err != nil {
		return 0, err
	}
	if target.IsZero() {
		prevEligible, err := eligible(epoch - 1)
		if err != nil {
			return 0, err
		}
		if prevEligible.IsZero() {
			return types.BasisPointsDivisor, nil
		}
		return lowerBound, nil
	}
	if delta.GTE(target) {
		return types.BasisPointsDivisor, nil
	}

	return normalizeUtilization(delta, target, lowerBound), nil
}

// normalizeUtilization linearly interpolates between the lower bound and the
// divisor by delta/target. Callers guarantee 0 < delta < target, so the
// result is strictly inside [lowerBound, divisor).
func normalizeUtilization(delta, target math.Int, lowerBound uint64) uint64 {
	span := math.NewIntFromUint64(types.BasisPointsDivisor - lowerBound)
	scaled := delta.Mul(span).Quo(target)
	return lowerBound + scaled.Uint64()
}

// eligibleRewards returns the rewards a user was theoretically entitled to
// for an epoch: the pro-rata share of the epoch's effective emissions,
// weighted by the bonded balance at the epoch's end.
func (k Keeper) eligibleRewards(ctx context.Context, addr sdk.AccAddress, epoch uint64) (math.Int, error) {
	end, err := k.EpochEnd(ctx, epoch)
	if err != nil {
		return math.Int{}, err
	}

	total, err := k.bondingKeeper.TotalBondedAt(ctx, end)
	if err != nil {
		return math.Int{}, err
	}
	if !total.IsPositive() {
		return math.ZeroInt(), nil
	}

	balance, err := k.bondingKeeper.BondedBalanceAt(ctx, addr, end)
	if err != nil {
		return math.Int{}, err
	}
	if !balance.IsPositive() {
		return math.ZeroInt(), nil
	}

	emissions, err := k.EmissionsForEpoch(ctx, epoch)
	if err != nil {
		return math.Int{}, err
	}
	return balance.Mul(emissions).Quo(total), nil
}
