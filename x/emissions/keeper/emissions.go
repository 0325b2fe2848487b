package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

// EmissionsAtEpoch returns the raw emission curve output for the given epoch:
// the owning checkpoint's base emissions compounded down by its retention
// ratio once per elapsed reduction cliff.
//
// The decay factor is computed as a fixed-point power of the pre-divided
// retention ratio (LegacyDec.Power uses repeated squaring, so this is
// O(log cliffs)). Exponentiating numerator and denominator separately would
// overflow for large cliff counts even though their ratio stays bounded;
// the fixed-point form does not have that failure mode.
func (k Keeper) EmissionsAtEpoch(ctx context.Context, epoch uint64) (math.Int, error) {
	cp, startEpoch, err := k.owningCheckpoint(ctx, epoch)
	if err != nil {
		return math.Int{}, err
	}

	cliffsPassed := (epoch - startEpoch) / cp.ReductionCliff
	if cliffsPassed == 0 || cp.ReductionBasisPoints == 0 {
		return cp.EmissionsPerEpoch, nil
	}

	factor := cp.RetentionRatio().Power(cliffsPassed)
	return factor.MulInt(cp.EmissionsPerEpoch).TruncateInt(), nil
}

// EmissionsForEpoch returns the effective emissions of an epoch: the raw
// curve output throttled by the system-wide utilization ratio. The first two
// epochs are the bootstrap period and are never throttled.
func (k Keeper) EmissionsForEpoch(ctx context.Context, epoch uint64) (math.Int, error) {
	raw, err := k.EmissionsAtEpoch(ctx, epoch)
	if err != nil {
		return math.Int{}, err
	}
	if epoch < 2 {
		return raw, nil
	}

	ratio, err := k.SystemUtilizationRatio(ctx, epoch)
	if err != nil {
		return math.Int{}, err
	}
	return raw.Mul(math.NewIntFromUint64(ratio)).Quo(math.NewIntFromUint64(types.BasisPointsDivisor)), nil
}

// owningCheckpoint resolves the checkpoint an epoch falls under together
// with the cumulative epoch index at that checkpoint's start.
func (k Keeper) owningCheckpoint(ctx context.Context, epoch uint64) (types.Checkpoint, uint64, error) {
	cps, err := k.GetCheckpoints(ctx)
	if err != nil {
		return types.Checkpoint{}, 0, err
	}
	if len(cps) == 0 {
		return types.Checkpoint{}, 0, types.ErrNoCheckpoints
	}

	var consumed uint64
	for i, cp := range cps {
		if i+1 < len(cps) {
			slots := (cps[i+1].StartTimestamp - cp.StartTimestamp) / cp.EpochLength
			if epoch >= consumed+slots {
				consumed += slots
				continue
			}
		}
		return cp, consumed, nil
	}
	return types.Checkpoint{}, 0, types.ErrNoCheckpoints
}
