package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

// CumulativeEpoch returns the cumulative epoch index at the given timestamp:
// the sum, across every checkpoint window overlapping [genesis, timestamp],
// of the whole epochs elapsed within that window. It returns 0 for any
// timestamp before genesis and for an empty timeline. Epoch 0 begins at
// genesis.
func (k Keeper) CumulativeEpoch(ctx context.Context, timestamp uint64) (uint64, error) {
	cps, err := k.GetCheckpoints(ctx)
	if err != nil {
		return 0, err
	}

	var total uint64
	for i, cp := range cps {
		if timestamp <= cp.StartTimestamp {
			break
		}
		end := timestamp
		if i+1 < len(cps) && cps[i+1].StartTimestamp < timestamp {
			end = cps[i+1].StartTimestamp
		}
		total += (end - cp.StartTimestamp) / cp.EpochLength
	}
	return total, nil
}

// CurrentEpoch returns the cumulative epoch index at the current block time.
func (k Keeper) CurrentEpoch(ctx context.Context) (uint64, error) {
	return k.CumulativeEpoch(ctx, blockTimestamp(ctx))
}

// EpochStart returns the unix timestamp at which the given epoch begins.
func (k Keeper) EpochStart(ctx context.Context, epoch uint64) (uint64, error) {
	start, _, err := k.epochBoundaries(ctx, epoch)
	return start, err
}

// EpochEnd returns the unix timestamp at which the given epoch ends. Since
// checkpoints always start on epoch boundaries, the end of an epoch equals
// the start of the next one.
func (k Keeper) EpochEnd(ctx context.Context, epoch uint64) (uint64, error) {
	_, end, err := k.epochBoundaries(ctx, epoch)
	return end, err
}

// epochBoundaries walks the checkpoint log accumulating the epoch slots each
// window holds until it reaches the window owning the target epoch, then
// derives the exact boundary timestamps from that checkpoint's epoch length.
func (k Keeper) epochBoundaries(ctx context.Context, epoch uint64) (start, end uint64, err error) {
	cps, err := k.GetCheckpoints(ctx)
	if err != nil {
		return 0, 0, err
	}
	if len(cps) == 0 {
		return 0, 0, types.ErrNoCheckpoints
	}

	var consumed uint64 // epoch slots consumed by preceding windows
	for i, cp := range cps {
		if i+1 < len(cps) {
			slots := (cps[i+1].StartTimestamp - cp.StartTimestamp) / cp.EpochLength
			if epoch >= consumed+slots {
				consumed += slots
				continue
			}
		}
		start = cp.StartTimestamp + (epoch-consumed)*cp.EpochLength
		return start, start + cp.EpochLength, nil
	}
	// unreachable: the last checkpoint owns every remaining epoch
	return 0, 0, types.ErrNoCheckpoints
}

// ProcessEpochBoundary advances the last-processed epoch marker when block
// time has crossed into a new epoch, emitting one boundary event per
// transition. With an empty timeline it does nothing.
func (k Keeper) ProcessEpochBoundary(ctx context.Context) error {
	count, err := k.checkpointCount(ctx)
	if err != nil || count == 0 {
		return err
	}

	current, err := k.CurrentEpoch(ctx)
	if err != nil {
		return err
	}
	last, err := k.lastProcessedEpoch(ctx)
	if err != nil {
		return err
	}
	if current <= last {
		return nil
	}

	emissions, err := k.EmissionsForEpoch(ctx, current)
	if err != nil {
		return err
	}
	if err := k.LastProcessedEpoch.Set(ctx, current); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEpochBoundary,
			sdk.NewAttribute(types.AttributeKeyEpoch, strconv.FormatUint(current, 10)),
			sdk.NewAttribute(types.AttributeKeyEmissions, emissions.String()),
		),
	)
	if emissions.IsInt64() {
		telemetry.ModuleSetGauge(types.ModuleName, float32(emissions.Int64()), "epoch_emissions")
	}
	k.Logger(sdkCtx).Info("entered new epoch", "epoch", current, "emissions", emissions.String())

	return nil
}

func (k Keeper) lastProcessedEpoch(ctx context.Context) (uint64, error) {
	epoch, err := k.LastProcessedEpoch.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return epoch, nil
}

// blockTimestamp returns the current block time in unix seconds.
func blockTimestamp(ctx context.Context) uint64 {
	t := sdk.UnwrapSDKContext(ctx).HeaderInfo().Time
	if t.Unix() < 0 {
		return 0
	}
	return uint64(t.Unix())
}
