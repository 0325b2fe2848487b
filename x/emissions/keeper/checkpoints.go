package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

// AddCheckpoint validates and appends an emission checkpoint to the timeline.
// A non-initial checkpoint must start strictly after the last one, on an
// exact epoch boundary of the preceding parameters, so that no epoch is ever
// split across two parameter regimes.
func (k Keeper) AddCheckpoint(ctx context.Context, cp types.Checkpoint) error {
	if err := cp.Validate(); err != nil {
		return err
	}

	count, err := k.checkpointCount(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		last, err := k.Checkpoints.Get(ctx, count-1)
		if err != nil {
			return err
		}
		if cp.StartTimestamp <= last.StartTimestamp {
			return types.ErrCheckpointOutOfOrder.Wrapf("start %d is not after %d", cp.StartTimestamp, last.StartTimestamp)
		}
		if (cp.StartTimestamp-last.StartTimestamp)%last.EpochLength != 0 {
			return types.ErrCheckpointNotAligned.Wrapf("start %d is off the %d-second epoch grid anchored at %d", cp.StartTimestamp, last.EpochLength, last.StartTimestamp)
		}
	}

	if err := k.Checkpoints.Set(ctx, count, cp); err != nil {
		return err
	}
	return k.CheckpointCount.Set(ctx, count+1)
}

// FindCheckpoint returns the checkpoint with the greatest start timestamp
// less than or equal to the given timestamp, via binary search over the
// ordered checkpoint log.
func (k Keeper) FindCheckpoint(ctx context.Context, timestamp uint64) (types.Checkpoint, error) {
	count, err := k.checkpointCount(ctx)
	if err != nil {
		return types.Checkpoint{}, err
	}
	if count == 0 {
		return types.Checkpoint{}, types.ErrNoCheckpoints
	}

	first, err := k.Checkpoints.Get(ctx, 0)
	if err != nil {
		return types.Checkpoint{}, err
	}
	if timestamp < first.StartTimestamp {
		return types.Checkpoint{}, types.ErrNoCheckpoints.Wrapf("timestamp %d precedes genesis %d", timestamp, first.StartTimestamp)
	}

	// invariant: checkpoint at lo starts at or before the timestamp
	lo, hi := uint64(0), count-1
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		cp, err := k.Checkpoints.Get(ctx, mid)
		if err != nil {
			return types.Checkpoint{}, err
		}
		if cp.StartTimestamp <= timestamp {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return k.Checkpoints.Get(ctx, lo)
}

// GetCheckpoints returns the whole checkpoint log in insertion order. The
// log is expected to stay small (tens of entries), so the linear walks over
// it in the epoch math are cheap.
func (k Keeper) GetCheckpoints(ctx context.Context) ([]types.Checkpoint, error) {
	cps := make([]types.Checkpoint, 0)
	err := k.Checkpoints.Walk(ctx, nil, func(_ uint64, cp types.Checkpoint) (bool, error) {
		cps = append(cps, cp)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return cps, nil
}

func (k Keeper) checkpointCount(ctx context.Context) (uint64, error) {
	count, err := k.CheckpointCount.Get(ctx)
	if err != nil {
		// unset means an empty timeline
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}
