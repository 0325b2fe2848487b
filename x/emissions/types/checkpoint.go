package types

import (
	"cosmossdk.io/math"
)

const (
	// BasisPointsDivisor is the scale used for all percentage-like values.
	BasisPointsDivisor uint64 = 10_000

	// MaxReductionBasisPoints caps the per-cliff emission reduction at 10%.
	MaxReductionBasisPoints uint64 = 1_000

	// MinReductionCliff and MaxReductionCliff bound the number of epochs
	// between two consecutive emission reductions.
	MinReductionCliff uint64 = 1
	MaxReductionCliff uint64 = 365
)

// Checkpoint is an immutable record of emission parameters valid from
// StartTimestamp until superseded by the next checkpoint. Checkpoints are
// stored in strictly increasing StartTimestamp order and every non-initial
// checkpoint must start on an exact epoch boundary of the preceding timeline,
// so no epoch is ever split across two parameter regimes.
type Checkpoint struct {
	// StartTimestamp is the unix time (seconds) at which this checkpoint
	// takes effect. The first checkpoint's StartTimestamp is genesis.
	StartTimestamp uint64 `json:"start_timestamp"`
	// EpochLength is the epoch duration in seconds.
	EpochLength uint64 `json:"epoch_length"`
	// EmissionsPerEpoch is the base emission amount per epoch before decay.
	EmissionsPerEpoch math.Int `json:"emissions_per_epoch"`
	// ReductionCliff is the number of epochs between two emission reductions.
	ReductionCliff uint64 `json:"reduction_cliff"`
	// ReductionBasisPoints is the emission reduction applied at every cliff.
	ReductionBasisPoints uint64 `json:"reduction_basis_points"`
}

// NewCheckpoint constructs a new Checkpoint.
func NewCheckpoint(startTimestamp, epochLength uint64, emissionsPerEpoch math.Int, reductionCliff, reductionBasisPoints uint64) Checkpoint {
	return Checkpoint{
		StartTimestamp:       startTimestamp,
		EpochLength:          epochLength,
		EmissionsPerEpoch:    emissionsPerEpoch,
		ReductionCliff:       reductionCliff,
		ReductionBasisPoints: reductionBasisPoints,
	}
}

// RetentionFactor returns the fraction of emissions, in basis points, kept
// after each cliff. ReductionBasisPoints is bounded well below the divisor,
// so the retention factor is always positive.
func (c Checkpoint) RetentionFactor() uint64 {
	return BasisPointsDivisor - c.ReductionBasisPoints
}

// RetentionRatio returns the retention factor as a fixed-point decimal in (0, 1].
func (c Checkpoint) RetentionRatio() math.LegacyDec {
	return math.LegacyNewDec(int64(c.RetentionFactor())).QuoInt64(int64(BasisPointsDivisor))
}

// Validate does sanity checks on the checkpoint parameters.
func (c Checkpoint) Validate() error {
	if c.EpochLength == 0 {
		return ErrInvalidCheckpoint.Wrap("epoch length must be positive")
	}
	if c.EmissionsPerEpoch.IsNil() || c.EmissionsPerEpoch.IsNegative() {
		return ErrInvalidCheckpoint.Wrap("emissions per epoch must be non-negative")
	}
	if c.ReductionCliff < MinReductionCliff || c.ReductionCliff > MaxReductionCliff {
		return ErrInvalidCheckpoint.Wrapf("reduction cliff %d outside [%d, %d]", c.ReductionCliff, MinReductionCliff, MaxReductionCliff)
	}
	if c.ReductionBasisPoints > MaxReductionBasisPoints {
		return ErrInvalidCheckpoint.Wrapf("reduction basis points %d exceeds max %d", c.ReductionBasisPoints, MaxReductionBasisPoints)
	}
	return nil
}
