package datagen

import (
	"math/rand"

	"cosmossdk.io/math"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

// GenRandomCheckpoint generates a valid checkpoint starting at the given
// timestamp.
func GenRandomCheckpoint(r *rand.Rand, startTimestamp uint64) types.Checkpoint {
	epochLength := uint64(RandomInRange(r, 3600, 14*24*3600))
	emissions := math.NewIntFromUint64(RandomInt(r, 1_000_000) + 1).
		Mul(math.NewIntWithDecimal(1, 18))
	cliff := uint64(RandomInRange(r, int(types.MinReductionCliff), int(types.MaxReductionCliff)+1))
	bps := RandomInt(r, int(types.MaxReductionBasisPoints)+1)
	return types.NewCheckpoint(startTimestamp, epochLength, emissions, cliff, bps)
}

// GenCheckpointTimeline generates a valid ordered checkpoint timeline of the
// given size, each checkpoint aligned to an epoch boundary of its predecessor.
func GenCheckpointTimeline(r *rand.Rand, genesis uint64, n int) []types.Checkpoint {
	cps := make([]types.Checkpoint, 0, n)
	start := genesis
	for i := 0; i < n; i++ {
		cp := GenRandomCheckpoint(r, start)
		cps = append(cps, cp)
		epochs := uint64(RandomInRange(r, 1, 20))
		start += epochs * cp.EpochLength
	}
	return cps
}
