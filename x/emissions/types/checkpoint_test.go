package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

func TestCheckpointValidate(t *testing.T) {
	valid := types.NewCheckpoint(1_700_000_000, 604_800, math.NewInt(1000), 26, 500)
	require.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		mutate func(cp *types.Checkpoint)
	}{
		{"zero epoch length", func(cp *types.Checkpoint) { cp.EpochLength = 0 }},
		{"nil emissions", func(cp *types.Checkpoint) { cp.EmissionsPerEpoch = math.Int{} }},
		{"negative emissions", func(cp *types.Checkpoint) { cp.EmissionsPerEpoch = math.NewInt(-1) }},
		{"zero cliff", func(cp *types.Checkpoint) { cp.ReductionCliff = 0 }},
		{"cliff too large", func(cp *types.Checkpoint) { cp.ReductionCliff = types.MaxReductionCliff + 1 }},
		{"reduction too large", func(cp *types.Checkpoint) { cp.ReductionBasisPoints = types.MaxReductionBasisPoints + 1 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cp := valid
			tc.mutate(&cp)
			require.ErrorIs(t, cp.Validate(), types.ErrInvalidCheckpoint)
		})
	}
}

func TestCheckpointRetention(t *testing.T) {
	cp := types.NewCheckpoint(0, 604_800, math.NewInt(1000), 26, 500)
	require.Equal(t, uint64(9_500), cp.RetentionFactor())
	require.Equal(t, math.LegacyMustNewDecFromStr("0.95"), cp.RetentionRatio())

	cp.ReductionBasisPoints = 0
	require.Equal(t, types.BasisPointsDivisor, cp.RetentionFactor())
	require.Equal(t, math.LegacyOneDec(), cp.RetentionRatio())
}

func TestCheckpointCodecRoundTrip(t *testing.T) {
	cps := []types.Checkpoint{
		types.NewCheckpoint(1_700_000_000, 604_800, math.NewInt(1).Mul(math.NewIntWithDecimal(1, 24)), 26, 500),
		types.NewCheckpoint(0, 1, math.ZeroInt(), 1, 0),
	}
	for _, cp := range cps {
		bz, err := types.CheckpointValue.Encode(cp)
		require.NoError(t, err)
		got, err := types.CheckpointValue.Decode(bz)
		require.NoError(t, err)
		require.Equal(t, cp, got)
	}

	_, err := types.CheckpointValue.Decode([]byte("short"))
	require.Error(t, err)
}
