package keeper_test

import (
	"math/rand"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/accruelabs-io/accrual/testutil/datagen"
	"github.com/accruelabs-io/accrual/x/emissions/types"
)

func TestEmissionsAtEpochDecay(t *testing.T) {
	env := setupKeeper(t)
	k, ctx := env.Keeper, env.Ctx

	_, err := k.EmissionsAtEpoch(ctx, 0)
	require.ErrorIs(t, err, types.ErrNoCheckpoints)

	// 1M tokens per weekly epoch, reduced by 5% every 26 epochs
	env.addWeeklyCheckpoint(t, exp18(1_000_000))

	testCases := []struct {
		epoch uint64
		want  math.Int
	}{
		{0, exp18(1_000_000)},
		{25, exp18(1_000_000)},
		{26, exp18(950_000)},
		{51, exp18(950_000)},
		{52, exp18(902_500)},
	}
	for _, tc := range testCases {
		got, err := k.EmissionsAtEpoch(ctx, tc.epoch)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "epoch %d", tc.epoch)
	}
}

func TestEmissionsAtEpochNoReduction(t *testing.T) {
	env := setupKeeper(t)
	k, ctx := env.Keeper, env.Ctx

	cp := types.NewCheckpoint(genesisTime, weekSeconds, exp18(100), 26, 0)
	require.NoError(t, k.AddCheckpoint(ctx, cp))

	for _, epoch := range []uint64{0, 26, 520} {
		got, err := k.EmissionsAtEpoch(ctx, epoch)
		require.NoError(t, err)
		require.Equal(t, exp18(100), got)
	}
}

func TestEmissionsAtEpochNewCheckpointResetsDecay(t *testing.T) {
	env := setupKeeper(t)
	k, ctx := env.Keeper, env.Ctx

	env.addWeeklyCheckpoint(t, exp18(1_000_000))
	// a new regime 52 epochs in: fresh base, decay counts from here
	second := types.NewCheckpoint(genesisTime+52*weekSeconds, weekSeconds, exp18(500_000), 26, 500)
	require.NoError(t, k.AddCheckpoint(ctx, second))

	got, err := k.EmissionsAtEpoch(ctx, 52)
	require.NoError(t, err)
	require.Equal(t, exp18(500_000), got)

	got, err = k.EmissionsAtEpoch(ctx, 52+26)
	require.NoError(t, err)
	require.Equal(t, exp18(475_000), got)
}

func TestEmissionsForEpochBootstrap(t *testing.T) {
	env := setupKeeper(t)
	k, ctx := env.Keeper, env.Ctx
	env.addWeeklyCheckpoint(t, exp18(1_000_000))

	// the bootstrap epochs are never throttled
	for _, epoch := range []uint64{0, 1} {
		got, err := k.EmissionsForEpoch(ctx, epoch)
		require.NoError(t, err)
		require.Equal(t, exp18(1_000_000), got)
	}
}

func TestEmissionsForEpochThrottled(t *testing.T) {
	env := setupKeeper(t)
	k := env.Keeper
	env.addWeeklyCheckpoint(t, exp18(1_000_000))

	// flat system utilization: the ratio floors at the system lower bound
	ctx := env.at(genesisTime + 2*weekSeconds + 1)
	got, err := k.EmissionsForEpoch(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, exp18(400_000), got)
}

// FuzzEmissionsDecayMonotone checks the raw curve never increases within a
// single checkpoint window.
func FuzzEmissionsDecayMonotone(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		env := setupKeeper(t)
		k, ctx := env.Keeper, env.Ctx

		cp := datagen.GenRandomCheckpoint(r, genesisTime)
		require.NoError(t, k.AddCheckpoint(ctx, cp))

		prev, err := k.EmissionsAtEpoch(ctx, 0)
		require.NoError(t, err)
		require.Equal(t, cp.EmissionsPerEpoch, prev)

		for epoch := uint64(1); epoch < 200; epoch++ {
			got, err := k.EmissionsAtEpoch(ctx, epoch)
			require.NoError(t, err)
			require.True(t, got.LTE(prev), "epoch %d: %s > %s", epoch, got, prev)
			prev = got
		}
	})
}
