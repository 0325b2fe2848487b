package keeper_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/accruelabs-io/accrual/testutil/datagen"
	"github.com/accruelabs-io/accrual/x/emissions/types"
)

func TestCumulativeEpochSingleWindow(t *testing.T) {
	env := setupKeeper(t)
	k, ctx := env.Keeper, env.Ctx

	// empty timeline: always epoch 0
	epoch, err := k.CumulativeEpoch(ctx, genesisTime+100*weekSeconds)
	require.NoError(t, err)
	require.Zero(t, epoch)

	env.addWeeklyCheckpoint(t, exp18(100))

	testCases := []struct {
		timestamp uint64
		epoch     uint64
	}{
		{genesisTime - 1, 0},
		{genesisTime, 0},
		{genesisTime + 1, 0},
		{genesisTime + weekSeconds - 1, 0},
		{genesisTime + weekSeconds, 1},
		{genesisTime + weekSeconds + 1, 1},
		{genesisTime + 52*weekSeconds, 52},
	}
	for _, tc := range testCases {
		epoch, err := k.CumulativeEpoch(ctx, tc.timestamp)
		require.NoError(t, err)
		require.Equal(t, tc.epoch, epoch, "timestamp %d", tc.timestamp)
	}
}

func TestCumulativeEpochAcrossCheckpoints(t *testing.T) {
	env := setupKeeper(t)
	k, ctx := env.Keeper, env.Ctx

	env.addWeeklyCheckpoint(t, exp18(100))
	// after 4 weekly epochs, switch to 2-week epochs
	second := types.NewCheckpoint(genesisTime+4*weekSeconds, 2*weekSeconds, exp18(50), 26, 500)
	require.NoError(t, k.AddCheckpoint(ctx, second))

	testCases := []struct {
		timestamp uint64
		epoch     uint64
	}{
		{genesisTime + 3*weekSeconds, 3},
		{genesisTime + 4*weekSeconds, 4},
		{genesisTime + 5*weekSeconds, 4},
		{genesisTime + 6*weekSeconds, 5},
		{genesisTime + 10*weekSeconds, 7},
	}
	for _, tc := range testCases {
		epoch, err := k.CumulativeEpoch(ctx, tc.timestamp)
		require.NoError(t, err)
		require.Equal(t, tc.epoch, epoch, "timestamp %d", tc.timestamp)
	}
}

func TestEpochBoundaries(t *testing.T) {
	env := setupKeeper(t)
	k, ctx := env.Keeper, env.Ctx

	_, err := k.EpochStart(ctx, 0)
	require.ErrorIs(t, err, types.ErrNoCheckpoints)

	env.addWeeklyCheckpoint(t, exp18(100))
	second := types.NewCheckpoint(genesisTime+4*weekSeconds, 2*weekSeconds, exp18(50), 26, 500)
	require.NoError(t, k.AddCheckpoint(ctx, second))

	testCases := []struct {
		epoch uint64
		start uint64
		end   uint64
	}{
		{0, genesisTime, genesisTime + weekSeconds},
		{3, genesisTime + 3*weekSeconds, genesisTime + 4*weekSeconds},
		{4, genesisTime + 4*weekSeconds, genesisTime + 6*weekSeconds},
		{5, genesisTime + 6*weekSeconds, genesisTime + 8*weekSeconds},
	}
	for _, tc := range testCases {
		start, err := k.EpochStart(ctx, tc.epoch)
		require.NoError(t, err)
		require.Equal(t, tc.start, start, "epoch %d start", tc.epoch)

		end, err := k.EpochEnd(ctx, tc.epoch)
		require.NoError(t, err)
		require.Equal(t, tc.end, end, "epoch %d end", tc.epoch)
	}
}

// FuzzEpochRoundTrip checks that epoch boundaries and the cumulative epoch
// index agree on arbitrary valid timelines.
func FuzzEpochRoundTrip(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		env := setupKeeper(t)
		k, ctx := env.Keeper, env.Ctx

		cps := datagen.GenCheckpointTimeline(r, genesisTime, datagen.RandomInRange(r, 1, 8))
		for _, cp := range cps {
			require.NoError(t, k.AddCheckpoint(ctx, cp))
		}

		for epoch := uint64(0); epoch < 40; epoch++ {
			start, err := k.EpochStart(ctx, epoch)
			require.NoError(t, err)
			end, err := k.EpochEnd(ctx, epoch)
			require.NoError(t, err)
			require.Greater(t, end, start)

			got, err := k.CumulativeEpoch(ctx, start)
			require.NoError(t, err)
			require.Equal(t, epoch, got)

			got, err = k.CumulativeEpoch(ctx, end-1)
			require.NoError(t, err)
			require.Equal(t, epoch, got)
		}
	})
}

func TestProcessEpochBoundary(t *testing.T) {
	env := setupKeeper(t)
	k := env.Keeper

	// empty timeline: nothing to do
	require.NoError(t, k.ProcessEpochBoundary(env.Ctx))

	env.addWeeklyCheckpoint(t, exp18(100))

	ctx := env.at(genesisTime + weekSeconds + 1)
	require.NoError(t, k.ProcessEpochBoundary(ctx))

	events := ctx.EventManager().Events()
	require.Len(t, events, 1)
	require.Equal(t, types.EventTypeEpochBoundary, events[0].Type)

	// same epoch again: no new event
	require.NoError(t, k.ProcessEpochBoundary(ctx))
	require.Len(t, ctx.EventManager().Events(), 1)

	// two epochs later
	ctx = env.at(genesisTime + 3*weekSeconds + 1)
	require.NoError(t, k.ProcessEpochBoundary(ctx))
	events = ctx.EventManager().Events()
	require.Equal(t, types.EventTypeEpochBoundary, events[len(events)-1].Type)
}
