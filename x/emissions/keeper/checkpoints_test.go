package keeper_test

import (
	"math/rand"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/accruelabs-io/accrual/testutil/datagen"
	"github.com/accruelabs-io/accrual/x/emissions/types"
)

func TestAddCheckpointValidation(t *testing.T) {
	env := setupKeeper(t)
	k, ctx := env.Keeper, env.Ctx

	testCases := []struct {
		name string
		cp   types.Checkpoint
	}{
		{
			name: "zero epoch length",
			cp:   types.NewCheckpoint(genesisTime, 0, exp18(100), 26, 500),
		},
		{
			name: "negative emissions",
			cp:   types.NewCheckpoint(genesisTime, weekSeconds, math.NewInt(-1), 26, 500),
		},
		{
			name: "nil emissions",
			cp:   types.NewCheckpoint(genesisTime, weekSeconds, math.Int{}, 26, 500),
		},
		{
			name: "cliff below minimum",
			cp:   types.NewCheckpoint(genesisTime, weekSeconds, exp18(100), 0, 500),
		},
		{
			name: "cliff above maximum",
			cp:   types.NewCheckpoint(genesisTime, weekSeconds, exp18(100), types.MaxReductionCliff+1, 500),
		},
		{
			name: "reduction above maximum",
			cp:   types.NewCheckpoint(genesisTime, weekSeconds, exp18(100), 26, types.MaxReductionBasisPoints+1),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, k.AddCheckpoint(ctx, tc.cp), types.ErrInvalidCheckpoint)
		})
	}
}

func TestAddCheckpointOrdering(t *testing.T) {
	env := setupKeeper(t)
	k, ctx := env.Keeper, env.Ctx
	env.addWeeklyCheckpoint(t, exp18(100))

	// same start
	cp := types.NewCheckpoint(genesisTime, weekSeconds, exp18(50), 26, 500)
	require.ErrorIs(t, k.AddCheckpoint(ctx, cp), types.ErrCheckpointOutOfOrder)

	// earlier start
	cp = types.NewCheckpoint(genesisTime-weekSeconds, weekSeconds, exp18(50), 26, 500)
	require.ErrorIs(t, k.AddCheckpoint(ctx, cp), types.ErrCheckpointOutOfOrder)

	// off the epoch grid
	cp = types.NewCheckpoint(genesisTime+weekSeconds+1, weekSeconds, exp18(50), 26, 500)
	require.ErrorIs(t, k.AddCheckpoint(ctx, cp), types.ErrCheckpointNotAligned)

	// exactly on an epoch boundary
	cp = types.NewCheckpoint(genesisTime+4*weekSeconds, 2*weekSeconds, exp18(50), 26, 500)
	require.NoError(t, k.AddCheckpoint(ctx, cp))

	// the grid of the new last checkpoint applies from its start
	cp = types.NewCheckpoint(genesisTime+4*weekSeconds+weekSeconds, weekSeconds, exp18(25), 26, 500)
	require.ErrorIs(t, k.AddCheckpoint(ctx, cp), types.ErrCheckpointNotAligned)

	cps, err := k.GetCheckpoints(ctx)
	require.NoError(t, err)
	require.Len(t, cps, 2)
}

func TestFindCheckpoint(t *testing.T) {
	env := setupKeeper(t)
	k, ctx := env.Keeper, env.Ctx

	_, err := k.FindCheckpoint(ctx, genesisTime)
	require.ErrorIs(t, err, types.ErrNoCheckpoints)

	first := env.addWeeklyCheckpoint(t, exp18(100))
	second := types.NewCheckpoint(genesisTime+10*weekSeconds, 2*weekSeconds, exp18(50), 26, 500)
	require.NoError(t, k.AddCheckpoint(ctx, second))

	_, err = k.FindCheckpoint(ctx, genesisTime-1)
	require.ErrorIs(t, err, types.ErrNoCheckpoints)

	cp, err := k.FindCheckpoint(ctx, genesisTime)
	require.NoError(t, err)
	require.Equal(t, first, cp)

	cp, err = k.FindCheckpoint(ctx, second.StartTimestamp-1)
	require.NoError(t, err)
	require.Equal(t, first, cp)

	cp, err = k.FindCheckpoint(ctx, second.StartTimestamp)
	require.NoError(t, err)
	require.Equal(t, second, cp)

	cp, err = k.FindCheckpoint(ctx, second.StartTimestamp+100*weekSeconds)
	require.NoError(t, err)
	require.Equal(t, second, cp)
}

func FuzzFindCheckpoint(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		env := setupKeeper(t)
		k, ctx := env.Keeper, env.Ctx

		cps := datagen.GenCheckpointTimeline(r, genesisTime, datagen.RandomInRange(r, 1, 12))
		for _, cp := range cps {
			require.NoError(t, k.AddCheckpoint(ctx, cp))
		}

		// probe random timestamps and compare against a linear scan
		for i := 0; i < 20; i++ {
			ts := genesisTime + uint64(datagen.RandomInRange(r, 0, 400*24*3600))
			want := cps[0]
			for _, cp := range cps {
				if cp.StartTimestamp <= ts {
					want = cp
				}
			}
			got, err := k.FindCheckpoint(ctx, ts)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})
}
