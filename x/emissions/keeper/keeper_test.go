package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/accruelabs-io/accrual/testutil/keeper"
	"github.com/accruelabs-io/accrual/testutil/mocks"
	"github.com/accruelabs-io/accrual/x/emissions/keeper"
	"github.com/accruelabs-io/accrual/x/emissions/types"
)

const (
	genesisTime = uint64(1_700_000_000)
	weekSeconds = uint64(604_800)
)

type testEnv struct {
	Keeper      *keeper.Keeper
	Ctx         sdk.Context
	Bank        *mocks.BankKeeper
	Bonding     *mocks.BondingKeeper
	Utilization *mocks.UtilizationKeeper
}

func setupKeeper(t testing.TB) *testEnv {
	bank := mocks.NewBankKeeper()
	bonding := mocks.NewBondingKeeper()
	utilization := mocks.NewUtilizationKeeper()
	k, ctx := testkeeper.EmissionsKeeper(t, mocks.AccountKeeper{}, bank, bonding, utilization)
	return &testEnv{
		Keeper:      k,
		Ctx:         ctx,
		Bank:        bank,
		Bonding:     bonding,
		Utilization: utilization,
	}
}

// at returns a context whose block time is pinned at the given unix timestamp.
func (e *testEnv) at(timestamp uint64) sdk.Context {
	return testkeeper.CtxAt(e.Ctx, timestamp)
}

// addWeeklyCheckpoint anchors a weekly checkpoint at genesisTime with the
// given base emissions and a 26-epoch, 5% reduction schedule.
func (e *testEnv) addWeeklyCheckpoint(t *testing.T, emissions math.Int) types.Checkpoint {
	cp := types.NewCheckpoint(genesisTime, weekSeconds, emissions, 26, 500)
	require.NoError(t, e.Keeper.AddCheckpoint(e.Ctx, cp))
	return cp
}

func coins(amount math.Int) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(types.DefaultRewardDenom, amount))
}

// exp18 scales a unit amount by 10^18.
func exp18(units int64) math.Int {
	return math.NewInt(units).Mul(math.NewIntWithDecimal(1, 18))
}

func TestParamsGetSet(t *testing.T) {
	env := setupKeeper(t)
	k, ctx := env.Keeper, env.Ctx

	require.Equal(t, types.DefaultParams(), k.GetParams(ctx))

	params := types.NewParams("ustake", 5000, 3000)
	require.NoError(t, k.SetParams(ctx, params))
	require.Equal(t, params, k.GetParams(ctx))

	invalid := types.NewParams("uacr", types.BasisPointsDivisor+1, 3000)
	require.ErrorIs(t, k.SetParams(ctx, invalid), types.ErrInvalidUtilizationBound)
}
