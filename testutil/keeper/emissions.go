package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/core/header"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/accruelabs-io/accrual/x/emissions/keeper"
	"github.com/accruelabs-io/accrual/x/emissions/types"
)

func EmissionsKeeperWithStore(
	t testing.TB,
	db dbm.DB,
	stateStore store.CommitMultiStore,
	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	bondingKeeper types.BondingKeeper,
	utilizationKeeper types.UtilizationKeeper,
) (*keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		accountKeeper,
		bankKeeper,
		bondingKeeper,
		utilizationKeeper,
		authtypes.NewModuleAddress(govtypes.ModuleName).String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	ctx = ctx.WithHeaderInfo(header.Info{})

	return &k, ctx
}

func EmissionsKeeper(
	t testing.TB,
	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	bondingKeeper types.BondingKeeper,
	utilizationKeeper types.UtilizationKeeper,
) (*keeper.Keeper, sdk.Context) {
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewTestLogger(t), storemetrics.NewNoOpMetrics())

	k, ctx := EmissionsKeeperWithStore(t, db, stateStore, accountKeeper, bankKeeper, bondingKeeper, utilizationKeeper)

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx
}

// CtxAt pins the block header time, from which the current epoch is derived.
func CtxAt(ctx sdk.Context, timestamp uint64) sdk.Context {
	blockTime := time.Unix(int64(timestamp), 0).UTC()
	ctx = ctx.WithBlockTime(blockTime)
	return ctx.WithHeaderInfo(header.Info{Time: blockTime})
}
