package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

type Keeper struct {
	storeService corestoretypes.KVStoreService

	accountKeeper     types.AccountKeeper
	bankKeeper        types.BankKeeper
	bondingKeeper     types.BondingKeeper
	utilizationKeeper types.UtilizationKeeper

	// the address capable of executing governance messages. Typically, this
	// should be the x/gov module account.
	authority string

	Schema collections.Schema

	// Params holds the module parameters.
	Params collections.Item[types.Params]
	// Checkpoints is the append-only emission parameter log, keyed by
	// insertion index. Entries are never mutated or deleted.
	Checkpoints collections.Map[uint64, types.Checkpoint]
	// CheckpointCount is the number of appended checkpoints.
	CheckpointCount collections.Item[uint64]
	// InflationaryClaims records the claimed inflationary reward per
	// (user, epoch). A non-zero entry is terminal.
	InflationaryClaims collections.Map[collections.Pair[sdk.AccAddress, uint64], math.Int]
	// ProtocolFeeClaims records the claimed protocol fee per (user, epoch).
	ProtocolFeeClaims collections.Map[collections.Pair[sdk.AccAddress, uint64], math.Int]
	// EpochClaimedTotals and EpochClaimedFees are the per-epoch claim aggregates.
	EpochClaimedTotals collections.Map[uint64, math.Int]
	EpochClaimedFees   collections.Map[uint64, math.Int]
	// MaxClaimableFees is the set-once per-epoch protocol fee ceiling.
	MaxClaimableFees collections.Map[uint64, math.Int]
	// ClaimsPaused gates ClaimRewards.
	ClaimsPaused collections.Item[bool]
	// LastProcessedEpoch is the last epoch observed by BeginBlocker.
	LastProcessedEpoch collections.Item[uint64]
}

func NewKeeper(
	storeService corestoretypes.KVStoreService,
	accountKeeper types.AccountKeeper,
	bankKeeper types.BankKeeper,
	bondingKeeper types.BondingKeeper,
	utilizationKeeper types.UtilizationKeeper,
	authority string,
) Keeper {
	// Ensure the emissions module account has been set
	if addr := accountKeeper.GetModuleAddress(types.ModuleName); addr == nil {
		panic("the emissions module account has not been set")
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService:      storeService,
		accountKeeper:     accountKeeper,
		bankKeeper:        bankKeeper,
		bondingKeeper:     bondingKeeper,
		utilizationKeeper: utilizationKeeper,
		authority:         authority,
		Params: collections.NewItem(
			sb,
			types.ParamsKey,
			"params",
			types.ParamsValue,
		),
		Checkpoints: collections.NewMap(
			sb,
			types.CheckpointsKey,
			"checkpoints",
			collections.Uint64Key,
			types.CheckpointValue,
		),
		CheckpointCount: collections.NewItem(
			sb,
			types.CheckpointCountKey,
			"checkpoint_count",
			collections.Uint64Value,
		),
		InflationaryClaims: collections.NewMap(
			sb,
			types.InflationaryClaimsKey,
			"inflationary_claims",
			collections.PairKeyCodec(sdk.LengthPrefixedAddressKey(sdk.AccAddressKey), collections.Uint64Key),
			sdk.IntValue,
		),
		ProtocolFeeClaims: collections.NewMap(
			sb,
			types.ProtocolFeeClaimsKey,
			"protocol_fee_claims",
			collections.PairKeyCodec(sdk.LengthPrefixedAddressKey(sdk.AccAddressKey), collections.Uint64Key),
			sdk.IntValue,
		),
		EpochClaimedTotals: collections.NewMap(
			sb,
			types.EpochClaimedTotalsKey,
			"epoch_claimed_totals",
			collections.Uint64Key,
			sdk.IntValue,
		),
		EpochClaimedFees: collections.NewMap(
			sb,
			types.EpochClaimedFeesKey,
			"epoch_claimed_fees",
			collections.Uint64Key,
			sdk.IntValue,
		),
		MaxClaimableFees: collections.NewMap(
			sb,
			types.MaxClaimableFeesKey,
			"max_claimable_fees",
			collections.Uint64Key,
			sdk.IntValue,
		),
		ClaimsPaused: collections.NewItem(
			sb,
			types.ClaimsPausedKey,
			"claims_paused",
			collections.BoolValue,
		),
		LastProcessedEpoch: collections.NewItem(
			sb,
			types.LastProcessedEpochKey,
			"last_processed_epoch",
			collections.Uint64Value,
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}
