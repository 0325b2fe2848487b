package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

// InitGenesis performs stateful validations and initializes the keeper state
// from a provided initial genesis state.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}

	for _, cp := range gs.Checkpoints {
		if err := k.AddCheckpoint(ctx, cp); err != nil {
			return err
		}
	}

	for _, entry := range gs.InflationaryClaims {
		addr := sdk.MustAccAddressFromBech32(entry.Address)
		if err := k.InflationaryClaims.Set(ctx, collections.Join(addr, entry.Epoch), entry.Amount); err != nil {
			return err
		}
	}
	for _, entry := range gs.ProtocolFeeClaims {
		addr := sdk.MustAccAddressFromBech32(entry.Address)
		if err := k.ProtocolFeeClaims.Set(ctx, collections.Join(addr, entry.Epoch), entry.Amount); err != nil {
			return err
		}
	}

	for _, entry := range gs.EpochClaimedTotals {
		if err := k.EpochClaimedTotals.Set(ctx, entry.Epoch, entry.Amount); err != nil {
			return err
		}
	}
	for _, entry := range gs.EpochClaimedFees {
		if err := k.EpochClaimedFees.Set(ctx, entry.Epoch, entry.Amount); err != nil {
			return err
		}
	}
	for _, entry := range gs.MaxClaimableFees {
		if err := k.MaxClaimableFees.Set(ctx, entry.Epoch, entry.Amount); err != nil {
			return err
		}
	}

	if err := k.ClaimsPaused.Set(ctx, gs.ClaimsPaused); err != nil {
		return err
	}
	return k.LastProcessedEpoch.Set(ctx, gs.LastProcessedEpoch)
}

// ExportGenesis returns the keeper state as an exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	cps, err := k.GetCheckpoints(ctx)
	if err != nil {
		return nil, err
	}

	inflationary, err := k.claimRecordEntries(ctx, k.InflationaryClaims)
	if err != nil {
		return nil, err
	}
	fees, err := k.claimRecordEntries(ctx, k.ProtocolFeeClaims)
	if err != nil {
		return nil, err
	}

	claimedTotals, err := k.epochAmountEntries(ctx, k.EpochClaimedTotals)
	if err != nil {
		return nil, err
	}
	claimedFees, err := k.epochAmountEntries(ctx, k.EpochClaimedFees)
	if err != nil {
		return nil, err
	}
	maxFees, err := k.epochAmountEntries(ctx, k.MaxClaimableFees)
	if err != nil {
		return nil, err
	}

	paused, err := k.IsClaimsPaused(ctx)
	if err != nil {
		return nil, err
	}
	lastEpoch, err := k.lastProcessedEpoch(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Params:             k.GetParams(ctx),
		Checkpoints:        cps,
		InflationaryClaims: inflationary,
		ProtocolFeeClaims:  fees,
		EpochClaimedTotals: claimedTotals,
		EpochClaimedFees:   claimedFees,
		MaxClaimableFees:   maxFees,
		ClaimsPaused:       paused,
		LastProcessedEpoch: lastEpoch,
	}, nil
}

func (k Keeper) claimRecordEntries(ctx context.Context, m collections.Map[collections.Pair[sdk.AccAddress, uint64], math.Int]) ([]types.ClaimRecordEntry, error) {
	entries := make([]types.ClaimRecordEntry, 0)
	err := m.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, uint64], value math.Int) (bool, error) {
		entries = append(entries, types.ClaimRecordEntry{
			Address: key.K1().String(),
			Epoch:   key.K2(),
			Amount:  value,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (k Keeper) epochAmountEntries(ctx context.Context, m collections.Map[uint64, math.Int]) ([]types.EpochAmountEntry, error) {
	entries := make([]types.EpochAmountEntry, 0)
	err := m.Walk(ctx, nil, func(epoch uint64, value math.Int) (bool, error) {
		entries = append(entries, types.EpochAmountEntry{Epoch: epoch, Amount: value})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
