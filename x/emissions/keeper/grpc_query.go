package keeper

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

// Querier implements the module QueryServer on top of the Keeper.
type Querier struct {
	Keeper
}

// NewQuerier returns an implementation of the QueryServer interface for the
// provided Keeper.
func NewQuerier(k Keeper) Querier {
	return Querier{Keeper: k}
}

var _ types.QueryServer = Querier{}

func (k Querier) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

func (k Querier) Checkpoints(goCtx context.Context, req *types.QueryCheckpointsRequest) (*types.QueryCheckpointsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	cps, err := k.GetCheckpoints(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryCheckpointsResponse{Checkpoints: cps}, nil
}

func (k Querier) CurrentEpoch(goCtx context.Context, req *types.QueryCurrentEpochRequest) (*types.QueryCurrentEpochResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	epoch, err := k.Keeper.CurrentEpoch(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryCurrentEpochResponse{Epoch: epoch}, nil
}

func (k Querier) EpochInfo(goCtx context.Context, req *types.QueryEpochInfoRequest) (*types.QueryEpochInfoResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	current, err := k.Keeper.CurrentEpoch(ctx)
	if err != nil {
		return nil, queryError(err)
	}
	if req.Epoch > current {
		return nil, types.ErrFutureEpoch.Wrapf("epoch %d is beyond the current epoch %d", req.Epoch, current)
	}

	start, err := k.EpochStart(ctx, req.Epoch)
	if err != nil {
		return nil, queryError(err)
	}
	end, err := k.EpochEnd(ctx, req.Epoch)
	if err != nil {
		return nil, queryError(err)
	}
	emissions, err := k.EmissionsAtEpoch(ctx, req.Epoch)
	if err != nil {
		return nil, queryError(err)
	}
	effective, err := k.EmissionsForEpoch(ctx, req.Epoch)
	if err != nil {
		return nil, queryError(err)
	}
	claimed, err := k.TotalClaimedForEpoch(ctx, req.Epoch)
	if err != nil {
		return nil, queryError(err)
	}
	claimedFees, err := k.TotalFeesClaimedForEpoch(ctx, req.Epoch)
	if err != nil {
		return nil, queryError(err)
	}
	maxFees, err := k.GetMaxClaimableFeesForEpoch(ctx, req.Epoch)
	if err != nil {
		return nil, queryError(err)
	}

	return &types.QueryEpochInfoResponse{
		Epoch:              req.Epoch,
		StartTimestamp:     start,
		EndTimestamp:       end,
		Emissions:          emissions,
		EffectiveEmissions: effective,
		TotalClaimed:       claimed,
		TotalFeesClaimed:   claimedFees,
		MaxClaimableFees:   maxFees,
	}, nil
}

func (k Querier) UtilizationRatios(goCtx context.Context, req *types.QueryUtilizationRatiosRequest) (*types.QueryUtilizationRatiosResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	systemRatio, err := k.SystemUtilizationRatio(ctx, req.Epoch)
	if err != nil {
		return nil, queryError(err)
	}
	personalRatio, err := k.PersonalUtilizationRatio(ctx, addr, req.Epoch)
	if err != nil {
		return nil, queryError(err)
	}

	return &types.QueryUtilizationRatiosResponse{
		SystemRatio:   systemRatio,
		PersonalRatio: personalRatio,
	}, nil
}

func (k Querier) ClaimedRewards(goCtx context.Context, req *types.QueryClaimedRewardsRequest) (*types.QueryClaimedRewardsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	amount, err := k.GetInflationaryClaim(ctx, addr, req.Epoch)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	feeAmount, err := k.GetProtocolFeeClaim(ctx, addr, req.Epoch)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryClaimedRewardsResponse{Amount: amount, FeeAmount: feeAmount}, nil
}

func (k Querier) ClaimableRewards(goCtx context.Context, req *types.QueryClaimableRewardsRequest) (*types.QueryClaimableRewardsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	current, err := k.Keeper.CurrentEpoch(ctx)
	if err != nil {
		return nil, queryError(err)
	}
	if current == 0 {
		return nil, types.ErrNoClaimingDuringFirstEpoch
	}
	prev := current - 1

	amount, feeAmount, err := k.claimableForEpoch(ctx, addr, prev)
	if err != nil {
		return nil, err
	}

	return &types.QueryClaimableRewardsResponse{
		Epoch:     prev,
		Amount:    amount,
		FeeAmount: feeAmount,
	}, nil
}

func (k Querier) UnclaimedRewards(goCtx context.Context, req *types.QueryUnclaimedRewardsRequest) (*types.QueryUnclaimedRewardsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	amount, err := k.Keeper.UnclaimedRewards(ctx)
	if err != nil {
		return nil, queryError(err)
	}
	return &types.QueryUnclaimedRewardsResponse{Amount: amount}, nil
}

// queryError keeps named module conditions intact so callers can tell them
// apart, and maps everything else to an internal status error.
func queryError(err error) error {
	if errors.Is(err, types.ErrNoCheckpoints) || errors.Is(err, types.ErrFutureEpoch) {
		return err
	}
	return status.Error(codes.Internal, err.Error())
}
