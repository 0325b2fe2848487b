package keeper

import (
	"context"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// ClaimRewards claims the sender's share of the previous epoch's emissions.
func (ms msgServer) ClaimRewards(goCtx context.Context, req *types.MsgClaimRewards) (*types.MsgClaimRewardsResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	sender, err := sdk.AccAddressFromBech32(req.Sender)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	recipient := sender
	if req.Recipient != "" {
		recipient, err = sdk.AccAddressFromBech32(req.Recipient)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}
	if ms.bankKeeper.BlockedAddr(recipient) {
		return nil, errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "%s is not allowed to receive external funds", recipient)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	epoch, amount, feeAmount, err := ms.Keeper.ClaimRewards(ctx, sender, recipient)
	if err != nil {
		return nil, err
	}

	return &types.MsgClaimRewardsResponse{
		Epoch:     epoch,
		Amount:    amount,
		FeeAmount: feeAmount,
	}, nil
}

// AddCheckpoint appends an emission checkpoint to the timeline.
func (ms msgServer) AddCheckpoint(goCtx context.Context, req *types.MsgAddCheckpoint) (*types.MsgAddCheckpointResponse, error) {
	if ms.authority != req.Authority {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.authority, req.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.AddCheckpoint(ctx, req.Checkpoint); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddCheckpoint,
			sdk.NewAttribute(types.AttributeKeyStartTimestamp, strconv.FormatUint(req.Checkpoint.StartTimestamp, 10)),
			sdk.NewAttribute(types.AttributeKeyEmissions, req.Checkpoint.EmissionsPerEpoch.String()),
		),
	)

	return &types.MsgAddCheckpointResponse{}, nil
}

// UpdateParams updates the params.
func (ms msgServer) UpdateParams(goCtx context.Context, req *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if ms.authority != req.Authority {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.authority, req.Authority)
	}
	if err := req.Params.Validate(); err != nil {
		return nil, govtypes.ErrInvalidProposalMsg.Wrapf("invalid parameter: %v", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.SetParams(ctx, req.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}

// SetClaimsPaused pauses or resumes reward claims.
func (ms msgServer) SetClaimsPaused(goCtx context.Context, req *types.MsgSetClaimsPaused) (*types.MsgSetClaimsPausedResponse, error) {
	if ms.authority != req.Authority {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.authority, req.Authority)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.SetClaimsPaused(ctx, req.Paused); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimsPaused,
			sdk.NewAttribute(types.AttributeKeyPaused, strconv.FormatBool(req.Paused)),
		),
	)

	return &types.MsgSetClaimsPausedResponse{}, nil
}
