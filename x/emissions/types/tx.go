package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgServer is the server API for the emissions Msg service.
type MsgServer interface {
	// ClaimRewards claims the sender's pro-rata, utilization-weighted share
	// of the previous epoch's emissions, paid out to the recipient.
	ClaimRewards(ctx context.Context, msg *MsgClaimRewards) (*MsgClaimRewardsResponse, error)
	// AddCheckpoint appends an emission checkpoint to the timeline.
	AddCheckpoint(ctx context.Context, msg *MsgAddCheckpoint) (*MsgAddCheckpointResponse, error)
	// UpdateParams updates the module parameters.
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	// SetClaimsPaused flips the claims pause switch.
	SetClaimsPaused(ctx context.Context, msg *MsgSetClaimsPaused) (*MsgSetClaimsPausedResponse, error)
}

// MsgClaimRewards claims the previous epoch's rewards of Sender and sends
// them to Recipient. An empty Recipient defaults to Sender.
type MsgClaimRewards struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient,omitempty"`
}

// MsgClaimRewardsResponse reports the settled claim.
type MsgClaimRewardsResponse struct {
	Epoch     uint64   `json:"epoch"`
	Amount    math.Int `json:"amount"`
	FeeAmount math.Int `json:"fee_amount"`
}

// MsgAddCheckpoint is a governance message appending an emission checkpoint.
type MsgAddCheckpoint struct {
	Authority  string     `json:"authority"`
	Checkpoint Checkpoint `json:"checkpoint"`
}

type MsgAddCheckpointResponse struct{}

// MsgUpdateParams is a governance message updating the module parameters.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgSetClaimsPaused is a governance message pausing or resuming claims.
type MsgSetClaimsPaused struct {
	Authority string `json:"authority"`
	Paused    bool   `json:"paused"`
}

type MsgSetClaimsPausedResponse struct{}

// ValidateBasic does stateless sanity checks on the msg.
func (msg *MsgClaimRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %v", err)
	}
	if msg.Recipient != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
			return sdkerrors.ErrInvalidAddress.Wrapf("invalid recipient address: %v", err)
		}
	}
	return nil
}

// ValidateBasic does stateless sanity checks on the msg.
func (msg *MsgAddCheckpoint) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address: %v", err)
	}
	return msg.Checkpoint.Validate()
}

// ValidateBasic does stateless sanity checks on the msg.
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address: %v", err)
	}
	return msg.Params.Validate()
}

// ValidateBasic does stateless sanity checks on the msg.
func (msg *MsgSetClaimsPaused) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address: %v", err)
	}
	return nil
}
