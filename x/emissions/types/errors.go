package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/emissions module sentinel errors
var (
	ErrNoCheckpoints                      = errorsmod.Register(ModuleName, 1100, "no emission checkpoints exist")
	ErrInvalidCheckpoint                  = errorsmod.Register(ModuleName, 1101, "invalid emission checkpoint")
	ErrCheckpointNotAligned               = errorsmod.Register(ModuleName, 1102, "checkpoint start is not on an epoch boundary")
	ErrCheckpointOutOfOrder               = errorsmod.Register(ModuleName, 1103, "checkpoint start does not extend the timeline")
	ErrInvalidUtilizationBound            = errorsmod.Register(ModuleName, 1104, "utilization lower bound out of range")
	ErrFutureEpoch                        = errorsmod.Register(ModuleName, 1105, "epoch has not ended yet")
	ErrNoClaimingDuringFirstEpoch         = errorsmod.Register(ModuleName, 1106, "no claiming during the first epoch")
	ErrNoRewardsToClaim                   = errorsmod.Register(ModuleName, 1107, "no rewards to claim")
	ErrRewardsAlreadyClaimedForEpoch      = errorsmod.Register(ModuleName, 1108, "rewards already claimed for epoch")
	ErrProtocolFeesExceedMaxClaimable     = errorsmod.Register(ModuleName, 1109, "protocol fees exceed max claimable for epoch")
	ErrClaimableProtocolFeesExceedBalance = errorsmod.Register(ModuleName, 1110, "claimable protocol fees exceed module balance")
	ErrMaxClaimableFeesAlreadySet         = errorsmod.Register(ModuleName, 1111, "max claimable fees already set for epoch")
	ErrClaimsPaused                       = errorsmod.Register(ModuleName, 1112, "reward claims are paused")
	ErrInvalidAmount                      = errorsmod.Register(ModuleName, 1113, "invalid amount")
)
