package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer is the server API for the emissions Query service.
type QueryServer interface {
	// Params returns the module parameters.
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	// Checkpoints returns the full checkpoint timeline.
	Checkpoints(ctx context.Context, req *QueryCheckpointsRequest) (*QueryCheckpointsResponse, error)
	// CurrentEpoch returns the cumulative epoch index at the current block time.
	CurrentEpoch(ctx context.Context, req *QueryCurrentEpochRequest) (*QueryCurrentEpochResponse, error)
	// EpochInfo returns the boundaries and emission accounting of an epoch.
	EpochInfo(ctx context.Context, req *QueryEpochInfoRequest) (*QueryEpochInfoResponse, error)
	// UtilizationRatios returns the system and personal utilization ratios
	// resolved for an epoch.
	UtilizationRatios(ctx context.Context, req *QueryUtilizationRatiosRequest) (*QueryUtilizationRatiosResponse, error)
	// ClaimedRewards returns the recorded claim amounts of a (user, epoch) pair.
	ClaimedRewards(ctx context.Context, req *QueryClaimedRewardsRequest) (*QueryClaimedRewardsResponse, error)
	// ClaimableRewards dry-runs a claim for the given user.
	ClaimableRewards(ctx context.Context, req *QueryClaimableRewardsRequest) (*QueryClaimableRewardsResponse, error)
	// UnclaimedRewards returns the emissions of all closed epochs that were
	// never claimed and are now permanently forfeited.
	UnclaimedRewards(ctx context.Context, req *QueryUnclaimedRewardsRequest) (*QueryUnclaimedRewardsResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryCheckpointsRequest struct{}

type QueryCheckpointsResponse struct {
	Checkpoints []Checkpoint `json:"checkpoints"`
}

type QueryCurrentEpochRequest struct{}

type QueryCurrentEpochResponse struct {
	Epoch uint64 `json:"epoch"`
}

type QueryEpochInfoRequest struct {
	Epoch uint64 `json:"epoch"`
}

type QueryEpochInfoResponse struct {
	Epoch uint64 `json:"epoch"`
	// StartTimestamp and EndTimestamp are the epoch boundaries in unix seconds.
	StartTimestamp uint64 `json:"start_timestamp"`
	EndTimestamp   uint64 `json:"end_timestamp"`
	// Emissions is the raw emission curve output for the epoch.
	Emissions math.Int `json:"emissions"`
	// EffectiveEmissions is Emissions throttled by the system utilization ratio.
	EffectiveEmissions math.Int `json:"effective_emissions"`
	// TotalClaimed and TotalFeesClaimed are the per-epoch claim aggregates.
	TotalClaimed     math.Int `json:"total_claimed"`
	TotalFeesClaimed math.Int `json:"total_fees_claimed"`
	// MaxClaimableFees is the one-time fee ceiling, zero when unset.
	MaxClaimableFees math.Int `json:"max_claimable_fees"`
}

type QueryUtilizationRatiosRequest struct {
	Address string `json:"address"`
	Epoch   uint64 `json:"epoch"`
}

type QueryUtilizationRatiosResponse struct {
	// SystemRatio and PersonalRatio are basis points in [lower bound, 10000],
	// or 0 for an unresolved (future) epoch.
	SystemRatio   uint64 `json:"system_ratio"`
	PersonalRatio uint64 `json:"personal_ratio"`
}

type QueryClaimedRewardsRequest struct {
	Address string `json:"address"`
	Epoch   uint64 `json:"epoch"`
}

type QueryClaimedRewardsResponse struct {
	Amount    math.Int `json:"amount"`
	FeeAmount math.Int `json:"fee_amount"`
}

type QueryClaimableRewardsRequest struct {
	Address string `json:"address"`
}

type QueryClaimableRewardsResponse struct {
	Epoch     uint64   `json:"epoch"`
	Amount    math.Int `json:"amount"`
	FeeAmount math.Int `json:"fee_amount"`
}

type QueryUnclaimedRewardsRequest struct{}

type QueryUnclaimedRewardsResponse struct {
	Amount math.Int `json:"amount"`
}
