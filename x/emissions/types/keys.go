package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "emissions"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	ParamsKey             = collections.NewPrefix(1)  // key prefix for the parameters
	CheckpointsKey        = collections.NewPrefix(2)  // key prefix for the emission checkpoint log
	CheckpointCountKey    = collections.NewPrefix(3)  // key for the number of appended checkpoints
	InflationaryClaimsKey = collections.NewPrefix(4)  // key prefix for per-(user, epoch) inflationary claims
	ProtocolFeeClaimsKey  = collections.NewPrefix(5)  // key prefix for per-(user, epoch) protocol fee claims
	EpochClaimedTotalsKey = collections.NewPrefix(6)  // key prefix for per-epoch claimed inflationary totals
	EpochClaimedFeesKey   = collections.NewPrefix(7)  // key prefix for per-epoch claimed fee totals
	MaxClaimableFeesKey   = collections.NewPrefix(8)  // key prefix for the one-time per-epoch fee ceiling
	ClaimsPausedKey       = collections.NewPrefix(9)  // key for the claims pause switch
	LastProcessedEpochKey = collections.NewPrefix(10) // key for the last epoch seen by BeginBlocker
)
