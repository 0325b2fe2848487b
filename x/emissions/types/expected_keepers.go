package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the expected account keeper.
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper defines the expected bank keeper, used as the settlement sink
// for claimed rewards.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	BlockedAddr(addr sdk.AccAddress) bool
}

// BondingKeeper is the bonding balance provider: a time-decaying balance
// derived from locked deposits, used as the pro-rata reward weight. The
// provider must be monotonically consistent: a balance never exceeds the
// total supply at the same timestamp.
type BondingKeeper interface {
	BondedBalanceAt(ctx context.Context, addr sdk.AccAddress, timestamp uint64) (math.Int, error)
	TotalBondedAt(ctx context.Context, timestamp uint64) (math.Int, error)
}

// UtilizationKeeper is the utilization provider: signed cumulative
// utilization counters per user and system-wide, indexed by epoch, plus the
// protocol fee pool accumulated per epoch. The engine only ever reads deltas
// between two adjacent epoch readings.
type UtilizationKeeper interface {
	UserUtilization(ctx context.Context, addr sdk.AccAddress, epoch uint64) (math.Int, error)
	SystemUtilization(ctx context.Context, epoch uint64) (math.Int, error)
	AccumulatedProtocolFees(ctx context.Context, epoch uint64) (math.Int, error)
	ProtocolFeeDistributionEnabled(ctx context.Context, epoch uint64) (bool, error)
}
