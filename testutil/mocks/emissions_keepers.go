package mocks

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

var (
	_ types.AccountKeeper     = &AccountKeeper{}
	_ types.BankKeeper        = &BankKeeper{}
	_ types.BondingKeeper     = &BondingKeeper{}
	_ types.UtilizationKeeper = &UtilizationKeeper{}
)

// AccountKeeper resolves module addresses the same way x/auth does.
type AccountKeeper struct{}

func (AccountKeeper) GetModuleAddress(name string) sdk.AccAddress {
	return authtypes.NewModuleAddress(name)
}

// BankKeeper is an in-memory bank that tracks balances per account and
// enforces module liquidity on transfers.
type BankKeeper struct {
	Balances map[string]sdk.Coins
	Blocked  map[string]bool
}

func NewBankKeeper() *BankKeeper {
	return &BankKeeper{
		Balances: make(map[string]sdk.Coins),
		Blocked:  make(map[string]bool),
	}
}

// FundModule credits the named module account.
func (b *BankKeeper) FundModule(moduleName string, coins sdk.Coins) {
	addr := authtypes.NewModuleAddress(moduleName).String()
	b.Balances[addr] = b.Balances[addr].Add(coins...)
}

func (b *BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	coins, ok := b.Balances[addr.String()]
	if !ok {
		return sdk.NewCoin(denom, math.ZeroInt())
	}
	return sdk.NewCoin(denom, coins.AmountOf(denom))
}

func (b *BankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	sender := authtypes.NewModuleAddress(senderModule).String()
	remaining, negative := b.Balances[sender].SafeSub(amt...)
	if negative {
		return sdkerrors.ErrInsufficientFunds.Wrapf("module %s cannot cover %s", senderModule, amt.String())
	}
	b.Balances[sender] = remaining
	recipient := recipientAddr.String()
	b.Balances[recipient] = b.Balances[recipient].Add(amt...)
	return nil
}

func (b *BankKeeper) BlockedAddr(addr sdk.AccAddress) bool {
	return b.Blocked[addr.String()]
}

// BondingKeeper serves fixed bonded balances regardless of the queried
// timestamp. Tests that need time-varying weight can swap balances between
// claims.
type BondingKeeper struct {
	Balances map[string]math.Int
	Total    math.Int
}

func NewBondingKeeper() *BondingKeeper {
	return &BondingKeeper{
		Balances: make(map[string]math.Int),
		Total:    math.ZeroInt(),
	}
}

// SetBalance fixes an account's bonded balance without touching the total.
func (b *BondingKeeper) SetBalance(addr sdk.AccAddress, amount math.Int) {
	b.Balances[addr.String()] = amount
}

func (b *BondingKeeper) BondedBalanceAt(_ context.Context, addr sdk.AccAddress, _ uint64) (math.Int, error) {
	if amount, ok := b.Balances[addr.String()]; ok {
		return amount, nil
	}
	return math.ZeroInt(), nil
}

func (b *BondingKeeper) TotalBondedAt(_ context.Context, _ uint64) (math.Int, error) {
	return b.Total, nil
}

// UtilizationKeeper serves cumulative utilization readings and protocol fee
// pools from plain maps, missing readings resolve to zero.
type UtilizationKeeper struct {
	UserUtil    map[string]map[uint64]math.Int
	SystemUtil  map[uint64]math.Int
	Fees        map[uint64]math.Int
	FeesEnabled bool
}

func NewUtilizationKeeper() *UtilizationKeeper {
	return &UtilizationKeeper{
		UserUtil:   make(map[string]map[uint64]math.Int),
		SystemUtil: make(map[uint64]math.Int),
		Fees:       make(map[uint64]math.Int),
	}
}

// SetUserUtilization fixes a user's cumulative utilization reading at an epoch.
func (u *UtilizationKeeper) SetUserUtilization(addr sdk.AccAddress, epoch uint64, value math.Int) {
	key := addr.String()
	if u.UserUtil[key] == nil {
		u.UserUtil[key] = make(map[uint64]math.Int)
	}
	u.UserUtil[key][epoch] = value
}

func (u *UtilizationKeeper) UserUtilization(_ context.Context, addr sdk.AccAddress, epoch uint64) (math.Int, error) {
	if byEpoch, ok := u.UserUtil[addr.String()]; ok {
		if value, ok := byEpoch[epoch]; ok {
			return value, nil
		}
	}
	return math.ZeroInt(), nil
}

func (u *UtilizationKeeper) SystemUtilization(_ context.Context, epoch uint64) (math.Int, error) {
	if value, ok := u.SystemUtil[epoch]; ok {
		return value, nil
	}
	return math.ZeroInt(), nil
}

func (u *UtilizationKeeper) AccumulatedProtocolFees(_ context.Context, epoch uint64) (math.Int, error) {
	if value, ok := u.Fees[epoch]; ok {
		return value, nil
	}
	return math.ZeroInt(), nil
}

func (u *UtilizationKeeper) ProtocolFeeDistributionEnabled(_ context.Context, _ uint64) (bool, error) {
	return u.FeesEnabled, nil
}
