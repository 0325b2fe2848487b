package keeper

import (
	"context"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

// SetParams sets the x/emissions module parameters.
func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return k.Params.Set(ctx, p)
}

// GetParams returns the current x/emissions module parameters.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	p, err := k.Params.Get(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
