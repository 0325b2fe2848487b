package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/accruelabs-io/accrual/x/emissions/types"
)

// RegisterInvariants registers all emissions module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "claimed-within-emissions", ClaimedWithinEmissionsInvariant(k))
}

// ClaimedWithinEmissionsInvariant checks that, for every epoch with a claim
// aggregate, the sum of claimed inflationary rewards never exceeds the
// epoch's effective emissions.
func ClaimedWithinEmissionsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg    string
			broken bool
		)
		err := k.EpochClaimedTotals.Walk(ctx, nil, func(epoch uint64, claimed math.Int) (bool, error) {
			emissions, err := k.EmissionsForEpoch(ctx, epoch)
			if err != nil {
				return true, err
			}
			if claimed.GT(emissions) {
				broken = true
				msg += fmt.Sprintf("\tepoch %d: claimed %s exceeds emissions %s\n", epoch, claimed, emissions)
				return true, nil
			}
			return false, nil
		})
		if err != nil {
			broken = true
			msg += fmt.Sprintf("\tinvariant walk failed: %v\n", err)
		}
		return sdk.FormatInvariant(types.ModuleName, "claimed-within-emissions",
			fmt.Sprintf("per-epoch claimed totals within effective emissions\n%s", msg)), broken
	}
}
