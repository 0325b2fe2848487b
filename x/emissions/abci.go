package emissions

import (
	"context"
	"time"

	"github.com/cosmos/cosmos-sdk/telemetry"

	"github.com/accruelabs-io/accrual/x/emissions/keeper"
	"github.com/accruelabs-io/accrual/x/emissions/types"
)

// BeginBlocker detects epoch transitions from block time. Upon the first
// block of a new epoch it records the epoch as processed and emits an epoch
// boundary event carrying the epoch's effective emissions, marking the claim
// window of the epoch that just ended as open.
func BeginBlocker(ctx context.Context, k keeper.Keeper) error {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), telemetry.MetricKeyBeginBlocker)

	return k.ProcessEpochBoundary(ctx)
}
