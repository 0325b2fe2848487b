package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/accruelabs-io/accrual/testutil/datagen"
	"github.com/accruelabs-io/accrual/x/emissions/keeper"
	"github.com/accruelabs-io/accrual/x/emissions/types"
)

func TestMsgAddCheckpoint(t *testing.T) {
	env := setupKeeper(t)
	ms := keeper.NewMsgServerImpl(*env.Keeper)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	cp := types.NewCheckpoint(genesisTime, weekSeconds, exp18(100), 26, 500)

	_, err := ms.AddCheckpoint(env.Ctx, &types.MsgAddCheckpoint{
		Authority:  datagen.GenRandomAddress().String(),
		Checkpoint: cp,
	})
	require.ErrorIs(t, err, govtypes.ErrInvalidSigner)

	_, err = ms.AddCheckpoint(env.Ctx, &types.MsgAddCheckpoint{
		Authority:  authority,
		Checkpoint: cp,
	})
	require.NoError(t, err)

	cps, err := env.Keeper.GetCheckpoints(env.Ctx)
	require.NoError(t, err)
	require.Equal(t, []types.Checkpoint{cp}, cps)
}

func TestMsgUpdateParams(t *testing.T) {
	env := setupKeeper(t)
	ms := keeper.NewMsgServerImpl(*env.Keeper)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	params := types.NewParams("ustake", 5000, 3000)

	_, err := ms.UpdateParams(env.Ctx, &types.MsgUpdateParams{
		Authority: datagen.GenRandomAddress().String(),
		Params:    params,
	})
	require.ErrorIs(t, err, govtypes.ErrInvalidSigner)

	_, err = ms.UpdateParams(env.Ctx, &types.MsgUpdateParams{
		Authority: authority,
		Params:    types.NewParams("uacr", 100, 100),
	})
	require.ErrorIs(t, err, govtypes.ErrInvalidProposalMsg)

	_, err = ms.UpdateParams(env.Ctx, &types.MsgUpdateParams{
		Authority: authority,
		Params:    params,
	})
	require.NoError(t, err)
	require.Equal(t, params, env.Keeper.GetParams(env.Ctx))
}

func TestMsgSetClaimsPaused(t *testing.T) {
	env := setupKeeper(t)
	ms := keeper.NewMsgServerImpl(*env.Keeper)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	_, err := ms.SetClaimsPaused(env.Ctx, &types.MsgSetClaimsPaused{
		Authority: datagen.GenRandomAddress().String(),
		Paused:    true,
	})
	require.ErrorIs(t, err, govtypes.ErrInvalidSigner)

	_, err = ms.SetClaimsPaused(env.Ctx, &types.MsgSetClaimsPaused{
		Authority: authority,
		Paused:    true,
	})
	require.NoError(t, err)

	paused, err := env.Keeper.IsClaimsPaused(env.Ctx)
	require.NoError(t, err)
	require.True(t, paused)
}

func TestMsgClaimRewards(t *testing.T) {
	env := setupKeeper(t)
	ms := keeper.NewMsgServerImpl(*env.Keeper)
	env.addWeeklyCheckpoint(t, exp18(100))
	env.Bank.FundModule(types.ModuleName, coins(exp18(1_000)))

	sender := datagen.GenRandomAddress()
	recipient := datagen.GenRandomAddress()
	env.Bonding.SetBalance(sender, math.NewInt(10))
	env.Bonding.Total = math.NewInt(100)

	ctx := env.at(genesisTime + weekSeconds + 1)

	_, err := ms.ClaimRewards(ctx, &types.MsgClaimRewards{Sender: "not-an-address"})
	require.Error(t, err)

	// blocked recipients are refused
	env.Bank.Blocked[recipient.String()] = true
	_, err = ms.ClaimRewards(ctx, &types.MsgClaimRewards{
		Sender:    sender.String(),
		Recipient: recipient.String(),
	})
	require.ErrorIs(t, err, sdkerrors.ErrUnauthorized)

	env.Bank.Blocked[recipient.String()] = false
	resp, err := ms.ClaimRewards(ctx, &types.MsgClaimRewards{
		Sender:    sender.String(),
		Recipient: recipient.String(),
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0), resp.Epoch)
	require.Equal(t, exp18(10), resp.Amount)
	require.True(t, resp.FeeAmount.IsZero())
	require.Equal(t, exp18(10), env.Bank.GetBalance(ctx, recipient, types.DefaultRewardDenom).Amount)
}
