package types

const (
	// EventTypeClaimRewards is emitted when a user claims the previous
	// epoch's rewards.
	EventTypeClaimRewards = "claim_rewards"

	// EventTypeEpochBoundary is emitted on the first block of a new epoch.
	EventTypeEpochBoundary = "epoch_boundary"

	// EventTypeAddCheckpoint is emitted when governance appends an emission
	// checkpoint.
	EventTypeAddCheckpoint = "add_checkpoint"

	// EventTypeClaimsPaused is emitted when the claims pause switch flips.
	EventTypeClaimsPaused = "claims_paused"

	AttributeKeyEpoch          = "epoch"
	AttributeKeySender         = "sender"
	AttributeKeyRecipient      = "recipient"
	AttributeKeyAmount         = "amount"
	AttributeKeyFeeAmount      = "fee_amount"
	AttributeKeyEmissions      = "emissions"
	AttributeKeyStartTimestamp = "start_timestamp"
	AttributeKeyPaused         = "paused"
)
