package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultRewardDenom is the denom of the emitted supply.
	DefaultRewardDenom = "uacr"

	// MinSystemUtilizationLowerBound and MinPersonalUtilizationLowerBound
	// bound the configurable floors of the two utilization ratios, in basis
	// points. Both ratios always resolve within [lower bound, divisor].
	MinSystemUtilizationLowerBound   uint64 = 4_000
	MinPersonalUtilizationLowerBound uint64 = 2_500
)

// Params defines the parameters for the emissions module.
type Params struct {
	// RewardDenom is the denom in which inflationary rewards and protocol
	// fees are settled.
	RewardDenom string `json:"reward_denom" yaml:"reward_denom"`
	// SystemUtilizationLowerBound is the floor of the system-wide utilization
	// ratio, in basis points.
	SystemUtilizationLowerBound uint64 `json:"system_utilization_lower_bound" yaml:"system_utilization_lower_bound"`
	// PersonalUtilizationLowerBound is the floor of the per-user utilization
	// ratio, in basis points.
	PersonalUtilizationLowerBound uint64 `json:"personal_utilization_lower_bound" yaml:"personal_utilization_lower_bound"`
}

// NewParams creates a new Params instance
func NewParams(rewardDenom string, systemLowerBound, personalLowerBound uint64) Params {
	return Params{
		RewardDenom:                   rewardDenom,
		SystemUtilizationLowerBound:   systemLowerBound,
		PersonalUtilizationLowerBound: personalLowerBound,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultRewardDenom, MinSystemUtilizationLowerBound, MinPersonalUtilizationLowerBound)
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.RewardDenom); err != nil {
		return fmt.Errorf("invalid reward denom: %w", err)
	}
	if err := validateLowerBound(p.SystemUtilizationLowerBound, MinSystemUtilizationLowerBound); err != nil {
		return err
	}
	return validateLowerBound(p.PersonalUtilizationLowerBound, MinPersonalUtilizationLowerBound)
}

func validateLowerBound(bound, min uint64) error {
	if bound < min || bound > BasisPointsDivisor {
		return ErrInvalidUtilizationBound.Wrapf("%d outside [%d, %d]", bound, min, BasisPointsDivisor)
	}
	return nil
}

// String implements the Stringer interface.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}
