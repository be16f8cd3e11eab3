package models

type ChannelKind string

const (
	ChannelMining     ChannelKind = "mining"
	ChannelFaucet     ChannelKind = "faucet"
	ChannelDailyBonus ChannelKind = "daily-bonus"
)

// ChannelState is the countdown state of one reward channel. Remaining stays
// within [0, configured interval]; Active and Accrued are only meaningful for
// the mining channel.
type ChannelState struct {
	Kind         ChannelKind `json:"kind"`
	Ready        bool        `json:"ready"`
	Remaining    int         `json:"remaining"`
	RewardAmount float64     `json:"reward_amount"`
	Active       bool        `json:"active"`
	Accrued      float64     `json:"accrued"`
}

// SessionSnapshot is a point-in-time copy of the engine state, safe to hand to
// the API layer.
type SessionSnapshot struct {
	Balance  float64        `json:"balance"`
	Channels []ChannelState `json:"channels"`
}

// AdResult is what the rewarded-ad gate resolves to. Completed=false means the
// viewer skipped the ad; transport errors are handled fail-open by the engine.
type AdResult struct {
	Completed bool `json:"done"`
}
