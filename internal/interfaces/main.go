package interfaces

import (
	"context"

	"beeclaimer/internal/models"
)

// RewardGate is the rewarded-ad capability consulted before faucet claims,
// daily-bonus claims and mining starts. Implementations must eventually
// resolve; the engine treats any returned error as fail-open.
type RewardGate interface {
	Show(ctx context.Context) (*models.AdResult, error)
}

// Notifier delivers the outbound withdrawal-request message. Calls are
// fire-and-forget; the withdrawal workflow never depends on the result.
type Notifier interface {
	NotifyWithdrawal(ctx context.Context, amount float64, address string) error
}
