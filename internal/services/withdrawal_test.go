package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"beeclaimer/internal/interfaces"
	"beeclaimer/internal/models"

	"github.com/samber/do"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	err   error
	calls chan struct{}
}

func (notifier *stubNotifier) NotifyWithdrawal(ctx context.Context, amount float64, address string) error {
	if notifier.calls != nil {
		notifier.calls <- struct{}{}
	}
	return notifier.err
}

func newWithdrawalService(t *testing.T, injector *do.Injector) *ServiceWithdrawal {
	t.Helper()
	service := do.MustInvoke[*ServiceWithdrawal](injector)
	service.finalizeDelay = 0
	return service
}

func TestSubmitBelowMinimum(t *testing.T) {
	injector := newTestContainer(t)
	service := newWithdrawalService(t, injector)

	before, err := service.History(context.Background())
	require.NoError(t, err)

	// minWithdraw defaults to 0.01
	_, err = service.Submit(context.Background(), 0.005, "UQAs...3f9X")
	require.Error(t, err)

	after, err := service.History(context.Background())
	require.NoError(t, err)
	require.Len(t, after, len(before))
}

func TestSubmitOverBalance(t *testing.T) {
	injector := newTestContainer(t)
	service := newWithdrawalService(t, injector)
	serviceReward := do.MustInvoke[*ServiceReward](injector)

	// seed balance is 0.01152
	_, err := service.Submit(context.Background(), 0.02, "UQAs...3f9X")
	require.Error(t, err)
	require.InDelta(t, 0.01152, serviceReward.Balance(), 1e-12)
}

func TestSubmitInvalidAmounts(t *testing.T) {
	injector := newTestContainer(t)
	service := newWithdrawalService(t, injector)

	for _, amount := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := service.Submit(context.Background(), amount, "UQAs...3f9X")
		require.Error(t, err, "amount %v must be rejected", amount)
	}
}

func TestSubmitSuccess(t *testing.T) {
	injector := newTestContainer(t)
	serviceConfig := do.MustInvoke[*ServiceConfig](injector)
	serviceConfig.Update(func(config *models.Config) {
		config.MinWithdraw = 0.001
	})

	service := newWithdrawalService(t, injector)
	serviceReward := do.MustInvoke[*ServiceReward](injector)

	record, err := service.Submit(context.Background(), 0.005, "UQAs...3f9X")
	require.NoError(t, err)
	require.Equal(t, models.WithdrawalPending, record.Status)
	require.InDelta(t, 0.005, record.Amount, 1e-12)
	require.Equal(t, "UQAs...3f9X", record.Address)
	require.NotEmpty(t, record.ID)

	require.InDelta(t, 0.00652, serviceReward.Balance(), 1e-12)

	history, err := service.History(context.Background())
	require.NoError(t, err)
	require.Equal(t, record.ID, history[0].ID)
}

func TestSubmitWhileSubmitInProgress(t *testing.T) {
	injector := newTestContainer(t)
	serviceConfig := do.MustInvoke[*ServiceConfig](injector)
	serviceConfig.Update(func(config *models.Config) {
		config.MinWithdraw = 0.001
	})

	service := newWithdrawalService(t, injector)

	service.mu.Lock()
	service.submitting = true
	service.mu.Unlock()

	_, err := service.Submit(context.Background(), 0.005, "UQAs...3f9X")
	require.Error(t, err)
}

func TestSubmitNotifierFailureIsSwallowed(t *testing.T) {
	injector := newTestContainer(t)
	notifier := &stubNotifier{err: errors.New("telegram unreachable"), calls: make(chan struct{}, 1)}
	do.ProvideValue[interfaces.Notifier](injector, notifier)

	serviceConfig := do.MustInvoke[*ServiceConfig](injector)
	serviceConfig.Update(func(config *models.Config) {
		config.MinWithdraw = 0.001
	})

	service := newWithdrawalService(t, injector)

	record, err := service.Submit(context.Background(), 0.005, "UQAs...3f9X")
	require.NoError(t, err)
	require.Equal(t, models.WithdrawalPending, record.Status)
	<-notifier.calls
}

func TestResolvePending(t *testing.T) {
	injector := newTestContainer(t)
	service := newWithdrawalService(t, injector)

	// seed record "2" is Pending
	record, err := service.Resolve(context.Background(), "2", models.WithdrawalCompleted)
	require.NoError(t, err)
	require.Equal(t, models.WithdrawalCompleted, record.Status)

	// terminal records are immutable
	_, err = service.Resolve(context.Background(), "2", models.WithdrawalRejected)
	require.Error(t, err)
}

func TestResolveRejectedDoesNotRefund(t *testing.T) {
	injector := newTestContainer(t)
	serviceConfig := do.MustInvoke[*ServiceConfig](injector)
	serviceConfig.Update(func(config *models.Config) {
		config.MinWithdraw = 0.001
	})

	service := newWithdrawalService(t, injector)
	serviceReward := do.MustInvoke[*ServiceReward](injector)

	record, err := service.Submit(context.Background(), 0.005, "UQAs...3f9X")
	require.NoError(t, err)
	debited := serviceReward.Balance()

	// a rejected withdrawal keeps the debit
	_, err = service.Resolve(context.Background(), record.ID, models.WithdrawalRejected)
	require.NoError(t, err)
	require.InDelta(t, debited, serviceReward.Balance(), 1e-12)
}

func TestResolveOutcomeRestricted(t *testing.T) {
	injector := newTestContainer(t)
	service := newWithdrawalService(t, injector)

	_, err := service.Resolve(context.Background(), "2", models.WithdrawalFailed)
	require.Error(t, err)

	_, err = service.Resolve(context.Background(), "2", models.WithdrawalPending)
	require.Error(t, err)
}

func TestResolveUnknownID(t *testing.T) {
	injector := newTestContainer(t)
	service := newWithdrawalService(t, injector)

	_, err := service.Resolve(context.Background(), "missing", models.WithdrawalCompleted)
	require.Error(t, err)
}

func TestPendingListsOnlyPending(t *testing.T) {
	injector := newTestContainer(t)
	service := newWithdrawalService(t, injector)

	pending, err := service.Pending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "2", pending[0].ID)
}
