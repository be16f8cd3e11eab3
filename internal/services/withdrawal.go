package services

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	"beeclaimer/internal/datastore"
	"beeclaimer/internal/interfaces"
	"beeclaimer/internal/models"

	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/tonkeeper/tongo"
)

// ServiceWithdrawal validates withdrawal requests against the current balance
// and minimum, appends Pending records to the ledger and debits the balance.
// Only one submission may be in flight at a time.
type ServiceWithdrawal struct {
	container     *do.Injector
	serviceConfig *ServiceConfig
	serviceReward *ServiceReward
	ledger        *datastore.Ledger
	notifier      interfaces.Notifier

	// UX-only latency before the request finalizes; shortened in tests
	finalizeDelay time.Duration

	mu         sync.Mutex
	submitting bool
}

func NewServiceWithdrawal(container *do.Injector) (*ServiceWithdrawal, error) {
	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}

	serviceReward, err := do.Invoke[*ServiceReward](container)
	if err != nil {
		return nil, err
	}

	ledger, err := do.Invoke[*datastore.Ledger](container)
	if err != nil {
		return nil, err
	}

	// optional; submissions still finalize without a notifier
	notifier, err := do.Invoke[interfaces.Notifier](container)
	if err != nil {
		notifier = nil
	}

	return &ServiceWithdrawal{
		container:     container,
		serviceConfig: serviceConfig,
		serviceReward: serviceReward,
		ledger:        ledger,
		notifier:      notifier,
		finalizeDelay: WITHDRAW_FINALIZE_DELAY,
	}, nil
}

// normalizeAddress rewrites addresses that parse as TON accounts into their
// canonical bounceable form. Anything else is kept verbatim; the address is an
// opaque string as far as the workflow is concerned.
func normalizeAddress(address string) string {
	parsed, err := tongo.ParseAddress(address)
	if err != nil {
		return address
	}
	return parsed.ID.ToHuman(true, false)
}

func (service *ServiceWithdrawal) Submit(ctx context.Context, amount float64, address string) (*models.WithdrawalRecord, error) {
	config := service.serviceConfig.Current()

	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, errorx.Wrap(ErrInvalidAmount, errorx.Invalid)
	}
	if amount < config.MinWithdraw {
		return nil, errorx.Wrap(ErrBelowMinWithdraw, errorx.Invalid)
	}
	if amount > service.serviceReward.Balance() {
		return nil, errorx.Wrap(ErrInsufficientBalance, errorx.Invalid)
	}

	service.mu.Lock()
	if service.submitting {
		service.mu.Unlock()
		return nil, errorx.Wrap(ErrSubmitInProgress, errorx.Invalid)
	}
	service.submitting = true
	service.mu.Unlock()

	defer func() {
		service.mu.Lock()
		service.submitting = false
		service.mu.Unlock()
	}()

	address = normalizeAddress(address)

	if service.notifier != nil {
		go func() {
			if err := service.notifier.NotifyWithdrawal(context.Background(), amount, address); err != nil {
				log.Printf("withdrawal notification failed: %v", err)
			}
		}()
	}

	if service.finalizeDelay > 0 {
		select {
		case <-time.After(service.finalizeDelay):
		case <-ctx.Done():
			return nil, errorx.Wrap(ctx.Err(), errorx.Service)
		}
	}

	// the balance may have moved while we were waiting
	if err := service.serviceReward.Debit(amount); err != nil {
		return nil, err
	}

	record := &models.WithdrawalRecord{
		ID:      uuid.NewString(),
		Amount:  amount,
		Address: address,
		Status:  models.WithdrawalPending,
		Date:    time.Now(),
	}
	if err := datastore.InsertWithdrawal(ctx, service.ledger, record); err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}
	return record, nil
}

// Resolve finishes a Pending record. A Rejected withdrawal does not refund
// the debited balance.
func (service *ServiceWithdrawal) Resolve(ctx context.Context, id string, outcome models.WithdrawalStatus) (*models.WithdrawalRecord, error) {
	if outcome != models.WithdrawalCompleted && outcome != models.WithdrawalRejected {
		return nil, errorx.Wrap(ErrInvalidOutcome, errorx.Invalid)
	}

	record, err := datastore.UpdateWithdrawalStatus(ctx, service.ledger, id, outcome)
	if err == datastore.ErrWithdrawalNotFound {
		return nil, errorx.Wrap(err, errorx.NotExist)
	}
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Invalid)
	}
	return record, nil
}

func (service *ServiceWithdrawal) History(ctx context.Context) ([]*models.WithdrawalRecord, error) {
	return datastore.ListWithdrawals(ctx, service.ledger)
}

func (service *ServiceWithdrawal) Pending(ctx context.Context) ([]*models.WithdrawalRecord, error) {
	return datastore.ListWithdrawalsByStatus(ctx, service.ledger, models.WithdrawalPending)
}
