package services

import (
	"context"
	"log"
	"sync"

	"beeclaimer/internal/interfaces"
	"beeclaimer/internal/models"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
)

// ServiceReward is the claim state machine. It owns the session balance and
// the three channel countdowns, and it is the only writer of either. Channel
// tick tasks are registered with the Scheduler when a countdown starts and
// cancelled the moment the owning channel stops counting.
type ServiceReward struct {
	container     *do.Injector
	serviceConfig *ServiceConfig
	scheduler     *Scheduler
	gate          interfaces.RewardGate

	mu      sync.Mutex
	balance float64
	faucet  models.ChannelState
	bonus   models.ChannelState
	mining  models.ChannelState
}

func NewServiceReward(container *do.Injector) (*ServiceReward, error) {
	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}

	scheduler, err := do.Invoke[*Scheduler](container)
	if err != nil {
		return nil, err
	}

	// the gate is optional; without a provider every gated action is granted
	gate, err := do.Invoke[interfaces.RewardGate](container)
	if err != nil {
		gate = nil
	}

	config := serviceConfig.Current()
	service := &ServiceReward{
		container:     container,
		serviceConfig: serviceConfig,
		scheduler:     scheduler,
		gate:          gate,
		balance:       SEED_BALANCE,
		faucet: models.ChannelState{
			Kind:         models.ChannelFaucet,
			Ready:        true,
			Remaining:    config.FaucetInterval,
			RewardAmount: config.FaucetReward,
		},
		bonus: models.ChannelState{
			Kind:         models.ChannelDailyBonus,
			Ready:        true,
			RewardAmount: config.DailyReward,
		},
		mining: models.ChannelState{
			Kind:         models.ChannelMining,
			Remaining:    config.MiningInterval,
			RewardAmount: config.MiningReward,
		},
	}
	return service, nil
}

// passGate consults the rewarded-ad gate. A transport error is fail-open and
// grants the action; an ad the viewer skipped denies it.
func (service *ServiceReward) passGate(ctx context.Context) error {
	if service.gate == nil {
		return nil
	}

	result, err := service.gate.Show(ctx)
	if err != nil {
		log.Printf("reward gate unavailable, granting: %v", err)
		return nil
	}
	if !result.Completed {
		return errorx.Wrap(ErrAdNotCompleted, errorx.Invalid)
	}
	return nil
}

func (service *ServiceReward) ClaimFaucet(ctx context.Context) (float64, error) {
	service.mu.Lock()
	ready := service.faucet.Ready
	service.mu.Unlock()
	if !ready {
		return 0, errorx.Wrap(ErrChannelNotReady, errorx.Invalid)
	}

	if err := service.passGate(ctx); err != nil {
		return 0, err
	}

	config := service.serviceConfig.Current()

	service.mu.Lock()
	defer service.mu.Unlock()
	if !service.faucet.Ready {
		return 0, errorx.Wrap(ErrChannelNotReady, errorx.Invalid)
	}

	service.balance += config.FaucetReward
	service.faucet.Ready = false
	service.faucet.Remaining = config.FaucetInterval
	service.faucet.RewardAmount = config.FaucetReward

	if err := service.scheduler.Schedule(models.ChannelFaucet, func() { service.Tick(models.ChannelFaucet) }); err != nil {
		return 0, errorx.Wrap(err, errorx.Service)
	}
	return config.FaucetReward, nil
}

func (service *ServiceReward) ClaimDailyBonus(ctx context.Context) (float64, error) {
	service.mu.Lock()
	ready := service.bonus.Ready
	service.mu.Unlock()
	if !ready {
		return 0, errorx.Wrap(ErrChannelNotReady, errorx.Invalid)
	}

	if err := service.passGate(ctx); err != nil {
		return 0, err
	}

	config := service.serviceConfig.Current()

	service.mu.Lock()
	defer service.mu.Unlock()
	if !service.bonus.Ready {
		return 0, errorx.Wrap(ErrChannelNotReady, errorx.Invalid)
	}

	service.balance += config.DailyReward
	service.bonus.Ready = false
	service.bonus.Remaining = DAILY_BONUS_COOLDOWN_SECONDS
	service.bonus.RewardAmount = config.DailyReward

	if err := service.scheduler.Schedule(models.ChannelDailyBonus, func() { service.Tick(models.ChannelDailyBonus) }); err != nil {
		return 0, errorx.Wrap(err, errorx.Service)
	}
	return config.DailyReward, nil
}

func (service *ServiceReward) StartMining(ctx context.Context) error {
	service.mu.Lock()
	active := service.mining.Active
	service.mu.Unlock()
	if active {
		return errorx.Wrap(ErrMiningActive, errorx.Invalid)
	}

	if err := service.passGate(ctx); err != nil {
		return err
	}

	config := service.serviceConfig.Current()

	service.mu.Lock()
	defer service.mu.Unlock()
	if service.mining.Active {
		return errorx.Wrap(ErrMiningActive, errorx.Invalid)
	}

	service.mining.Active = true
	service.mining.RewardAmount = config.MiningReward
	if service.mining.Remaining <= 0 {
		service.mining.Remaining = config.MiningInterval
	}

	if err := service.scheduler.Schedule(models.ChannelMining, func() { service.Tick(models.ChannelMining) }); err != nil {
		return errorx.Wrap(err, errorx.Service)
	}
	return nil
}

// StopMining pauses the run. The accrued session balance is kept but not
// credited; CollectMining does that.
func (service *ServiceReward) StopMining(ctx context.Context) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	if !service.mining.Active {
		return errorx.Wrap(ErrMiningNotActive, errorx.Invalid)
	}

	service.mining.Active = false
	service.scheduler.Cancel(models.ChannelMining)
	return nil
}

func (service *ServiceReward) CollectMining(ctx context.Context) (float64, error) {
	config := service.serviceConfig.Current()

	service.mu.Lock()
	defer service.mu.Unlock()

	if service.mining.Active {
		return 0, errorx.Wrap(ErrMiningActive, errorx.Invalid)
	}
	if service.mining.Accrued <= 0 {
		return 0, errorx.Wrap(ErrNothingAccrued, errorx.Invalid)
	}

	collected := service.mining.Accrued
	service.balance += collected
	service.mining.Accrued = 0
	service.mining.Remaining = config.MiningInterval
	return collected, nil
}

// Tick advances one channel by one second. It is a no-op when the channel is
// not counting; there is no catch-up for ticks missed while suspended.
func (service *ServiceReward) Tick(kind models.ChannelKind) {
	config := service.serviceConfig.Current()

	service.mu.Lock()
	defer service.mu.Unlock()

	switch kind {
	case models.ChannelFaucet:
		if service.faucet.Ready {
			return
		}
		if service.faucet.Remaining > 0 {
			service.faucet.Remaining--
		}
		if service.faucet.Remaining <= 0 {
			service.faucet.Ready = true
			service.faucet.Remaining = config.FaucetInterval
			service.scheduler.Cancel(models.ChannelFaucet)
		}
	case models.ChannelDailyBonus:
		if service.bonus.Ready {
			return
		}
		if service.bonus.Remaining > 0 {
			service.bonus.Remaining--
		}
		if service.bonus.Remaining <= 0 {
			service.bonus.Ready = true
			service.bonus.Remaining = DAILY_BONUS_COOLDOWN_SECONDS
			service.scheduler.Cancel(models.ChannelDailyBonus)
		}
	case models.ChannelMining:
		if !service.mining.Active {
			return
		}
		if service.mining.Remaining > 0 {
			service.mining.Remaining--
			if config.MiningInterval > 0 {
				service.mining.Accrued += config.MiningReward / float64(config.MiningInterval)
			}
		}
		if service.mining.Remaining <= 0 {
			// the cycle is over; the run deactivates and the accrued
			// balance waits for an explicit collect
			service.mining.Active = false
			service.mining.Remaining = config.MiningInterval
			service.scheduler.Cancel(models.ChannelMining)
		}
	}
}

func (service *ServiceReward) Balance() float64 {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.balance
}

// Debit subtracts a withdrawal from the balance; the balance never goes
// negative.
func (service *ServiceReward) Debit(amount float64) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	if amount > service.balance {
		return errorx.Wrap(ErrInsufficientBalance, errorx.Invalid)
	}
	service.balance -= amount
	return nil
}

func (service *ServiceReward) Snapshot() *models.SessionSnapshot {
	service.mu.Lock()
	defer service.mu.Unlock()

	return &models.SessionSnapshot{
		Balance:  service.balance,
		Channels: []models.ChannelState{service.mining, service.faucet, service.bonus},
	}
}
