package services

import (
	"context"
	"errors"
	"testing"

	"beeclaimer/internal/datastore"
	"beeclaimer/internal/interfaces"
	"beeclaimer/internal/models"

	"github.com/samber/do"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) *do.Injector {
	t.Helper()

	injector := do.New()
	do.Provide(injector, func(i *do.Injector) (*datastore.Ledger, error) {
		return datastore.NewLedger(datastore.SeedWithdrawals()...), nil
	})
	do.Provide(injector, func(i *do.Injector) (*datastore.Directory, error) {
		return datastore.NewDirectory(datastore.SeedUsers()...), nil
	})
	do.Provide(injector, func(i *do.Injector) (*Scheduler, error) {
		// the clock is never started in tests; ticks are driven manually
		return NewScheduler(), nil
	})
	do.Provide(injector, func(i *do.Injector) (*ServiceConfig, error) {
		return NewServiceConfig(injector)
	})
	do.Provide(injector, func(i *do.Injector) (*ServiceReward, error) {
		return NewServiceReward(injector)
	})
	do.Provide(injector, func(i *do.Injector) (*ServiceWithdrawal, error) {
		return NewServiceWithdrawal(injector)
	})
	do.Provide(injector, func(i *do.Injector) (*ServiceUser, error) {
		return NewServiceUser(injector)
	})
	return injector
}

type stubGate struct {
	result *models.AdResult
	err    error
	calls  int
}

func (gate *stubGate) Show(ctx context.Context) (*models.AdResult, error) {
	gate.calls++
	return gate.result, gate.err
}

func channelByKind(t *testing.T, snapshot *models.SessionSnapshot, kind models.ChannelKind) models.ChannelState {
	t.Helper()
	for _, channel := range snapshot.Channels {
		if channel.Kind == kind {
			return channel
		}
	}
	t.Fatalf("channel %s missing from snapshot", kind)
	return models.ChannelState{}
}

func TestClaimFaucet(t *testing.T) {
	injector := newTestContainer(t)
	service := do.MustInvoke[*ServiceReward](injector)
	scheduler := do.MustInvoke[*Scheduler](injector)

	before := service.Balance()
	reward, err := service.ClaimFaucet(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 0.00001, reward, 1e-12)
	require.InDelta(t, before+0.00001, service.Balance(), 1e-12)

	faucet := channelByKind(t, service.Snapshot(), models.ChannelFaucet)
	require.False(t, faucet.Ready)
	require.Equal(t, 1800, faucet.Remaining)
	require.True(t, scheduler.Scheduled(models.ChannelFaucet))
}

func TestClaimFaucetNotReady(t *testing.T) {
	injector := newTestContainer(t)
	service := do.MustInvoke[*ServiceReward](injector)

	_, err := service.ClaimFaucet(context.Background())
	require.NoError(t, err)

	before := service.Balance()
	_, err = service.ClaimFaucet(context.Background())
	require.Error(t, err)
	require.InDelta(t, before, service.Balance(), 1e-12)
}

func TestClaimDailyBonusResetIsAlwaysOneDay(t *testing.T) {
	injector := newTestContainer(t)
	serviceConfig := do.MustInvoke[*ServiceConfig](injector)
	serviceConfig.Update(func(config *models.Config) {
		config.DailyReward = 0.0005
	})

	service := do.MustInvoke[*ServiceReward](injector)

	before := service.Balance()
	reward, err := service.ClaimDailyBonus(context.Background())
	require.NoError(t, err)
	require.InDelta(t, 0.0005, reward, 1e-12)
	require.InDelta(t, before+0.0005, service.Balance(), 1e-12)

	bonus := channelByKind(t, service.Snapshot(), models.ChannelDailyBonus)
	require.False(t, bonus.Ready)
	require.Equal(t, DAILY_BONUS_COOLDOWN_SECONDS, bonus.Remaining)
}

func TestMiningAccrualRate(t *testing.T) {
	injector := newTestContainer(t)
	service := do.MustInvoke[*ServiceReward](injector)

	require.NoError(t, service.StartMining(context.Background()))
	for i := 0; i < 10; i++ {
		service.Tick(models.ChannelMining)
	}

	mining := channelByKind(t, service.Snapshot(), models.ChannelMining)
	require.True(t, mining.Active)
	require.Equal(t, 18000-10, mining.Remaining)
	require.InDelta(t, 10*(0.00001/18000), mining.Accrued, 1e-15)
}

func TestMiningCycleCompletion(t *testing.T) {
	injector := newTestContainer(t)
	serviceConfig := do.MustInvoke[*ServiceConfig](injector)
	serviceConfig.Update(func(config *models.Config) {
		config.MiningInterval = 3
	})

	service := do.MustInvoke[*ServiceReward](injector)
	scheduler := do.MustInvoke[*Scheduler](injector)

	require.NoError(t, service.StartMining(context.Background()))
	require.True(t, scheduler.Scheduled(models.ChannelMining))
	for i := 0; i < 3; i++ {
		service.Tick(models.ChannelMining)
	}

	mining := channelByKind(t, service.Snapshot(), models.ChannelMining)
	require.False(t, mining.Active)
	require.Equal(t, 3, mining.Remaining)
	require.InDelta(t, 0.00001, mining.Accrued, 1e-12)
	require.False(t, scheduler.Scheduled(models.ChannelMining))
}

func TestStartMiningWhileActive(t *testing.T) {
	injector := newTestContainer(t)
	service := do.MustInvoke[*ServiceReward](injector)

	require.NoError(t, service.StartMining(context.Background()))
	require.Error(t, service.StartMining(context.Background()))
}

func TestStopMiningWhileIdle(t *testing.T) {
	injector := newTestContainer(t)
	service := do.MustInvoke[*ServiceReward](injector)

	require.Error(t, service.StopMining(context.Background()))
}

func TestCollectMining(t *testing.T) {
	injector := newTestContainer(t)
	serviceConfig := do.MustInvoke[*ServiceConfig](injector)
	serviceConfig.Update(func(config *models.Config) {
		config.MiningInterval = 4
	})

	service := do.MustInvoke[*ServiceReward](injector)

	require.NoError(t, service.StartMining(context.Background()))
	service.Tick(models.ChannelMining)
	service.Tick(models.ChannelMining)
	require.NoError(t, service.StopMining(context.Background()))

	before := service.Balance()
	accrued := channelByKind(t, service.Snapshot(), models.ChannelMining).Accrued
	require.Greater(t, accrued, 0.0)

	collected, err := service.CollectMining(context.Background())
	require.NoError(t, err)
	require.InDelta(t, accrued, collected, 1e-15)
	require.InDelta(t, before+accrued, service.Balance(), 1e-15)

	mining := channelByKind(t, service.Snapshot(), models.ChannelMining)
	require.Zero(t, mining.Accrued)
	require.Equal(t, 4, mining.Remaining)

	// draining is one-shot; a second collect must not double-credit
	after := service.Balance()
	_, err = service.CollectMining(context.Background())
	require.Error(t, err)
	require.InDelta(t, after, service.Balance(), 1e-15)
}

func TestCollectMiningWhileActive(t *testing.T) {
	injector := newTestContainer(t)
	service := do.MustInvoke[*ServiceReward](injector)

	require.NoError(t, service.StartMining(context.Background()))
	service.Tick(models.ChannelMining)

	_, err := service.CollectMining(context.Background())
	require.Error(t, err)
}

func TestGateErrorFailsOpen(t *testing.T) {
	injector := newTestContainer(t)
	do.ProvideValue[interfaces.RewardGate](injector, &stubGate{err: errors.New("ad network down")})

	service := do.MustInvoke[*ServiceReward](injector)

	before := service.Balance()
	_, err := service.ClaimFaucet(context.Background())
	require.NoError(t, err)
	require.Greater(t, service.Balance(), before)
}

func TestGateSkippedAdDenies(t *testing.T) {
	injector := newTestContainer(t)
	do.ProvideValue[interfaces.RewardGate](injector, &stubGate{result: &models.AdResult{Completed: false}})

	service := do.MustInvoke[*ServiceReward](injector)

	before := service.Balance()
	_, err := service.ClaimFaucet(context.Background())
	require.Error(t, err)
	require.InDelta(t, before, service.Balance(), 1e-12)

	faucet := channelByKind(t, service.Snapshot(), models.ChannelFaucet)
	require.True(t, faucet.Ready)
}

func TestTickIsNoopWhenChannelIdle(t *testing.T) {
	injector := newTestContainer(t)
	service := do.MustInvoke[*ServiceReward](injector)

	service.Tick(models.ChannelFaucet)
	service.Tick(models.ChannelMining)
	service.Tick(models.ChannelDailyBonus)

	snapshot := service.Snapshot()
	require.Equal(t, 1800, channelByKind(t, snapshot, models.ChannelFaucet).Remaining)
	require.Equal(t, 18000, channelByKind(t, snapshot, models.ChannelMining).Remaining)
	require.Zero(t, channelByKind(t, snapshot, models.ChannelMining).Accrued)
}

func TestFaucetCountdownStaysWithinBounds(t *testing.T) {
	injector := newTestContainer(t)
	serviceConfig := do.MustInvoke[*ServiceConfig](injector)
	serviceConfig.Update(func(config *models.Config) {
		config.FaucetInterval = 5
	})

	service := do.MustInvoke[*ServiceReward](injector)

	_, err := service.ClaimFaucet(context.Background())
	require.NoError(t, err)

	// over-tick well past the cooldown
	for i := 0; i < 20; i++ {
		service.Tick(models.ChannelFaucet)
		faucet := channelByKind(t, service.Snapshot(), models.ChannelFaucet)
		require.GreaterOrEqual(t, faucet.Remaining, 0)
		require.LessOrEqual(t, faucet.Remaining, 5)
	}

	faucet := channelByKind(t, service.Snapshot(), models.ChannelFaucet)
	require.True(t, faucet.Ready)
	require.Equal(t, 5, faucet.Remaining)
}
