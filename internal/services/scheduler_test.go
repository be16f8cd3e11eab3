package services

import (
	"testing"

	"beeclaimer/internal/models"

	"github.com/stretchr/testify/require"
)

func TestScheduleReplacesExistingTask(t *testing.T) {
	scheduler := NewScheduler()

	require.NoError(t, scheduler.Schedule(models.ChannelFaucet, func() {}))
	require.NoError(t, scheduler.Schedule(models.ChannelFaucet, func() {}))

	// a replaced tick source must never stack with its predecessor
	require.Equal(t, 1, scheduler.TaskCount())
	require.Len(t, scheduler.cron.Entries(), 1)
}

func TestScheduleIndependentChannels(t *testing.T) {
	scheduler := NewScheduler()

	require.NoError(t, scheduler.Schedule(models.ChannelFaucet, func() {}))
	require.NoError(t, scheduler.Schedule(models.ChannelMining, func() {}))
	require.NoError(t, scheduler.Schedule(models.ChannelDailyBonus, func() {}))

	require.Equal(t, 3, scheduler.TaskCount())
	require.True(t, scheduler.Scheduled(models.ChannelMining))
}

func TestCancel(t *testing.T) {
	scheduler := NewScheduler()

	require.NoError(t, scheduler.Schedule(models.ChannelFaucet, func() {}))
	scheduler.Cancel(models.ChannelFaucet)

	require.False(t, scheduler.Scheduled(models.ChannelFaucet))
	require.Zero(t, scheduler.TaskCount())
	require.Empty(t, scheduler.cron.Entries())
}

func TestCancelUnknownChannelIsNoop(t *testing.T) {
	scheduler := NewScheduler()
	scheduler.Cancel(models.ChannelMining)
	require.Zero(t, scheduler.TaskCount())
}
