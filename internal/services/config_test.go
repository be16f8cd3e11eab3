package services

import (
	"testing"

	"beeclaimer/internal/models"

	"github.com/samber/do"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	injector := newTestContainer(t)
	service := do.MustInvoke[*ServiceConfig](injector)

	config := service.Current()
	require.Equal(t, 1, config.Version)
	require.InDelta(t, 0.01, config.MinWithdraw, 1e-12)
	require.Equal(t, 1800, config.FaucetInterval)
	require.Equal(t, 18000, config.MiningInterval)
	require.Equal(t, "1234", config.AdminPin)
}

func TestUpdatePublishesNewVersion(t *testing.T) {
	injector := newTestContainer(t)
	service := do.MustInvoke[*ServiceConfig](injector)

	held := service.Current()

	next := service.Update(func(config *models.Config) {
		config.FaucetReward = 0.00005
	})
	require.Equal(t, held.Version+1, next.Version)
	require.InDelta(t, 0.00005, next.FaucetReward, 1e-12)

	// a snapshot held across an update never changes underneath the reader
	require.InDelta(t, 0.00001, held.FaucetReward, 1e-12)
	require.Same(t, next, service.Current())
}
