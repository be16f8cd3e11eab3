package services

import (
	"sync"
	"sync/atomic"

	"beeclaimer/internal/models"

	"github.com/samber/do"
)

// ServiceConfig publishes immutable configuration snapshots. Readers call
// Current and get a version they can hold for the whole operation; admin edits
// build a new version instead of mutating in place. Nothing is persisted, so a
// restart falls back to the defaults (plus env overrides).
type ServiceConfig struct {
	container *do.Injector

	mu      sync.Mutex
	current atomic.Pointer[models.Config]
}

func NewServiceConfig(container *do.Injector) (*ServiceConfig, error) {
	config := models.DefaultConfig()

	envs, err := do.InvokeNamed[map[string]string](container, "envs")
	if err == nil {
		if v := envs[ENV_BOT_TOKEN]; v != "" {
			config.TelegramToken = v
		}
		if v := envs[ENV_TELEGRAM_CHAT_ID]; v != "" {
			config.TelegramChatID = v
		}
		if v := envs[ENV_ADSGRAM_BLOCK_ID]; v != "" {
			config.AdsgramBlockID = v
		}
		if v := envs[ENV_ADMIN_PIN]; v != "" {
			config.AdminPin = v
		}
	}

	service := &ServiceConfig{container: container}
	service.current.Store(config)
	return service, nil
}

// Current returns the latest snapshot. The caller must not mutate it.
func (service *ServiceConfig) Current() *models.Config {
	return service.current.Load()
}

// Update clones the current snapshot, applies the edit and publishes the clone
// as the next version.
func (service *ServiceConfig) Update(apply func(*models.Config)) *models.Config {
	service.mu.Lock()
	defer service.mu.Unlock()

	next := service.current.Load().Clone()
	apply(next)
	next.Version = service.current.Load().Version + 1
	service.current.Store(next)
	return next
}
