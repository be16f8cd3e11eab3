package services

import (
	"sync"

	"beeclaimer/internal/models"

	"github.com/robfig/cron/v3"
)

// Scheduler owns one cancellable 1 Hz tick task per reward channel.
// Scheduling a channel that already has a task replaces the old entry, so a
// channel can never accumulate duplicate tick sources. The shared clock only
// runs after StartClock; tasks registered before that are held.
type Scheduler struct {
	cron *cron.Cron

	mu      sync.Mutex
	entries map[models.ChannelKind]cron.EntryID
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		entries: map[models.ChannelKind]cron.EntryID{},
	}
}

func (scheduler *Scheduler) StartClock() {
	scheduler.cron.Start()
}

func (scheduler *Scheduler) StopClock() {
	scheduler.cron.Stop()
}

func (scheduler *Scheduler) Schedule(kind models.ChannelKind, tick func()) error {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	if id, ok := scheduler.entries[kind]; ok {
		scheduler.cron.Remove(id)
	}

	id, err := scheduler.cron.AddFunc(TICK_SPEC, tick)
	if err != nil {
		return err
	}
	scheduler.entries[kind] = id
	return nil
}

func (scheduler *Scheduler) Cancel(kind models.ChannelKind) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	if id, ok := scheduler.entries[kind]; ok {
		scheduler.cron.Remove(id)
		delete(scheduler.entries, kind)
	}
}

func (scheduler *Scheduler) Scheduled(kind models.ChannelKind) bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	_, ok := scheduler.entries[kind]
	return ok
}

func (scheduler *Scheduler) TaskCount() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.entries)
}
