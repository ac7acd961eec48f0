// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/models"
)

// countdownTick is the refresh period of the displayed countdown.
const countdownTick = time.Second

// NextFire returns how long to wait before the next round. When the interval
// has already elapsed since lastSuccess the round is due immediately (catch-up)
// and immediate is true; otherwise delay is the remainder of the interval.
func NextFire(now, lastSuccess time.Time, interval time.Duration) (delay time.Duration, immediate bool) {
	elapsed := now.Sub(lastSuccess)
	if elapsed >= interval {
		return 0, true
	}
	if elapsed < 0 {
		return interval, false
	}
	return interval - elapsed, false
}

type jobLoop struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (l *jobLoop) stop() {
	if l == nil {
		return
	}
	l.cancel()
	<-l.done
}

// armKey holds the settings that decide whether and how the timers are armed.
type armKey struct {
	endpoint    string
	enabled     bool
	initialized bool
	interval    time.Duration
}

func armKeyOf(st models.SyncSettings) armKey {
	return armKey{
		endpoint:    st.Endpoint,
		enabled:     st.Enabled,
		initialized: st.Initialized,
		interval:    st.Interval(),
	}
}

type clientSyncJob struct {
	syncService ClientSyncService
	settings    ClientSettingsService
	status      ClientStatusService

	// rearmMu serialises rearm so at most one loop exists.
	rearmMu sync.Mutex
	loop    *jobLoop

	mu      sync.Mutex
	ctx     context.Context
	watcher *jobLoop
	running bool
	visible bool
	online  bool
	armed   armKey

	// nextFire is the unix-nano time of the next round, 0 while disarmed.
	nextFire atomic.Int64

	tick   time.Duration
	now    func() time.Time
	logger *logger.Logger
}

// NewClientSyncJob returns the Scheduler. The job is idle until Start is
// called. It starts visible and online.
func NewClientSyncJob(syncService ClientSyncService, settings ClientSettingsService, status ClientStatusService, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		settings:    settings,
		status:      status,
		visible:     true,
		online:      true,
		tick:        countdownTick,
		now:         time.Now,
		logger:      log,
	}
}

func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	updates, unsubscribe := j.settings.Subscribe()
	watchCtx, cancel := context.WithCancel(ctx)
	w := &jobLoop{cancel: cancel, done: make(chan struct{})}

	j.mu.Lock()
	j.ctx = ctx
	j.running = true
	j.watcher = w
	j.mu.Unlock()

	go func() {
		defer close(w.done)
		defer unsubscribe()

		for {
			select {
			case <-watchCtx.Done():
				return
			case st, ok := <-updates:
				if !ok {
					return
				}
				j.mu.Lock()
				changed := armKeyOf(st) != j.armed
				online := j.online
				j.mu.Unlock()
				if online && st.Enabled {
					if err := j.status.Reconnect(); err != nil {
						j.logger.Debug().Err(err).Str("func", "clientSyncJob.Start").Msg("connectivity transition rejected")
					}
				}
				if changed {
					j.logger.Debug().Str("func", "clientSyncJob.Start").Msg("settings changed, re-arming scheduler")
					j.rearm(false)
				}
			}
		}
	}()

	j.rearm(false)
}

func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	w := j.watcher
	j.watcher = nil
	j.running = false
	j.mu.Unlock()

	w.stop()

	j.rearmMu.Lock()
	j.loop.stop()
	j.loop = nil
	j.rearmMu.Unlock()

	j.nextFire.Store(0)
}

func (j *clientSyncJob) SetVisible(visible bool) {
	j.mu.Lock()
	changed := j.visible != visible
	j.visible = visible
	running := j.running
	j.mu.Unlock()

	if changed && running {
		j.rearm(false)
	}
}

func (j *clientSyncJob) SetOnline(online bool) {
	j.mu.Lock()
	changed := j.online != online
	j.online = online
	running := j.running
	j.mu.Unlock()

	if !changed {
		return
	}

	var err error
	if online {
		err = j.status.Reconnect()
	} else {
		err = j.status.Disconnect()
	}
	if err != nil {
		j.logger.Debug().Err(err).Str("func", "clientSyncJob.SetOnline").Msg("connectivity transition rejected")
	}

	if running {
		j.rearm(online)
	}
}

func (j *clientSyncJob) TimeUntilNextSync() time.Duration {
	next := j.nextFire.Load()
	if next == 0 {
		return 0
	}
	d := time.Unix(0, next).Sub(j.now())
	if d < 0 {
		return 0
	}
	return d
}

// rearm stops the current loop and, when the job is running, visible, online
// and sync is enabled, starts a new one from the persisted last-success
// timestamp. immediate forces a round right away.
func (j *clientSyncJob) rearm(immediate bool) {
	j.rearmMu.Lock()
	defer j.rearmMu.Unlock()

	j.loop.stop()
	j.loop = nil
	j.nextFire.Store(0)

	j.mu.Lock()
	ctx, running, visible, online := j.ctx, j.running, j.visible, j.online
	j.mu.Unlock()

	if !running || !visible || !online {
		j.status.SetCountdown(0)
		return
	}

	st, err := j.settings.Get(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "clientSyncJob.rearm").Msg("failed to load settings, scheduler idle")
		return
	}

	j.mu.Lock()
	j.armed = armKeyOf(st)
	j.mu.Unlock()

	if !st.Enabled || !st.Configured() {
		j.status.SetCountdown(0)
		return
	}

	delay, catchUp := NextFire(j.now(), st.LastSuccess(), st.Interval())
	if immediate {
		delay, catchUp = 0, true
	}

	j.logger.Debug().Str("func", "clientSyncJob.rearm").
		Dur("delay", delay).
		Bool("catch_up", catchUp).
		Dur("interval", st.Interval()).
		Msg("scheduler armed")

	j.loop = j.spawn(ctx, delay, st.Interval())
}

func (j *clientSyncJob) spawn(ctx context.Context, delay, interval time.Duration) *jobLoop {
	loopCtx, cancel := context.WithCancel(ctx)
	l := &jobLoop{cancel: cancel, done: make(chan struct{})}

	j.setNext(j.now().Add(delay))

	go func() {
		defer close(l.done)

		timer := time.NewTimer(delay)
		defer timer.Stop()
		ticker := time.NewTicker(j.tick)
		defer ticker.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-timer.C:
				j.status.SetCountdown(0)
				// a round runs to completion even if the loop is stopped meanwhile
				j.runRound(context.WithoutCancel(loopCtx))
				j.setNext(j.now().Add(interval))
				timer.Reset(interval)
			case <-ticker.C:
				j.status.SetCountdown(j.TimeUntilNextSync())
			}
		}
	}()

	return l
}

func (j *clientSyncJob) setNext(at time.Time) {
	j.nextFire.Store(at.UnixNano())
	j.status.SetCountdown(j.TimeUntilNextSync())
}

func (j *clientSyncJob) runRound(ctx context.Context) {
	_, err := j.syncService.SyncNow(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrRoundInFlight), errors.Is(err, ErrOffline), errors.Is(err, ErrConfig):
		j.logger.Debug().Err(err).Str("func", "clientSyncJob.runRound").Msg("round skipped")
	default:
		j.logger.Debug().Err(err).Str("func", "clientSyncJob.runRound").Msg("round failed, retrying on next tick")
	}
}
