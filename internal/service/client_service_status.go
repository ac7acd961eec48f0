// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/looplab/fsm"

	"github.com/MKhiriev/go-kv-sync/internal/logger"
	"github.com/MKhiriev/go-kv-sync/models"
)

// Sync State events.
const (
	EventStart      = "start"
	EventSucceed    = "succeed"
	EventFail       = "fail"
	EventSettle     = "settle"
	EventDisconnect = "disconnect"
	EventReconnect  = "reconnect"
)

// statusSubscriberBuffer bounds the transitions queued for a slow subscriber.
// Further transitions are dropped for that subscriber.
const statusSubscriberBuffer = 16

type clientStatusService struct {
	machine *fsm.FSM

	// mu serialises composite transitions such as settle+start.
	mu sync.Mutex

	online    atomic.Bool
	countdown atomic.Int64

	successDisplay time.Duration
	settleTimer    *time.Timer

	queue    ClientQueueService
	settings ClientSettingsService

	subMu       sync.Mutex
	subscribers map[int]chan models.StatusChange
	nextID      int

	now    func() time.Time
	logger *logger.Logger
}

// NewClientStatusService returns the Sync State machine starting in Normal
// with connectivity assumed. successDisplay is how long Success is shown
// before the state settles back to Normal.
func NewClientStatusService(queue ClientQueueService, settings ClientSettingsService, successDisplay time.Duration, log *logger.Logger) ClientStatusService {
	s := &clientStatusService{
		successDisplay: successDisplay,
		queue:          queue,
		settings:       settings,
		subscribers:    make(map[int]chan models.StatusChange),
		now:            time.Now,
		logger:         log,
	}
	s.online.Store(true)

	active := []string{
		string(models.StateNormal),
		string(models.StateSyncing),
		string(models.StateSuccess),
		string(models.StateError),
	}

	s.machine = fsm.NewFSM(
		string(models.StateNormal),
		fsm.Events{
			{Name: EventStart, Src: []string{string(models.StateNormal)}, Dst: string(models.StateSyncing)},
			{Name: EventSucceed, Src: []string{string(models.StateSyncing)}, Dst: string(models.StateSuccess)},
			{Name: EventFail, Src: []string{string(models.StateSyncing)}, Dst: string(models.StateError)},
			{Name: EventSettle, Src: []string{string(models.StateSuccess), string(models.StateError)}, Dst: string(models.StateNormal)},
			{Name: EventDisconnect, Src: active, Dst: string(models.StateOffline)},
			{Name: EventReconnect, Src: []string{string(models.StateOffline)}, Dst: string(models.StateNormal)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				change := models.StatusChange{
					From: models.SyncState(e.Src),
					To:   models.SyncState(e.Dst),
					At:   s.now(),
				}
				if len(e.Args) > 0 {
					if err, ok := e.Args[0].(error); ok {
						change.Err = err
					}
				}
				s.publish(change)
			},
		},
	)

	return s
}

func (s *clientStatusService) Current() models.SyncState {
	return models.SyncState(s.machine.Current())
}

func (s *clientStatusService) StartRound() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopSettleTimer()
	if s.machine.Can(EventSettle) {
		if err := s.fire(EventSettle); err != nil {
			return err
		}
	}
	return s.fire(EventStart)
}

func (s *clientStatusService) Succeed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fire(EventSucceed); err != nil {
		return err
	}

	s.stopSettleTimer()
	s.settleTimer = time.AfterFunc(s.successDisplay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.Current() == models.StateSuccess {
			_ = s.fire(EventSettle)
		}
	})
	return nil
}

func (s *clientStatusService) Fail(cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fire(EventFail, cause)
}

func (s *clientStatusService) Settle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopSettleTimer()
	return s.fire(EventSettle)
}

func (s *clientStatusService) Disconnect() error {
	s.online.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopSettleTimer()
	if s.Current() == models.StateOffline {
		return nil
	}
	return s.fire(EventDisconnect)
}

// Reconnect leaves Offline only while sync is enabled. With sync disabled the
// state stays Offline until a later call finds it enabled again.
func (s *clientStatusService) Reconnect() error {
	s.online.Store(true)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Current() != models.StateOffline {
		return nil
	}

	st, err := s.settings.Get(context.Background())
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientStatusService.Reconnect").
			Msg("failed to load settings, leaving offline state")
	} else if !st.Enabled {
		return nil
	}
	return s.fire(EventReconnect)
}

func (s *clientStatusService) Online() bool {
	return s.online.Load()
}

// SetCountdown stores the countdown shown by status widgets.
func (s *clientStatusService) SetCountdown(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.countdown.Store(int64(d))
}

func (s *clientStatusService) Subscribe() (<-chan models.StatusChange, func()) {
	ch := make(chan models.StatusChange, statusSubscriberBuffer)

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, id)
			s.subMu.Unlock()
			close(ch)
		})
	}
}

func (s *clientStatusService) Snapshot(ctx context.Context) models.StatusSnapshot {
	snap := models.StatusSnapshot{
		State:             s.Current(),
		TimeUntilNextSync: time.Duration(s.countdown.Load()),
		Online:            s.Online(),
	}

	if pending, err := s.queue.Pending(ctx); err == nil {
		snap.Pending = pending
	} else {
		s.logger.Warn().Err(err).Str("func", "clientStatusService.Snapshot").Msg("failed to count pending changes")
	}

	if st, err := s.settings.Get(ctx); err == nil && st.LastSync > 0 {
		snap.LastSync = st.LastSuccess()
	}

	return snap
}

func (s *clientStatusService) fire(event string, args ...any) error {
	return s.machine.Event(context.Background(), event, args...)
}

func (s *clientStatusService) stopSettleTimer() {
	if s.settleTimer != nil {
		s.settleTimer.Stop()
		s.settleTimer = nil
	}
}

func (s *clientStatusService) publish(change models.StatusChange) {
	ev := s.logger.Info()
	if change.Err != nil {
		ev = s.logger.Warn().Err(change.Err)
	}
	ev.Str("func", "clientStatusService.publish").
		Str("from", string(change.From)).
		Str("to", string(change.To)).
		Msg("sync state changed")

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- change:
		default:
		}
	}
}
