package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"checkin/config"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// pairingWatcher runs one bounded poll loop per user after an invite goes out,
// so the inviting device learns about pairing completion without holding a
// request open. A watch ends in exactly one of: paired, timed out, cancelled.
type pairingWatcher struct {
	pairingUsecase usecase.PairingUsecase
	logger         *slog.Logger

	pollInterval time.Duration
	maxAttempts  int

	mu      sync.Mutex
	watches map[uuid.UUID]*watch
}

type watch struct {
	cancel context.CancelFunc
	state  usecase.WatchState
}

// PairingWatcherParams holds dependencies for the pairing watcher, injected by Fx.
type PairingWatcherParams struct {
	fx.In

	Lc             fx.Lifecycle
	PairingUsecase usecase.PairingUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPairingWatcher creates a new pairing watcher instance
func NewPairingWatcher(params PairingWatcherParams) usecase.PairingWatchUsecase {
	w := &pairingWatcher{
		pairingUsecase: params.PairingUsecase,
		logger:         params.Logger,
		pollInterval:   params.Config.Pairing.PollInterval,
		maxAttempts:    params.Config.Pairing.MaxPollAttempts,
		watches:        make(map[uuid.UUID]*watch),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			w.cancelAll()

			return nil
		},
	})

	return w
}

// StartWatch begins polling for the user. A new watch supersedes any running
// one: the old loop is cancelled first, so at most one poll loop exists per
// user at any moment.
func (w *pairingWatcher) StartWatch(ctx context.Context, userID uuid.UUID) error {
	// The loop must outlive the request that started it; only its own cancel
	// or process shutdown stops it.
	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	w.mu.Lock()
	if existing, ok := w.watches[userID]; ok && existing.state == usecase.WatchPolling {
		existing.cancel()
	}
	current := &watch{cancel: cancel, state: usecase.WatchPolling}
	w.watches[userID] = current
	w.mu.Unlock()

	w.logger.InfoContext(ctx, "pairing watch started",
		slog.String("user_id", userID.String()),
		slog.Duration("poll_interval", w.pollInterval),
		slog.Int("max_attempts", w.maxAttempts),
	)

	go w.poll(watchCtx, userID, current)

	return nil
}

// poll re-checks pairing status on a fixed interval until it observes a
// partner, runs out of attempts, or is cancelled. Timeout is silent: the state
// flips to timed_out and the loop ends without an error surfacing anywhere.
func (w *pairingWatcher) poll(ctx context.Context, userID uuid.UUID, current *watch) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			w.finish(userID, current, usecase.WatchCancelled)

			return
		case <-ticker.C:
			status, err := w.pairingUsecase.CheckPairingStatus(ctx, userID)
			if err != nil {
				// Transient check failures consume an attempt but keep the
				// loop alive; the next tick may succeed.
				w.logger.WarnContext(ctx, "pairing status check failed",
					slog.String("user_id", userID.String()),
					slog.Int("attempt", attempt),
					slog.String("error", err.Error()),
				)

				continue
			}

			if status.IsPaired {
				w.logger.InfoContext(ctx, "pairing watch observed completion",
					slog.String("user_id", userID.String()),
					slog.Int("attempt", attempt),
				)

				// Sweep the leftover invite credential now that both sides
				// are linked. Best-effort.
				if err := w.pairingUsecase.CompletePairing(ctx, userID); err != nil {
					w.logger.WarnContext(ctx, "pairing completion sweep failed",
						slog.String("user_id", userID.String()),
						slog.String("error", err.Error()),
					)
				}

				w.finish(userID, current, usecase.WatchPaired)

				return
			}
		}
	}

	w.logger.InfoContext(ctx, "pairing watch timed out",
		slog.String("user_id", userID.String()),
	)
	w.finish(userID, current, usecase.WatchTimedOut)
}

// CancelWatch stops the user's watch if one is running.
func (w *pairingWatcher) CancelWatch(userID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if current, ok := w.watches[userID]; ok && current.state == usecase.WatchPolling {
		current.cancel()
		current.state = usecase.WatchCancelled
	}
}

// WatchStatus reports the state of the user's watch.
func (w *pairingWatcher) WatchStatus(userID uuid.UUID) usecase.WatchState {
	w.mu.Lock()
	defer w.mu.Unlock()

	if current, ok := w.watches[userID]; ok {
		return current.state
	}

	return usecase.WatchIdle
}

// finish records a terminal state, but only if this watch is still the
// current one; a superseding watch owns the map slot from then on.
func (w *pairingWatcher) finish(userID uuid.UUID, current *watch, state usecase.WatchState) {
	current.cancel()

	w.mu.Lock()
	defer w.mu.Unlock()

	if current.state == usecase.WatchPolling {
		current.state = state
	}
	if w.watches[userID] == current {
		w.watches[userID] = current
	}
}

// cancelAll stops every running watch, used at shutdown.
func (w *pairingWatcher) cancelAll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, current := range w.watches {
		if current.state == usecase.WatchPolling {
			current.cancel()
			current.state = usecase.WatchCancelled
		}
	}
}
