package impl

import (
	"context"
	"testing"
	"time"

	"checkin/config"
	mockUsecase "checkin/internal/mocks/usecase"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// pairingWatcherFixtures holds all test dependencies for pairing watcher tests.
type pairingWatcherFixtures struct {
	watcher usecase.PairingWatchUsecase
	pairing *mockUsecase.MockPairingUsecase
}

func createTestPairingWatcher(t *testing.T, pollInterval time.Duration, maxAttempts int) pairingWatcherFixtures {
	pairing := mockUsecase.NewMockPairingUsecase(t)
	lc := fxtest.NewLifecycle(t)

	cfg := newTestConfig()
	cfg.Pairing = &config.PairingConfig{
		PollInterval:    pollInterval,
		MaxPollAttempts: maxAttempts,
	}

	watcher := NewPairingWatcher(PairingWatcherParams{
		Lc:             lc,
		PairingUsecase: pairing,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})

	return pairingWatcherFixtures{
		watcher: watcher,
		pairing: pairing,
	}
}

func TestPairingWatcher_StatusIsIdleBeforeStart(t *testing.T) {
	fx := createTestPairingWatcher(t, time.Hour, 3)

	assert.Equal(t, usecase.WatchIdle, fx.watcher.WatchStatus(uuid.New()))
}

func TestPairingWatcher_StopsWhenPairingCompletes(t *testing.T) {
	fx := createTestPairingWatcher(t, 10*time.Millisecond, 10)
	userID := uuid.New()
	coupleID := uuid.New()
	partnerID := uuid.New()

	fx.pairing.EXPECT().
		CheckPairingStatus(mock.Anything, userID).
		Return(&usecase.PairingStatus{
			CoupleID:  &coupleID,
			IsPaired:  true,
			PartnerID: &partnerID,
		}, nil)

	// Pairing completion triggers the invite sweep.
	fx.pairing.EXPECT().
		CompletePairing(mock.Anything, userID).
		Return(nil)

	require.NoError(t, fx.watcher.StartWatch(context.Background(), userID))

	assert.Eventually(t, func() bool {
		return fx.watcher.WatchStatus(userID) == usecase.WatchPaired
	}, time.Second, 5*time.Millisecond)
}

func TestPairingWatcher_TimesOutAfterMaxAttempts(t *testing.T) {
	fx := createTestPairingWatcher(t, 5*time.Millisecond, 3)
	userID := uuid.New()

	fx.pairing.EXPECT().
		CheckPairingStatus(mock.Anything, userID).
		Return(&usecase.PairingStatus{}, nil).
		Times(3)

	require.NoError(t, fx.watcher.StartWatch(context.Background(), userID))

	assert.Eventually(t, func() bool {
		return fx.watcher.WatchStatus(userID) == usecase.WatchTimedOut
	}, time.Second, 5*time.Millisecond)
}

func TestPairingWatcher_TransientCheckFailuresConsumeAttempts(t *testing.T) {
	fx := createTestPairingWatcher(t, 5*time.Millisecond, 2)
	userID := uuid.New()

	fx.pairing.EXPECT().
		CheckPairingStatus(mock.Anything, userID).
		Return(nil, errors.New("connection refused")).
		Times(2)

	require.NoError(t, fx.watcher.StartWatch(context.Background(), userID))

	assert.Eventually(t, func() bool {
		return fx.watcher.WatchStatus(userID) == usecase.WatchTimedOut
	}, time.Second, 5*time.Millisecond)
}

func TestPairingWatcher_CancelStopsThePoll(t *testing.T) {
	// A one-hour interval guarantees no tick fires during the test, so a
	// status check would fail the mock expectations.
	fx := createTestPairingWatcher(t, time.Hour, 3)
	userID := uuid.New()

	require.NoError(t, fx.watcher.StartWatch(context.Background(), userID))
	assert.Equal(t, usecase.WatchPolling, fx.watcher.WatchStatus(userID))

	fx.watcher.CancelWatch(userID)
	assert.Equal(t, usecase.WatchCancelled, fx.watcher.WatchStatus(userID))
}

func TestPairingWatcher_NewWatchSupersedesRunningOne(t *testing.T) {
	fx := createTestPairingWatcher(t, time.Hour, 3)
	userID := uuid.New()

	require.NoError(t, fx.watcher.StartWatch(context.Background(), userID))
	require.NoError(t, fx.watcher.StartWatch(context.Background(), userID))

	// The second watch owns the slot and keeps polling even though the first
	// loop was cancelled.
	assert.Equal(t, usecase.WatchPolling, fx.watcher.WatchStatus(userID))

	fx.watcher.CancelWatch(userID)
	assert.Equal(t, usecase.WatchCancelled, fx.watcher.WatchStatus(userID))
}

func TestPairingWatcher_CancelWithoutWatchIsANoop(t *testing.T) {
	fx := createTestPairingWatcher(t, time.Hour, 3)
	userID := uuid.New()

	fx.watcher.CancelWatch(userID)
	assert.Equal(t, usecase.WatchIdle, fx.watcher.WatchStatus(userID))
}
