package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hashclash/storage/internal/logger"
	"github.com/hashclash/storage/internal/mock"
	"github.com/hashclash/storage/internal/utils"
	"go.uber.org/mock/gomock"
)

func TestJanitor_Run_SweepsImmediatelyAndStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	codes := mock.NewMockTempCodeRepository(ctrl)
	codes.EXPECT().
		DeleteExpiredCodes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			cancel() // stop after the initial sweep
			return 3, nil
		})

	// The interval is far longer than the test: only the immediate sweep
	// should happen before cancellation is observed.
	j := NewJanitor(ctx, codes, time.Hour, logger.Nop())

	done := make(chan struct{})
	go func() {
		j.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("janitor did not stop after context cancellation")
	}
}

func TestJanitor_Run_SweepsOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	sweeps := 0
	codes := mock.NewMockTempCodeRepository(ctrl)
	codes.EXPECT().
		DeleteExpiredCodes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			sweeps++
			if sweeps >= 3 {
				cancel()
			}
			return 0, nil
		}).
		MinTimes(3)

	j := NewJanitor(ctx, codes, 10*time.Millisecond, logger.Nop())

	done := make(chan struct{})
	go func() {
		j.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("janitor did not stop after context cancellation")
	}

	if sweeps < 3 {
		t.Errorf("expected at least 3 sweeps, got %d", sweeps)
	}
}

func TestJanitor_Run_SweepErrorDoesNotStopWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	sweeps := 0
	codes := mock.NewMockTempCodeRepository(ctrl)
	codes.EXPECT().
		DeleteExpiredCodes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			sweeps++
			if sweeps >= 2 {
				cancel()
				return 0, nil
			}
			return 0, errors.New("connection reset")
		}).
		MinTimes(2)

	j := NewJanitor(ctx, codes, 10*time.Millisecond, logger.Nop())

	done := make(chan struct{})
	go func() {
		j.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("janitor did not survive a failed sweep")
	}
}

func TestJanitor_Sweep_AttachesRunIDToContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	codes := mock.NewMockTempCodeRepository(ctrl)
	codes.EXPECT().
		DeleteExpiredCodes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ time.Time) (int64, error) {
			runID, ok := utils.GetRunIDFromContext(ctx)
			if !ok {
				t.Error("expected run ID in sweep context")
			}
			if runID == "" {
				t.Error("expected non-empty run ID")
			}
			return 0, nil
		})

	j := NewJanitor(context.Background(), codes, time.Hour, logger.Nop())
	j.sweep()
}
