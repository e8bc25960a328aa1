//go:build unit

package worker_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"booking-gateway/internal/worker"
	commandsmock "booking-gateway/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPurger_RunsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := commandsmock.NewMockSessionCommands(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	sessions.EXPECT().PurgeExpired(gomock.Any()).
		DoAndReturn(func(context.Context) (int64, error) {
			calls++
			if calls >= 2 {
				cancel()
				return 0, errors.New("context canceled")
			}
			return 4, nil
		}).
		MinTimes(2)

	p := worker.NewPurger(sessions, time.Millisecond, slog.New(slog.DiscardHandler))

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("purger did not stop after cancel")
	}
	assert.GreaterOrEqual(t, calls, 2)
}
