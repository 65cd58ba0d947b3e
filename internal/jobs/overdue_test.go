package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/jobs/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMonitor(t *testing.T, counter OverdueCounter) *OverdueMonitor {
	t.Helper()
	return NewOverdueMonitor(slog.New(slog.NewTextHandler(io.Discard, nil)), "*/5 * * * * *", counter)
}

func TestOverdueMonitor_Run(t *testing.T) {
	t.Run("exports count", func(t *testing.T) {
		counter := mocks.NewMockOverdueCounter(t)
		counter.EXPECT().CountOverdue(mock.Anything).Return(3, nil).Once()

		newMonitor(t, counter).run(context.Background())
		assert.Equal(t, 3.0, testutil.ToFloat64(overdueDeliveries))
	})

	t.Run("keeps last value on error", func(t *testing.T) {
		overdueDeliveries.Set(2)
		counter := mocks.NewMockOverdueCounter(t)
		counter.EXPECT().CountOverdue(mock.Anything).Return(0, errors.New("db down")).Once()

		newMonitor(t, counter).run(context.Background())
		assert.Equal(t, 2.0, testutil.ToFloat64(overdueDeliveries))
	})

	t.Run("skips when cancelled", func(t *testing.T) {
		counter := mocks.NewMockOverdueCounter(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		newMonitor(t, counter).run(ctx)
	})
}

func TestOverdueMonitor_StartStop(t *testing.T) {
	counter := mocks.NewMockOverdueCounter(t)
	counter.EXPECT().CountOverdue(mock.Anything).Return(0, nil).Maybe()

	m := newMonitor(t, counter)
	require.NoError(t, m.Start(context.Background()))
	m.Stop()
}

func TestOverdueMonitor_BadSchedule(t *testing.T) {
	counter := mocks.NewMockOverdueCounter(t)
	m := NewOverdueMonitor(slog.New(slog.NewTextHandler(io.Discard, nil)), "every minute", counter)

	assert.Error(t, m.Start(context.Background()))
}
