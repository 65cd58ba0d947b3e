package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

var overdueDeliveries = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "delivery_service",
	Subsystem: "deliveries",
	Name:      "overdue",
	Help:      "Active assignments whose estimated delivery time has passed.",
})

type OverdueCounter interface {
	CountOverdue(ctx context.Context) (int, error)
}

// OverdueMonitor periodically counts active assignments that are past their
// estimated delivery time and exports the number as a gauge.
type OverdueMonitor struct {
	counter  OverdueCounter
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewOverdueMonitor takes a cron spec with a seconds field.
func NewOverdueMonitor(logger *slog.Logger, schedule string, counter OverdueCounter) *OverdueMonitor {
	return &OverdueMonitor{
		counter:  counter,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With(slog.String("job", "overdue_deliveries")),
	}
}

// Start schedules the check. Runs stop when ctx is done or Stop is called.
func (j *OverdueMonitor) Start(ctx context.Context) error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule overdue check: %w", err)
	}

	j.cron.Start()
	j.logger.Info("overdue monitor started", slog.String("schedule", j.schedule))
	return nil
}

func (j *OverdueMonitor) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	n, err := j.counter.CountOverdue(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "failed to count overdue deliveries", slog.Any("error", err))
		return
	}

	overdueDeliveries.Set(float64(n))
	if n > 0 {
		j.logger.WarnContext(ctx, "deliveries are overdue", slog.Int("count", n))
	}
}

// Stop waits for a running check to finish.
func (j *OverdueMonitor) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("overdue monitor stopped")
}
