package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"resume-builder/internal/shared/telemetry"
)

// DefaultSweepInterval is how often expired sessions are removed.
const DefaultSweepInterval = 5 * time.Minute

// Sweeper periodically deletes expired sessions.
type Sweeper struct {
	scheduler gocron.Scheduler
	svc       *Service
	interval  time.Duration
	timeout   time.Duration
}

// NewSweeper creates a sweeper for svc. It does nothing until Start.
func NewSweeper(svc *Service, interval time.Duration) (*Sweeper, error) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	sw := &Sweeper{scheduler: s, svc: svc, interval: interval, timeout: 30 * time.Second}
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(sw.run),
		gocron.WithName("session-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to create session sweep job: %w", err)
	}
	return sw, nil
}

// AddJob schedules task on the sweep interval alongside the session sweep.
func (sw *Sweeper) AddJob(name string, task func()) error {
	_, err := sw.scheduler.NewJob(
		gocron.DurationJob(sw.interval),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s job: %w", name, err)
	}
	return nil
}

// Start begins the scheduler.
func (sw *Sweeper) Start() {
	telemetry.Info("session.sweeper_start", map[string]any{"interval": sw.interval.String()})
	sw.scheduler.Start()
}

// Stop shuts the scheduler down, waiting for a running sweep to finish.
func (sw *Sweeper) Stop() error {
	telemetry.Info("session.sweeper_stop", nil)
	return sw.scheduler.Shutdown()
}

// run is called by gocron on every tick.
func (sw *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sw.timeout)
	defer cancel()
	removed, err := sw.svc.Sweep(ctx)
	if err != nil {
		telemetry.Error("session.sweep_failed", map[string]any{"error": err.Error()})
		return
	}
	if removed > 0 {
		telemetry.Info("session.swept", map[string]any{"removed": removed})
	}
}
