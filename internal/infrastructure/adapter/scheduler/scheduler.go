package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/amirhossein-jamali/minigame-rewards/internal/domain/port/core"
)

// Job is a named periodic task
type Job struct {
	Name string
	Spec string // cron expression, seconds field optional
	Run  func(ctx context.Context) error
}

// Scheduler runs maintenance jobs on cron schedules
type Scheduler struct {
	cron   *cron.Cron
	logger core.Logger
	jobs   map[string]Job
	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a scheduler in UTC. Overlapping runs of the same job are skipped.
func NewScheduler(logger core.Logger) *Scheduler {
	cl := cronLogger{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithParser(cron.NewParser(cron.SecondOptional|cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow|cron.Descriptor)),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
			cron.WithLogger(cl),
		),
		logger: logger,
		jobs:   make(map[string]Job),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register adds a job. An empty spec disables it.
func (s *Scheduler) Register(job Job) error {
	if job.Spec == "" {
		s.logger.Info("Scheduled job disabled", map[string]any{"job": job.Name})
		return nil
	}
	if _, dup := s.jobs[job.Name]; dup {
		return fmt.Errorf("job %s already registered", job.Name)
	}

	if _, err := s.cron.AddFunc(job.Spec, func() { s.run(s.ctx, job) }); err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", job.Spec, job.Name, err)
	}
	s.jobs[job.Name] = job
	return nil
}

// RunNow executes a registered job synchronously
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	job, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("unknown job %s", name)
	}
	return s.run(ctx, job)
}

func (s *Scheduler) run(ctx context.Context, job Job) error {
	if err := job.Run(ctx); err != nil {
		s.logger.Error("Scheduled job failed", map[string]any{
			"job":   job.Name,
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", map[string]any{"jobs": len(s.jobs)})
}

// Stop cancels running jobs and waits for them to return
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler stopped", nil)
}

// cronLogger adapts the core logger to cron's logger interface
type cronLogger struct {
	logger core.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, kvToFields(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := kvToFields(keysAndValues)
	fields["error"] = err.Error()
	l.logger.Error("cron: "+msg, fields)
}

func kvToFields(keysAndValues []interface{}) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
