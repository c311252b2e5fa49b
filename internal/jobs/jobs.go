package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/lifearchitect/internal/telemetry/metrics"
	"github.com/2beens/lifearchitect/internal/telemetry/tracing"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const (
	JobPruneMeals          = "prune_meals"
	JobRollOverCompletions = "roll_over_completions"
	JobBackup              = "backup"
)

// Parser accepts standard 5-field expressions (minute, hour, dom, month, dow).
var Parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Maintainer runs the nightly housekeeping on the dashboard state.
type Maintainer interface {
	PruneMeals(ctx context.Context) (int, error)
	RollOverCompletions(ctx context.Context) (int, error)
}

// Backuper uploads a snapshot of the dashboard state.
type Backuper interface {
	DoBackup(ctx context.Context) (string, error)
}

type Params struct {
	NightlySpec string
	// BackupSpec empty disables backups.
	BackupSpec string
	Location   *time.Location
	Maintainer Maintainer
	Backuper   Backuper
	Metrics    *metrics.Manager
}

type Runner struct {
	cron    *cron.Cron
	metrics *metrics.Manager
	jobs    map[string]func(ctx context.Context) error

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

func NewRunner(params Params) (*Runner, error) {
	if params.Maintainer == nil {
		return nil, fmt.Errorf("maintainer is required")
	}
	loc := params.Location
	if loc == nil {
		loc = time.Local
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{
		cron:    cron.New(cron.WithParser(Parser), cron.WithLocation(loc)),
		metrics: params.Metrics,
		jobs:    map[string]func(ctx context.Context) error{},
		ctx:     ctx,
		cancel:  cancel,
	}

	r.jobs[JobPruneMeals] = func(ctx context.Context) error {
		pruned, err := params.Maintainer.PruneMeals(ctx)
		if err != nil {
			return err
		}
		log.Debugf("jobs: pruned %d meal logs", pruned)
		return nil
	}
	r.jobs[JobRollOverCompletions] = func(ctx context.Context) error {
		cleared, err := params.Maintainer.RollOverCompletions(ctx)
		if err != nil {
			return err
		}
		log.Debugf("jobs: cleared %d daily completions", cleared)
		return nil
	}

	if err := r.schedule(params.NightlySpec, JobPruneMeals, JobRollOverCompletions); err != nil {
		cancel()
		return nil, err
	}

	if params.BackupSpec != "" && params.Backuper != nil {
		r.jobs[JobBackup] = func(ctx context.Context) error {
			_, err := params.Backuper.DoBackup(ctx)
			return err
		}
		if err := r.schedule(params.BackupSpec, JobBackup); err != nil {
			cancel()
			return nil, err
		}
	}

	return r, nil
}

func (r *Runner) schedule(spec string, names ...string) error {
	if _, err := Parser.Parse(spec); err != nil {
		return fmt.Errorf("invalid cron spec [%s]: %w", spec, err)
	}
	for _, name := range names {
		if _, err := r.cron.AddFunc(spec, func() {
			if err := r.Run(r.ctx, name); err != nil {
				log.Errorf("jobs: %s failed: %s", name, err)
			}
		}); err != nil {
			return fmt.Errorf("schedule %s: %w", name, err)
		}
		log.Debugf("jobs: %s scheduled at [%s]", name, spec)
	}
	return nil
}

// Run executes a registered job immediately.
func (r *Runner) Run(ctx context.Context, name string) (err error) {
	job, ok := r.jobs[name]
	if !ok {
		return fmt.Errorf("unknown job: %s", name)
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "jobs."+name)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = job(ctx)

	if r.metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		r.metrics.CounterJobRuns.WithLabelValues(name, outcome).Inc()
	}
	return err
}

func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cron.Start()
	log.Printf("jobs: runner started with %d entries", len(r.cron.Entries()))
}

// Stop cancels running jobs and waits for them to return.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancel()
	<-r.cron.Stop().Done()
	log.Println("jobs: runner stopped")
}

func (r *Runner) Entries() int {
	return len(r.cron.Entries())
}
