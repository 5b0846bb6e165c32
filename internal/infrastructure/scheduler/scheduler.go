package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Pruner removes expired cached data and reports how many entries went away
type Pruner interface {
	PruneExpired(ctx context.Context) (int, error)
}

// PruneSnapshotsJob drops expired snapshots and rendered dashboards
type PruneSnapshotsJob struct {
	pruner Pruner
}

func NewPruneSnapshotsJob(pruner Pruner) *PruneSnapshotsJob {
	return &PruneSnapshotsJob{pruner: pruner}
}

// Run implements cron.Job
func (j *PruneSnapshotsJob) Run() {
	removed, err := j.pruner.PruneExpired(context.Background())
	if err != nil {
		log.Printf("❌ %s failed: %v", j.Name(), err)
		return
	}
	if removed > 0 {
		log.Printf("🧹 %s removed %d expired entries", j.Name(), removed)
	}
}

func (j *PruneSnapshotsJob) Name() string {
	return "PruneSnapshotsJob"
}

// Scheduler runs background maintenance jobs
type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
	}
}

// SchedulePrune registers the prune job under the given cron spec
func (s *Scheduler) SchedulePrune(spec string, pruner Pruner) error {
	if _, err := s.cron.AddJob(spec, NewPruneSnapshotsJob(pruner)); err != nil {
		return fmt.Errorf("schedule prune job %q: %w", spec, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling; the returned context is done once running jobs finish
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Entries returns the number of registered jobs
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
