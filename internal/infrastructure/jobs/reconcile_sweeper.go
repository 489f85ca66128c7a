package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Reconciler is the part of the featuring engine the sweeper drives.
type Reconciler interface {
	SweepStalePayments(ctx context.Context) (int, error)
	RepairFeaturedDrift(ctx context.Context) (int, error)
}

const DefaultSweepSchedule = "@every 5m"

// ReconcileSweeper periodically fails abandoned checkouts and repairs the
// featured projection. Runs never overlap.
type ReconcileSweeper struct {
	reconciler Reconciler
	schedule   string
	timeout    time.Duration
	cron       *cron.Cron
	mu         sync.Mutex
}

func NewReconcileSweeper(r Reconciler, schedule string) *ReconcileSweeper {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	return &ReconcileSweeper{
		reconciler: r,
		schedule:   schedule,
		timeout:    time.Minute,
		cron:       cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger))),
	}
}

func (s *ReconcileSweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return err
	}
	s.cron.Start()
	log.WithField("schedule", s.schedule).Info("[jobs][sweeper] started")
	return nil
}

// Stop waits for a running sweep to finish.
func (s *ReconcileSweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *ReconcileSweeper) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	failed, err := s.reconciler.SweepStalePayments(ctx)
	if err != nil {
		log.WithError(err).Error("[jobs][sweeper] stale payment sweep failed")
	}
	repaired, err := s.reconciler.RepairFeaturedDrift(ctx)
	if err != nil {
		log.WithError(err).Error("[jobs][sweeper] featured drift repair failed")
	}
	if failed > 0 || repaired > 0 {
		log.WithFields(log.Fields{"failed": failed, "repaired": repaired}).Info("[jobs][sweeper] run finished")
	}
}
