// Package jobs runs periodic background jobs on a cron schedule in the claim reference zone.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/metrics"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/earning"
)

const (
	// DefaultReconcileSpec runs reconciliation five minutes after the daily claim boundary.
	DefaultReconcileSpec = "5 10 * * *"

	reconcileTimeout = 5 * time.Minute
)

type Scheduler struct {
	cron       *cron.Cron
	reconciler Reconciler
	l          *logrus.Entry
}

func NewScheduler(reconciler Reconciler, l *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(earning.ReferenceZone)),
		reconciler: reconciler,
		l: l.WithFields(logrus.Fields{
			"component": "jobs",
			"module":    "scheduler",
		}),
	}
}

// Start registers the jobs and starts the cron runner. Jobs stop receiving new runs once ctx is done.
func (s *Scheduler) Start(ctx context.Context, reconcileSpec string) error {
	if reconcileSpec == "" {
		reconcileSpec = DefaultReconcileSpec
	}
	if _, err := s.cron.AddFunc(reconcileSpec, func() {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.reconcile(ctx); err != nil {
			s.l.WithError(err).Error("reconciliation failed")
		}
	}); err != nil {
		return fmt.Errorf("scheduling reconciliation %q: %w", reconcileSpec, err)
	}

	s.cron.Start()
	s.l.WithField("reconcile", reconcileSpec).Info("Scheduler started")
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.l.Info("Scheduler stopped")
}

// reconcile compares every user's team income with the commission ledger and reports the drifting users.
// Balances are never corrected automatically.
func (s *Scheduler) reconcile(ctx context.Context) (int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, reconcileTimeout)
	defer cancel()

	drift, err := s.reconciler.ReconcileAll(reqCtx)
	if err != nil {
		return 0, fmt.Errorf("reconcile: %w", err)
	}

	metrics.LedgerDriftUsers.Set(float64(len(drift)))
	for _, d := range drift {
		s.l.WithFields(logrus.Fields{
			"userID":     d.UserID,
			"teamIncome": d.TeamIncome,
			"ledgerSum":  d.LedgerSum,
			"drift":      d.Drift(),
		}).Warn("team income drift")
	}
	if len(drift) == 0 {
		s.l.Info("commission ledger reconciled")
	}
	return len(drift), nil
}
