// Package repair finishes commission fan-outs that did not complete when their investment was created.
package repair

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
)

const (
	defaultServiceTimeout         = 10 * time.Second
	defaultInterval               = 30 * time.Second
	defaultLimitPerIteration uint = 100
	defaultRepairWorkers     uint = 3
)

// Processor periodically picks investments with a pending fan-out and re-runs distribution for them.
type Processor struct {
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	repairWorkers     uint
	interval          time.Duration
}

func NewProcessor(svs Servicer, l *logrus.Logger) *Processor {
	return &Processor{
		svs: svs,
		l: l.WithFields(logrus.Fields{
			"component": "repair",
			"module":    "processor",
		}),
		limitPerIteration: defaultLimitPerIteration,
		repairWorkers:     defaultRepairWorkers,
		interval:          defaultInterval,
	}
}

// SetLimitPerIteration sets how many investments one iteration picks up.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	if limit > 0 {
		p.limitPerIteration = limit
	}
	return p
}

// SetRepairWorkers sets the number of concurrent workers.
func (p *Processor) SetRepairWorkers(workers uint) *Processor {
	if workers > 0 {
		p.repairWorkers = workers
	}
	return p
}

// SetInterval sets the pause between iterations. The actual pause is jittered by 15%.
func (p *Processor) SetInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

// Run repairs pending fan-outs until ctx is cancelled.
//
//  1. Each iteration asks the service for up to limitPerIteration pending investments.
//  2. The batch is spread across repairWorkers workers, each re-running distribution for one investment
//     at a time.
//  3. A fully repaired full batch starts the next iteration right away, otherwise the processor sleeps for
//     the interval.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"repairWorkers":     p.repairWorkers,
		"interval":          p.interval,
	}).Info("Starting")

	for {
		n, err := p.process(ctx)
		if err != nil && !errors.Is(err, ErrNoPending) && ctx.Err() == nil {
			p.l.WithError(err).Error("process error")
		}
		if err == nil && uint(n) >= p.limitPerIteration { //nolint:gosec
			continue
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(jitter(p.interval, defaultJitterPercent, defaultJitterPercent)):
		}
	}
}

// process runs one iteration and returns the number of investments it repaired.
func (p *Processor) process(ctx context.Context) (int, error) {
	investments, err := p.produce(ctx)
	if err != nil {
		return 0, fmt.Errorf("process: %w", err)
	}

	results := p.runWorkers(ctx, investments)

	failed := 0
	for _, result := range results {
		l := p.l.WithFields(logrus.Fields{
			"worker":       result.WorkerID,
			"investmentID": result.InvestmentID,
		})
		if result.Error != nil {
			failed++
			l.WithError(result.Error).Error("repair fan-out")
			continue
		}
		l.WithField("paid", result.Paid).Debug("Success")
	}

	if failed > 0 {
		p.l.WithFields(logrus.Fields{"failed": failed, "total": len(results)}).Warn("some fan-outs are still pending")
	}
	return len(investments) - failed, nil
}

type workerResult struct {
	WorkerID     uint
	InvestmentID uuid.UUID
	Paid         int
	Error        error
}

// runWorkers fans the batch out to the workers and collects their results.
func (p *Processor) runWorkers(ctx context.Context, investments []domain.Investment) []workerResult {
	taskCh := make(chan uuid.UUID, len(investments))
	for _, inv := range investments {
		taskCh <- inv.ID
	}
	close(taskCh)

	resultCh := make(chan workerResult, len(investments))

	wg := new(sync.WaitGroup)
	for i := range p.repairWorkers {
		wg.Add(1)
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	results := make([]workerResult, 0, len(investments))
	for result := range resultCh {
		results = append(results, result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan uuid.UUID,
	resultCh chan<- workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.repair(ctx, workerID, id)
		}
	}
}

func (p *Processor) repair(ctx context.Context, workerID uint, id uuid.UUID) workerResult {
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	paid, err := p.svs.RepairFanOut(reqCtx, id)
	return workerResult{
		WorkerID:     workerID,
		InvestmentID: id,
		Paid:         len(paid),
		Error:        err,
	}
}

// produce returns ErrNoPending when there is nothing to repair.
func (p *Processor) produce(ctx context.Context) ([]domain.Investment, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	investments, err := p.svs.PendingFanOuts(produceCtx, p.limitPerIteration)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	if len(investments) == 0 {
		return nil, ErrNoPending
	}
	return investments, nil
}
