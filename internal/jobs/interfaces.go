package jobs

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service"
)

type Reconciler interface {
	ReconcileAll(ctx context.Context) ([]service.ReconcileResult, error)
}
