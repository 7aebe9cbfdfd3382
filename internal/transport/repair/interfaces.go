package repair

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
)

type Servicer interface {
	PendingFanOuts(ctx context.Context, limit uint) ([]domain.Investment, error)
	RepairFanOut(ctx context.Context, investmentID uuid.UUID) ([]domain.Commission, error)
}
