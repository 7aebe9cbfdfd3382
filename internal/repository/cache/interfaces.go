package cache

import (
	"context"
	"time"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type Store interface {
	Key(parts ...string) string
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, dest any) error
	Del(ctx context.Context, keys ...string) error
}

type PackageRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Package, error)
	ListActive(ctx context.Context) ([]domain.Package, error)
	Create(ctx context.Context, p domain.Package) (*domain.Package, error)
	Update(ctx context.Context, p domain.Package) (*domain.Package, error)
}
