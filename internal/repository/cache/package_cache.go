package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
)

const (
	DefaultPackageTTL = 10 * time.Minute

	packageKeyPart = "package"
	activeKeyPart  = "active"
)

// PackageCache serves package reads from the store and falls back to next on a miss. Writes go to next
// and drop the affected keys. Store failures are logged and never fail the call.
type PackageCache struct {
	next  PackageRepository
	store Store
	ttl   time.Duration
	l     *logrus.Entry
}

func NewPackageCache(next PackageRepository, store Store, ttl time.Duration, l *logrus.Logger) *PackageCache {
	if ttl <= 0 {
		ttl = DefaultPackageTTL
	}
	return &PackageCache{
		next:  next,
		store: store,
		ttl:   ttl,
		l: l.WithFields(logrus.Fields{
			"component": "cache",
			"module":    "package",
		}),
	}
}

func (r *PackageCache) idKey(id int64) string {
	return r.store.Key(packageKeyPart, strconv.FormatInt(id, 10))
}

func (r *PackageCache) activeKey() string {
	return r.store.Key(packageKeyPart, activeKeyPart)
}

func (r *PackageCache) FindByID(ctx context.Context, id int64) (*domain.Package, error) {
	key := r.idKey(id)

	var cached domain.Package
	getErr := r.store.Get(ctx, key, &cached)
	if getErr == nil {
		return &cached, nil
	}
	if !errors.Is(getErr, ErrCacheMiss) {
		r.l.WithError(getErr).WithField("key", key).Warn("cache read failed")
	}

	p, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	r.put(ctx, key, p)
	return p, nil
}

func (r *PackageCache) ListActive(ctx context.Context) ([]domain.Package, error) {
	key := r.activeKey()

	var cached []domain.Package
	getErr := r.store.Get(ctx, key, &cached)
	if getErr == nil {
		return cached, nil
	}
	if !errors.Is(getErr, ErrCacheMiss) {
		r.l.WithError(getErr).WithField("key", key).Warn("cache read failed")
	}

	packages, err := r.next.ListActive(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	r.put(ctx, key, packages)
	return packages, nil
}

func (r *PackageCache) Create(ctx context.Context, p domain.Package) (*domain.Package, error) {
	created, err := r.next.Create(ctx, p)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	r.invalidate(ctx, r.activeKey())
	return created, nil
}

func (r *PackageCache) Update(ctx context.Context, p domain.Package) (*domain.Package, error) {
	updated, err := r.next.Update(ctx, p)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	r.invalidate(ctx, r.idKey(p.ID), r.activeKey())
	return updated, nil
}

func (r *PackageCache) put(ctx context.Context, key string, value any) {
	if err := r.store.Set(ctx, key, value, r.ttl); err != nil {
		r.l.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

func (r *PackageCache) invalidate(ctx context.Context, keys ...string) {
	if err := r.store.Del(ctx, keys...); err != nil {
		r.l.WithError(err).WithField("keys", keys).Error("cache invalidation failed")
	}
}
