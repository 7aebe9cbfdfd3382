package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service/rates"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

type PackageService struct {
	packageRepo PackageRepository
	l           *logrus.Entry
}

func NewPackageService(u uow.UOW, l *logrus.Logger) (*PackageService, error) {
	packageRepo, err := uow.GetRepositoryAs[PackageRepository](u, uow.RepositoryName(repoargs.PackageRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &PackageService{
		packageRepo: packageRepo,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "package",
		}),
	}, nil
}

func (s *PackageService) ListActive(ctx context.Context) ([]domain.Package, error) {
	packages, err := s.packageRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}
	return packages, nil
}

func (s *PackageService) Create(ctx context.Context, p domain.Package) (*domain.Package, error) {
	if err := validatePackage(p); err != nil {
		return nil, fmt.Errorf("creating package: %w", err)
	}
	created, err := s.packageRepo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("creating package: %w", err)
	}
	s.l.WithFields(logrus.Fields{"packageID": created.ID, "name": created.Name}).Info("package created")
	return created, nil
}

// Update changes the catalog entry. Investments already placed keep the terms they were created with.
func (s *PackageService) Update(ctx context.Context, p domain.Package) (*domain.Package, error) {
	if err := validatePackage(p); err != nil {
		return nil, fmt.Errorf("updating package %d: %w", p.ID, err)
	}
	updated, err := s.packageRepo.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("updating package %d: %w", p.ID, err)
	}
	s.l.WithFields(logrus.Fields{"packageID": updated.ID, "name": updated.Name}).Info("package updated")
	return updated, nil
}

func validatePackage(p domain.Package) error {
	switch {
	case p.Name == "",
		!p.DailyRate.IsPositive(),
		p.DurationDays <= 0,
		!p.MinAmount.IsPositive(),
		p.MaxAmount.LessThan(p.MinAmount),
		p.RequiredVIPLevel < 0 || p.RequiredVIPLevel > rates.MaxVIPLevel:
		return domain.ErrInvalidPackage
	}
	return nil
}
