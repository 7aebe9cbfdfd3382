package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/config"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/domain"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/jobs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/cache"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/pgrepo"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/repository/repoargs"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/service"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/transport/api"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/internal/transport/repair"
	"github.com/SayedMuttakin/Dove-Investment-Company-sub000/pkg/uow"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"runAddress":     a.Config.RunAddress,
		"migrationsDir":  a.Config.MigrationsDir,
		"redis":          a.Config.RedisAddr != "",
		"repairWorkers":  a.Config.RepairWorkers,
		"repairInterval": a.Config.RepairInterval,
		"reconcileSpec":  a.Config.ReconcileSpec,
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %w", connErr)
	}
	defer conn.Close()

	var store cache.Store
	if a.Config.RedisAddr != "" {
		redisClient, redisErr := cache.NewRedisClient(notifyCtx, cache.RedisOptions{
			Addr:     a.Config.RedisAddr,
			Password: a.Config.RedisPassword,
			DB:       a.Config.RedisDB,
			Prefix:   a.Config.RedisPrefix,
		})
		if redisErr != nil {
			return fmt.Errorf("app run: %w", redisErr)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				a.Logger.WithError(err).Warn("closing redis client")
			}
		}()
		store = redisClient
	}

	unitOfWork, uowErr := initUOW(conn, store, a.Config.PackageCacheTTL, a.Logger)
	if uowErr != nil {
		return fmt.Errorf("app run: %w", uowErr)
	}
	unitOfWork.SetRetryPolicy(a.Config.TxRetries, func(err error) bool {
		return errors.Is(err, domain.ErrVersionConflict)
	})

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret: []byte(a.Config.JWTSecret),
		Withdrawal: service.WithdrawalPolicy{
			FeePercent: a.Config.WithdrawalFeePercent,
			MinAmount:  a.Config.WithdrawalMinAmount,
		},
	}, a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %w", sErr)
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:              a.Logger,
		UserService:         services.UserService,
		PackageService:      services.PackageService,
		PortfolioService:    services.PortfolioService,
		CommissionService:   services.CommissionService,
		FundsService:        services.FundsService,
		NotificationService: services.Notifier,
		JWTSecretKey:        []byte(a.Config.JWTSecret),
		CORSOrigins:         a.Config.CORSOrigins,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %w", routerErr)
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	processor := repair.NewProcessor(services.CommissionService, a.Logger).
		SetRepairWorkers(a.Config.RepairWorkers).
		SetLimitPerIteration(a.Config.RepairBatch).
		SetInterval(a.Config.RepairInterval)
	go processor.Run(notifyCtx)

	scheduler := jobs.NewScheduler(services.CommissionService, a.Logger)
	if err := scheduler.Start(notifyCtx, a.Config.ReconcileSpec); err != nil {
		return fmt.Errorf("app run: %w", err)
	}
	defer scheduler.Stop()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initUOW registers every repository. The package repository is wrapped in the redis read-through cache when
// store is set.
func initUOW(conn *pgxpool.Pool, store cache.Store, cacheTTL time.Duration, l *logrus.Logger) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[uow.RepositoryName]uow.RepositoryFactory{
		uow.RepositoryName(repoargs.UserRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		uow.RepositoryName(repoargs.InvestmentRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewInvestmentRepository(dbtx)
		},
		uow.RepositoryName(repoargs.CommissionRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCommissionRepository(dbtx)
		},
		uow.RepositoryName(repoargs.NotificationRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewNotificationRepository(dbtx)
		},
		uow.RepositoryName(repoargs.FundRepoName): func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewFundRepository(dbtx)
		},
		uow.RepositoryName(repoargs.PackageRepoName): func(dbtx uow.DBTX) uow.Repository {
			repo := pgrepo.NewPackageRepository(dbtx)
			if store == nil {
				return repo
			}
			return cache.NewPackageCache(repo, store, cacheTTL, l)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(name, factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %w", regErr)
		}
	}
	return unitOfWork, nil
}
