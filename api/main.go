package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/mindwell-care/patients/auth"
	"github.com/mindwell-care/patients/authz"
	"github.com/mindwell-care/patients/config"
	"github.com/mindwell-care/patients/logger"
	"github.com/mindwell-care/patients/patients"
	"github.com/mindwell-care/patients/store"
)

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func MainLoop() {
	fx.New(
		fx.Provide(
			logger.NewProductionLogger,
			logger.Sugar,
			config.New,
			store.NewConfig,
			store.NewClient,
			store.NewDatabase,
			patients.NewRepository,
			patients.NewUniquenessValidator,
			patients.NewResourceFetcher,
			authz.NewOwnershipAuthorizer,
			patients.NewService,
			auth.NewConfig,
			auth.NewAuthenticator,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	).Run()
}
