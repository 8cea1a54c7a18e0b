package main

import (
	"context"
	"log/slog"
	"os"

	"canteen/config"
	"canteen/internal/delivery"
	"canteen/internal/delivery/http"
	"canteen/internal/delivery/http/middleware"
	"canteen/internal/delivery/http/router/handler"
	logs "canteen/internal/infra/log"
	"canteen/internal/infra/persistence/postgres"
	"canteen/internal/infra/pubsub"
	"canteen/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewAccountRepository,
			postgres.NewArchiveLogRepository,
			postgres.NewCatalogRepository,
			postgres.NewStockRepository,
			postgres.NewOrderRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewProcurementRepository,
			postgres.NewWriteOffRepository,
			postgres.NewNotificationRepository,
			postgres.NewIdempotencyRepository,
		),
	)
}

func injectService() fx.Option {
	return pubsub.Module
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderService,
			impl.NewBundleService,
			impl.NewInventoryService,
			impl.NewCatalogService,
			impl.NewReportService,
			impl.NewAccountService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOrderHandler,
			handler.NewBundleHandler,
			handler.NewInventoryHandler,
			handler.NewCatalogHandler,
			handler.NewReportHandler,
			handler.NewAccountHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
