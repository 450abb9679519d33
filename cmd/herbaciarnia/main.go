package main

import (
	"context"
	"log/slog"
	"os"

	"herbaciarnia/config"
	"herbaciarnia/internal/delivery"
	"herbaciarnia/internal/delivery/http"
	"herbaciarnia/internal/delivery/http/middleware"
	"herbaciarnia/internal/delivery/http/router/handler"
	"herbaciarnia/internal/domain/service"
	"herbaciarnia/internal/infra/catalog"
	logs "herbaciarnia/internal/infra/log"
	"herbaciarnia/internal/infra/persistence/localstore"
	"herbaciarnia/internal/infra/persistence/sqlite"
	"herbaciarnia/internal/infra/qrcode"
	"herbaciarnia/internal/usecase/impl"

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
		localstore.New,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			catalog.New,
			localstore.NewCartRepository,
			localstore.NewFavoritesRepository,
			sqlite.NewOrderRepository,
			sqlite.NewNewsletterRepository,
			sqlite.NewContactRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewFavoritesService,
			impl.NewCheckoutService,
			impl.NewAdminService,
			impl.NewNewsletterService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewFavoritesHandler,
			handler.NewCheckoutHandler,
			handler.NewEngagementHandler,
			handler.NewAdminHandler,
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
