package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"panel/config"
	"panel/internal/delivery"
	"panel/internal/delivery/http"
	httpmiddleware "panel/internal/delivery/http/middleware"
	"panel/internal/delivery/http/router/handler"
	"panel/internal/infra/auth"
	"panel/internal/infra/cache"
	logs "panel/internal/infra/log"
	"panel/internal/infra/mail"
	"panel/internal/infra/persistence/postgres"
	"panel/internal/usecase/impl"
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
		cache.NewClient,
		cache.NewRedisCache,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVCodeRepository,
			postgres.NewRoleRepository,
			postgres.NewPermissionRepository,
			postgres.NewDictionaryRepository,
			postgres.NewResourceRepository,
			postgres.NewMenuRepository,
			postgres.NewOperationLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewCodeGenerator,
			auth.NewJWTService,
			mail.NewSMTPSender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewDictionaryService,
			impl.NewResourceService,
			impl.NewMenuService,
			impl.NewOperationLogService,
			impl.NewRoleService,
			impl.NewPermissionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewGuards,
			httpmiddleware.NewErrorMiddleware,
			httpmiddleware.NewOperationLogMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewDictionaryHandler,
			handler.NewResourceHandler,
			handler.NewMenuHandler,
			handler.NewOperationLogHandler,
			handler.NewRoleHandler,
			handler.NewPermissionHandler,
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
