package router

import (
	"github.com/finboard/dashboard/internal/application"
	"github.com/finboard/dashboard/internal/container"
	"github.com/finboard/dashboard/internal/infrastructure/gormdb"
	pginfra "github.com/finboard/dashboard/internal/infrastructure/postgres"
	handlers "github.com/finboard/dashboard/internal/interface/http"
	"github.com/finboard/dashboard/internal/router/modules"
)

// InitModules builds every module's dependency chain from the container
// singletons and registers the modules with the registry. Called once during
// startup, after the container has been populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	cache := container.GetInvalidator()

	invoiceRepo := pginfra.NewInvoiceRepository(container.GetPGPool())
	revenueRepo := pginfra.NewRevenueRepository(container.GetPGPool())
	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	customerRepo := gormdb.NewCustomerRepository(container.GetGorm())

	invoiceSvc := application.NewInvoiceService(invoiceRepo, cache, logger)
	customerSvc := application.NewCustomerService(
		customerRepo,
		cache,
		container.GetUploader(),
		cfg.UploadDriver == "gcs",
		logger,
	)
	dashboardSvc := application.NewDashboardService(invoiceRepo, customerRepo, revenueRepo, logger)
	authSvc := application.NewAuthService(userRepo, container.GetJWT(), container.GetRedis(), logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(dashboardSvc, logger), container.GetJWT()))
	r.Add(modules.NewInvoiceModule(handlers.NewInvoiceHandler(invoiceSvc, logger), container.GetJWT()))
	r.Add(modules.NewCustomerModule(handlers.NewCustomerHandler(customerSvc, logger), container.GetJWT()))
}
