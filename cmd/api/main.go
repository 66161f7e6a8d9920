package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/eonlogistics/eon-ops-api/internal/application/analytics"
	"github.com/eonlogistics/eon-ops-api/internal/application/auth"
	"github.com/eonlogistics/eon-ops-api/internal/application/offers"
	"github.com/eonlogistics/eon-ops-api/internal/application/quoting"
	"github.com/eonlogistics/eon-ops-api/internal/application/usecase"
	"github.com/eonlogistics/eon-ops-api/internal/infrastructure/dhl"
	inframail "github.com/eonlogistics/eon-ops-api/internal/infrastructure/mail"
	infrapdf "github.com/eonlogistics/eon-ops-api/internal/infrastructure/pdf"
	"github.com/eonlogistics/eon-ops-api/internal/infrastructure/postgres"
	httpRouter "github.com/eonlogistics/eon-ops-api/internal/interfaces/http"
	"github.com/eonlogistics/eon-ops-api/pkg/config"
	"github.com/eonlogistics/eon-ops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	pricingRepo := postgres.NewPricingRepository(pool)
	routeRepo := postgres.NewProviderRouteRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	quotingCfg := quoting.Config{
		HomeCurrency: cfg.App.HomeCurrency,
		TrackingBase: cfg.App.TrackingBase,
	}

	// PDF de cotización y correos transaccionales
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	mailer := inframail.NewGomailMailer(cfg.SMTP)

	// Carrier externo: tarifas MyDHL normalizadas a la moneda de referencia
	dhlClient := dhl.NewClient(cfg.DHL, cfg.App.HomeCurrency)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	createQuoteUC := quoting.NewCreateQuoteUseCase(txRunner, quoteRepo, pricingRepo, routeRepo, quotingCfg)
	quickQuoteUC := quoting.NewQuickQuoteUseCase(pricingRepo, quotingCfg)
	assignUC := quoting.NewAssignProviderUseCase(quoteRepo, userRepo, pdfGenerator, mailer, log)
	trackingUC := quoting.NewTrackingUseCase(quoteRepo)
	carrierUC := quoting.NewCarrierQuoteUseCase(dhlClient, quoteRepo, offerRepo)
	offerUC := offers.NewOfferUseCase(quoteRepo, offerRepo, routeRepo, cfg.App.HomeCurrency)
	pricingUC := usecase.NewPricingAdminUseCase(pricingRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EON Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CreateQuote: createQuoteUC,
		QuickQuote:  quickQuoteUC,
		AssignUC:    assignUC,
		TrackingUC:  trackingUC,
		CarrierUC:   carrierUC,
		OfferUC:     offerUC,
		PricingUC:   pricingUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
