package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eonlogistics/eon-ops-api/internal/application/analytics"
	"github.com/eonlogistics/eon-ops-api/internal/application/auth"
	"github.com/eonlogistics/eon-ops-api/internal/application/offers"
	"github.com/eonlogistics/eon-ops-api/internal/application/quoting"
	"github.com/eonlogistics/eon-ops-api/internal/application/usecase"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CreateQuote *quoting.CreateQuoteUseCase
	QuickQuote  *quoting.QuickQuoteUseCase
	AssignUC    *quoting.AssignProviderUseCase
	TrackingUC  *quoting.TrackingUseCase
	CarrierUC   *quoting.CarrierQuoteUseCase
	OfferUC     *offers.OfferUseCase
	PricingUC   *usecase.PricingAdminUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Quotes (protegido)
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.CreateQuote, deps.QuickQuote, deps.AssignUC, deps.TrackingUC)
	offerHandler := NewOfferHandler(deps.OfferUC)
	quotes.Post("/", RequireRole(entity.RoleAdmin), quoteHandler.Create)
	quotes.Post("/quick", RequireRole(entity.RoleAdmin, entity.RoleCliente), quoteHandler.Quick)
	quotes.Get("/", quoteHandler.List)
	// Las rutas fijas van antes de /:id para que Fiber no las capture como id.
	quotes.Get("/open", RequireRole(entity.RoleProveedor), offerHandler.ListOpen)
	quotes.Get("/folio/:folio", quoteHandler.TrackByFolio)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Patch("/:id/status", RequireRole(entity.RoleAdmin, entity.RoleProveedor), quoteHandler.UpdateStatus)
	quotes.Post("/:id/assign", RequireRole(entity.RoleAdmin), quoteHandler.Assign)
	quotes.Delete("/:id/assign", RequireRole(entity.RoleAdmin), quoteHandler.Unassign)
	quotes.Get("/:id/pdf", quoteHandler.DownloadPDF)

	// Offers (protegido, portal de proveedores)
	quotes.Post("/:id/offers", RequireRole(entity.RoleAdmin, entity.RoleProveedor), offerHandler.Create)
	quotes.Get("/:id/offers", RequireRole(entity.RoleAdmin, entity.RoleProveedor), offerHandler.List)

	routes := protected.Group("/provider-routes")
	routes.Post("/", RequireRole(entity.RoleAdmin, entity.RoleProveedor), offerHandler.RegisterRoute)
	routes.Get("/", RequireRole(entity.RoleAdmin, entity.RoleProveedor), offerHandler.ListRoutes)

	// Carrier DHL (protegido, admin)
	carrier := protected.Group("/carrier/dhl", RequireRole(entity.RoleAdmin))
	carrierHandler := NewCarrierHandler(deps.CarrierUC)
	carrier.Post("/quotes", carrierHandler.Quote)
	carrier.Post("/quotes/register", carrierHandler.RegisterOffer)

	// Pricing (protegido, admin)
	pricing := protected.Group("/pricing", RequireRole(entity.RoleAdmin))
	pricingHandler := NewPricingHandler(deps.PricingUC)
	pricing.Get("/", pricingHandler.GetTables)
	pricing.Get("/rates", pricingHandler.ListRates)
	pricing.Put("/rates", pricingHandler.UpsertRate)
	pricing.Get("/margins", pricingHandler.ListMargins)
	pricing.Put("/margins", pricingHandler.UpsertMargin)
	pricing.Get("/weight-margins", pricingHandler.ListWeightBrackets)
	pricing.Post("/weight-margins", pricingHandler.CreateWeightBracket)

	// Dashboard (protegido, admin)
	dashboard := protected.Group("/dashboard", RequireRole(entity.RoleAdmin))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/alerts", dashboardHandler.Alerts)
}
