package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/application/offers"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
)

// OfferHandler portal de proveedores: cotizaciones abiertas, ofertas y rutas.
type OfferHandler struct {
	uc *offers.OfferUseCase
}

// NewOfferHandler construye el handler de ofertas.
func NewOfferHandler(uc *offers.OfferUseCase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

// ListOpen godoc
// @Summary      Cotizaciones abiertas para el proveedor autenticado
// @Tags         offers
// @Produce      json
// @Success      200  {object}  dto.QuoteListResponse
// @Router       /api/quotes/open [get]
func (h *OfferHandler) ListOpen(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.ListOpenQuotes(GetName(c), page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Ofertar sobre una cotización
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOfferRequest  true  "precio y mensaje"
// @Success      201   {object}  dto.OfferResponse
// @Failure      409   {object}  dto.ErrorResponse  "ya ofertó o ya está asignada"
// @Router       /api/quotes/{id}/offers [post]
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El proveedor autenticado oferta a su nombre; solo el admin puede
	// capturar ofertas de terceros.
	if GetRole(c) != entity.RoleAdmin {
		in.Provider = ""
	}
	out, err := h.uc.CreateOffer(c.Params("id"), GetName(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Ofertas de una cotización
// @Tags         offers
// @Produce      json
// @Success      200  {array}  dto.OfferResponse
// @Router       /api/quotes/{id}/offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOffers(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// RegisterRoute godoc
// @Summary      Registrar ruta atendida por el proveedor
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProviderRouteRequest  true  "ruta, unidad y factor"
// @Success      201   {object}  dto.ProviderRouteResponse
// @Router       /api/provider-routes [post]
func (h *OfferHandler) RegisterRoute(c *fiber.Ctx) error {
	var in dto.ProviderRouteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if GetRole(c) != entity.RoleAdmin {
		in.Provider = ""
	}
	out, err := h.uc.RegisterRoute(GetName(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRoutes godoc
// @Summary      Listar rutas de proveedores
// @Tags         offers
// @Produce      json
// @Success      200  {array}  dto.ProviderRouteResponse
// @Router       /api/provider-routes [get]
func (h *OfferHandler) ListRoutes(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.ListRoutes(page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
