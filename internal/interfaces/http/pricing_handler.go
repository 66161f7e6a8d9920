package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/application/usecase"
)

// PricingHandler administración de tarifas, márgenes y rangos de peso.
type PricingHandler struct {
	uc *usecase.PricingAdminUseCase
}

// NewPricingHandler construye el handler de pricing.
func NewPricingHandler(uc *usecase.PricingAdminUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// GetTables godoc
// @Summary      Configuración completa de pricing
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  dto.PricingTablesResponse
// @Router       /api/pricing [get]
func (h *PricingHandler) GetTables(c *fiber.Ctx) error {
	out, err := h.uc.GetTables()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListRates godoc
// @Summary      Tarifas base por ruta
// @Tags         pricing
// @Produce      json
// @Success      200  {array}  dto.RateResponse
// @Router       /api/pricing/rates [get]
func (h *PricingHandler) ListRates(c *fiber.Ctx) error {
	out, err := h.uc.ListRates()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListMargins godoc
// @Summary      Reglas de margen
// @Tags         pricing
// @Produce      json
// @Success      200  {array}  dto.MarginResponse
// @Router       /api/pricing/margins [get]
func (h *PricingHandler) ListMargins(c *fiber.Ctx) error {
	out, err := h.uc.ListMargins()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListWeightBrackets godoc
// @Summary      Rangos de peso
// @Tags         pricing
// @Produce      json
// @Success      200  {array}  dto.WeightBracketResponse
// @Router       /api/pricing/weight-margins [get]
func (h *PricingHandler) ListWeightBrackets(c *fiber.Ctx) error {
	out, err := h.uc.ListWeightBrackets()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpsertRate godoc
// @Summary      Crear o actualizar tarifa base de una ruta
// @Tags         pricing
// @Accept       json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pricing/rates [put]
func (h *PricingHandler) UpsertRate(c *fiber.Ctx) error {
	var in dto.RateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpsertRate(in); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpsertMargin godoc
// @Summary      Crear o actualizar regla de margen
// @Tags         pricing
// @Accept       json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pricing/margins [put]
func (h *PricingHandler) UpsertMargin(c *fiber.Ctx) error {
	var in dto.MarginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpsertMargin(in); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateWeightBracket godoc
// @Summary      Agregar rango de peso [min, max)
// @Tags         pricing
// @Accept       json
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "traslape con un rango existente"
// @Router       /api/pricing/weight-margins [post]
func (h *PricingHandler) CreateWeightBracket(c *fiber.Ctx) error {
	var in dto.WeightBracketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CreateWeightBracket(in); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
