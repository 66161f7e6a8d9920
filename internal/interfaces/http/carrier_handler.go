package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/application/quoting"
	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/pricing"
)

// CarrierHandler cotizaciones en vivo contra carriers externos.
type CarrierHandler struct {
	uc *quoting.CarrierQuoteUseCase
}

// NewCarrierHandler construye el handler de carriers.
func NewCarrierHandler(uc *quoting.CarrierQuoteUseCase) *CarrierHandler {
	return &CarrierHandler{uc: uc}
}

// Quote godoc
// @Summary      Cotizar en vivo contra DHL
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CarrierQuoteRequest  true  "códigos postales y peso"
// @Success      200   {object}  dto.CarrierQuoteResponse
// @Failure      502   {object}  dto.ErrorResponse  "fallo de transporte contra el carrier"
// @Router       /api/carrier/dhl/quotes [post]
func (h *CarrierHandler) Quote(c *fiber.Ctx) error {
	var in dto.CarrierQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.QuoteLive(c.Context(), in)
	if err != nil {
		return respondCarrierError(c, err)
	}
	return c.JSON(out)
}

// RegisterOffer godoc
// @Summary      Registrar la oferta elegida del carrier sobre una cotización
// @Tags         carriers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCarrierOfferRequest  true  "cotización y servicio elegido"
// @Success      201   {object}  dto.OfferResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carrier/dhl/quotes/register [post]
func (h *CarrierHandler) RegisterOffer(c *fiber.Ctx) error {
	var in dto.RegisterCarrierOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterOffer(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// respondCarrierError distingue los errores propios (validación) de los fallos
// de red o de la API del carrier, que son 502.
func respondCarrierError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, pricing.ErrInvalidRequest) {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CARRIER_UNAVAILABLE", Message: err.Error()})
}
