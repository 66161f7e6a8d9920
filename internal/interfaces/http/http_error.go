package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/pricing"
)

// respondDomainError mapea errores de dominio a estatus HTTP.
//
// Los errores del motor de precios son 422: la petición está bien formada pero
// falta configuración de tarifas, y el mensaje le dice al staff qué tabla
// completar. Los fallos contra el carrier externo son 502.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, pricing.ErrNoBaseRate):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "NO_BASE_RATE", Message: "no hay tarifa registrada para esta ruta; configúrala en /api/pricing/rates"})
	case errors.Is(err, pricing.ErrNoMargin):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "NO_MARGIN", Message: "no hay margen aplicable (cliente, unidad ni general); configúralo en /api/pricing/margins"})
	case errors.Is(err, pricing.ErrNoWeightMargin):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "NO_WEIGHT_MARGIN", Message: "no hay rango de peso que cubra este envío; configúralo en /api/pricing/weight-margins"})
	case errors.Is(err, pricing.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrAlreadyOffered):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "ALREADY_OFFERED", Message: "el proveedor ya tiene una oferta sobre esta cotización"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INVALID_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: "operación no permitida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error()})
	}
}
