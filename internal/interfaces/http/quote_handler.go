package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/application/quoting"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
)

// QuoteHandler maneja el ciclo de vida de cotizaciones: creación, listado,
// asignación, estatus, seguimiento y PDF.
type QuoteHandler struct {
	createUC   *quoting.CreateQuoteUseCase
	quickUC    *quoting.QuickQuoteUseCase
	assignUC   *quoting.AssignProviderUseCase
	trackingUC *quoting.TrackingUseCase
}

// NewQuoteHandler construye el handler de cotizaciones.
func NewQuoteHandler(
	createUC *quoting.CreateQuoteUseCase,
	quickUC *quoting.QuickQuoteUseCase,
	assignUC *quoting.AssignProviderUseCase,
	trackingUC *quoting.TrackingUseCase,
) *QuoteHandler {
	return &QuoteHandler{createUC: createUC, quickUC: quickUC, assignUC: assignUC, trackingUC: trackingUC}
}

// Create godoc
// @Summary      Crear cotización (modelo por kg)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "datos del envío"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      422   {object}  dto.ErrorResponse  "configuración de pricing incompleta"
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Un cliente autenticado cotiza a su propio nombre.
	if in.ClientName == "" && GetRole(c) == entity.RoleCliente {
		in.ClientName = GetName(c)
	}
	out, err := h.createUC.CreateQuote(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Quick godoc
// @Summary      Cotización rápida por distancia (no persiste)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuickQuoteRequest  true  "origen, destino, distancia"
// @Success      200   {object}  dto.QuickQuoteResponse
// @Router       /api/quotes/quick [post]
func (h *QuoteHandler) Quick(c *fiber.Ctx) error {
	var in dto.QuickQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ClientName == "" {
		in.ClientName = GetName(c)
	}
	out, err := h.quickUC.QuickQuote(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar cotizaciones (filtros: status, client)
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  dto.QuoteListResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	var in dto.ListQuotesRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	// El cliente solo ve sus propias cotizaciones.
	if GetRole(c) == entity.RoleCliente {
		in.Client = GetName(c)
	}
	out, err := h.createUC.ListQuotes(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cotización por id
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.createUC.GetQuote(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	// El cliente no puede ver cotizaciones ajenas.
	if GetRole(c) == entity.RoleCliente && out.ClientName != GetName(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida"})
	}
	return c.JSON(out)
}

// TrackByFolio godoc
// @Summary      Seguimiento público por folio (sin precios)
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  dto.TrackingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/folio/{folio} [get]
func (h *QuoteHandler) TrackByFolio(c *fiber.Ctx) error {
	out, err := h.trackingUC.TrackByFolio(c.Params("folio"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Avanzar estatus de la cotización
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStatusRequest  true  "nuevo estatus"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      409   {object}  dto.ErrorResponse  "transición inválida"
// @Router       /api/quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.trackingUC.UpdateStatus(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Assign godoc
// @Summary      Asignar proveedor (PDF al cliente + aviso al proveedor)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignProviderRequest  true  "proveedor elegido"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/assign [post]
func (h *QuoteHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.assignUC.AssignProvider(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Unassign godoc
// @Summary      Quitar proveedor y regresar a pendiente
// @Tags         quotes
// @Produce      json
// @Success      200  {object}  dto.QuoteResponse
// @Router       /api/quotes/{id}/assign [delete]
func (h *QuoteHandler) Unassign(c *fiber.Ctx) error {
	out, err := h.assignUC.Unassign(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar la cotización en PDF
// @Tags         quotes
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) DownloadPDF(c *fiber.Ctx) error {
	// Solo el staff ve el proveedor asignado en el documento.
	showProvider := GetRole(c) == entity.RoleAdmin
	pdfBytes, filename, err := h.assignUC.DownloadQuotePDF(c.Context(), c.Params("id"), showProvider)
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
