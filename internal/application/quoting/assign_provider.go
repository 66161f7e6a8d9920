package quoting

import (
	"context"
	"fmt"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/application/ports"
	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
	"github.com/eonlogistics/eon-ops-api/pkg/logger"
)

// AssignProviderUseCase asigna un proveedor a una cotización pendiente y
// dispara las notificaciones: PDF al cliente (variante sin proveedor) y aviso
// por correo al proveedor.
//
// La asignación es lo único transaccionalmente importante; si el PDF o el
// correo fallan, la asignación queda y el fallo solo se registra en el log.
type AssignProviderUseCase struct {
	quoteRepo repository.QuoteRepository
	userRepo  repository.UserRepository
	pdfGen    ports.QuotePDFGenerator
	mailer    ports.Mailer
	log       *logger.Logger
}

// NewAssignProviderUseCase construye el caso de uso.
func NewAssignProviderUseCase(
	quoteRepo repository.QuoteRepository,
	userRepo repository.UserRepository,
	pdfGen ports.QuotePDFGenerator,
	mailer ports.Mailer,
	log *logger.Logger,
) *AssignProviderUseCase {
	return &AssignProviderUseCase{
		quoteRepo: quoteRepo,
		userRepo:  userRepo,
		pdfGen:    pdfGen,
		mailer:    mailer,
		log:       log,
	}
}

// AssignProvider fija el proveedor y pasa la cotización a Asignado.
// El proveedor puede venir de una oferta o capturarse directo; si existe como
// usuario se le notifica por correo.
func (uc *AssignProviderUseCase) AssignProvider(ctx context.Context, quoteID string, in dto.AssignProviderRequest) (*dto.QuoteResponse, error) {
	if in.Provider == "" {
		return nil, domain.ErrInvalidInput
	}

	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(quote.Status, entity.StatusAsignado) {
		return nil, fmt.Errorf("%w: no se puede asignar una cotización en estatus %q", domain.ErrInvalidTransition, quote.Status)
	}

	if err := uc.quoteRepo.UpdateAssignment(quote.ID, in.Provider, entity.StatusAsignado); err != nil {
		return nil, err
	}
	quote.AssignedProvider = in.Provider
	quote.Status = entity.StatusAsignado

	// PDF para el cliente: oculta el proveedor asignado.
	pdfBytes, err := uc.pdfGen.GenerateQuotePDF(ctx, quote, false)
	if err != nil {
		uc.log.Error().Err(err).Str("folio", quote.Folio).Msg("no se pudo generar el PDF de la cotización")
		pdfBytes = nil
	} else {
		filename := fmt.Sprintf("cotizacion_%s.pdf", quote.Folio)
		if err := uc.quoteRepo.UpdatePDFFile(quote.ID, filename); err != nil {
			uc.log.Error().Err(err).Str("folio", quote.Folio).Msg("no se pudo registrar el archivo PDF")
		} else {
			quote.PDFFile = filename
		}
	}

	if in.NotifyEmail {
		uc.notifyClient(ctx, quote, pdfBytes)
		uc.notifyProvider(ctx, quote)
	}

	return ToQuoteResponse(quote), nil
}

// Unassign regresa la cotización a pendiente (quitar proveedor).
func (uc *AssignProviderUseCase) Unassign(ctx context.Context, quoteID string) (*dto.QuoteResponse, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(quote.Status, entity.StatusPendiente) {
		return nil, fmt.Errorf("%w: no se puede desasignar una cotización en estatus %q", domain.ErrInvalidTransition, quote.Status)
	}
	if err := uc.quoteRepo.UpdateAssignment(quote.ID, "", entity.StatusPendiente); err != nil {
		return nil, err
	}
	quote.AssignedProvider = ""
	quote.Status = entity.StatusPendiente
	return ToQuoteResponse(quote), nil
}

// DownloadQuotePDF genera el PDF bajo demanda. showProvider true para la
// variante interna del staff.
func (uc *AssignProviderUseCase) DownloadQuotePDF(ctx context.Context, quoteID string, showProvider bool) (pdfBytes []byte, filename string, err error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, "", err
	}
	if quote == nil {
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err = uc.pdfGen.GenerateQuotePDF(ctx, quote, showProvider)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("cotizacion_%s.pdf", quote.Folio), nil
}

func (uc *AssignProviderUseCase) notifyClient(ctx context.Context, quote *entity.Quote, pdfBytes []byte) {
	client, err := uc.userRepo.GetByName(quote.ClientName)
	if err != nil || client == nil || client.Email == "" {
		uc.log.Warn().Str("cliente", quote.ClientName).Msg("cliente sin correo registrado, no se envía cotización")
		return
	}
	subject := fmt.Sprintf("Tu cotización %s está lista", quote.Folio)
	body := fmt.Sprintf(
		"Hola %s,\n\nTu envío %s → %s ya tiene transporte asignado.\n"+
			"Precio total: %s %s.\n\nSigue tu envío en: %s\n\nEON Logistics",
		quote.ClientName, quote.Origin, quote.Destination,
		quote.TotalPrice.StringFixed(2), quote.Currency, quote.TrackingURL,
	)
	var attachments []ports.Attachment
	if len(pdfBytes) > 0 {
		attachments = append(attachments, ports.Attachment{
			Filename: fmt.Sprintf("cotizacion_%s.pdf", quote.Folio),
			MIMEType: "application/pdf",
			Content:  pdfBytes,
		})
	}
	if err := uc.mailer.Send(ctx, client.Email, subject, body, attachments...); err != nil {
		uc.log.Error().Err(err).Str("folio", quote.Folio).Msg("no se pudo enviar la cotización al cliente")
	}
}

func (uc *AssignProviderUseCase) notifyProvider(ctx context.Context, quote *entity.Quote) {
	provider, err := uc.userRepo.GetByName(quote.AssignedProvider)
	if err != nil || provider == nil || provider.Email == "" {
		uc.log.Warn().Str("proveedor", quote.AssignedProvider).Msg("proveedor sin correo registrado, no se envía aviso")
		return
	}
	subject := fmt.Sprintf("Servicio asignado: %s", quote.Folio)
	body := fmt.Sprintf(
		"Hola %s,\n\nSe te asignó el envío %s:\n"+
			"Ruta: %s → %s\nUnidad: %s\nPeso: %s kg\n\nEON Logistics",
		quote.AssignedProvider, quote.Folio,
		quote.Origin, quote.Destination, quote.UnitType, quote.WeightKG.String(),
	)
	if err := uc.mailer.Send(ctx, provider.Email, subject, body); err != nil {
		uc.log.Error().Err(err).Str("folio", quote.Folio).Msg("no se pudo enviar el aviso al proveedor")
	}
}
