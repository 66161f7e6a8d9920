package quoting

import (
	"fmt"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

// TrackingUseCase seguimiento por folio y avance de estatus.
type TrackingUseCase struct {
	quoteRepo repository.QuoteRepository
}

// NewTrackingUseCase construye el caso de uso.
func NewTrackingUseCase(quoteRepo repository.QuoteRepository) *TrackingUseCase {
	return &TrackingUseCase{quoteRepo: quoteRepo}
}

// TrackByFolio devuelve la vista pública de seguimiento: ruta, unidad y
// estatus, sin precios ni márgenes.
func (uc *TrackingUseCase) TrackByFolio(folio string) (*dto.TrackingResponse, error) {
	if folio == "" {
		return nil, domain.ErrInvalidInput
	}
	quote, err := uc.quoteRepo.GetByFolio(folio)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.TrackingResponse{
		Folio:       quote.Folio,
		Origin:      quote.Origin,
		Destination: quote.Destination,
		UnitType:    quote.UnitType,
		Status:      quote.Status,
		CreatedAt:   quote.CreatedAt,
	}, nil
}

// UpdateStatus avanza el estatus validando la transición.
// El flujo es lineal; saltarse etapas o retroceder (salvo desasignar) es
// ErrInvalidTransition.
func (uc *TrackingUseCase) UpdateStatus(quoteID string, in dto.UpdateStatusRequest) (*dto.QuoteResponse, error) {
	if !entity.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(quote.Status, in.Status) {
		return nil, fmt.Errorf("%w: de %q a %q", domain.ErrInvalidTransition, quote.Status, in.Status)
	}
	// Regresar a pendiente implica soltar al proveedor.
	if in.Status == entity.StatusPendiente {
		if err := uc.quoteRepo.UpdateAssignment(quote.ID, "", entity.StatusPendiente); err != nil {
			return nil, err
		}
		quote.AssignedProvider = ""
	} else if err := uc.quoteRepo.UpdateStatus(quote.ID, in.Status); err != nil {
		return nil, err
	}
	quote.Status = in.Status
	return ToQuoteResponse(quote), nil
}
