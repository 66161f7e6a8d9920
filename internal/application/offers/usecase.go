// Package offers: puja de proveedores sobre cotizaciones abiertas.
package offers

import (
	"time"

	"github.com/google/uuid"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/application/quoting"
	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

// OfferUseCase casos de uso del portal de proveedores: ver cotizaciones
// abiertas, ofertar y consultar las ofertas de una cotización.
type OfferUseCase struct {
	quoteRepo    repository.QuoteRepository
	offerRepo    repository.OfferRepository
	routeRepo    repository.ProviderRouteRepository
	homeCurrency string
}

// NewOfferUseCase construye el caso de uso.
func NewOfferUseCase(
	quoteRepo repository.QuoteRepository,
	offerRepo repository.OfferRepository,
	routeRepo repository.ProviderRouteRepository,
	homeCurrency string,
) *OfferUseCase {
	return &OfferUseCase{quoteRepo: quoteRepo, offerRepo: offerRepo, routeRepo: routeRepo, homeCurrency: homeCurrency}
}

// ListOpenQuotes lista las cotizaciones pendientes sobre las que el proveedor
// aún no ha ofertado.
func (uc *OfferUseCase) ListOpenQuotes(provider string, page dto.PageRequest) (*dto.QuoteListResponse, error) {
	if provider == "" {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	quotes, err := uc.quoteRepo.ListOpenForProvider(provider, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.QuoteListResponse{
		Quotes: make([]dto.QuoteResponse, 0, len(quotes)),
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, q := range quotes {
		out.Quotes = append(out.Quotes, *quoting.ToQuoteResponse(q))
	}
	return out, nil
}

// CreateOffer registra la oferta manual de un proveedor. Un proveedor solo
// puede ofertar una vez por cotización; ofertar sobre una ya asignada es conflicto.
func (uc *OfferUseCase) CreateOffer(quoteID, provider string, in dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	if in.Provider != "" {
		provider = in.Provider
	}
	if provider == "" || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if quote.Assigned() {
		return nil, domain.ErrConflict
	}

	exists, err := uc.offerRepo.ExistsForProvider(quoteID, provider)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyOffered
	}

	currency := in.Currency
	if currency == "" {
		currency = uc.homeCurrency
	}
	offer := &entity.Offer{
		ID:        uuid.New().String(),
		QuoteID:   quoteID,
		Provider:  provider,
		Price:     in.Price.Round(2),
		Currency:  currency,
		Message:   in.Message,
		Source:    entity.OfferSourceManual,
		CreatedAt: time.Now(),
	}
	if err := uc.offerRepo.Create(offer); err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

// ListOffers lista las ofertas de una cotización, de la más reciente a la más antigua.
func (uc *OfferUseCase) ListOffers(quoteID string) ([]dto.OfferResponse, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	offers, err := uc.offerRepo.ListByQuote(quoteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, *toOfferResponse(o))
	}
	return out, nil
}

func toOfferResponse(o *entity.Offer) *dto.OfferResponse {
	return &dto.OfferResponse{
		ID:        o.ID,
		QuoteID:   o.QuoteID,
		Provider:  o.Provider,
		Price:     o.Price,
		Currency:  o.Currency,
		Message:   o.Message,
		Source:    o.Source,
		CreatedAt: o.CreatedAt,
	}
}
