package quoting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
	"github.com/eonlogistics/eon-ops-api/internal/domain/pricing"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

// Config parámetros del módulo de cotización.
type Config struct {
	HomeCurrency string // moneda en la que se expresan los precios (ej. MXN)
	TrackingBase string // base de la URL pública de seguimiento
}

// CreateQuoteUseCase cotiza con el modelo canónico por kg y persiste.
//
// La creación es atómica: la cotización y sus ofertas automáticas (una por
// proveedor registrado en provider_routes para la ruta y unidad) se insertan
// en la misma transacción.
type CreateQuoteUseCase struct {
	txRunner    QuoteTxRunner
	quoteRepo   repository.QuoteRepository
	pricingRepo repository.PricingRepository
	routeRepo   repository.ProviderRouteRepository
	cfg         Config
}

// NewCreateQuoteUseCase construye el caso de uso.
func NewCreateQuoteUseCase(
	txRunner QuoteTxRunner,
	quoteRepo repository.QuoteRepository,
	pricingRepo repository.PricingRepository,
	routeRepo repository.ProviderRouteRepository,
	cfg Config,
) *CreateQuoteUseCase {
	return &CreateQuoteUseCase{
		txRunner:    txRunner,
		quoteRepo:   quoteRepo,
		pricingRepo: pricingRepo,
		routeRepo:   routeRepo,
		cfg:         cfg,
	}
}

// CreateQuote calcula el precio sobre un snapshot de tablas y persiste la
// cotización con folio nuevo. Una cotización nunca se recalcula en sitio:
// re-cotizar crea otra fila.
//
// Los errores del motor (tarifa/margen/rango faltante) se devuelven tal cual
// para que el handler los mapee a 422 con mensaje accionable.
func (uc *CreateQuoteUseCase) CreateQuote(ctx context.Context, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.ClientName == "" || !entity.ValidUnitType(in.UnitType) {
		return nil, domain.ErrInvalidInput
	}

	tables, err := uc.pricingRepo.Snapshot()
	if err != nil {
		return nil, err
	}

	result, err := pricing.Quote(tables, pricing.Request{
		Origin:      in.Origin,
		Destination: in.Destination,
		Weight:      in.WeightKG,
		UnitType:    in.UnitType,
		Client:      in.ClientName,
	})
	if err != nil {
		return nil, err
	}

	folio := NewFolio()
	quote := &entity.Quote{
		ID:              uuid.New().String(),
		Folio:           folio,
		ClientName:      in.ClientName,
		Origin:          in.Origin,
		Destination:     in.Destination,
		WeightKG:        in.WeightKG,
		Description:     in.Description,
		UnitType:        in.UnitType,
		BaseRate:        result.BaseRate,
		MarginUnitPct:   result.MarginUnit,
		MarginWeightPct: result.MarginWeight,
		TotalPrice:      result.Total,
		Currency:        uc.cfg.HomeCurrency,
		Status:          entity.StatusPendiente,
		TrackingURL:     TrackingURL(uc.cfg.TrackingBase, folio),
		CreatedAt:       time.Now(),
	}

	// Abanico de ofertas automáticas: un proveedor por ruta registrada,
	// precio = total cotizado × factor del proveedor.
	routes, err := uc.routeRepo.ListByRoute(in.Origin, in.Destination, in.UnitType)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.RunQuote(ctx, func(quoteRepo repository.QuoteRepository, offerRepo repository.OfferRepository) error {
		if err := quoteRepo.Create(quote); err != nil {
			return err
		}
		for _, route := range routes {
			offer := &entity.Offer{
				ID:        uuid.New().String(),
				QuoteID:   quote.ID,
				Provider:  route.Provider,
				Price:     quote.TotalPrice.Mul(route.PriceFactor).Round(2),
				Currency:  quote.Currency,
				Message:   fmt.Sprintf("Oferta automática por ruta %s → %s", route.Origin, route.Destination),
				Source:    entity.OfferSourceAuto,
				CreatedAt: quote.CreatedAt,
			}
			if err := offerRepo.Create(offer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToQuoteResponse(quote), nil
}

// NewFolio genera el identificador público corto: los primeros 8 caracteres
// de un UUID, en mayúsculas.
func NewFolio() string {
	return strings.ToUpper(uuid.New().String()[:8])
}

// TrackingURL arma la URL pública de seguimiento para un folio.
func TrackingURL(base, folio string) string {
	return strings.TrimRight(base, "/") + "/track/" + folio
}

// ToQuoteResponse mapea la entidad al DTO de respuesta.
func ToQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	return &dto.QuoteResponse{
		ID:               q.ID,
		Folio:            q.Folio,
		ClientName:       q.ClientName,
		Origin:           q.Origin,
		Destination:      q.Destination,
		WeightKG:         q.WeightKG,
		DistanceKM:       q.DistanceKM,
		Description:      q.Description,
		UnitType:         q.UnitType,
		BaseRate:         q.BaseRate,
		MarginUnitPct:    q.MarginUnitPct,
		MarginWeightPct:  q.MarginWeightPct,
		TotalPrice:       q.TotalPrice,
		Currency:         q.Currency,
		Status:           q.Status,
		TrackingURL:      q.TrackingURL,
		AssignedProvider: q.AssignedProvider,
		PDFFile:          q.PDFFile,
		CreatedAt:        q.CreatedAt,
	}
}

// ListQuotes lista cotizaciones con filtros opcionales de estatus y cliente.
func (uc *CreateQuoteUseCase) ListQuotes(in dto.ListQuotesRequest) (*dto.QuoteListResponse, error) {
	if in.Status != "" && !entity.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	in.DefaultPage()
	quotes, err := uc.quoteRepo.List(in.Status, in.Client, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.QuoteListResponse{
		Quotes: make([]dto.QuoteResponse, 0, len(quotes)),
		Page:   dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}
	for _, q := range quotes {
		out.Quotes = append(out.Quotes, *ToQuoteResponse(q))
	}
	return out, nil
}

// GetQuote obtiene una cotización por id.
func (uc *CreateQuoteUseCase) GetQuote(id string) (*dto.QuoteResponse, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	return ToQuoteResponse(quote), nil
}
