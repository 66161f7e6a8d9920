package quoting

import (
	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/domain/pricing"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

// QuickQuoteUseCase estimación rápida por kilómetro para el portal de clientes.
// No persiste nada: la tarifa base de la ruta se interpreta como precio por km
// y solo aplica el margen de la cadena cliente/unidad/general.
type QuickQuoteUseCase struct {
	pricingRepo repository.PricingRepository
	cfg         Config
}

// NewQuickQuoteUseCase construye el caso de uso.
func NewQuickQuoteUseCase(pricingRepo repository.PricingRepository, cfg Config) *QuickQuoteUseCase {
	return &QuickQuoteUseCase{pricingRepo: pricingRepo, cfg: cfg}
}

// QuickQuote calcula el estimado sin folio ni registro.
func (uc *QuickQuoteUseCase) QuickQuote(in dto.QuickQuoteRequest) (*dto.QuickQuoteResponse, error) {
	tables, err := uc.pricingRepo.Snapshot()
	if err != nil {
		return nil, err
	}

	result, err := pricing.QuoteDistance(tables, pricing.Request{
		Origin:      in.Origin,
		Destination: in.Destination,
		DistanceKM:  in.DistanceKM,
		UnitType:    in.UnitType,
		Client:      in.ClientName,
	})
	if err != nil {
		return nil, err
	}

	return &dto.QuickQuoteResponse{
		Origin:      in.Origin,
		Destination: in.Destination,
		DistanceKM:  in.DistanceKM,
		BaseRate:    result.BaseRate,
		MarginPct:   result.MarginUnit,
		Total:       result.Total,
		Currency:    uc.cfg.HomeCurrency,
	}, nil
}
