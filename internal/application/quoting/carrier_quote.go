package quoting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/application/ports"
	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

// CarrierQuoteUseCase cotización en vivo contra un carrier externo y registro
// de la oferta elegida sobre una cotización interna.
type CarrierQuoteUseCase struct {
	carrier   ports.CarrierRateService
	quoteRepo repository.QuoteRepository
	offerRepo repository.OfferRepository
}

// NewCarrierQuoteUseCase construye el caso de uso.
func NewCarrierQuoteUseCase(
	carrier ports.CarrierRateService,
	quoteRepo repository.QuoteRepository,
	offerRepo repository.OfferRepository,
) *CarrierQuoteUseCase {
	return &CarrierQuoteUseCase{carrier: carrier, quoteRepo: quoteRepo, offerRepo: offerRepo}
}

// QuoteLive consulta las tarifas del carrier. Una lista vacía es un resultado
// válido (el carrier no cubre la ruta); solo el fallo de transporte es error.
func (uc *CarrierQuoteUseCase) QuoteLive(ctx context.Context, in dto.CarrierQuoteRequest) (*dto.CarrierQuoteResponse, error) {
	if in.OriginPostalCode == "" || in.DestinationPostalCode == "" || in.WeightKG <= 0 {
		return nil, domain.ErrInvalidInput
	}

	offers, err := uc.carrier.Quote(ctx, ports.RateQuery{
		OriginPostalCode:      in.OriginPostalCode,
		OriginCity:            in.OriginCity,
		OriginCountry:         in.OriginCountry,
		DestinationPostalCode: in.DestinationPostalCode,
		DestinationCity:       in.DestinationCity,
		DestinationCountry:    in.DestinationCountry,
		WeightKG:              in.WeightKG,
		LengthCM:              in.LengthCM,
		WidthCM:               in.WidthCM,
		HeightCM:              in.HeightCM,
		CustomsDeclarable:     in.CustomsDeclarable,
	})
	if err != nil {
		return nil, err
	}

	out := &dto.CarrierQuoteResponse{Offers: make([]dto.CarrierOfferResponse, 0, len(offers))}
	for _, o := range offers {
		out.Offers = append(out.Offers, dto.CarrierOfferResponse{
			CarrierID:   o.CarrierID,
			ProductCode: o.ProductCode,
			ProductName: o.ProductName,
			TotalPrice:  o.TotalPrice,
			Currency:    o.Currency,
			ETADate:     o.ETADate,
			ETADays:     o.ETADays,
		})
	}
	return out, nil
}

// RegisterOffer persiste sobre la cotización la oferta del carrier elegida por
// el staff, con el carrier como proveedor y origen "dhl". Un carrier solo puede
// tener una oferta por cotización.
func (uc *CarrierQuoteUseCase) RegisterOffer(ctx context.Context, in dto.RegisterCarrierOfferRequest) (*dto.OfferResponse, error) {
	if in.QuoteID == "" || in.ProductCode == "" || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	quote, err := uc.quoteRepo.GetByID(in.QuoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}

	exists, err := uc.offerRepo.ExistsForProvider(in.QuoteID, "DHL")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyOffered
	}

	name := in.ProductName
	if name == "" {
		name = in.ProductCode
	}
	offer := &entity.Offer{
		ID:        uuid.New().String(),
		QuoteID:   in.QuoteID,
		Provider:  "DHL",
		Price:     in.Price.Round(2),
		Currency:  in.Currency,
		Message:   fmt.Sprintf("Servicio %s", name),
		Source:    entity.OfferSourceDHL,
		CreatedAt: time.Now(),
	}
	if err := uc.offerRepo.Create(offer); err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

func toOfferResponse(o *entity.Offer) *dto.OfferResponse {
	if o == nil {
		return nil
	}
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
