package ports

import (
	"context"

	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
)

// RateQuery parámetros de una cotización en vivo contra un carrier externo.
// País por defecto MX en ambos extremos; dimensiones en cm (el adaptador aplica
// defaults si faltan).
type RateQuery struct {
	OriginPostalCode      string
	OriginCity            string
	OriginCountry         string
	DestinationPostalCode string
	DestinationCity       string
	DestinationCountry    string
	WeightKG              float64
	LengthCM              float64
	WidthCM               float64
	HeightCM              float64
	// CustomsDeclarable solo aplica a envíos internacionales; nil = default del adaptador.
	CustomsDeclarable *bool
}

// CarrierRateService define el puerto de salida hacia la API de tarifas de un carrier.
// La implementación hace la llamada de red y entrega la lista YA normalizada
// (ordenada por precio, moneda de casa preferida, productos sin precio excluidos).
// Una lista vacía es un resultado válido; solo los fallos de transporte son error.
type CarrierRateService interface {
	Quote(ctx context.Context, q RateQuery) ([]entity.CarrierOffer, error)
}
