package ports

import (
	"context"

	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
)

// QuotePDFGenerator define el puerto de salida para la representación en PDF
// de una cotización.
//
// showProvider controla la variante: el documento interno muestra el proveedor
// asignado; el que se envía al cliente lo oculta.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, quote *entity.Quote, showProvider bool) ([]byte, error)
}
