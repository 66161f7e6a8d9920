package quoting

import (
	"context"

	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

// QuoteTxRunner ejecuta una función con repos de cotizaciones y ofertas dentro
// de una sola transacción. La creación de cotización y el abanico de ofertas
// automáticas deben ser atómicos: si una oferta falla, no queda cotización a medias.
type QuoteTxRunner interface {
	RunQuote(ctx context.Context, fn func(
		quoteRepo repository.QuoteRepository,
		offerRepo repository.OfferRepository,
	) error) error
}
