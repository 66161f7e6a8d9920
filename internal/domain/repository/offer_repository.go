package repository

import "github.com/eonlogistics/eon-ops-api/internal/domain/entity"

// OfferRepository define el puerto de persistencia para ofertas de proveedores.
type OfferRepository interface {
	Create(offer *entity.Offer) error
	ListByQuote(quoteID string) ([]*entity.Offer, error)
	// ExistsForProvider indica si el proveedor ya ofertó sobre la cotización.
	ExistsForProvider(quoteID, provider string) (bool, error)
}
