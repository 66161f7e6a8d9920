package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOfferRequest body para POST /api/quotes/:id/offers.
// Provider viene del token cuando oferta un proveedor autenticado;
// el staff puede capturarlo explícito.
type CreateOfferRequest struct {
	Provider string          `json:"provider" validate:"omitempty,max=200"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Currency string          `json:"currency" validate:"omitempty,len=3"`
	Message  string          `json:"message" validate:"omitempty,max=500"`
}

// OfferResponse oferta sobre una cotización.
type OfferResponse struct {
	ID        string          `json:"id"`
	QuoteID   string          `json:"quote_id"`
	Provider  string          `json:"provider"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Message   string          `json:"message,omitempty"`
	Source    string          `json:"source"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProviderRouteRequest body para registrar la ruta que atiende un proveedor.
type ProviderRouteRequest struct {
	Provider    string          `json:"provider" validate:"omitempty,max=200"`
	Origin      string          `json:"origin" validate:"required"`
	Destination string          `json:"destination" validate:"required"`
	UnitType    string          `json:"unit_type" validate:"required"`
	PriceFactor decimal.Decimal `json:"price_factor" validate:"required"`
}

// ProviderRouteResponse ruta de proveedor en respuestas.
type ProviderRouteResponse struct {
	ID          string          `json:"id"`
	Provider    string          `json:"provider"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	UnitType    string          `json:"unit_type"`
	PriceFactor decimal.Decimal `json:"price_factor"`
}
