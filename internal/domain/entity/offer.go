package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origen de una oferta sobre una cotización.
const (
	OfferSourceManual = "manual" // capturada por un proveedor en el portal
	OfferSourceAuto   = "auto"   // generada automáticamente desde provider_routes
	OfferSourceDHL    = "dhl"    // registrada desde una cotización en vivo de DHL
)

// Offer es la oferta de un proveedor (o carrier externo) sobre una cotización.
type Offer struct {
	ID        string
	QuoteID   string
	Provider  string
	Price     decimal.Decimal
	Currency  string
	Message   string
	Source    string
	CreatedAt time.Time
}
