package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CarrierQuoteRequest body para POST /api/carrier/dhl/quotes.
// Códigos postales obligatorios; país por defecto MX en ambos extremos.
type CarrierQuoteRequest struct {
	OriginPostalCode      string  `json:"origin_postal_code" validate:"required"`
	OriginCity            string  `json:"origin_city" validate:"omitempty"`
	OriginCountry         string  `json:"origin_country" validate:"omitempty,len=2"`
	DestinationPostalCode string  `json:"destination_postal_code" validate:"required"`
	DestinationCity       string  `json:"destination_city" validate:"omitempty"`
	DestinationCountry    string  `json:"destination_country" validate:"omitempty,len=2"`
	WeightKG              float64 `json:"weight_kg" validate:"required,gt=0"`
	LengthCM              float64 `json:"length_cm" validate:"omitempty,gt=0"`
	WidthCM               float64 `json:"width_cm" validate:"omitempty,gt=0"`
	HeightCM              float64 `json:"height_cm" validate:"omitempty,gt=0"`
	CustomsDeclarable     *bool   `json:"customs_declarable,omitempty"`
}

// RegisterCarrierOfferRequest body para POST /api/carrier/dhl/quotes/register:
// persiste sobre una cotización la oferta del carrier que el staff eligió.
type RegisterCarrierOfferRequest struct {
	QuoteID     string          `json:"quote_id" validate:"required,uuid"`
	ProductCode string          `json:"product_code" validate:"required"`
	ProductName string          `json:"product_name" validate:"omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Currency    string          `json:"currency" validate:"required,len=3"`
}

// CarrierOfferResponse oferta normalizada de un carrier externo.
type CarrierOfferResponse struct {
	CarrierID   string          `json:"carrier_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Currency    string          `json:"currency"`
	ETADate     *time.Time      `json:"eta_date,omitempty"`
	ETADays     *int            `json:"eta_days,omitempty"`
}

// CarrierQuoteResponse lista ordenada por precio ascendente.
type CarrierQuoteResponse struct {
	Offers []CarrierOfferResponse `json:"offers"`
}
