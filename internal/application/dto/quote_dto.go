package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateQuoteRequest body para POST /api/quotes (modelo canónico por kg).
// ClientName puede venir vacío si el que cotiza es un cliente autenticado:
// el handler lo completa con el nombre del token.
type CreateQuoteRequest struct {
	ClientName  string          `json:"client_name" validate:"omitempty,max=200"`
	Origin      string          `json:"origin" validate:"required,min=1,max=120"`
	Destination string          `json:"destination" validate:"required,min=1,max=120"`
	WeightKG    decimal.Decimal `json:"weight_kg" validate:"required"`
	UnitType    string          `json:"unit_type" validate:"required"`
	Description string          `json:"description" validate:"omitempty,max=500"`
}

// QuickQuoteRequest body para POST /api/quotes/quick (modelo legado por km).
// No persiste: devuelve solo el precio estimado.
type QuickQuoteRequest struct {
	ClientName  string          `json:"client_name" validate:"omitempty,max=200"`
	Origin      string          `json:"origin" validate:"required"`
	Destination string          `json:"destination" validate:"required"`
	DistanceKM  decimal.Decimal `json:"distance_km" validate:"required"`
	UnitType    string          `json:"unit_type" validate:"omitempty"`
}

// QuickQuoteResponse estimación rápida sin folio.
type QuickQuoteResponse struct {
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	DistanceKM  decimal.Decimal `json:"distance_km"`
	BaseRate    decimal.Decimal `json:"base_rate"`
	MarginPct   decimal.Decimal `json:"margin_pct"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`
}

// QuoteResponse cotización completa con desglose de pricing.
type QuoteResponse struct {
	ID               string          `json:"id"`
	Folio            string          `json:"folio"`
	ClientName       string          `json:"client_name"`
	Origin           string          `json:"origin"`
	Destination      string          `json:"destination"`
	WeightKG         decimal.Decimal `json:"weight_kg"`
	DistanceKM       decimal.Decimal `json:"distance_km,omitempty"`
	Description      string          `json:"description,omitempty"`
	UnitType         string          `json:"unit_type"`
	BaseRate         decimal.Decimal `json:"base_rate"`
	MarginUnitPct    decimal.Decimal `json:"margin_unit_pct"`
	MarginWeightPct  decimal.Decimal `json:"margin_weight_pct"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	TrackingURL      string          `json:"tracking_url"`
	AssignedProvider string          `json:"assigned_provider,omitempty"`
	PDFFile          string          `json:"pdf_file,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// QuoteListResponse página de cotizaciones.
type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Page   PageResponse    `json:"page"`
}

// ListQuotesRequest filtros del listado (query params).
type ListQuotesRequest struct {
	Status string `query:"status" validate:"omitempty"`
	Client string `query:"client" validate:"omitempty"`
	PageRequest
}

// AssignProviderRequest body para POST /api/quotes/:id/assign.
type AssignProviderRequest struct {
	Provider string `json:"provider" validate:"required,min=1,max=200"`
	// NotifyEmail controla el envío de correos (PDF al cliente, aviso al proveedor).
	NotifyEmail bool `json:"notify_email"`
}

// UpdateStatusRequest body para PATCH /api/quotes/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// TrackingResponse vista pública de seguimiento por folio: sin precios ni
// desglose de márgenes, solo el avance del envío.
type TrackingResponse struct {
	Folio       string    `json:"folio"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	UnitType    string    `json:"unit_type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
