package dto

import "github.com/shopspring/decimal"

// RateRequest body para crear o actualizar una tarifa base por ruta.
type RateRequest struct {
	Origin      string          `json:"origin" validate:"required,min=1,max=120"`
	Destination string          `json:"destination" validate:"required,min=1,max=120"`
	BaseRate    decimal.Decimal `json:"base_rate" validate:"required"`
}

// RateResponse tarifa base en respuestas.
type RateResponse struct {
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	BaseRate    decimal.Decimal `json:"base_rate"`
}

// MarginRequest body para crear o actualizar una regla de margen.
type MarginRequest struct {
	Criterion  string          `json:"criterion" validate:"required,oneof=cliente unidad general"`
	Value      string          `json:"value" validate:"required,min=1,max=200"`
	Percentage decimal.Decimal `json:"percentage" validate:"required"`
}

// MarginResponse regla de margen en respuestas.
type MarginResponse struct {
	Criterion  string          `json:"criterion"`
	Value      string          `json:"value"`
	Percentage decimal.Decimal `json:"percentage"`
}

// WeightBracketRequest body para crear un rango de peso [min, max).
type WeightBracketRequest struct {
	MinKG      decimal.Decimal `json:"min_kg"`
	MaxKG      decimal.Decimal `json:"max_kg" validate:"required"`
	Percentage decimal.Decimal `json:"percentage" validate:"required"`
}

// WeightBracketResponse rango de peso en respuestas.
type WeightBracketResponse struct {
	MinKG      decimal.Decimal `json:"min_kg"`
	MaxKG      decimal.Decimal `json:"max_kg"`
	Percentage decimal.Decimal `json:"percentage"`
}

// PricingTablesResponse vista completa de configuración de pricing
// para la pantalla de administración.
type PricingTablesResponse struct {
	Rates          []RateResponse          `json:"rates"`
	Margins        []MarginResponse        `json:"margins"`
	WeightBrackets []WeightBracketResponse `json:"weight_brackets"`
}
