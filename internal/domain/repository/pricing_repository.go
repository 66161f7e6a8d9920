package repository

import "github.com/eonlogistics/eon-ops-api/internal/domain/pricing"

// PricingRepository define el puerto de persistencia para las tablas de pricing
// (tarifas por ruta, reglas de margen y brackets de peso).
//
// El motor de precios nunca consulta la DB: Snapshot carga las tres tablas
// completas (son tablas de configuración pequeñas) y el motor resuelve sobre
// esa vista de solo lectura. Así una cotización en curso no ve mutaciones
// concurrentes del módulo de administración.
type PricingRepository interface {
	Snapshot() (pricing.Tables, error)

	ListRates() ([]pricing.RateEntry, error)
	UpsertRate(rate pricing.RateEntry) error

	ListMargins() ([]pricing.MarginRule, error)
	UpsertMargin(rule pricing.MarginRule) error

	ListWeightBrackets() ([]pricing.WeightBracket, error)
	CreateWeightBracket(bracket pricing.WeightBracket) error
}
