// Package pricing: motor de precios de EON Logistics.
//
// Modelo canónico (por kg): precio = tarifa_base × peso × (1 + margen_unidad/100) × (1 + margen_peso/100),
// donde margen_unidad se resuelve por cadena de prioridad cliente → unidad → general,
// y margen_peso por rango de peso semiabierto [min, max).
//
// El motor es puro: opera sobre un snapshot de tablas que entrega el caller y no hace I/O.
// Cada lookup faltante es un error con nombre propio; nunca se sustituye un margen
// faltante por 0% (política estricta: la configuración incompleta detiene la cotización).
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Criterios de las reglas de margen.
const (
	CriterionCliente = "cliente"
	CriterionUnidad  = "unidad"
	CriterionGeneral = "general"

	// GeneralValue es el match_value de la regla general (única por convención).
	GeneralValue = "General"
)

// Errores del motor. El caller debe abortar la cotización y pedir que se
// configure la tabla faltante; jamás adivinar un valor.
var (
	ErrNoBaseRate     = errors.New("pricing: no hay tarifa base para la ruta")
	ErrNoMargin       = errors.New("pricing: no hay margen por cliente, unidad ni general")
	ErrNoWeightMargin = errors.New("pricing: no hay margen para el rango de peso")
	ErrInvalidRequest = errors.New("pricing: solicitud inválida")
)

// RateEntry tarifa base para una ruta exacta (origen, destino).
type RateEntry struct {
	Origin      string
	Destination string
	BaseRate    decimal.Decimal // MXN por kg en el modelo canónico; por km en el legado
}

// MarginRule regla de margen porcentual por criterio.
type MarginRule struct {
	Criterion  string // cliente | unidad | general
	Value      string // nombre del cliente, tipo de unidad o "General"
	Percentage decimal.Decimal
}

// WeightBracket margen porcentual por rango de peso semiabierto [Min, Max).
// Un peso igual a Max pertenece al bracket siguiente, nunca a dos a la vez.
type WeightBracket struct {
	Min        decimal.Decimal
	Max        decimal.Decimal
	Percentage decimal.Decimal
}

// Tables snapshot de solo lectura de las tablas de pricing.
// La disciplina de actualización (versionado, transacciones) es del colaborador
// de persistencia; aquí solo se consulta.
type Tables struct {
	Rates          []RateEntry
	Margins        []MarginRule
	WeightBrackets []WeightBracket
}

// BaseRate busca la tarifa base exacta de la ruta.
func (t Tables) BaseRate(origin, destination string) (decimal.Decimal, bool) {
	for _, r := range t.Rates {
		if r.Origin == origin && r.Destination == destination {
			return r.BaseRate, true
		}
	}
	return decimal.Decimal{}, false
}

// Margin busca una regla de margen por criterio y valor exactos.
func (t Tables) Margin(criterion, value string) (decimal.Decimal, bool) {
	for _, m := range t.Margins {
		if m.Criterion == criterion && m.Value == value {
			return m.Percentage, true
		}
	}
	return decimal.Decimal{}, false
}

// WeightMargin busca el bracket que contiene el peso: Min ≤ peso < Max.
func (t Tables) WeightMargin(weight decimal.Decimal) (decimal.Decimal, bool) {
	for _, b := range t.WeightBrackets {
		if weight.GreaterThanOrEqual(b.Min) && weight.LessThan(b.Max) {
			return b.Percentage, true
		}
	}
	return decimal.Decimal{}, false
}

// Request datos de entrada para cotizar.
type Request struct {
	Origin      string
	Destination string
	Weight      decimal.Decimal // kg; debe ser > 0 en el modelo canónico
	DistanceKM  decimal.Decimal // solo para QuoteDistance
	UnitType    string
	Client      string // identidad del cliente, clave opaca para la regla por cliente
}

// Result desglose del precio calculado.
type Result struct {
	BaseRate     decimal.Decimal
	MarginUnit   decimal.Decimal // porcentaje resuelto por la cadena cliente/unidad/general
	MarginWeight decimal.Decimal // porcentaje por rango de peso (cero en el modelo por km)
	Subtotal     decimal.Decimal // tarifa_base × peso (o × distancia), sin márgenes
	Total        decimal.Decimal // precio final redondeado a 2 decimales
}

var oneHundred = decimal.NewFromInt(100)

// Quote calcula el precio canónico por kg.
//
// Pasos: tarifa base exacta por ruta; margen por cadena de prioridad
// (cliente gana a unidad, unidad gana a general); margen por rango de peso;
// total = base × peso × (1+mU/100) × (1+mP/100), redondeado a 2 decimales.
func Quote(t Tables, req Request) (Result, error) {
	if req.Origin == "" || req.Destination == "" || !req.Weight.IsPositive() {
		return Result{}, ErrInvalidRequest
	}

	base, ok := t.BaseRate(req.Origin, req.Destination)
	if !ok {
		return Result{}, ErrNoBaseRate
	}

	marginUnit, err := resolveMargin(t, req)
	if err != nil {
		return Result{}, err
	}

	marginWeight, ok := t.WeightMargin(req.Weight)
	if !ok {
		return Result{}, ErrNoWeightMargin
	}

	subtotal := base.Mul(req.Weight)
	total := subtotal.
		Mul(onePlusPct(marginUnit)).
		Mul(onePlusPct(marginWeight))

	return Result{
		BaseRate:     base,
		MarginUnit:   marginUnit,
		MarginWeight: marginWeight,
		Subtotal:     subtotal,
		Total:        total.Round(2),
	}, nil
}

// QuoteDistance calcula el precio con el modelo legado por km: la tarifa base de la
// ruta se interpreta como precio por kilómetro y aplica solo el margen de la cadena,
// sin rango de peso. Se usa en la cotización rápida del portal de clientes.
func QuoteDistance(t Tables, req Request) (Result, error) {
	if req.Origin == "" || req.Destination == "" || !req.DistanceKM.IsPositive() {
		return Result{}, ErrInvalidRequest
	}

	base, ok := t.BaseRate(req.Origin, req.Destination)
	if !ok {
		return Result{}, ErrNoBaseRate
	}

	margin, err := resolveMargin(t, req)
	if err != nil {
		return Result{}, err
	}

	subtotal := base.Mul(req.DistanceKM)
	total := subtotal.Mul(onePlusPct(margin))

	return Result{
		BaseRate:   base,
		MarginUnit: margin,
		Subtotal:   subtotal,
		Total:      total.Round(2),
	}, nil
}

// resolveMargin aplica la cadena de prioridad: cliente → unidad → general.
func resolveMargin(t Tables, req Request) (decimal.Decimal, error) {
	if req.Client != "" {
		if pct, ok := t.Margin(CriterionCliente, req.Client); ok {
			return pct, nil
		}
	}
	if req.UnitType != "" {
		if pct, ok := t.Margin(CriterionUnidad, req.UnitType); ok {
			return pct, nil
		}
	}
	if pct, ok := t.Margin(CriterionGeneral, GeneralValue); ok {
		return pct, nil
	}
	return decimal.Decimal{}, ErrNoMargin
}

func onePlusPct(pct decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(pct.Div(oneHundred))
}
