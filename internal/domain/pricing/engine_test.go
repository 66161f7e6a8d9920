package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eonlogistics/eon-ops-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tablas de prueba
//
// Tarifas:   Monterrey → CDMX a 12.50 MXN/kg
// Márgenes:  cliente "ACME" 20%, unidad "Tráiler" 15%, general 10%
// Brackets:  [0, 500) → 10%   [500, 1000) → 8%
// ──────────────────────────────────────────────────────────────────────────────

func buildTables() pricing.Tables {
	return pricing.Tables{
		Rates: []pricing.RateEntry{
			{Origin: "Monterrey", Destination: "CDMX", BaseRate: decimal.RequireFromString("12.50")},
		},
		Margins: []pricing.MarginRule{
			{Criterion: pricing.CriterionCliente, Value: "ACME", Percentage: decimal.NewFromInt(20)},
			{Criterion: pricing.CriterionUnidad, Value: "Tráiler", Percentage: decimal.NewFromInt(15)},
			{Criterion: pricing.CriterionGeneral, Value: pricing.GeneralValue, Percentage: decimal.NewFromInt(10)},
		},
		WeightBrackets: []pricing.WeightBracket{
			{Min: decimal.Zero, Max: decimal.NewFromInt(500), Percentage: decimal.NewFromInt(10)},
			{Min: decimal.NewFromInt(500), Max: decimal.NewFromInt(1000), Percentage: decimal.NewFromInt(8)},
		},
	}
}

func req(weight string) pricing.Request {
	return pricing.Request{
		Origin:      "Monterrey",
		Destination: "CDMX",
		Weight:      decimal.RequireFromString(weight),
		UnitType:    "Tráiler",
		Client:      "Ferretera del Norte", // sin regla por cliente: cae a unidad
	}
}

// ── Fórmula exacta ────────────────────────────────────────────────────────────

// TestQuote_VectorExacto: 12.50 × 480 × 1.15 × 1.10 = 7590.00.
// El peso 480 cae en [0, 500) → 10%; el margen por unidad "Tráiler" es 15%.
func TestQuote_VectorExacto(t *testing.T) {
	res, err := pricing.Quote(buildTables(), req("480"))
	require.NoError(t, err)

	assert.Equal(t, "12.5", res.BaseRate.String())
	assert.Equal(t, "15", res.MarginUnit.String())
	assert.Equal(t, "10", res.MarginWeight.String())
	assert.True(t, res.Subtotal.Equal(decimal.NewFromInt(6000)), "subtotal = base × peso")
	assert.True(t, res.Total.Equal(decimal.RequireFromString("7590.00")),
		"total debe ser base × peso × (1+mU/100) × (1+mP/100): obtuve %s", res.Total)
}

// TestQuote_RedondeoDosDecimales verifica el redondeo a centavos.
// 12.50 × 480.5 × 1.15 × 1.10 = 7597.90625 → 7597.91
func TestQuote_RedondeoDosDecimales(t *testing.T) {
	res, err := pricing.Quote(buildTables(), req("480.5"))
	require.NoError(t, err)
	assert.True(t, res.Total.Equal(decimal.RequireFromString("7597.91")),
		"el total se redondea a 2 decimales: obtuve %s", res.Total)
}

// TestQuote_Determinista: el mismo input produce siempre el mismo total.
func TestQuote_Determinista(t *testing.T) {
	tables := buildTables()
	r1, err1 := pricing.Quote(tables, req("480"))
	r2, err2 := pricing.Quote(tables, req("480"))
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, r1.Total.Equal(r2.Total))
}

// ── Cadena de prioridad de márgenes ───────────────────────────────────────────

// TestQuote_ClienteGanaAUnidad: si existen reglas para el cliente Y para la unidad,
// siempre gana la del cliente.
func TestQuote_ClienteGanaAUnidad(t *testing.T) {
	in := req("480")
	in.Client = "ACME" // tiene regla de 20%; "Tráiler" tiene 15%

	res, err := pricing.Quote(buildTables(), in)
	require.NoError(t, err)
	assert.Equal(t, "20", res.MarginUnit.String(), "la regla por cliente tiene prioridad")
	// 12.50 × 480 × 1.20 × 1.10 = 7920.00
	assert.True(t, res.Total.Equal(decimal.RequireFromString("7920.00")))
}

// TestQuote_CaeAGeneral: sin regla por cliente ni por unidad, aplica la general.
func TestQuote_CaeAGeneral(t *testing.T) {
	in := req("480")
	in.Client = "Cliente Nuevo"
	in.UnitType = "Camioneta" // sin regla por unidad

	res, err := pricing.Quote(buildTables(), in)
	require.NoError(t, err)
	assert.Equal(t, "10", res.MarginUnit.String(), "debe caer a la regla general")
}

// ── Fallos con nombre propio (política estricta, nunca 0% adivinado) ──────────

func TestQuote_ErrorSinTarifaBase(t *testing.T) {
	in := req("480")
	in.Origin = "Tijuana" // ruta jamás configurada

	res, err := pricing.Quote(buildTables(), in)
	assert.ErrorIs(t, err, pricing.ErrNoBaseRate)
	assert.True(t, res.Total.IsZero(), "no debe devolver precio parcial")
}

func TestQuote_ErrorSinNingunMargen(t *testing.T) {
	tables := buildTables()
	tables.Margins = nil // configuración vacía

	_, err := pricing.Quote(tables, req("480"))
	assert.ErrorIs(t, err, pricing.ErrNoMargin,
		"sin regla por cliente, unidad ni general el motor falla, no asume 0%")
}

func TestQuote_ErrorSinRangoDePeso(t *testing.T) {
	_, err := pricing.Quote(buildTables(), req("2500")) // fuera de todos los brackets
	assert.ErrorIs(t, err, pricing.ErrNoWeightMargin)
}

func TestQuote_ErrorPesoInvalido(t *testing.T) {
	in := req("480")
	in.Weight = decimal.Zero
	_, err := pricing.Quote(buildTables(), in)
	assert.ErrorIs(t, err, pricing.ErrInvalidRequest)
}

// ── Frontera de brackets: [min, max) ──────────────────────────────────────────

// TestQuote_FronteraDeBracket: un peso exactamente en el límite superior de un
// bracket pertenece SOLO al bracket siguiente.
func TestQuote_FronteraDeBracket(t *testing.T) {
	// 499.99 todavía en [0, 500) → 10%
	res, err := pricing.Quote(buildTables(), req("499.99"))
	require.NoError(t, err)
	assert.Equal(t, "10", res.MarginWeight.String())

	// 500 exacto pertenece a [500, 1000) → 8%
	res, err = pricing.Quote(buildTables(), req("500"))
	require.NoError(t, err)
	assert.Equal(t, "8", res.MarginWeight.String(),
		"el límite superior es exclusivo: 500 kg cae en el bracket siguiente")
}

// TestQuote_FueraDelUltimoBracket: el límite superior del último bracket también
// es exclusivo, así que 1000 kg exactos no tienen margen configurado.
func TestQuote_FueraDelUltimoBracket(t *testing.T) {
	_, err := pricing.Quote(buildTables(), req("1000"))
	assert.ErrorIs(t, err, pricing.ErrNoWeightMargin)
}

// ── Modelo legado por km ──────────────────────────────────────────────────────

// TestQuoteDistance_VectorExacto: 12.50 × 320 km × 1.15 = 4600.00 (sin margen por peso).
func TestQuoteDistance_VectorExacto(t *testing.T) {
	in := req("1")
	in.DistanceKM = decimal.NewFromInt(320)

	res, err := pricing.QuoteDistance(buildTables(), in)
	require.NoError(t, err)
	assert.True(t, res.MarginWeight.IsZero(), "el modelo por km no usa brackets de peso")
	assert.True(t, res.Total.Equal(decimal.RequireFromString("4600.00")),
		"total por km: obtuve %s", res.Total)
}

func TestQuoteDistance_ErrorSinDistancia(t *testing.T) {
	_, err := pricing.QuoteDistance(buildTables(), req("480"))
	assert.ErrorIs(t, err, pricing.ErrInvalidRequest)
}
