package dhl_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eonlogistics/eon-ops-api/internal/infrastructure/dhl"
)

// decodeResponse parsea un payload estilo MyDHL /rates para los tests.
func decodeResponse(t *testing.T, payload string) *dhl.RateResponse {
	t.Helper()
	var resp dhl.RateResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	return &resp
}

func normalize(t *testing.T, payload string) []struct {
	Code     string
	Price    string
	Currency string
} {
	t.Helper()
	offers := dhl.Normalize(decodeResponse(t, payload), dhl.NormalizeOptions{PreferredCurrency: "MXN"})
	out := make([]struct {
		Code     string
		Price    string
		Currency string
	}, 0, len(offers))
	for _, o := range offers {
		out = append(out, struct {
			Code     string
			Price    string
			Currency string
		}{o.ProductCode, o.TotalPrice.String(), o.Currency})
	}
	return out
}

// ── Preferencia de moneda ─────────────────────────────────────────────────────

// TestNormalize_PrefiereMonedaDeCasa: con precios en USD y MXN para el mismo
// producto, se elige el de MXN aunque no sea el primero de la lista.
func TestNormalize_PrefiereMonedaDeCasa(t *testing.T) {
	resp := decodeResponse(t, `{"products":[{
		"productCode":"N",
		"productName":"EXPRESS DOMESTIC",
		"totalPrice":[
			{"price":34.12,"priceCurrency":"USD"},
			{"price":629.38,"priceCurrency":"MXN"}
		]
	}]}`)

	offers := dhl.Normalize(resp, dhl.NormalizeOptions{PreferredCurrency: "MXN"})
	require.Len(t, offers, 1)
	assert.Equal(t, "MXN", offers[0].Currency)
	assert.True(t, offers[0].TotalPrice.Equal(decimal.RequireFromString("629.38")))
}

// TestNormalize_CaeAlPrimerPrecio: sin precio en la moneda preferida se toma el
// primero disponible y se arrastra su moneda.
func TestNormalize_CaeAlPrimerPrecio(t *testing.T) {
	resp := decodeResponse(t, `{"products":[{
		"productCode":"P",
		"totalPrice":[
			{"price":34.12,"priceCurrency":"USD"},
			{"price":31.05,"priceCurrency":"EUR"}
		]
	}]}`)

	offers := dhl.Normalize(resp, dhl.NormalizeOptions{PreferredCurrency: "MXN"})
	require.Len(t, offers, 1)
	assert.Equal(t, "USD", offers[0].Currency)
	assert.True(t, offers[0].TotalPrice.Equal(decimal.RequireFromString("34.12")))
}

// TestNormalize_MonedaConfigurable: la moneda preferida es un parámetro, no MXN fijo.
func TestNormalize_MonedaConfigurable(t *testing.T) {
	resp := decodeResponse(t, `{"products":[{
		"productCode":"N",
		"totalPrice":[
			{"price":629.38,"priceCurrency":"MXN"},
			{"price":34.12,"priceCurrency":"USD"}
		]
	}]}`)

	offers := dhl.Normalize(resp, dhl.NormalizeOptions{PreferredCurrency: "USD"})
	require.Len(t, offers, 1)
	assert.Equal(t, "USD", offers[0].Currency)
}

// ── Filtrado de productos ─────────────────────────────────────────────────────

// TestNormalize_DescartaPrecioCero: precio exactamente 0 es una partida
// operativa sin precio y se excluye de la salida.
func TestNormalize_DescartaPrecioCero(t *testing.T) {
	out := normalize(t, `{"products":[
		{"productCode":"N","totalPrice":[{"price":0,"priceCurrency":"MXN"}]},
		{"productCode":"P","totalPrice":[{"price":450.00,"priceCurrency":"MXN"}]}
	]}`)

	require.Len(t, out, 1)
	assert.Equal(t, "P", out[0].Code)
}

// TestNormalize_EntradaMalformadaNoTumbaElLote: productos sin código o sin
// precio utilizable se saltan; el resto del lote se normaliza.
func TestNormalize_EntradaMalformadaNoTumbaElLote(t *testing.T) {
	out := normalize(t, `{"products":[
		{"productName":"sin código","totalPrice":[{"price":100,"priceCurrency":"MXN"}]},
		{"productCode":"X"},
		{"productCode":"Y","totalPrice":[{"priceCurrency":"MXN"}]},
		{"productCode":"Z","totalPrice":[{"price":120.50,"priceCurrency":"MXN"}]}
	]}`)

	require.Len(t, out, 1)
	assert.Equal(t, "Z", out[0].Code)
}

// TestNormalize_SinProductosPreciablesDevuelveVacio: [] es un resultado normal,
// no un error.
func TestNormalize_SinProductosPreciablesDevuelveVacio(t *testing.T) {
	assert.Empty(t, normalize(t, `{"products":[]}`))
	assert.Empty(t, normalize(t, `{}`))
	assert.Empty(t, dhl.Normalize(nil, dhl.NormalizeOptions{}))
	assert.Empty(t, normalize(t, `{"products":[{"productCode":"N","totalPrice":[{"price":0,"priceCurrency":"MXN"}]}]}`))
}

// ── Ordenamiento ──────────────────────────────────────────────────────────────

// TestNormalize_OrdenAscendentePorPrecio: [629.38, 450.00, 999.99] → [450.00, 629.38, 999.99].
func TestNormalize_OrdenAscendentePorPrecio(t *testing.T) {
	out := normalize(t, `{"products":[
		{"productCode":"N","totalPrice":[{"price":629.38,"priceCurrency":"MXN"}]},
		{"productCode":"P","totalPrice":[{"price":450.00,"priceCurrency":"MXN"}]},
		{"productCode":"Q","totalPrice":[{"price":999.99,"priceCurrency":"MXN"}]}
	]}`)

	require.Len(t, out, 3)
	assert.Equal(t, []string{"450", "629.38", "999.99"},
		[]string{out[0].Price, out[1].Price, out[2].Price})
}

// TestNormalize_EmpatesConservanOrdenDeEntrada: sort estable.
func TestNormalize_EmpatesConservanOrdenDeEntrada(t *testing.T) {
	out := normalize(t, `{"products":[
		{"productCode":"A","totalPrice":[{"price":500,"priceCurrency":"MXN"}]},
		{"productCode":"B","totalPrice":[{"price":500,"priceCurrency":"MXN"}]},
		{"productCode":"C","totalPrice":[{"price":500,"priceCurrency":"MXN"}]}
	]}`)

	require.Len(t, out, 3)
	assert.Equal(t, "A", out[0].Code)
	assert.Equal(t, "B", out[1].Code)
	assert.Equal(t, "C", out[2].Code)
}

// ── Extracción de ETA ─────────────────────────────────────────────────────────

// TestNormalize_ETAFechaExplicita: la fecha estimada se trunca a día.
func TestNormalize_ETAFechaExplicita(t *testing.T) {
	resp := decodeResponse(t, `{"products":[{
		"productCode":"N",
		"totalPrice":[{"price":450,"priceCurrency":"MXN"}],
		"deliveryCapabilities":{"estimatedDeliveryDateAndTime":"2026-09-05T23:59:00"}
	}]}`)

	offers := dhl.Normalize(resp, dhl.NormalizeOptions{})
	require.Len(t, offers, 1)
	require.NotNil(t, offers[0].ETADate)
	assert.Equal(t, "2026-09-05", offers[0].ETADate.Format("2006-01-02"))
	assert.Nil(t, offers[0].ETADays, "con fecha explícita no se usan días de tránsito")
}

// TestNormalize_ETADiasComoString: totalTransitDays "3" (string numérica) → 3 días.
func TestNormalize_ETADiasComoString(t *testing.T) {
	resp := decodeResponse(t, `{"products":[{
		"productCode":"N",
		"totalPrice":[{"price":450,"priceCurrency":"MXN"}],
		"deliveryCapabilities":{"totalTransitDays":"3"}
	}]}`)

	offers := dhl.Normalize(resp, dhl.NormalizeOptions{})
	require.Len(t, offers, 1)
	require.NotNil(t, offers[0].ETADays)
	assert.Equal(t, 3, *offers[0].ETADays)
	assert.Nil(t, offers[0].ETADate)
}

// TestNormalize_ETADiasComoNumero: totalTransitDays 2 (número JSON) → 2 días.
func TestNormalize_ETADiasComoNumero(t *testing.T) {
	resp := decodeResponse(t, `{"products":[{
		"productCode":"N",
		"totalPrice":[{"price":450,"priceCurrency":"MXN"}],
		"deliveryCapabilities":{"totalTransitDays":2}
	}]}`)

	offers := dhl.Normalize(resp, dhl.NormalizeOptions{})
	require.Len(t, offers, 1)
	require.NotNil(t, offers[0].ETADays)
	assert.Equal(t, 2, *offers[0].ETADays)
}

// TestNormalize_ETADesconocida: valores no interpretables dejan la ETA vacía
// sin descartar la oferta.
func TestNormalize_ETADesconocida(t *testing.T) {
	resp := decodeResponse(t, `{"products":[{
		"productCode":"N",
		"totalPrice":[{"price":450,"priceCurrency":"MXN"}],
		"deliveryCapabilities":{"totalTransitDays":"3-5 días"}
	}]}`)

	offers := dhl.Normalize(resp, dhl.NormalizeOptions{})
	require.Len(t, offers, 1)
	assert.Nil(t, offers[0].ETADate)
	assert.Nil(t, offers[0].ETADays)
}

// ── Campos de salida ──────────────────────────────────────────────────────────

// TestNormalize_NombreCaeAlCodigo: sin productName el nombre es el código.
func TestNormalize_NombreCaeAlCodigo(t *testing.T) {
	resp := decodeResponse(t, `{"products":[{
		"productCode":"G",
		"totalPrice":[{"price":450,"priceCurrency":"MXN"}]
	}]}`)

	offers := dhl.Normalize(resp, dhl.NormalizeOptions{})
	require.Len(t, offers, 1)
	assert.Equal(t, "G", offers[0].ProductName)
}

// TestNormalize_EstampaCarrierYConservaRaw: carrier por defecto y registro crudo.
func TestNormalize_EstampaCarrierYConservaRaw(t *testing.T) {
	resp := decodeResponse(t, `{"products":[{
		"productCode":"N",
		"productName":"EXPRESS DOMESTIC",
		"totalPrice":[{"price":450,"priceCurrency":"MXN"}]
	}]}`)

	offers := dhl.Normalize(resp, dhl.NormalizeOptions{})
	require.Len(t, offers, 1)
	assert.Equal(t, dhl.DefaultCarrierID, offers[0].CarrierID)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(offers[0].Raw, &raw))
	assert.Equal(t, "EXPRESS DOMESTIC", raw["productName"], "Raw debe ser el registro original completo")
}
