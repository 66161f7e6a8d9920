package dhl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eonlogistics/eon-ops-api/internal/application/ports"
	"github.com/eonlogistics/eon-ops-api/pkg/config"
)

const ratesBody = `{"products":[{
	"productCode":"N",
	"productName":"EXPRESS DOMESTIC",
	"totalPrice":[{"price":629.38,"priceCurrency":"MXN"}],
	"deliveryCapabilities":{"totalTransitDays":"2"}
}]}`

func testQuery() ports.RateQuery {
	return ports.RateQuery{
		OriginPostalCode:      "64000",
		OriginCity:            "Monterrey",
		DestinationPostalCode: "01000",
		DestinationCity:       "Ciudad de México",
		WeightKG:              5,
	}
}

// ── Escalera de autenticación ─────────────────────────────────────────────────

// TestFetchRates_ExitoPrimerIntento: API-Key + accountNumber basta.
func TestFetchRates_ExitoPrimerIntento(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "secret-key", r.Header.Get("DHL-API-Key"))
		assert.Equal(t, "987654", r.URL.Query().Get("accountNumber"))
		assert.Equal(t, "metric", r.URL.Query().Get("unitOfMeasurement"))
		w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	c := newClientForTest(config.DHLConfig{APIKey: "secret-key", AccountNumber: "987654", Env: "sandbox"}, "MXN", srv.URL)
	resp, err := c.FetchRates(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, 1, calls, "no debe escalar si el primer intento responde 2xx")
}

// TestFetchRates_EscalaABasicAuth: 401 sin Basic, 200 con Basic.
func TestFetchRates_EscalaABasicAuth(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	c := newClientForTest(config.DHLConfig{
		APIKey: "key", APISecret: "secret", AccountNumber: "987654", Env: "sandbox",
	}, "MXN", srv.URL)
	resp, err := c.FetchRates(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, 2, calls, "debe reintentar con Basic Auth tras el primer 401")
}

// TestFetchRates_SandboxSinCuenta: en sandbox el último intento va sin accountNumber.
func TestFetchRates_SandboxSinCuenta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("accountNumber") != "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	c := newClientForTest(config.DHLConfig{
		APIKey: "key", APISecret: "secret", AccountNumber: "987654", Env: "sandbox",
	}, "MXN", srv.URL)
	resp, err := c.FetchRates(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
}

// TestFetchRates_Todos401: si toda la escalera devuelve 401, el error final lo dice.
func TestFetchRates_Todos401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newClientForTest(config.DHLConfig{
		APIKey: "key", APISecret: "secret", AccountNumber: "987654", Env: "sandbox",
	}, "MXN", srv.URL)
	_, err := c.FetchRates(context.Background(), testQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

// TestFetchRates_ErrorNo401PropagaDeInmediato: un 400 corta la escalera con el cuerpo.
func TestFetchRates_ErrorNo401PropagaDeInmediato(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"postal code invalid"}`))
	}))
	defer srv.Close()

	c := newClientForTest(config.DHLConfig{
		APIKey: "key", APISecret: "secret", AccountNumber: "987654", Env: "sandbox",
	}, "MXN", srv.URL)
	_, err := c.FetchRates(context.Background(), testQuery())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postal code invalid")
	assert.Equal(t, 1, calls, "un error distinto de 401 no debe escalar")
}

func TestFetchRates_SinAPIKey(t *testing.T) {
	c := NewClient(config.DHLConfig{}, "MXN")
	_, err := c.FetchRates(context.Background(), testQuery())
	assert.Error(t, err)
}

// ── Parámetros de la petición ─────────────────────────────────────────────────

// TestBuildParams_DomesticoNoDeclarable: mismo país → isCustomsDeclarable false
// aunque el flag diga lo contrario.
func TestBuildParams_DomesticoNoDeclarable(t *testing.T) {
	c := NewClient(config.DHLConfig{APIKey: "k"}, "MXN")
	declarable := true
	q := testQuery()
	q.CustomsDeclarable = &declarable

	params := c.buildParams(q)
	assert.Equal(t, "false", params.Get("isCustomsDeclarable"))
	assert.Equal(t, "MX", params.Get("originCountryCode"))
}

// TestBuildParams_InternacionalRespetaFlag: países distintos → respeta el flag,
// o true por defecto.
func TestBuildParams_InternacionalRespetaFlag(t *testing.T) {
	c := NewClient(config.DHLConfig{APIKey: "k"}, "MXN")
	q := testQuery()
	q.DestinationCountry = "US"

	params := c.buildParams(q)
	assert.Equal(t, "true", params.Get("isCustomsDeclarable"), "internacional sin flag → declarable")

	declarable := false
	q.CustomsDeclarable = &declarable
	params = c.buildParams(q)
	assert.Equal(t, "false", params.Get("isCustomsDeclarable"))
}

// TestBuildParams_DimensionesPorDefecto: sin dimensiones capturadas se envían 10 cm.
func TestBuildParams_DimensionesPorDefecto(t *testing.T) {
	c := NewClient(config.DHLConfig{APIKey: "k"}, "MXN")
	params := c.buildParams(testQuery())
	assert.Equal(t, "10", params.Get("length"))
	assert.Equal(t, "10", params.Get("width"))
	assert.Equal(t, "10", params.Get("height"))
	assert.Equal(t, "5", params.Get("weight"))
}

// ── Quote (puerta completa: fetch + normalización) ────────────────────────────

func TestQuote_NormalizaLaRespuesta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[
			{"productCode":"N","totalPrice":[{"price":629.38,"priceCurrency":"MXN"}]},
			{"productCode":"P","totalPrice":[{"price":450.00,"priceCurrency":"MXN"}]},
			{"productCode":"OP","totalPrice":[{"price":0,"priceCurrency":"MXN"}]}
		]}`))
	}))
	defer srv.Close()

	c := newClientForTest(config.DHLConfig{APIKey: "k", AccountNumber: "1", Env: "sandbox"}, "MXN", srv.URL)
	offers, err := c.Quote(context.Background(), testQuery())
	require.NoError(t, err)
	require.Len(t, offers, 2, "el producto con precio 0 se descarta")
	assert.Equal(t, "P", offers[0].ProductCode, "orden ascendente por precio")
	assert.Equal(t, DefaultCarrierID, offers[0].CarrierID)
}
