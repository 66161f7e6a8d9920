package dhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/eonlogistics/eon-ops-api/internal/application/ports"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
	"github.com/eonlogistics/eon-ops-api/pkg/config"
)

// Verificar en tiempo de compilación que Client implementa CarrierRateService.
var _ ports.CarrierRateService = (*Client)(nil)

const (
	baseURLProd    = "https://express.api.dhl.com/mydhlapi"
	baseURLSandbox = "https://express.api.dhl.com/mydhlapi/test"

	// EnvProd valores de DHL_ENV que apuntan a producción.
	EnvProd = "prod"
)

// Client consulta el endpoint /rates de MyDHL API.
//
// La API de DHL es inconsistente entre tenants en el esquema de autenticación,
// así que FetchRates intenta una escalera de estrategias ante 401:
//  1. Header DHL-API-Key + accountNumber
//  2. Header + Basic Auth (usuario/contraseña explícitos, o api key/secret)
//  3. Solo en sandbox: sin accountNumber
//
// Cualquier estatus de error distinto de 401 se propaga de inmediato con el cuerpo.
type Client struct {
	cfg          config.DHLConfig
	homeCurrency string
	baseURL      string
	httpClient   *http.Client
}

// NewClient construye el cliente. homeCurrency alimenta la normalización
// (preferencia de moneda). El timeout de red es generoso (45 s) porque el
// endpoint de rates puede tardar varios segundos en responder.
func NewClient(cfg config.DHLConfig, homeCurrency string) *Client {
	base := baseURLSandbox
	switch cfg.Env {
	case EnvProd, "production", "live":
		base = baseURLProd
	}
	return &Client{
		cfg:          cfg,
		homeCurrency: homeCurrency,
		baseURL:      base,
		httpClient:   &http.Client{Timeout: 45 * time.Second},
	}
}

// newClientForTest permite apuntar a un servidor httptest.
func newClientForTest(cfg config.DHLConfig, homeCurrency, baseURL string) *Client {
	c := NewClient(cfg, homeCurrency)
	c.baseURL = baseURL
	return c
}

// Quote implementa ports.CarrierRateService: consulta /rates y normaliza la
// respuesta a la lista canónica de ofertas.
func (c *Client) Quote(ctx context.Context, q ports.RateQuery) ([]entity.CarrierOffer, error) {
	resp, err := c.FetchRates(ctx, q)
	if err != nil {
		return nil, err
	}
	return Normalize(resp, NormalizeOptions{
		PreferredCurrency: c.homeCurrency,
		CarrierID:         DefaultCarrierID,
	}), nil
}

// buildParams arma los query params del endpoint /rates.
// Envío doméstico: nunca declarable en aduana. Internacional: respeta el flag (default true).
func (c *Client) buildParams(q ports.RateQuery) url.Values {
	originCountry := strings.ToUpper(defaultStr(q.OriginCountry, "MX"))
	destCountry := strings.ToUpper(defaultStr(q.DestinationCountry, "MX"))

	customs := false
	if originCountry != destCountry {
		customs = true
		if q.CustomsDeclarable != nil {
			customs = *q.CustomsDeclarable
		}
	}

	params := url.Values{}
	params.Set("originCountryCode", originCountry)
	params.Set("originPostalCode", strings.TrimSpace(q.OriginPostalCode))
	params.Set("destinationCountryCode", destCountry)
	params.Set("destinationPostalCode", strings.TrimSpace(q.DestinationPostalCode))
	params.Set("plannedShippingDate", time.Now().UTC().Format("2006-01-02"))
	params.Set("unitOfMeasurement", "metric")
	params.Set("strictValidation", "false")
	params.Set("isCustomsDeclarable", strconv.FormatBool(customs))
	params.Set("weight", formatFloat(q.WeightKG))
	params.Set("length", formatFloat(defaultDim(q.LengthCM)))
	params.Set("width", formatFloat(defaultDim(q.WidthCM)))
	params.Set("height", formatFloat(defaultDim(q.HeightCM)))
	if q.OriginCity != "" {
		params.Set("originCityName", q.OriginCity)
	}
	if q.DestinationCity != "" {
		params.Set("destinationCityName", q.DestinationCity)
	}
	return params
}

// basicAuth devuelve las credenciales Basic a intentar, si las hay:
// primero usuario/contraseña explícitos, si no api key/secret (algunos tenants lo usan así).
func (c *Client) basicAuth() (user, pass string, ok bool) {
	if c.cfg.BasicUser != "" && c.cfg.BasicPass != "" {
		return c.cfg.BasicUser, c.cfg.BasicPass, true
	}
	if c.cfg.APIKey != "" && c.cfg.APISecret != "" {
		return c.cfg.APIKey, c.cfg.APISecret, true
	}
	return "", "", false
}

// FetchRates consulta /rates con la escalera de autenticación y devuelve la
// respuesta cruda deserializada. Una respuesta 2xx sin productos es válida
// (la normalización devolverá una lista vacía).
func (c *Client) FetchRates(ctx context.Context, q ports.RateQuery) (*RateResponse, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("dhl: falta DHL_API_KEY en la configuración")
	}

	base := c.buildParams(q)
	var attempts []string

	// ── Intento 1: API-Key + accountNumber ───────────────────────────────────
	if c.cfg.AccountNumber != "" {
		params := cloneValues(base)
		params.Set("accountNumber", c.cfg.AccountNumber)
		resp, retriable, err := c.get(ctx, params, "", "")
		if err != nil || resp != nil {
			return resp, err
		}
		attempts = append(attempts, "APIKEY+ACC: 401 "+retriable)
	}

	// ── Intento 2: API-Key + Basic Auth + accountNumber ──────────────────────
	user, pass, hasBasic := c.basicAuth()
	if hasBasic && c.cfg.AccountNumber != "" {
		params := cloneValues(base)
		params.Set("accountNumber", c.cfg.AccountNumber)
		resp, retriable, err := c.get(ctx, params, user, pass)
		if err != nil || resp != nil {
			return resp, err
		}
		attempts = append(attempts, "APIKEY+BASIC+ACC: 401 "+retriable)
	}

	// ── Intento 3 (solo sandbox): sin accountNumber ──────────────────────────
	if c.cfg.Env != EnvProd {
		resp, retriable, err := c.get(ctx, base, user, pass)
		if err != nil || resp != nil {
			return resp, err
		}
		attempts = append(attempts, "SANDBOX_NO_ACC: 401 "+retriable)
	}

	return nil, fmt.Errorf("dhl: todos los intentos contra /rates fallaron con 401 Unauthorized: %s",
		strings.Join(attempts, "; "))
}

// get ejecuta un GET /rates. Devuelve (resp, "", nil) en éxito,
// (nil, body, nil) en 401 (para que el caller escale al siguiente intento)
// y (nil, "", err) ante cualquier otro error.
func (c *Client) get(ctx context.Context, params url.Values, basicUser, basicPass string) (*RateResponse, string, error) {
	reqURL := c.baseURL + "/rates?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("dhl: construir request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("DHL-API-Key", c.cfg.APIKey)
	if basicUser != "" {
		req.SetBasicAuth(basicUser, basicPass)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("dhl: llamada a /rates: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("dhl: leer respuesta: %w", err)
	}

	switch {
	case httpResp.StatusCode < 400:
		var resp RateResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, "", fmt.Errorf("dhl: decodificar respuesta: %w", err)
		}
		return &resp, "", nil
	case httpResp.StatusCode == http.StatusUnauthorized:
		return nil, truncate(string(body), 200), nil
	default:
		// Error distinto a 401: propagar de inmediato con el cuerpo.
		return nil, "", fmt.Errorf("dhl: /rates respondió %d: %s", httpResp.StatusCode, truncate(string(body), 500))
	}
}

func cloneValues(v url.Values) url.Values {
	out := url.Values{}
	for k, vals := range v {
		for _, val := range vals {
			out.Add(k, val)
		}
	}
	return out
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// defaultDim: DHL exige dimensiones; 10 cm por lado si el staff no las captura.
func defaultDim(v float64) float64 {
	if v <= 0 {
		return 10
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
