package dhl

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
)

// Valores por defecto de la normalización.
const (
	DefaultCarrierID = "DHL"
	// UnknownProductName se usa cuando el producto no trae código ni nombre.
	UnknownProductName = "N/D"
)

// NormalizeOptions parámetros de la normalización.
type NormalizeOptions struct {
	// PreferredCurrency moneda de casa: si el producto trae un precio en esta
	// moneda se prefiere sobre cualquier otro; si no, se toma el primero disponible.
	PreferredCurrency string
	// CarrierID identificador constante que se estampa en cada oferta.
	CarrierID string
}

func (o NormalizeOptions) withDefaults() NormalizeOptions {
	if o.PreferredCurrency == "" {
		o.PreferredCurrency = "MXN"
	}
	if o.CarrierID == "" {
		o.CarrierID = DefaultCarrierID
	}
	return o
}

// Normalize convierte la respuesta cruda del carrier en una lista canónica de
// ofertas comparables, ordenada ascendente por precio total (orden estable:
// empates conservan el orden de entrada).
//
// Robustez ante datos parciales: un producto malformado (sin código, sin precio
// utilizable, o con precio exactamente 0, que son partidas operativas no preciadas) se
// descarta en silencio sin tumbar el lote. Una respuesta sin productos preciables
// produce una lista vacía, que es un resultado normal, no un error.
func Normalize(resp *RateResponse, opts NormalizeOptions) []entity.CarrierOffer {
	opts = opts.withDefaults()

	offers := make([]entity.CarrierOffer, 0)
	if resp == nil {
		return offers
	}

	for _, p := range resp.Products {
		if p.ProductCode == "" {
			continue
		}

		price, currency, ok := pickPrice(p.TotalPrice, opts.PreferredCurrency)
		if !ok || price.IsZero() {
			continue
		}

		name := p.ProductName
		if name == "" {
			name = p.ProductCode
		}
		if name == "" {
			name = UnknownProductName
		}

		etaDate, etaDays := extractETA(p.DeliveryCapabilities)

		offers = append(offers, entity.CarrierOffer{
			CarrierID:   opts.CarrierID,
			ProductCode: p.ProductCode,
			ProductName: name,
			TotalPrice:  price,
			Currency:    currency,
			ETADate:     etaDate,
			ETADays:     etaDays,
			Raw:         p.Raw,
		})
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].TotalPrice.LessThan(offers[j].TotalPrice)
	})
	return offers
}

// pickPrice elige la entrada de precio: primero la de la moneda preferida,
// si no existe la primera disponible, y arrastra su moneda.
func pickPrice(prices []ProductPrice, preferred string) (decimal.Decimal, string, bool) {
	var chosen *ProductPrice
	for i := range prices {
		if prices[i].Currency == preferred {
			chosen = &prices[i]
			break
		}
	}
	if chosen == nil && len(prices) > 0 {
		chosen = &prices[0]
	}
	if chosen == nil {
		return decimal.Decimal{}, "", false
	}

	price, err := decimal.NewFromString(chosen.Price.String())
	if err != nil {
		return decimal.Decimal{}, "", false
	}
	currency := chosen.Currency
	if currency == "" {
		currency = preferred
	}
	return price, currency, true
}

// extractETA prefiere la fecha estimada de entrega (truncada a día); si no hay,
// cae a totalTransitDays cuando es un entero no negativo (número o string de dígitos).
func extractETA(d *DeliveryCapabilities) (*time.Time, *int) {
	if d == nil {
		return nil, nil
	}

	if s := d.EstimatedDeliveryDateAndTime; len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return &t, nil
		}
	}

	if days := parseTransitDays(d.TotalTransitDays); days != nil {
		return nil, days
	}
	return nil, nil
}

func parseTransitDays(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 {
			return nil
		}
		days := int(n)
		return &days
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" && allDigits(s) {
		days, err := strconv.Atoi(s)
		if err != nil {
			return nil
		}
		return &days
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
