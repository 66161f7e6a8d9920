package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CarrierOffer es una opción de envío normalizada de la respuesta cruda de un carrier.
// Es efímera: se produce por cada llamada de cotización en vivo y no se persiste como
// entidad propia; el caller puede registrarla como Offer si el staff la elige.
type CarrierOffer struct {
	CarrierID   string          // constante del carrier, la fija el caller (ej. "DHL")
	ProductCode string
	ProductName string // cae a ProductCode, o "N/D" si ambos faltan
	TotalPrice  decimal.Decimal
	Currency    string
	ETADate     *time.Time // fecha estimada de entrega (truncada a día), si el carrier la da
	ETADays     *int       // días de tránsito, si no hay fecha explícita
	Raw         json.RawMessage // registro original del producto, para auditoría/debug
}
