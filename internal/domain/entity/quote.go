package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estatus del ciclo de vida de una cotización.
const (
	StatusPendiente = "Pendiente por asignar"
	StatusAsignado  = "Asignado"
	StatusTransito  = "En tránsito"
	StatusEntregado = "Entregado"
)

// Tipos de unidad soportados.
const (
	UnitCamioneta       = "Camioneta"
	UnitCamion35        = "Camión 3.5t"
	UnitTrailer         = "Tráiler"
	UnitCajaSeca        = "Caja Seca"
	UnitCajaRefrigerada = "Caja Refrigerada"
)

// UnitTypes lista los tipos de unidad válidos en el orden que se muestran en formularios.
var UnitTypes = []string{UnitCamioneta, UnitCamion35, UnitTrailer, UnitCajaSeca, UnitCajaRefrigerada}

// ValidUnitType indica si el tipo de unidad es uno de los soportados.
func ValidUnitType(unit string) bool {
	for _, u := range UnitTypes {
		if u == unit {
			return true
		}
	}
	return false
}

// ValidStatus indica si el estatus es uno del ciclo de vida.
func ValidStatus(status string) bool {
	switch status {
	case StatusPendiente, StatusAsignado, StatusTransito, StatusEntregado:
		return true
	}
	return false
}

// Quote es una cotización de envío ya preciada.
//
// Los campos de pricing (BaseRate, MarginUnitPct, MarginWeightPct, TotalPrice) son
// inmutables una vez calculados: re-cotizar siempre crea una Quote nueva con folio nuevo,
// nunca se recalcula en sitio contra tablas de tarifas mutadas.
type Quote struct {
	ID               string
	Folio            string // identificador público corto (8 chars), va en la URL de seguimiento
	ClientName       string
	Origin           string
	Destination      string
	DistanceKM       decimal.Decimal // solo cotización rápida por km; 0 en el modelo por kg
	WeightKG         decimal.Decimal
	Description      string
	UnitType         string
	BaseRate         decimal.Decimal
	MarginUnitPct    decimal.Decimal // margen resuelto por cliente/unidad/general
	MarginWeightPct  decimal.Decimal // margen por rango de peso
	TotalPrice       decimal.Decimal
	Currency         string
	Status           string
	TrackingURL      string
	AssignedProvider string // vacío mientras esté pendiente
	PDFFile          string // nombre del último PDF generado, si existe
	CreatedAt        time.Time
}

// Assigned indica si la cotización ya tiene proveedor.
func (q *Quote) Assigned() bool {
	return q.AssignedProvider != ""
}

// CanTransition valida la transición de estatus permitida.
// El flujo es lineal: Pendiente → Asignado → En tránsito → Entregado,
// con regreso permitido solo de Asignado a Pendiente (desasignar).
func CanTransition(from, to string) bool {
	switch from {
	case StatusPendiente:
		return to == StatusAsignado
	case StatusAsignado:
		return to == StatusTransito || to == StatusPendiente
	case StatusTransito:
		return to == StatusEntregado
	}
	return false
}
