package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatusCountResult conteo de cotizaciones por estatus.
type StatusCountResult struct {
	Status string
	Count  int
}

// RouteCountResult conteo de cotizaciones por ruta (origen → destino).
type RouteCountResult struct {
	Origin      string
	Destination string
	Count       int
}

// ProviderCountResult conteo de cotizaciones por proveedor asignado.
// Provider es "No Asignado" para las pendientes.
type ProviderCountResult struct {
	Provider string
	Count    int
}

// ClientCountResult conteo de cotizaciones por cliente.
type ClientCountResult struct {
	Client string
	Count  int
}

// AnalyticsRepository define las consultas de lectura para el dashboard KPI y las alertas.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// CountByStatus devuelve el conteo de cotizaciones por estatus en el rango de fechas.
	CountByStatus(ctx context.Context, startDate, endDate time.Time) ([]StatusCountResult, error)

	// GetRevenue devuelve la suma de precio total de las cotizaciones del rango.
	// Usa COALESCE para devolver cero si no hay cotizaciones en el período.
	GetRevenue(ctx context.Context, startDate, endDate time.Time) (decimal.Decimal, error)

	// GetTopClients devuelve los `limit` clientes con más cotizaciones en el período.
	GetTopClients(ctx context.Context, startDate, endDate time.Time, limit int) ([]ClientCountResult, error)

	// GetRouteDistribution devuelve el conteo de cotizaciones por ruta.
	GetRouteDistribution(ctx context.Context, startDate, endDate time.Time) ([]RouteCountResult, error)

	// GetProviderDistribution devuelve el conteo por proveedor asignado.
	GetProviderDistribution(ctx context.Context, startDate, endDate time.Time) ([]ProviderCountResult, error)

	// ── Alertas de la torre de control ───────────────────────────────────────

	// CountUnassigned devuelve cuántas cotizaciones siguen sin proveedor.
	CountUnassigned(ctx context.Context) (int, error)

	// CountDelayedInTransit devuelve cuántas cotizaciones llevan en tránsito
	// desde antes de la fecha de corte (posibles retrasos).
	CountDelayedInTransit(ctx context.Context, cutoff time.Time) (int, error)

	// CountDeliveredOn devuelve cuántas cotizaciones se entregaron en el día dado.
	CountDeliveredOn(ctx context.Context, day time.Time) (int, error)
}
