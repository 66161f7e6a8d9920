package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del período consultado más distribuciones para las gráficas
// de la torre de control.
type DashboardSummaryDTO struct {
	TotalQuotes   int             `json:"total_quotes"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"` // suma de precio total del período
	AssignedCount int             `json:"assigned_count"`
	PendingCount  int             `json:"pending_count"`
	InTransit     int             `json:"in_transit"`
	Delivered     int             `json:"delivered"`

	StatusBreakdown []StatusCountDTO   `json:"status_breakdown"`
	TopClients      []ClientCountDTO   `json:"top_clients"`
	RouteHeatmap    []RouteCountDTO    `json:"route_heatmap"`
	ProviderLoad    []ProviderCountDTO `json:"provider_load"`

	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}

// StatusCountDTO conteo por estatus.
type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ClientCountDTO conteo por cliente.
type ClientCountDTO struct {
	Client string `json:"client"`
	Count  int    `json:"count"`
}

// RouteCountDTO conteo por ruta.
type RouteCountDTO struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

// ProviderCountDTO conteo por proveedor asignado ("No Asignado" para pendientes).
type ProviderCountDTO struct {
	Provider string `json:"provider"`
	Count    int    `json:"count"`
}

// AlertsDTO respuesta de GET /api/dashboard/alerts: señales operativas
// que el staff revisa al abrir el día.
type AlertsDTO struct {
	Unassigned       int `json:"unassigned"`         // cotizaciones sin proveedor
	DelayedInTransit int `json:"delayed_in_transit"` // en tránsito desde hace más de 2 días
	DeliveredToday   int `json:"delivered_today"`
}
