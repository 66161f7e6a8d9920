// Package analytics contiene los casos de uso de la torre de control:
// resumen KPI de cotizaciones y alertas operativas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

const (
	dashboardTopClients = 5 // clientes en el widget del dashboard

	// delayedAfter: una cotización en tránsito desde hace más de este tiempo
	// se considera posible retraso.
	delayedAfter = 48 * time.Hour
)

// DashboardUseCase genera el resumen del mes en curso y las alertas del día.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No toca la tabla de cotizaciones directo; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO del mes en curso.
//
// Cinco consultas en paralelo:
//  1. CountByStatus            → totales y desglose por estatus
//  2. GetRevenue               → ingreso del período
//  3. GetTopClients            → top 5 clientes
//  4. GetRouteDistribution     → mapa de calor de rutas
//  5. GetProviderDistribution  → carga por proveedor
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)

	type statusResult struct {
		counts []repository.StatusCountResult
		err    error
	}
	type revenueResult struct {
		revenue decimal.Decimal
		err     error
	}
	type clientsResult struct {
		clients []repository.ClientCountResult
		err     error
	}
	type routesResult struct {
		routes []repository.RouteCountResult
		err    error
	}
	type providersResult struct {
		providers []repository.ProviderCountResult
		err       error
	}

	statusCh := make(chan statusResult, 1)
	revenueCh := make(chan revenueResult, 1)
	clientsCh := make(chan clientsResult, 1)
	routesCh := make(chan routesResult, 1)
	providersCh := make(chan providersResult, 1)

	go func() {
		counts, err := uc.analyticsRepo.CountByStatus(ctx, monthStart, monthEnd)
		statusCh <- statusResult{counts, err}
	}()
	go func() {
		revenue, err := uc.analyticsRepo.GetRevenue(ctx, monthStart, monthEnd)
		revenueCh <- revenueResult{revenue, err}
	}()
	go func() {
		clients, err := uc.analyticsRepo.GetTopClients(ctx, monthStart, monthEnd, dashboardTopClients)
		clientsCh <- clientsResult{clients, err}
	}()
	go func() {
		routes, err := uc.analyticsRepo.GetRouteDistribution(ctx, monthStart, monthEnd)
		routesCh <- routesResult{routes, err}
	}()
	go func() {
		providers, err := uc.analyticsRepo.GetProviderDistribution(ctx, monthStart, monthEnd)
		providersCh <- providersResult{providers, err}
	}()

	status := <-statusCh
	revenue := <-revenueCh
	clients := <-clientsCh
	routes := <-routesCh
	providers := <-providersCh

	if status.err != nil {
		return nil, fmt.Errorf("dashboard: conteo por estatus: %w", status.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingreso del período: %w", revenue.err)
	}
	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: top clientes: %w", clients.err)
	}
	if routes.err != nil {
		return nil, fmt.Errorf("dashboard: distribución de rutas: %w", routes.err)
	}
	if providers.err != nil {
		return nil, fmt.Errorf("dashboard: carga por proveedor: %w", providers.err)
	}

	out := &dto.DashboardSummaryDTO{
		TotalRevenue: revenue.revenue.Round(2),
		DateLabel:    monthLabel(now),
	}
	for _, s := range status.counts {
		out.TotalQuotes += s.Count
		switch s.Status {
		case entity.StatusPendiente:
			out.PendingCount = s.Count
		case entity.StatusAsignado:
			out.AssignedCount = s.Count
		case entity.StatusTransito:
			out.InTransit = s.Count
		case entity.StatusEntregado:
			out.Delivered = s.Count
		}
		out.StatusBreakdown = append(out.StatusBreakdown, dto.StatusCountDTO{Status: s.Status, Count: s.Count})
	}
	for _, c := range clients.clients {
		out.TopClients = append(out.TopClients, dto.ClientCountDTO{Client: c.Client, Count: c.Count})
	}
	for _, r := range routes.routes {
		out.RouteHeatmap = append(out.RouteHeatmap, dto.RouteCountDTO{
			Origin: r.Origin, Destination: r.Destination, Count: r.Count,
		})
	}
	for _, p := range providers.providers {
		out.ProviderLoad = append(out.ProviderLoad, dto.ProviderCountDTO{Provider: p.Provider, Count: p.Count})
	}
	return out, nil
}

// GetAlerts construye las señales operativas del día: cotizaciones sin
// asignar, tránsitos con posible retraso y entregas de hoy.
func (uc *DashboardUseCase) GetAlerts(ctx context.Context) (*dto.AlertsDTO, error) {
	now := time.Now()

	type countResult struct {
		n   int
		err error
	}
	unassignedCh := make(chan countResult, 1)
	delayedCh := make(chan countResult, 1)
	deliveredCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountUnassigned(ctx)
		unassignedCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountDelayedInTransit(ctx, now.Add(-delayedAfter))
		delayedCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountDeliveredOn(ctx, now)
		deliveredCh <- countResult{n, err}
	}()

	unassigned := <-unassignedCh
	delayed := <-delayedCh
	delivered := <-deliveredCh

	if unassigned.err != nil {
		return nil, fmt.Errorf("alertas: sin asignar: %w", unassigned.err)
	}
	if delayed.err != nil {
		return nil, fmt.Errorf("alertas: tránsitos retrasados: %w", delayed.err)
	}
	if delivered.err != nil {
		return nil, fmt.Errorf("alertas: entregas de hoy: %w", delivered.err)
	}

	return &dto.AlertsDTO{
		Unassigned:       unassigned.n,
		DelayedInTransit: delayed.n,
		DeliveredToday:   delivered.n,
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
