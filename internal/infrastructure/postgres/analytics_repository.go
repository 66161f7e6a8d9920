package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y las alertas de
// la torre de control.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountByStatus conteo de cotizaciones por estatus en el rango de fechas.
func (r *AnalyticsRepo) CountByStatus(ctx context.Context, startDate, endDate time.Time) ([]repository.StatusCountResult, error) {
	const query = `
		SELECT status, COUNT(*)
		FROM quotes
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY status
		ORDER BY COUNT(*) DESC`
	rows, err := r.pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	var list []repository.StatusCountResult
	for rows.Next() {
		var s repository.StatusCountResult
		if err := rows.Scan(&s.Status, &s.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetRevenue suma el precio total de las cotizaciones del rango.
// COALESCE devuelve cero si no hay cotizaciones en el período.
func (r *AnalyticsRepo) GetRevenue(ctx context.Context, startDate, endDate time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(total_price), 0)
		FROM quotes
		WHERE created_at BETWEEN $1 AND $2`
	var revenue decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, startDate, endDate).Scan(&revenue); err != nil {
		return decimal.Decimal{}, fmt.Errorf("get revenue: %w", err)
	}
	return revenue, nil
}

// GetTopClients devuelve los `limit` clientes con más cotizaciones del período.
func (r *AnalyticsRepo) GetTopClients(ctx context.Context, startDate, endDate time.Time, limit int) ([]repository.ClientCountResult, error) {
	const query = `
		SELECT client_name, COUNT(*)
		FROM quotes
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY client_name
		ORDER BY COUNT(*) DESC, client_name
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("top clients: %w", err)
	}
	defer rows.Close()

	var list []repository.ClientCountResult
	for rows.Next() {
		var c repository.ClientCountResult
		if err := rows.Scan(&c.Client, &c.Count); err != nil {
			return nil, fmt.Errorf("scan client count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetRouteDistribution conteo de cotizaciones por ruta (origen → destino).
func (r *AnalyticsRepo) GetRouteDistribution(ctx context.Context, startDate, endDate time.Time) ([]repository.RouteCountResult, error) {
	const query = `
		SELECT origin, destination, COUNT(*)
		FROM quotes
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY origin, destination
		ORDER BY COUNT(*) DESC`
	rows, err := r.pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("route distribution: %w", err)
	}
	defer rows.Close()

	var list []repository.RouteCountResult
	for rows.Next() {
		var rt repository.RouteCountResult
		if err := rows.Scan(&rt.Origin, &rt.Destination, &rt.Count); err != nil {
			return nil, fmt.Errorf("scan route count: %w", err)
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}

// GetProviderDistribution conteo por proveedor asignado. Las pendientes se
// agrupan como "No Asignado".
func (r *AnalyticsRepo) GetProviderDistribution(ctx context.Context, startDate, endDate time.Time) ([]repository.ProviderCountResult, error) {
	const query = `
		SELECT COALESCE(assigned_provider, 'No Asignado'), COUNT(*)
		FROM quotes
		WHERE created_at BETWEEN $1 AND $2
		GROUP BY COALESCE(assigned_provider, 'No Asignado')
		ORDER BY COUNT(*) DESC`
	rows, err := r.pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("provider distribution: %w", err)
	}
	defer rows.Close()

	var list []repository.ProviderCountResult
	for rows.Next() {
		var p repository.ProviderCountResult
		if err := rows.Scan(&p.Provider, &p.Count); err != nil {
			return nil, fmt.Errorf("scan provider count: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountUnassigned cuántas cotizaciones siguen sin proveedor.
func (r *AnalyticsRepo) CountUnassigned(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quotes WHERE assigned_provider IS NULL`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count unassigned: %w", err)
	}
	return n, nil
}

// CountDelayedInTransit cuántas cotizaciones entraron a tránsito antes de la
// fecha de corte y siguen sin entregarse.
func (r *AnalyticsRepo) CountDelayedInTransit(ctx context.Context, cutoff time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quotes WHERE status = $1 AND status_updated_at < $2`,
		entity.StatusTransito, cutoff,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count delayed in transit: %w", err)
	}
	return n, nil
}

// CountDeliveredOn cuántas cotizaciones se entregaron en el día dado.
func (r *AnalyticsRepo) CountDeliveredOn(ctx context.Context, day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quotes WHERE status = $1 AND status_updated_at BETWEEN $2 AND $3`,
		entity.StatusEntregado, start, end,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count delivered: %w", err)
	}
	return n, nil
}
