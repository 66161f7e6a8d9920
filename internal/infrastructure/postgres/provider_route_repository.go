package postgres

import (
	"context"
	"fmt"

	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

var _ repository.ProviderRouteRepository = (*ProviderRouteRepo)(nil)

// ProviderRouteRepo persistencia de las rutas que atiende cada proveedor.
type ProviderRouteRepo struct {
	q Querier
}

// NewProviderRouteRepository construye el adaptador.
func NewProviderRouteRepository(q Querier) *ProviderRouteRepo {
	return &ProviderRouteRepo{q: q}
}

// Create registra una ruta. El trío (provider, origin, destination, unit_type)
// tiene constraint único.
func (r *ProviderRouteRepo) Create(route *entity.ProviderRoute) error {
	query := `
		INSERT INTO provider_routes (id, provider, origin, destination, unit_type, price_factor)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		route.ID, route.Provider, route.Origin, route.Destination, route.UnitType, route.PriceFactor,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider route: %w", err)
	}
	return nil
}

// ListByRoute devuelve los proveedores que atienden la ruta y unidad exactos.
func (r *ProviderRouteRepo) ListByRoute(origin, destination, unitType string) ([]*entity.ProviderRoute, error) {
	query := `
		SELECT id, provider, origin, destination, unit_type, price_factor
		FROM provider_routes
		WHERE origin = $1 AND destination = $2 AND unit_type = $3
		ORDER BY provider`
	return r.list(query, origin, destination, unitType)
}

// List lista todas las rutas registradas con paginación.
func (r *ProviderRouteRepo) List(limit, offset int) ([]*entity.ProviderRoute, error) {
	query := `
		SELECT id, provider, origin, destination, unit_type, price_factor
		FROM provider_routes
		ORDER BY provider, origin, destination
		LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *ProviderRouteRepo) list(query string, args ...any) ([]*entity.ProviderRoute, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list provider routes: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProviderRoute
	for rows.Next() {
		var route entity.ProviderRoute
		if err := rows.Scan(&route.ID, &route.Provider, &route.Origin, &route.Destination,
			&route.UnitType, &route.PriceFactor); err != nil {
			return nil, fmt.Errorf("scan provider route: %w", err)
		}
		list = append(list, &route)
	}
	return list, rows.Err()
}
