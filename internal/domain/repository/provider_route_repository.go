package repository

import "github.com/eonlogistics/eon-ops-api/internal/domain/entity"

// ProviderRouteRepository define el puerto de persistencia para las rutas de proveedores.
type ProviderRouteRepository interface {
	Create(route *entity.ProviderRoute) error
	// ListByRoute devuelve los proveedores que atienden la ruta y tipo de unidad exactos;
	// alimenta la generación de ofertas automáticas al crear una cotización.
	ListByRoute(origin, destination, unitType string) ([]*entity.ProviderRoute, error)
	List(limit, offset int) ([]*entity.ProviderRoute, error)
}
