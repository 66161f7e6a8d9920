package offers

import (
	"github.com/google/uuid"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
)

// RegisterRoute registra la ruta y tipo de unidad que atiende un proveedor.
// El factor de precio multiplica el total cotizado para generar su oferta
// automática; debe ser positivo (típicamente entre 0.7 y 1.0).
func (uc *OfferUseCase) RegisterRoute(provider string, in dto.ProviderRouteRequest) (*dto.ProviderRouteResponse, error) {
	if in.Provider != "" {
		provider = in.Provider
	}
	if provider == "" || in.Origin == "" || in.Destination == "" || !in.PriceFactor.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidUnitType(in.UnitType) {
		return nil, domain.ErrInvalidInput
	}

	route := &entity.ProviderRoute{
		ID:          uuid.New().String(),
		Provider:    provider,
		Origin:      in.Origin,
		Destination: in.Destination,
		UnitType:    in.UnitType,
		PriceFactor: in.PriceFactor,
	}
	if err := uc.routeRepo.Create(route); err != nil {
		return nil, err
	}
	return toRouteResponse(route), nil
}

// ListRoutes lista las rutas registradas de todos los proveedores.
func (uc *OfferUseCase) ListRoutes(page dto.PageRequest) ([]dto.ProviderRouteResponse, error) {
	page.DefaultPage()
	routes, err := uc.routeRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderRouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, *toRouteResponse(r))
	}
	return out, nil
}

func toRouteResponse(r *entity.ProviderRoute) *dto.ProviderRouteResponse {
	return &dto.ProviderRouteResponse{
		ID:          r.ID,
		Provider:    r.Provider,
		Origin:      r.Origin,
		Destination: r.Destination,
		UnitType:    r.UnitType,
		PriceFactor: r.PriceFactor,
	}
}
