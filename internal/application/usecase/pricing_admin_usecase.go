// Package usecase contiene los casos de uso administrativos.
package usecase

import (
	"fmt"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/pricing"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

// PricingAdminUseCase administración de las tablas de pricing: tarifas base,
// reglas de margen y rangos de peso. Solo staff admin.
type PricingAdminUseCase struct {
	pricingRepo repository.PricingRepository
}

// NewPricingAdminUseCase construye el caso de uso.
func NewPricingAdminUseCase(pricingRepo repository.PricingRepository) *PricingAdminUseCase {
	return &PricingAdminUseCase{pricingRepo: pricingRepo}
}

// GetTables devuelve la configuración completa para la pantalla de administración.
func (uc *PricingAdminUseCase) GetTables() (*dto.PricingTablesResponse, error) {
	rates, err := uc.pricingRepo.ListRates()
	if err != nil {
		return nil, err
	}
	margins, err := uc.pricingRepo.ListMargins()
	if err != nil {
		return nil, err
	}
	brackets, err := uc.pricingRepo.ListWeightBrackets()
	if err != nil {
		return nil, err
	}

	out := &dto.PricingTablesResponse{
		Rates:          make([]dto.RateResponse, 0, len(rates)),
		Margins:        make([]dto.MarginResponse, 0, len(margins)),
		WeightBrackets: make([]dto.WeightBracketResponse, 0, len(brackets)),
	}
	for _, r := range rates {
		out.Rates = append(out.Rates, dto.RateResponse{Origin: r.Origin, Destination: r.Destination, BaseRate: r.BaseRate})
	}
	for _, m := range margins {
		out.Margins = append(out.Margins, dto.MarginResponse{Criterion: m.Criterion, Value: m.Value, Percentage: m.Percentage})
	}
	for _, b := range brackets {
		out.WeightBrackets = append(out.WeightBrackets, dto.WeightBracketResponse{MinKG: b.Min, MaxKG: b.Max, Percentage: b.Percentage})
	}
	return out, nil
}

// ListRates devuelve las tarifas base por ruta.
func (uc *PricingAdminUseCase) ListRates() ([]dto.RateResponse, error) {
	rates, err := uc.pricingRepo.ListRates()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, dto.RateResponse{Origin: r.Origin, Destination: r.Destination, BaseRate: r.BaseRate})
	}
	return out, nil
}

// ListMargins devuelve las reglas de margen.
func (uc *PricingAdminUseCase) ListMargins() ([]dto.MarginResponse, error) {
	margins, err := uc.pricingRepo.ListMargins()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarginResponse, 0, len(margins))
	for _, m := range margins {
		out = append(out, dto.MarginResponse{Criterion: m.Criterion, Value: m.Value, Percentage: m.Percentage})
	}
	return out, nil
}

// ListWeightBrackets devuelve los rangos de peso ordenados por mínimo.
func (uc *PricingAdminUseCase) ListWeightBrackets() ([]dto.WeightBracketResponse, error) {
	brackets, err := uc.pricingRepo.ListWeightBrackets()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WeightBracketResponse, 0, len(brackets))
	for _, b := range brackets {
		out = append(out, dto.WeightBracketResponse{MinKG: b.Min, MaxKG: b.Max, Percentage: b.Percentage})
	}
	return out, nil
}

// UpsertRate crea o actualiza la tarifa base de una ruta.
func (uc *PricingAdminUseCase) UpsertRate(in dto.RateRequest) error {
	if in.Origin == "" || in.Destination == "" || !in.BaseRate.IsPositive() {
		return domain.ErrInvalidInput
	}
	return uc.pricingRepo.UpsertRate(pricing.RateEntry{
		Origin:      in.Origin,
		Destination: in.Destination,
		BaseRate:    in.BaseRate,
	})
}

// UpsertMargin crea o actualiza una regla de margen. El criterio general solo
// admite el valor canónico.
func (uc *PricingAdminUseCase) UpsertMargin(in dto.MarginRequest) error {
	switch in.Criterion {
	case pricing.CriterionCliente, pricing.CriterionUnidad:
		if in.Value == "" {
			return domain.ErrInvalidInput
		}
	case pricing.CriterionGeneral:
		if in.Value != pricing.GeneralValue {
			return fmt.Errorf("%w: la regla general debe usar el valor %q", domain.ErrInvalidInput, pricing.GeneralValue)
		}
	default:
		return domain.ErrInvalidInput
	}
	if in.Percentage.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.pricingRepo.UpsertMargin(pricing.MarginRule{
		Criterion:  in.Criterion,
		Value:      in.Value,
		Percentage: in.Percentage,
	})
}

// CreateWeightBracket agrega un rango de peso [min, max). Rechaza rangos
// inválidos y cualquier traslape con los existentes: un peso debe caer en
// exactamente un rango.
func (uc *PricingAdminUseCase) CreateWeightBracket(in dto.WeightBracketRequest) error {
	if in.MinKG.IsNegative() || !in.MaxKG.GreaterThan(in.MinKG) || in.Percentage.IsNegative() {
		return domain.ErrInvalidInput
	}
	existing, err := uc.pricingRepo.ListWeightBrackets()
	if err != nil {
		return err
	}
	for _, b := range existing {
		// Dos rangos semiabiertos se traslapan si cada uno empieza antes de que termine el otro.
		if in.MinKG.LessThan(b.Max) && b.Min.LessThan(in.MaxKG) {
			return fmt.Errorf("%w: el rango [%s, %s) se traslapa con [%s, %s)",
				domain.ErrConflict, in.MinKG, in.MaxKG, b.Min, b.Max)
		}
	}
	return uc.pricingRepo.CreateWeightBracket(pricing.WeightBracket{
		Min:        in.MinKG,
		Max:        in.MaxKG,
		Percentage: in.Percentage,
	})
}
