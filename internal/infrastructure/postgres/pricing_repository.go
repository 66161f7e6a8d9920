package postgres

import (
	"context"
	"fmt"

	"github.com/eonlogistics/eon-ops-api/internal/domain/pricing"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

var _ repository.PricingRepository = (*PricingRepo)(nil)

// PricingRepo persistencia de las tablas de pricing: tarifas por ruta, reglas
// de margen y rangos de peso. Son tablas de configuración pequeñas; Snapshot
// las carga completas para que el motor resuelva en memoria.
type PricingRepo struct {
	q Querier
}

// NewPricingRepository construye el adaptador.
func NewPricingRepository(q Querier) *PricingRepo {
	return &PricingRepo{q: q}
}

// Snapshot carga las tres tablas completas en una vista de solo lectura.
func (r *PricingRepo) Snapshot() (pricing.Tables, error) {
	rates, err := r.ListRates()
	if err != nil {
		return pricing.Tables{}, err
	}
	margins, err := r.ListMargins()
	if err != nil {
		return pricing.Tables{}, err
	}
	brackets, err := r.ListWeightBrackets()
	if err != nil {
		return pricing.Tables{}, err
	}
	return pricing.Tables{Rates: rates, Margins: margins, WeightBrackets: brackets}, nil
}

// ListRates lista las tarifas base por ruta.
func (r *PricingRepo) ListRates() ([]pricing.RateEntry, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT origin, destination, base_rate FROM rates ORDER BY origin, destination`)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}
	defer rows.Close()

	var list []pricing.RateEntry
	for rows.Next() {
		var e pricing.RateEntry
		if err := rows.Scan(&e.Origin, &e.Destination, &e.BaseRate); err != nil {
			return nil, fmt.Errorf("scan rate: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// UpsertRate crea o actualiza la tarifa de una ruta (la ruta es única).
func (r *PricingRepo) UpsertRate(rate pricing.RateEntry) error {
	query := `
		INSERT INTO rates (origin, destination, base_rate)
		VALUES ($1, $2, $3)
		ON CONFLICT (origin, destination) DO UPDATE SET base_rate = EXCLUDED.base_rate`
	if _, err := r.q.Exec(context.Background(), query, rate.Origin, rate.Destination, rate.BaseRate); err != nil {
		return fmt.Errorf("upsert rate: %w", err)
	}
	return nil
}

// ListMargins lista las reglas de margen.
func (r *PricingRepo) ListMargins() ([]pricing.MarginRule, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT criterion, match_value, percentage FROM margin_rules ORDER BY criterion, match_value`)
	if err != nil {
		return nil, fmt.Errorf("list margins: %w", err)
	}
	defer rows.Close()

	var list []pricing.MarginRule
	for rows.Next() {
		var m pricing.MarginRule
		if err := rows.Scan(&m.Criterion, &m.Value, &m.Percentage); err != nil {
			return nil, fmt.Errorf("scan margin: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// UpsertMargin crea o actualiza una regla (criterio + valor son únicos).
func (r *PricingRepo) UpsertMargin(rule pricing.MarginRule) error {
	query := `
		INSERT INTO margin_rules (criterion, match_value, percentage)
		VALUES ($1, $2, $3)
		ON CONFLICT (criterion, match_value) DO UPDATE SET percentage = EXCLUDED.percentage`
	if _, err := r.q.Exec(context.Background(), query, rule.Criterion, rule.Value, rule.Percentage); err != nil {
		return fmt.Errorf("upsert margin: %w", err)
	}
	return nil
}

// ListWeightBrackets lista los rangos de peso ordenados por mínimo.
func (r *PricingRepo) ListWeightBrackets() ([]pricing.WeightBracket, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT min_kg, max_kg, percentage FROM weight_margins ORDER BY min_kg`)
	if err != nil {
		return nil, fmt.Errorf("list weight brackets: %w", err)
	}
	defer rows.Close()

	var list []pricing.WeightBracket
	for rows.Next() {
		var b pricing.WeightBracket
		if err := rows.Scan(&b.Min, &b.Max, &b.Percentage); err != nil {
			return nil, fmt.Errorf("scan weight bracket: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// CreateWeightBracket agrega un rango nuevo. El traslape se valida en el caso
// de uso; aquí solo se inserta.
func (r *PricingRepo) CreateWeightBracket(bracket pricing.WeightBracket) error {
	query := `INSERT INTO weight_margins (min_kg, max_kg, percentage) VALUES ($1, $2, $3)`
	if _, err := r.q.Exec(context.Background(), query, bracket.Min, bracket.Max, bracket.Percentage); err != nil {
		return fmt.Errorf("insert weight bracket: %w", err)
	}
	return nil
}
