package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
	"github.com/eonlogistics/eon-ops-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo implementación del puerto OfferRepository sobre PostgreSQL
// (usable con pool o tx).
type OfferRepo struct {
	q Querier
}

// NewOfferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOfferRepository(q Querier) *OfferRepo {
	return &OfferRepo{q: q}
}

// Create persiste una oferta. El par (quote_id, provider) tiene constraint único.
func (r *OfferRepo) Create(offer *entity.Offer) error {
	query := `
		INSERT INTO offers (id, quote_id, provider, price, currency, message, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		offer.ID, offer.QuoteID, offer.Provider, offer.Price, offer.Currency,
		offer.Message, offer.Source, offer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyOffered
		}
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// ListByQuote lista las ofertas de una cotización, más recientes primero.
func (r *OfferRepo) ListByQuote(quoteID string) ([]*entity.Offer, error) {
	query := `
		SELECT id, quote_id, provider, price, currency, COALESCE(message, ''), source, created_at
		FROM offers WHERE quote_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Offer
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(&o.ID, &o.QuoteID, &o.Provider, &o.Price, &o.Currency,
			&o.Message, &o.Source, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ExistsForProvider indica si el proveedor ya ofertó sobre la cotización.
func (r *OfferRepo) ExistsForProvider(quoteID, provider string) (bool, error) {
	var one int
	err := r.q.QueryRow(context.Background(),
		`SELECT 1 FROM offers WHERE quote_id = $1 AND provider = $2 LIMIT 1`,
		quoteID, provider,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists offer: %w", err)
	}
	return true, nil
}
