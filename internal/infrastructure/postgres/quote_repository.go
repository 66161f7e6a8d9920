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

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

const quoteColumns = `id, folio, client_name, origin, destination, distance_km,
	weight_kg, description, unit_type, base_rate, margin_unit_pct,
	margin_weight_pct, total_price, currency, status, tracking_url,
	COALESCE(assigned_provider, ''), COALESCE(pdf_file, ''), created_at`

// QuoteRepo implementación del puerto QuoteRepository sobre PostgreSQL
// (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste una cotización nueva. El folio tiene constraint único.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, folio, client_name, origin, destination, distance_km,
			weight_kg, description, unit_type, base_rate, margin_unit_pct,
			margin_weight_pct, total_price, currency, status, tracking_url,
			assigned_provider, pdf_file, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			NULLIF($17, ''), NULLIF($18, ''), $19)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.Folio, quote.ClientName, quote.Origin, quote.Destination,
		quote.DistanceKM, quote.WeightKG, quote.Description, quote.UnitType,
		quote.BaseRate, quote.MarginUnitPct, quote.MarginWeightPct, quote.TotalPrice,
		quote.Currency, quote.Status, quote.TrackingURL,
		quote.AssignedProvider, quote.PDFFile, quote.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	return r.findOne(`SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id)
}

// GetByFolio obtiene una cotización por su folio público.
func (r *QuoteRepo) GetByFolio(folio string) (*entity.Quote, error) {
	return r.findOne(`SELECT `+quoteColumns+` FROM quotes WHERE folio = $1`, folio)
}

func (r *QuoteRepo) findOne(query string, arg any) (*entity.Quote, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return quote, nil
}

// List lista cotizaciones más recientes primero; status y client filtran si no
// están vacíos.
func (r *QuoteRepo) List(status, client string, limit, offset int) ([]*entity.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR client_name = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	return r.list(query, status, client, limit, offset)
}

// ListPending lista cotizaciones sin proveedor asignado.
func (r *QuoteRepo) ListPending(limit, offset int) ([]*entity.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes
		WHERE assigned_provider IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListOpenForProvider lista cotizaciones pendientes sobre las que el proveedor
// aún no tiene oferta.
func (r *QuoteRepo) ListOpenForProvider(provider string, limit, offset int) ([]*entity.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes q
		WHERE q.assigned_provider IS NULL
		  AND NOT EXISTS (
			SELECT 1 FROM offers o WHERE o.quote_id = q.id AND o.provider = $1
		  )
		ORDER BY q.created_at DESC
		LIMIT $2 OFFSET $3`
	return r.list(query, provider, limit, offset)
}

func (r *QuoteRepo) list(query string, args ...any) ([]*entity.Quote, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, quote)
	}
	return list, rows.Err()
}

// UpdateAssignment fija proveedor asignado y estatus; no toca los campos de pricing.
func (r *QuoteRepo) UpdateAssignment(id, provider, status string) error {
	query := `UPDATE quotes SET assigned_provider = NULLIF($2, ''), status = $3, status_updated_at = NOW() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, provider, status)
	if err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia solo el estatus.
func (r *QuoteRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE quotes SET status = $2, status_updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePDFFile registra el nombre del último PDF generado.
func (r *QuoteRepo) UpdatePDFFile(id, pdfFile string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE quotes SET pdf_file = $2 WHERE id = $1`, id, pdfFile)
	if err != nil {
		return fmt.Errorf("update pdf file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	err := row.Scan(
		&q.ID, &q.Folio, &q.ClientName, &q.Origin, &q.Destination, &q.DistanceKM,
		&q.WeightKG, &q.Description, &q.UnitType, &q.BaseRate, &q.MarginUnitPct,
		&q.MarginWeightPct, &q.TotalPrice, &q.Currency, &q.Status, &q.TrackingURL,
		&q.AssignedProvider, &q.PDFFile, &q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
