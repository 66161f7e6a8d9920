package repository

import "github.com/eonlogistics/eon-ops-api/internal/domain/entity"

// QuoteRepository define el puerto de persistencia para cotizaciones.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	GetByFolio(folio string) (*entity.Quote, error)
	// List lista cotizaciones más recientes primero; status y client filtran si no están vacíos.
	List(status, client string, limit, offset int) ([]*entity.Quote, error)
	// ListPending lista cotizaciones sin proveedor asignado.
	ListPending(limit, offset int) ([]*entity.Quote, error)
	// ListOpenForProvider lista cotizaciones sobre las que el proveedor aún no oferta.
	ListOpenForProvider(provider string, limit, offset int) ([]*entity.Quote, error)
	// UpdateAssignment fija proveedor asignado y estatus; no toca los campos de pricing.
	UpdateAssignment(id, provider, status string) error
	UpdateStatus(id, status string) error
	UpdatePDFFile(id, pdfFile string) error
}
