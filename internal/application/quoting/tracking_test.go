package quoting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/application/quoting"
	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
)

func seedQuote(t *testing.T, f *quoteFixture) *dto.QuoteResponse {
	t.Helper()
	resp, err := f.uc.CreateQuote(context.Background(), validRequest())
	require.NoError(t, err)
	return resp
}

func TestTrackByFolio_VistaPublica(t *testing.T) {
	f := newQuoteFixture(fullTables())
	created := seedQuote(t, f)

	uc := quoting.NewTrackingUseCase(f.quoteRepo)
	out, err := uc.TrackByFolio(created.Folio)
	require.NoError(t, err)

	assert.Equal(t, created.Folio, out.Folio)
	assert.Equal(t, "Monterrey", out.Origin)
	assert.Equal(t, entity.StatusPendiente, out.Status)
}

func TestTrackByFolio_NoExiste(t *testing.T) {
	uc := quoting.NewTrackingUseCase(&fakeQuoteRepo{})
	_, err := uc.TrackByFolio("ZZZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El flujo es lineal: Pendiente → Asignado → En tránsito → Entregado.
func TestUpdateStatus_FlujoCompleto(t *testing.T) {
	f := newQuoteFixture(fullTables())
	created := seedQuote(t, f)
	uc := quoting.NewTrackingUseCase(f.quoteRepo)

	for _, status := range []string{entity.StatusAsignado, entity.StatusTransito, entity.StatusEntregado} {
		out, err := uc.UpdateStatus(created.ID, dto.UpdateStatusRequest{Status: status})
		require.NoError(t, err, "transición a %q", status)
		assert.Equal(t, status, out.Status)
	}
}

func TestUpdateStatus_TransicionesInvalidas(t *testing.T) {
	f := newQuoteFixture(fullTables())
	created := seedQuote(t, f)
	uc := quoting.NewTrackingUseCase(f.quoteRepo)

	// Saltarse etapas no está permitido.
	_, err := uc.UpdateStatus(created.ID, dto.UpdateStatusRequest{Status: entity.StatusEntregado})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Entregado es terminal.
	for _, status := range []string{entity.StatusAsignado, entity.StatusTransito, entity.StatusEntregado} {
		_, err = uc.UpdateStatus(created.ID, dto.UpdateStatusRequest{Status: status})
		require.NoError(t, err)
	}
	_, err = uc.UpdateStatus(created.ID, dto.UpdateStatusRequest{Status: entity.StatusTransito})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Estatus fuera del catálogo.
	_, err = uc.UpdateStatus(created.ID, dto.UpdateStatusRequest{Status: "Perdido"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Regresar de Asignado a Pendiente suelta al proveedor.
func TestUpdateStatus_RegresoAPendienteSueltaProveedor(t *testing.T) {
	f := newQuoteFixture(fullTables())
	created := seedQuote(t, f)
	require.NoError(t, f.quoteRepo.UpdateAssignment(created.ID, "Transportes Norte", entity.StatusAsignado))

	uc := quoting.NewTrackingUseCase(f.quoteRepo)
	out, err := uc.UpdateStatus(created.ID, dto.UpdateStatusRequest{Status: entity.StatusPendiente})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendiente, out.Status)
	assert.Empty(t, out.AssignedProvider)
}
