package quoting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eonlogistics/eon-ops-api/internal/application/dto"
	"github.com/eonlogistics/eon-ops-api/internal/application/ports"
	"github.com/eonlogistics/eon-ops-api/internal/application/quoting"
	"github.com/eonlogistics/eon-ops-api/internal/domain"
	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
	"github.com/eonlogistics/eon-ops-api/pkg/logger"
)

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users = append(r.users, u); return nil }

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByName(name string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakePDFGen struct {
	fail  bool
	calls []bool // valores de showProvider recibidos
}

func (g *fakePDFGen) GenerateQuotePDF(_ context.Context, _ *entity.Quote, showProvider bool) ([]byte, error) {
	g.calls = append(g.calls, showProvider)
	if g.fail {
		return nil, errors.New("pdf roto")
	}
	return []byte("%PDF-1.7 test"), nil
}

type sentMail struct {
	to          string
	subject     string
	attachments int
}

type fakeMailer struct {
	sent []sentMail
}

func (m *fakeMailer) Send(_ context.Context, to, subject, _ string, attachments ...ports.Attachment) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, attachments: len(attachments)})
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type assignFixture struct {
	uc       *quoting.AssignProviderUseCase
	quotes   *quoteFixture
	userRepo *fakeUserRepo
	pdfGen   *fakePDFGen
	mailer   *fakeMailer
}

func newAssignFixture(t *testing.T) (*assignFixture, *dto.QuoteResponse) {
	t.Helper()
	quotes := newQuoteFixture(fullTables())
	created := seedQuote(t, quotes)

	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: "u1", Name: "ACME", Email: "compras@acme.mx", Role: entity.RoleCliente},
		{ID: "u2", Name: "Transportes Norte", Email: "ops@tnorte.mx", Role: entity.RoleProveedor},
	}}
	pdfGen := &fakePDFGen{}
	mailer := &fakeMailer{}
	uc := quoting.NewAssignProviderUseCase(quotes.quoteRepo, userRepo, pdfGen, mailer, testLogger())
	return &assignFixture{uc: uc, quotes: quotes, userRepo: userRepo, pdfGen: pdfGen, mailer: mailer}, created
}

func TestAssignProvider_AsignaYNotifica(t *testing.T) {
	f, created := newAssignFixture(t)

	out, err := f.uc.AssignProvider(context.Background(), created.ID,
		dto.AssignProviderRequest{Provider: "Transportes Norte", NotifyEmail: true})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusAsignado, out.Status)
	assert.Equal(t, "Transportes Norte", out.AssignedProvider)
	assert.NotEmpty(t, out.PDFFile)

	// PDF del cliente: variante sin proveedor.
	require.Len(t, f.pdfGen.calls, 1)
	assert.False(t, f.pdfGen.calls[0])

	// Dos correos: cliente (con PDF adjunto) y proveedor (sin adjunto).
	require.Len(t, f.mailer.sent, 2)
	assert.Equal(t, "compras@acme.mx", f.mailer.sent[0].to)
	assert.Equal(t, 1, f.mailer.sent[0].attachments)
	assert.Equal(t, "ops@tnorte.mx", f.mailer.sent[1].to)
	assert.Equal(t, 0, f.mailer.sent[1].attachments)
}

func TestAssignProvider_SinNotificacion(t *testing.T) {
	f, created := newAssignFixture(t)

	_, err := f.uc.AssignProvider(context.Background(), created.ID,
		dto.AssignProviderRequest{Provider: "Transportes Norte"})
	require.NoError(t, err)
	assert.Empty(t, f.mailer.sent)
}

// El PDF roto no tumba la asignación: queda asignada y el correo sale sin adjunto.
func TestAssignProvider_PDFFallaPeroAsigna(t *testing.T) {
	f, created := newAssignFixture(t)
	f.pdfGen.fail = true

	out, err := f.uc.AssignProvider(context.Background(), created.ID,
		dto.AssignProviderRequest{Provider: "Transportes Norte", NotifyEmail: true})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusAsignado, out.Status)
	assert.Empty(t, out.PDFFile)
	require.Len(t, f.mailer.sent, 2)
	assert.Equal(t, 0, f.mailer.sent[0].attachments)
}

func TestAssignProvider_YaAsignada(t *testing.T) {
	f, created := newAssignFixture(t)

	_, err := f.uc.AssignProvider(context.Background(), created.ID,
		dto.AssignProviderRequest{Provider: "Transportes Norte"})
	require.NoError(t, err)

	_, err = f.uc.AssignProvider(context.Background(), created.ID,
		dto.AssignProviderRequest{Provider: "Fletes García"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestAssignProvider_NoExiste(t *testing.T) {
	f, _ := newAssignFixture(t)
	_, err := f.uc.AssignProvider(context.Background(), "no-existe",
		dto.AssignProviderRequest{Provider: "Transportes Norte"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnassign_RegresaAPendiente(t *testing.T) {
	f, created := newAssignFixture(t)

	_, err := f.uc.AssignProvider(context.Background(), created.ID,
		dto.AssignProviderRequest{Provider: "Transportes Norte"})
	require.NoError(t, err)

	out, err := f.uc.Unassign(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendiente, out.Status)
	assert.Empty(t, out.AssignedProvider)
}

func TestDownloadQuotePDF_VarianteInterna(t *testing.T) {
	f, created := newAssignFixture(t)

	pdfBytes, filename, err := f.uc.DownloadQuotePDF(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "cotizacion_"+created.Folio+".pdf", filename)
	require.Len(t, f.pdfGen.calls, 1)
	assert.True(t, f.pdfGen.calls[0], "la descarga interna muestra el proveedor")
}
