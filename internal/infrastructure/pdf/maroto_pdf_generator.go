// Package pdf implementa la representación en PDF de una cotización de flete.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: EON Logistics       │  Folio + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + descripción de la carga                  │
//	│  RUTA: Origen → Destino | Unidad | Peso                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE: Tarifa base | Margen unidad | Margen peso        │
//	│  TOTAL                                                      │
//	│  [PROVEEDOR ASIGNADO, solo variante interna]                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: URL de seguimiento + leyenda de vigencia           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eonlogistics/eon-ops-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// esMX formatea montos con separador de miles al estilo mexicano.
var esMX = message.NewPrinter(language.MustParse("es-MX"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.QuotePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	companyName string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(companyName string) *MarotoPDFGenerator {
	if companyName == "" {
		companyName = "EON Logistics"
	}
	return &MarotoPDFGenerator{companyName: companyName}
}

// GenerateQuotePDF genera el PDF de la cotización y devuelve sus bytes.
// showProvider distingue la variante interna (con proveedor asignado) de la
// que se envía al cliente.
func (g *MarotoPDFGenerator) GenerateQuotePDF(_ context.Context, quote *entity.Quote, showProvider bool) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+quote.Folio, true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(quote))
	m.AddRows(routeRow(quote))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(breakdownRows(quote)...)
	m.AddRows(totalRow(quote))

	if showProvider && quote.Assigned() {
		m.AddRows(providerRow(quote))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(quote)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social (izq) y folio + fecha (der).
func (g *MarotoPDFGenerator) headerRow(quote *entity.Quote) core.Row {
	fecha := quote.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Soluciones de transporte y logística", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN DE FLETE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(quote.Folio, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente y descripción de la carga.
func clientRow(quote *entity.Quote) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(quote.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Carga: "+nonEmpty(quote.Description, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// routeRow: ruta, unidad y peso del envío.
func routeRow(quote *entity.Quote) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ENVÍO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s  →  %s   |   Unidad: %s   |   Peso: %s kg",
				quote.Origin, quote.Destination, quote.UnitType, quote.WeightKG.String(),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// breakdownRows: desglose del cálculo del precio.
func breakdownRows(quote *entity.Quote) []core.Row {
	detail := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(6).Add(text.New(label, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(6).Add(text.New(value, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		)
	}
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("DESGLOSE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
		detail("Tarifa base por kg", formatMoney(quote.BaseRate)+" "+quote.Currency),
		detail("Margen por tipo de unidad", quote.MarginUnitPct.String()+"%"),
		detail("Margen por rango de peso", quote.MarginWeightPct.String()+"%"),
	}
}

// totalRow: total a pagar destacado.
func totalRow(quote *entity.Quote) core.Row {
	return row.New(12).Add(
		col.New(6).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 3, Left: 1,
		})),
		col.New(6).Add(text.New(formatMoney(quote.TotalPrice)+" "+quote.Currency, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 1,
		})),
	)
}

// providerRow: proveedor asignado, solo para la variante interna.
func providerRow(quote *entity.Quote) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Proveedor asignado: "+quote.AssignedProvider, props.Text{
				Size: 8, Top: 2, Left: 1, Color: colorGray,
			}),
		),
	)
}

// footerRows: URL de seguimiento y leyenda de vigencia.
func footerRows(quote *entity.Quote) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("SEGUIMIENTO DE TU ENVÍO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if quote.TrackingURL != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Consulta el estatus en: "+quote.TrackingURL, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Precios sujetos a disponibilidad de unidades. "+
				"Esta cotización tiene una vigencia de 15 días naturales a partir de su fecha de emisión.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea un monto con separador de miles y dos decimales
// según la convención es-MX. Ej: 25000 → "$25,000.00"
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return esMX.Sprintf("$%.2f", f)
}
