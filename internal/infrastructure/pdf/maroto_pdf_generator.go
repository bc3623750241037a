// Package pdf genera el relatório PDF de una consulta de Vitibrasil.
//
// Layout de la página A4, repetido por año:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Categoria / Subcategoria │ Período + Fonte          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ANO NNNN (unidade)                                          │
//	│  TABLA: Item | Subitem | Quantidade | Valor (US$)            │
//	│  TOTAL del año                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/vitivinicultura-api/internal/application/viticulture"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
)

var _ viticulture.DatasetRenderer = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 110, Green: 20, Blue: 45}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa viticulture.DatasetRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author aparece en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// ContentType tipo MIME del documento generado.
func (g *MarotoPDFGenerator) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) Render(_ context.Context, ds *entity.Dataset) ([]byte, error) {
	if ds == nil {
		return nil, fmt.Errorf("pdf: dataset nulo")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Dados Vitivinícolas - "+string(ds.Category), true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(ds))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(ds.Years) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Nenhum ano no período solicitado.", props.Text{Size: 9, Top: 3, Color: colorGray}),
		)))
	}
	for _, y := range ds.Years {
		m.AddRows(yearTitleRow(y))
		m.AddRows(tableHeaderRow())
		m.AddRows(recordRows(y.Records)...)
		if y.Total != nil {
			m.AddRows(totalRow(y.Total))
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(ds *entity.Dataset) core.Row {
	title := strings.ToUpper(string(ds.Category))
	if ds.Subcategory != nil {
		title += " / " + strings.ToUpper(string(*ds.Subcategory))
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Fonte: "+ds.Source, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Período: %d a %d", ds.StartYear, ds.EndYear), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("%d registros", ds.RecordCount()), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func yearTitleRow(y entity.YearData) core.Row {
	label := fmt.Sprintf("ANO %d", y.Year)
	if y.Unit != "" {
		label += " (" + y.Unit + ")"
	}
	return row.New(9).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Item", 4, align.Left),
		h("Subitem", 3, align.Left),
		h("Quantidade", 3, align.Right),
		h("Valor (US$)", 2, align.Right),
	)
}

func recordRows(records []entity.Record) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, r := range records {
		item := r.Item
		style := fontstyle.Bold
		if r.Subitem != "" {
			item = ""
			style = fontstyle.Normal
		}
		result = append(result, row.New(5).Add(
			col.New(4).Add(text.New(item, props.Text{Size: 8, Style: style, Left: 1})),
			col.New(3).Add(text.New(r.Subitem, props.Text{Size: 8, Left: 1})),
			col.New(3).Add(text.New(formatNumber(r.Quantity), props.Text{Size: 8, Align: align.Right, Right: 1})),
			col.New(2).Add(text.New(formatNumber(r.Value), props.Text{Size: 8, Align: align.Right, Right: 1})),
		))
	}
	return result
}

func totalRow(t *entity.Total) core.Row {
	bold := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: a, Top: 1, Right: 1, Left: 1})
	}
	return row.New(7).Add(
		col.New(7).Add(bold("Total", align.Left)),
		col.New(3).Add(bold(formatNumber(t.Quantity), align.Right)),
		col.New(2).Add(bold(formatNumber(t.Value), align.Right)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatNumber formato brasileño con puntos de miles; "-" si el dato no existe.
func formatNumber(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	s := d.StringFixed(0)
	if d.Exponent() < 0 && !d.Equal(d.Truncate(0)) {
		s = d.StringFixed(2)
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	out := groupThousands(intPart)
	if neg {
		out = "-" + out
	}
	if hasFrac {
		out += "," + frac
	}
	return out
}

// groupThousands inserta puntos de miles. Ej: "1000000" → "1.000.000".
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
