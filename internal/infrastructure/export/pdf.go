package export

import (
	"fmt"
	"time"

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

	"github.com/jhoicas/inventaripro/internal/application/dto"
	"github.com/jhoicas/inventaripro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 58, Blue: 138}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// SummaryPDF genera el reporte resumen del inventario: cabecera con fecha de
// generación, tarjetas de totales, tabla de productos y totales por
// ubicación.
func SummaryPDF(
	products []*entity.Product,
	locations []dto.LocationTotalDTO,
	stats dto.DashboardStatsDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statsRow(stats, totalQuantity(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(locationsTitleRow())
	for _, lt := range locations {
		m.AddRows(locationRow(lt))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Stock de materiales de planta", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func statsRow(stats dto.DashboardStatsDTO, total decimal.Decimal) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
		)
	}
	return row.New(12).Add(
		cell("Productos", fmt.Sprintf("%d", stats.TotalProducts)),
		cell("Total en stock", total.StringFixed(2)+" kg"),
		cell("Próximos a vencer", fmt.Sprintf("%d", stats.ExpiringSoon)),
		cell("Stock bajo", fmt.Sprintf("%d", stats.LowStock)),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, s string) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header(2, "IDH"),
		header(3, "Descripción"),
		header(1, "Lote"),
		header(2, "Cantidad"),
		header(2, "Caducidad"),
		header(2, "Ubicación"),
	)
}

func productRow(p *entity.Product) core.Row {
	cell := func(size int, s string) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Top: 1}))
	}
	location := p.Location
	if p.SpecificLocation != "" {
		location = fmt.Sprintf("%s (%s)", p.Location, p.SpecificLocation)
	}
	return row.New(6).Add(
		cell(2, p.IDH),
		cell(3, p.Description),
		cell(1, p.Batch),
		cell(2, p.Quantity.StringFixed(2)+" kg"),
		cell(2, p.ExpiryDate.Format("02/01/2006")),
		cell(2, location),
	)
}

func locationsTitleRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New("Stock por ubicación", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	)
}

func locationRow(lt dto.LocationTotalDTO) core.Row {
	return row.New(5).Add(
		col.New(6).Add(text.New(lt.Location, props.Text{Size: 8, Top: 1})),
		col.New(6).Add(text.New(lt.Quantity.StringFixed(2)+" kg", props.Text{
			Size: 8, Top: 1, Align: align.Right,
		})),
	)
}

func totalQuantity(products []*entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Quantity)
	}
	return total
}
