// Package pdf genera la representación gráfica de una factura en A4.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + código      │  N° Factura + estado        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA: descripción                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: importe                                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la referencia + estado de pago              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	appbilling "github.com/jhoicas/biztime-api/internal/application/billing"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPaid    = &props.Color{Red: 20, Green: 120, Blue: 60}
	colorDue     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Invoice %d", invoice.ID), true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(companyRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + código (izq) y N° factura + estado (der).
func headerRow(invoice *entity.Invoice, company *entity.Company) core.Row {
	status, color := paymentStatus(invoice)
	return row.New(20).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Code: "+company.Code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("#%d", invoice.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(status, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 14, Color: color,
			}),
		),
	)
}

func companyRow(company *entity.Company) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(company.Description, "—"), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DUE:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 3,
		})),
		col.New(3).Add(text.New("$"+formatMoney(invoice.Amt), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 3,
		})),
	)
}

// footerRow: QR con la referencia de la factura y leyenda de estado.
func footerRow(invoice *entity.Invoice) core.Row {
	legend := "Payment pending."
	if invoice.Paid && invoice.PaidDate != nil {
		legend = "Paid on " + invoice.PaidDate.UTC().Format("2006-01-02 15:04 MST") + "."
	}
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(qrReference(invoice), props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(9).Add(
			text.New(legend, props.Text{
				Size: 9, Top: 4, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func paymentStatus(invoice *entity.Invoice) (string, *props.Color) {
	if invoice.Paid {
		return "PAID", colorPaid
	}
	return "UNPAID", colorDue
}

// qrReference texto codificado en el QR: id|empresa|importe|pagada.
func qrReference(invoice *entity.Invoice) string {
	return fmt.Sprintf("%d|%s|%s|%t", invoice.ID, invoice.CompCode, invoice.Amt.StringFixed(2), invoice.Paid)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con dos decimales y comas de miles.
// Ej: 25000 → "25,000.00", -1234.5 → "-1,234.50"
func formatMoney(amt decimal.Decimal) string {
	s := amt.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "." + frac
}
