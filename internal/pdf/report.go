// Package pdf renders the monthly sales report. The layout follows the
// historical document: US Letter, Helvetica, a centered header block and one
// detail line per sale with fixed 20pt spacing.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

type ReportLine struct {
	ProductName string
	Quantity    int
	Date        string // already formatted, e.g. "2026-08-28 14:05:00"
	Revenue     float64
}

type ReportData struct {
	TotalRevenue float64
	TotalProfit  float64
	Lines        []ReportLine
}

const (
	titleText  = "Reporte de Ventas del Mes"
	leftMargin = 72.0
	lineStep   = 20.0
)

// MonthlyReportPDF draws the report and returns the serialized document.
func MonthlyReportPDF(data ReportData) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetCompression(false)
	doc.AddPage()
	pageW, pageH := doc.GetPageSize()

	doc.SetFont("Helvetica", "", 12)
	centered(doc, pageW, 42, titleText)
	centered(doc, pageW, 62, fmt.Sprintf("Total Ventas: %.2f", data.TotalRevenue))
	centered(doc, pageW, 82, fmt.Sprintf("Total Ganancias: %.2f", data.TotalProfit))

	doc.SetFont("Helvetica", "", 10)
	y := 102.0
	for _, ln := range data.Lines {
		if y > pageH-leftMargin {
			doc.AddPage()
			y = leftMargin
		}
		text := fmt.Sprintf("Producto: %s - Cantidad: %d - Fecha: %s - Total Venta: %.2f",
			ln.ProductName, ln.Quantity, ln.Date, ln.Revenue)
		doc.Text(leftMargin, y, text)
		y += lineStep
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func centered(doc *gofpdf.Fpdf, pageW, y float64, text string) {
	tw := doc.GetStringWidth(text)
	doc.Text((pageW-tw)/2, y, text)
}
