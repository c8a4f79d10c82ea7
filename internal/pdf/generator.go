package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/nurpe/rentals-service/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Receipt renders a one page rental receipt.
func (g *Generator) Receipt(doc model.ReceiptDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle(fmt.Sprintf("Rental %d", doc.Rental.ID), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Rental receipt #%d", doc.Rental.ID), "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued %s", doc.IssuedAt.Format("02.01.2006 15:04 MST")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section(pdf, g.fontName, "Driver")
	lines(pdf, tr, []string{
		doc.Driver.Name,
		fmt.Sprintf("License: %s (category %s)", safeValue(doc.Driver.LicenseNumber), doc.Driver.LicenseCategory),
	})
	pdf.Ln(2)

	section(pdf, g.fontName, "Vehicle")
	lines(pdf, tr, []string{
		fmt.Sprintf("%s %d", doc.Vehicle.Model, doc.Vehicle.Year),
		fmt.Sprintf("Plate: %s", doc.Vehicle.LicensePlate),
	})
	pdf.Ln(2)

	section(pdf, g.fontName, "Plan")
	lines(pdf, tr, []string{
		doc.Plan.Name,
		fmt.Sprintf("%d days at %s per day", doc.Plan.DurationDays, formatAmount(doc.Plan.DailyRate)),
		fmt.Sprintf("Early return penalty: %s%%   Late fee per day: %s",
			doc.Plan.EarlyReturnPenaltyPct.StringFixed(2), formatAmount(doc.Plan.LateReturnDailyFee)),
	})
	pdf.Ln(2)

	section(pdf, g.fontName, "Period")
	colWidths := []float64{60, 60, 60}
	drawTableRow(pdf, g.fontName, []string{"Start", "Expected end", "Actual end"}, colWidths, true)
	actualEnd := "-"
	if doc.Rental.ActualEndDate != nil {
		actualEnd = formatDate(*doc.Rental.ActualEndDate)
	}
	drawTableRow(pdf, g.fontName, []string{
		formatDate(doc.Rental.StartDate),
		formatDate(doc.Rental.ExpectedEndDate),
		actualEnd,
	}, colWidths, false)
	pdf.Ln(2)

	section(pdf, g.fontName, "Charges")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Booked total: %s", formatAmount(doc.Rental.TotalAmount)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", doc.Rental.Status), "", 1, "L", false, 0, "")

	if len(doc.Lines) > 0 {
		pdf.Ln(2)
		widths := []float64{130, 50}
		drawTableRow(pdf, g.fontName, []string{"Item", "Amount"}, widths, true)
		for i, line := range doc.Lines {
			drawTableRow(pdf, g.fontName, []string{tr(line.Label), formatAmount(line.Amount)}, widths, i == len(doc.Lines)-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, fontName, title string) {
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
}

func lines(pdf *gofpdf.Fpdf, tr func(string) string, values []string) {
	for _, line := range values {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i == len(cols)-1 && len(cols) == 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatAmount(value decimal.Decimal) string {
	return "R$ " + value.StringFixed(2)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}
