package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/rentals-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// PlanCatalog writes every plan on a single sheet, in the order given.
func (g *Generator) PlanCatalog(plans []model.RentalPlan) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := "Plans"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"ID",
		"Name",
		"Duration, days",
		"Daily rate",
		"Early return penalty, %",
		"Late fee per day",
		"Active",
		"Created",
	}
	writeHeader(file, sheet, headers)

	for i, plan := range plans {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), plan.ID)
		set(fmt.Sprintf("B%d", row), plan.Name)
		set(fmt.Sprintf("C%d", row), plan.DurationDays)
		set(fmt.Sprintf("D%d", row), amount(plan.DailyRate))
		set(fmt.Sprintf("E%d", row), amount(plan.EarlyReturnPenaltyPct))
		set(fmt.Sprintf("F%d", row), amount(plan.LateReturnDailyFee))
		set(fmt.Sprintf("G%d", row), yesNo(plan.IsActive))
		set(fmt.Sprintf("H%d", row), formatDate(plan.CreatedAt))
	}

	_ = file.SetColWidth(sheet, "A", "A", 8)
	_ = file.SetColWidth(sheet, "B", "B", 24)
	_ = file.SetColWidth(sheet, "C", "H", 18)
	return write(file)
}

// DriverStatement writes a summary sheet and one row per rental.
func (g *Generator) DriverStatement(statement model.DriverStatement) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	summary := "Summary"
	if err := file.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}
	if err := g.writeStatementSummary(file, summary, statement); err != nil {
		return nil, err
	}

	detail := sanitizeSheetName("Rentals - " + statement.Driver.Name)
	if _, err := file.NewSheet(detail); err != nil {
		return nil, err
	}
	g.writeStatementRows(file, detail, statement.Rows)

	file.SetActiveSheet(0)
	return write(file)
}

func (g *Generator) writeStatementSummary(file *excelize.File, sheet string, statement model.DriverStatement) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	charged := decimal.Zero
	counts := map[model.RentalStatus]int{}
	for _, row := range statement.Rows {
		counts[row.Rental.Status]++
		charged = charged.Add(chargedAmount(row.Rental))
	}

	set("A1", "Driver")
	set("B1", statement.Driver.Name)
	set("A2", "License")
	set("B2", fmt.Sprintf("%s (%s)", statement.Driver.LicenseNumber, statement.Driver.LicenseCategory))
	set("A3", "Generated")
	set("B3", formatDateTime(statement.GeneratedAt))
	set("A4", "Rentals")
	set("B4", len(statement.Rows))
	set("A5", "Active")
	set("B5", counts[model.RentalStatusActive])
	set("A6", "Returned")
	set("B6", counts[model.RentalStatusReturned])
	set("A7", "Cancelled")
	set("B7", counts[model.RentalStatusCancelled])
	set("A8", "Charged total")
	set("B8", amount(charged))

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 32)
	return nil
}

func (g *Generator) writeStatementRows(file *excelize.File, sheet string, rows []model.StatementRow) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	writeHeader(file, sheet, []string{
		"Rental",
		"Plan",
		"Vehicle",
		"Start",
		"Expected end",
		"Actual end",
		"Status",
		"Booked total",
		"Final amount",
	})

	for i, row := range rows {
		r := row.Rental
		line := 2 + i
		set(fmt.Sprintf("A%d", line), r.ID)
		set(fmt.Sprintf("B%d", line), row.PlanName)
		set(fmt.Sprintf("C%d", line), r.VehicleID)
		set(fmt.Sprintf("D%d", line), formatDate(r.StartDate))
		set(fmt.Sprintf("E%d", line), formatDate(r.ExpectedEndDate))
		if r.ActualEndDate != nil {
			set(fmt.Sprintf("F%d", line), formatDate(*r.ActualEndDate))
		}
		set(fmt.Sprintf("G%d", line), r.Status.String())
		set(fmt.Sprintf("H%d", line), amount(r.TotalAmount))
		if r.FinalAmount.Valid {
			set(fmt.Sprintf("I%d", line), amount(r.FinalAmount.Decimal))
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 10)
	_ = file.SetColWidth(sheet, "B", "B", 20)
	_ = file.SetColWidth(sheet, "C", "I", 14)
}

func writeHeader(file *excelize.File, sheet string, headers []string) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, header)
	}
}

func write(file *excelize.File) ([]byte, error) {
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// chargedAmount is what the driver owes for a rental: the final amount once
// returned, the booked total while active, nothing when cancelled.
func chargedAmount(r model.Rental) decimal.Decimal {
	switch r.Status {
	case model.RentalStatusReturned:
		if r.FinalAmount.Valid {
			return r.FinalAmount.Decimal
		}
		return r.TotalAmount
	case model.RentalStatusActive:
		return r.TotalAmount
	case model.RentalStatusCancelled:
		return decimal.Zero
	}
	return decimal.Zero
}

func sanitizeSheetName(value string) string {
	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" {
		return "Rentals"
	}
	runes := []rune(value)
	if len(runes) > 31 {
		value = strings.TrimSpace(string(runes[:31]))
	}
	return value
}

func amount(value decimal.Decimal) float64 {
	f, _ := value.Round(2).Float64()
	return f
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
