package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nurpe/rentals-service/internal/model"
	"github.com/nurpe/rentals-service/internal/pricing"
)

type DocumentService struct {
	rentals  RentalRepository
	plans    PlanRepository
	drivers  DriverRepository
	vehicles VehicleRepository
	engine   *pricing.Engine
	pdf      PDFGenerator
	excel    ExcelGenerator
	now      func() time.Time
}

func NewDocumentService(
	rentals RentalRepository,
	plans PlanRepository,
	drivers DriverRepository,
	vehicles VehicleRepository,
	engine *pricing.Engine,
	pdf PDFGenerator,
	excel ExcelGenerator,
) *DocumentService {
	return &DocumentService{
		rentals:  rentals,
		plans:    plans,
		drivers:  drivers,
		vehicles: vehicles,
		engine:   engine,
		pdf:      pdf,
		excel:    excel,
		now:      utcNow,
	}
}

type Document struct {
	FileName string
	Content  []byte
}

func (s *DocumentService) RentalReceipt(ctx context.Context, rentalID int64, principal model.Principal) (*Document, error) {
	rental, err := s.rentals.GetByID(ctx, rentalID)
	if err != nil {
		return nil, notFound(err, ErrRentalNotFound)
	}
	if !principal.CanActAsDriver(rental.DriverID) {
		return nil, ErrPermissionDenied
	}

	plan, err := s.plans.GetByID(ctx, rental.PlanID)
	if err != nil {
		return nil, notFound(err, ErrPlanNotFound)
	}
	driver, err := s.drivers.GetByID(ctx, rental.DriverID)
	if err != nil {
		return nil, notFound(err, ErrDriverNotFound)
	}
	vehicle, err := s.vehicles.GetByID(ctx, rental.VehicleID)
	if err != nil {
		return nil, notFound(err, ErrVehicleNotFound)
	}

	doc := model.ReceiptDocument{
		Rental:   *rental,
		Plan:     *plan,
		Driver:   *driver,
		Vehicle:  *vehicle,
		IssuedAt: s.now().UTC(),
	}
	if rental.Status == model.RentalStatusReturned && rental.ActualEndDate != nil {
		doc.Lines = chargeLines(s.engine.Breakdown(*plan, rental.StartDate, rental.ExpectedEndDate, *rental.ActualEndDate))
	}

	content, err := s.pdf.Receipt(doc)
	if err != nil {
		return nil, err
	}
	return &Document{
		FileName: fmt.Sprintf("rental-%d-receipt.pdf", rental.ID),
		Content:  content,
	}, nil
}

func (s *DocumentService) PlanCatalog(ctx context.Context) (*Document, error) {
	plans, err := s.plans.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.PlanCatalog(plans)
	if err != nil {
		return nil, err
	}
	return &Document{
		FileName: fmt.Sprintf("plans-%s.xlsx", s.now().UTC().Format("20060102")),
		Content:  content,
	}, nil
}

func (s *DocumentService) DriverStatement(ctx context.Context, driverID int64, principal model.Principal) (*Document, error) {
	if !principal.CanActAsDriver(driverID) {
		return nil, ErrPermissionDenied
	}
	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, notFound(err, ErrDriverNotFound)
	}
	rentals, err := s.rentals.GetByDriverID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string)
	rows := make([]model.StatementRow, 0, len(rentals))
	for _, rental := range rentals {
		name, ok := names[rental.PlanID]
		if !ok {
			plan, err := s.plans.GetByID(ctx, rental.PlanID)
			if err != nil {
				return nil, notFound(err, ErrPlanNotFound)
			}
			name = plan.Name
			names[rental.PlanID] = name
		}
		rows = append(rows, model.StatementRow{Rental: rental, PlanName: name})
	}

	content, err := s.excel.DriverStatement(model.DriverStatement{
		Driver:      *driver,
		Rows:        rows,
		GeneratedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	target := sanitizeFileName(driver.Name)
	if target == "" {
		target = fmt.Sprintf("%d", driver.ID)
	}
	return &Document{
		FileName: fmt.Sprintf("rentals-%s-%s.xlsx", target, s.now().UTC().Format("20060102")),
		Content:  content,
	}, nil
}

func chargeLines(b pricing.Breakdown) []model.ChargeLine {
	lines := []model.ChargeLine{
		{Label: fmt.Sprintf("Daily rate x %d days", b.ActualDays), Amount: b.BaseAmount},
	}
	switch b.Kind {
	case pricing.ReturnEarly:
		lines = append(lines, model.ChargeLine{Label: fmt.Sprintf("Early return penalty (%d unused days)", b.UnusedDays), Amount: b.Penalty})
	case pricing.ReturnLate:
		lines = append(lines, model.ChargeLine{Label: fmt.Sprintf("Late return fee (%d extra days)", b.ExtraDays), Amount: b.LateFee})
	case pricing.ReturnOnTime:
	}
	return append(lines, model.ChargeLine{Label: "Total", Amount: b.Total})
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r+('a'-'A'))
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
