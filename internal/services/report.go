package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dmoralesc/inventario/internal/models"
)

// ReportLine is one sale resolved against its product, with the derived
// financial figures. Revenue and profit use the product's current prices
// (prices are not snapshotted on the sale, as in the original system).
type ReportLine struct {
	SaleID      uint
	ProductName string
	Quantity    int
	OccurredAt  time.Time
	Revenue     float64
	Profit      float64
}

type MonthlyReport struct {
	Year         int
	Month        time.Month
	Lines        []ReportLine
	TotalRevenue float64
	TotalProfit  float64
}

// ReportService aggregates sales into monthly reports.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{DB: db} }

// Monthly selects the sales of the given calendar month (UTC, inclusive of
// the month's last instant, exclusive of the next month's first) in id
// order and computes per-line and total revenue/profit. A sale whose
// product has since been deleted fails the whole report with
// ErrDanglingSale; lines are never silently omitted.
func (s *ReportService) Monthly(ctx context.Context, year int, month time.Month) (*MonthlyReport, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var sales []models.Sale
	if err := s.DB.WithContext(ctx).
		Where("occurred_at >= ? AND occurred_at < ?", start, end).
		Order("id").
		Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("select sales: %w", err)
	}

	rep := &MonthlyReport{Year: year, Month: month}
	for _, sale := range sales {
		var product models.Product
		if err := s.DB.WithContext(ctx).First(&product, sale.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: sale %d references product %d", ErrDanglingSale, sale.ID, sale.ProductID)
			}
			return nil, fmt.Errorf("resolve product %d: %w", sale.ProductID, err)
		}
		qty := float64(sale.Quantity)
		line := ReportLine{
			SaleID:      sale.ID,
			ProductName: product.Name,
			Quantity:    sale.Quantity,
			OccurredAt:  sale.OccurredAt,
			Revenue:     qty * product.SalePrice,
			Profit:      qty * product.GrossMargin(),
		}
		rep.Lines = append(rep.Lines, line)
		rep.TotalRevenue += line.Revenue
		rep.TotalProfit += line.Profit
	}
	return rep, nil
}
