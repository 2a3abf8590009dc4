package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/dmoralesc/inventario/internal/models"
)

func seedSale(t *testing.T, db *gorm.DB, productID uint, qty int, at time.Time) models.Sale {
	t.Helper()
	s := models.Sale{ProductID: productID, Quantity: qty, OccurredAt: at}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed sale: %v", err)
	}
	return s
}

func TestMonthlyReportTotals(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	p := seedWidget(t, db, 100) // cost 10, sale 15

	jan := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	seedSale(t, db, p.ID, 3, jan)
	seedSale(t, db, p.ID, 2, jan.Add(48*time.Hour))

	rep, err := svc.Monthly(context.Background(), 2026, time.January)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if len(rep.Lines) != 2 {
		t.Fatalf("expected 2 lines got %d", len(rep.Lines))
	}
	// line revenue = qty * sale price, profit = qty * (sale - cost)
	if rep.Lines[0].Revenue != 45 || rep.Lines[0].Profit != 15 {
		t.Fatalf("line 0: %+v", rep.Lines[0])
	}
	if rep.TotalRevenue != 75 || rep.TotalProfit != 25 {
		t.Fatalf("totals: revenue=%v profit=%v", rep.TotalRevenue, rep.TotalProfit)
	}
	// Totals are the sums of the line figures.
	var sumR, sumP float64
	for _, ln := range rep.Lines {
		sumR += ln.Revenue
		sumP += ln.Profit
	}
	if sumR != rep.TotalRevenue || sumP != rep.TotalProfit {
		t.Fatalf("totals do not match line sums")
	}
}

func TestMonthlyReportBoundaries(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	p := seedWidget(t, db, 100)

	lastInstant := time.Date(2026, time.January, 31, 23, 59, 59, 999999000, time.UTC)
	nextMonth := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	beforeMonth := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	seedSale(t, db, p.ID, 1, lastInstant)
	seedSale(t, db, p.ID, 2, nextMonth)
	seedSale(t, db, p.ID, 3, beforeMonth)

	rep, err := svc.Monthly(context.Background(), 2026, time.January)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if len(rep.Lines) != 1 {
		t.Fatalf("expected only the last-instant sale, got %d lines", len(rep.Lines))
	}
	if rep.Lines[0].Quantity != 1 {
		t.Fatalf("wrong sale selected: %+v", rep.Lines[0])
	}
}

func TestMonthlyReportPreservesInsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	p := seedWidget(t, db, 100)

	at := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	// Later timestamp inserted first; report order must follow ids, not time.
	seedSale(t, db, p.ID, 5, at.Add(time.Hour))
	seedSale(t, db, p.ID, 7, at)

	rep, err := svc.Monthly(context.Background(), 2026, time.March)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if len(rep.Lines) != 2 || rep.Lines[0].Quantity != 5 || rep.Lines[1].Quantity != 7 {
		t.Fatalf("unexpected order: %+v", rep.Lines)
	}
}

func TestMonthlyReportDanglingProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	p := seedWidget(t, db, 100)

	at := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	seedSale(t, db, p.ID, 4, at)
	if err := db.Delete(&models.Product{}, p.ID).Error; err != nil {
		t.Fatalf("delete product: %v", err)
	}

	_, err := svc.Monthly(context.Background(), 2026, time.April)
	if !errors.Is(err, ErrDanglingSale) {
		t.Fatalf("expected ErrDanglingSale got %v", err)
	}
}

func TestMonthlyReportEmptyMonth(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	rep, err := svc.Monthly(context.Background(), 2026, time.July)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if len(rep.Lines) != 0 || rep.TotalRevenue != 0 || rep.TotalProfit != 0 {
		t.Fatalf("expected empty report, got %+v", rep)
	}
}
