package models

import (
	"math"
	"testing"
)

func TestProductMargins(t *testing.T) {
	p := Product{Name: "Widget", Code: "1234567890123", CostPrice: 10, SalePrice: 15, Stock: 100}
	if got := p.GrossMargin(); got != 5 {
		t.Fatalf("gross margin: expected 5 got %v", got)
	}
	if got := p.NetMargin(); math.Abs(got-50) > 1e-9 {
		t.Fatalf("net margin: expected 50 got %v", got)
	}
}

func TestProductNetMarginZeroCost(t *testing.T) {
	p := Product{CostPrice: 0, SalePrice: 15}
	if got := p.NetMargin(); got != 0 {
		t.Fatalf("net margin with zero cost: expected 0 got %v", got)
	}
}

func TestProductNegativeMargin(t *testing.T) {
	p := Product{CostPrice: 20, SalePrice: 15}
	if got := p.GrossMargin(); got != -5 {
		t.Fatalf("gross margin: expected -5 got %v", got)
	}
	if got := p.NetMargin(); math.Abs(got-(-25)) > 1e-9 {
		t.Fatalf("net margin: expected -25 got %v", got)
	}
}
