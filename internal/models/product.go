package models

import "time"

// Product is a stocked item. Code carries the barcode (EAN-13 style in
// practice, but stored as an opaque unique string).
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Code      string    `gorm:"size:100;uniqueIndex;not null" json:"code"`
	CostPrice float64   `gorm:"not null" json:"cost_price"`
	SalePrice float64   `gorm:"not null" json:"sale_price"`
	Stock     int       `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// GrossMargin is the per-unit margin: sale price minus cost price.
func (p Product) GrossMargin() float64 {
	return p.SalePrice - p.CostPrice
}

// NetMargin expresses the gross margin as a percentage of the cost price.
// A zero cost price yields 0 rather than a division by zero.
func (p Product) NetMargin() float64 {
	if p.CostPrice == 0 {
		return 0
	}
	return p.GrossMargin() / p.CostPrice * 100
}
