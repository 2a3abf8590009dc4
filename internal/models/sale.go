package models

import "time"

// Sale is an append-only fact: a quantity of a product sold at a point in
// time. Sales are never updated or deleted once recorded.
type Sale struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"not null;index" json:"product_id"`
	Product    Product   `gorm:"foreignKey:ProductID" json:"-"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	OccurredAt time.Time `gorm:"not null;index" json:"occurred_at"`
}
