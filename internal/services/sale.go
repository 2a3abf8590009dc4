package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dmoralesc/inventario/internal/models"
)

// SaleService records sales against product stock.
type SaleService struct {
	DB *gorm.DB
}

func NewSaleService(db *gorm.DB) *SaleService { return &SaleService{DB: db} }

// Record looks up the product by barcode, decrements its stock and appends a
// Sale, all in one transaction. The decrement is a guarded single statement
// (stock = stock - q WHERE stock >= q), so two concurrent sales can never
// both pass the stock check and over-sell.
func (s *SaleService) Record(ctx context.Context, code string, quantity int) (*models.Sale, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	var sale models.Sale
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Where("code = ?", code).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", product.ID, quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}
		sale = models.Sale{ProductID: product.ID, Quantity: quantity, OccurredAt: time.Now().UTC()}
		return tx.Create(&sale).Error
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}
