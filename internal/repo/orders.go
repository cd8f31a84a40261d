package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Antonio-Toppin/sweetmanage/internal/models"
)

// OrderSummary is one row of the order list: the header joined with the
// customer's name. The join is LEFT because a customer may have been deleted
// after the order was placed.
type OrderSummary struct {
	OrderNumber  uint    `json:"order_number"`
	Date         string  `json:"date"`
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	TotalPrice   float64 `json:"total_price"`
}

// LineDetail is one line item joined with the product's current name, which
// may be empty if the product has since been deleted. Qty and Subtotal are
// the values snapshotted at order creation.
type LineDetail struct {
	ProductNumber string  `json:"product_number"`
	ProductName   string  `json:"product_name"`
	Qty           uint    `json:"qty"`
	Subtotal      float64 `json:"subtotal"`
}

// CreateOrder inserts the header, captures the generated order number, then
// inserts every line item with it. One transaction: if any insert fails,
// nothing is persisted.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderLineItem) (uint, error) {
	err := r.Store.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderNumber = order.OrderNumber
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return order.OrderNumber, nil
}

// DeleteOrder removes the order's line items and its header atomically, so a
// failure between the two statements cannot leave orphaned line items.
func (r *GormRepo) DeleteOrder(ctx context.Context, orderNumber uint) error {
	return r.Store.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("order_number = ?", orderNumber).
			Delete(&models.OrderLineItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("order_number = ?", orderNumber).Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormRepo) GetOrder(ctx context.Context, orderNumber uint) (*models.Order, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := db.Preload("Items").
		Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrderSummaries(ctx context.Context) ([]OrderSummary, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var summaries []OrderSummary
	if err := db.Table("tblorders AS o").
		Select("o.order_number, o.date, o.customer_id, COALESCE(c.name, '') AS customer_name, o.total_price").
		Joins("LEFT JOIN tblcustomers c ON c.customer_id = o.customer_id").
		Order("o.order_number DESC").
		Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *GormRepo) OrderLines(ctx context.Context, orderNumber uint) ([]LineDetail, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var lines []LineDetail
	if err := db.Table("tblorder_products AS op").
		Select("op.product_number, COALESCE(p.name, '') AS product_name, op.qty, op.subtotal").
		Joins("LEFT JOIN tblproducts p ON p.product_number = op.product_number").
		Where("op.order_number = ?", orderNumber).
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}
