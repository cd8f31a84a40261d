package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Antonio-Toppin/sweetmanage/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var items []models.Product
	if err := db.Order("product_number DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, number string) (*models.Product, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var prod models.Product
	if err := db.Where("product_number = ?", number).First(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) ProductExists(ctx context.Context, number string) (bool, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return false, err
	}
	var count int64
	if err := db.Model(&models.Product{}).
		Where("product_number = ?", number).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ProductNumbers lists every assigned key, for collision checks during
// identity generation.
func (r *GormRepo) ProductNumbers(ctx context.Context) ([]string, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var numbers []string
	if err := db.Model(&models.Product{}).
		Pluck("product_number", &numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return err
	}
	return db.Create(prod).Error
}

// UpdateProduct writes all columns for the row currently keyed by number.
// The key itself may change.
func (r *GormRepo) UpdateProduct(ctx context.Context, number string, prod *models.Product) error {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return err
	}
	res := db.Model(&models.Product{}).Where("product_number = ?", number).
		Updates(map[string]any{
			"product_number": prod.ProductNumber,
			"name":           prod.Name,
			"price":          prod.Price,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, number string) error {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return err
	}
	res := db.Where("product_number = ?", number).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
