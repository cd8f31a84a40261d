package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Antonio-Toppin/sweetmanage/internal/models"
)

func (r *GormRepo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var items []models.Customer
	if err := db.Order("customer_id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var cust models.Customer
	if err := db.Where("customer_id = ?", id).First(&cust).Error; err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *GormRepo) CustomerExists(ctx context.Context, id string) (bool, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return false, err
	}
	var count int64
	if err := db.Model(&models.Customer{}).
		Where("customer_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) CustomerIDs(ctx context.Context) ([]string, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := db.Model(&models.Customer{}).
		Pluck("customer_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GormRepo) CreateCustomer(ctx context.Context, cust *models.Customer) error {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return err
	}
	return db.Create(cust).Error
}

func (r *GormRepo) UpdateCustomer(ctx context.Context, id string, cust *models.Customer) error {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return err
	}
	res := db.Model(&models.Customer{}).Where("customer_id = ?", id).
		Updates(map[string]any{
			"customer_id": cust.CustomerID,
			"name":        cust.Name,
			"phone":       cust.Phone,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteCustomer(ctx context.Context, id string) error {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return err
	}
	res := db.Where("customer_id = ?", id).Delete(&models.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
