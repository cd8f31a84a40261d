package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Antonio-Toppin/sweetmanage/internal/models"
)

func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := db.Order("user_id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return err
	}
	return db.Create(u).Error
}

func (r *GormRepo) SaveUser(ctx context.Context, u *models.User) error {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return err
	}
	return db.Save(u).Error
}

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameTaken reports whether another user already holds username.
// excludeID skips the row being edited; pass 0 on create.
func (r *GormRepo) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return false, err
	}
	var count int64
	q := db.Model(&models.User{}).Where("username = ?", username)
	if excludeID != 0 {
		q = q.Where("user_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetSessionUser flips every is_logged_in flag off and the given user's on,
// inside one transaction so at most one user is ever flagged.
func (r *GormRepo) SetSessionUser(ctx context.Context, userID uint) error {
	return r.Store.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("is_logged_in = ?", true).
			Update("is_logged_in", false).Error; err != nil {
			return err
		}
		res := tx.Model(&models.User{}).Where("user_id = ?", userID).
			Update("is_logged_in", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormRepo) ClearSessions(ctx context.Context) error {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return err
	}
	return db.Model(&models.User{}).Where("is_logged_in = ?", true).
		Update("is_logged_in", false).Error
}

// SessionUser returns the user currently flagged as logged in, if any.
func (r *GormRepo) SessionUser(ctx context.Context) (*models.User, error) {
	db, err := r.Store.DB(ctx)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.Where("is_logged_in = ?", true).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
