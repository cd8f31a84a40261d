package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Antonio-Toppin/sweetmanage/internal/apperr"
	"github.com/Antonio-Toppin/sweetmanage/internal/logging"
	"github.com/Antonio-Toppin/sweetmanage/internal/models"
	"github.com/Antonio-Toppin/sweetmanage/internal/repo"
)

type ProductService struct {
	Repo    *repo.GormRepo
	Confirm Confirmer
}

// ProductInput carries the form fields as entered; Price is parsed here so a
// bad value fails validation rather than silently storing zero.
type ProductInput struct {
	ProductNumber string
	Name          string
	Price         string
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	items, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

func (s *ProductService) Get(ctx context.Context, number string) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, number)
	if err != nil {
		return nil, storeErr(err)
	}
	return prod, nil
}

func (s *ProductService) validate(in ProductInput) (*models.Product, error) {
	number := strings.TrimSpace(in.ProductNumber)
	name := strings.TrimSpace(in.Name)
	priceStr := strings.TrimSpace(in.Price)
	if number == "" || name == "" || priceStr == "" {
		return nil, fmt.Errorf("%w: all fields are required", apperr.ErrValidation)
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("%w: price must be a non-negative number", apperr.ErrValidation)
	}
	return &models.Product{
		ProductNumber: number,
		Name:          name,
		Price:         price,
	}, nil
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "products.create")

	prod, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	exists, err := s.Repo.ProductExists(ctx, prod.ProductNumber)
	if err != nil {
		l.Error("product_create_error", "error", err)
		return nil, storeErr(err)
	}
	if exists {
		return nil, fmt.Errorf("%w: product number already exists", apperr.ErrDuplicateKey)
	}

	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		l.Error("product_create_error", "error", err)
		return nil, storeErr(err)
	}
	l.Info("product_created", "product_number", prod.ProductNumber)
	return prod, nil
}

func (s *ProductService) Update(ctx context.Context, number string, in ProductInput) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "products.update", "product_number", number)

	prod, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	if prod.ProductNumber != number {
		exists, err := s.Repo.ProductExists(ctx, prod.ProductNumber)
		if err != nil {
			l.Error("product_update_error", "error", err)
			return nil, storeErr(err)
		}
		if exists {
			return nil, fmt.Errorf("%w: product number already exists", apperr.ErrDuplicateKey)
		}
	}

	if err := s.Repo.UpdateProduct(ctx, number, prod); err != nil {
		l.Error("product_update_error", "error", err)
		return nil, storeErr(err)
	}
	l.Info("product_updated", "product_number", prod.ProductNumber)
	return prod, nil
}

// Delete asks the confirmation capability first; historical order line items
// referencing the product are left untouched.
func (s *ProductService) Delete(ctx context.Context, number string) error {
	if !confirmed(ctx, s.Confirm, "Delete Product", "Are you sure you want to delete this product?") {
		return apperr.ErrCancelled
	}
	if err := s.Repo.DeleteProduct(ctx, number); err != nil {
		logging.FromContext(ctx).With("svc", "products.delete").
			Error("product_delete_error", "product_number", number, "error", err)
		return storeErr(err)
	}
	return nil
}

// GenerateNumber produces a fresh 4-digit product number, re-rolling against
// the assigned set.
func (s *ProductService) GenerateNumber(ctx context.Context) (string, error) {
	existing, err := s.Repo.ProductNumbers(ctx)
	if err != nil {
		return "", storeErr(err)
	}
	return generateKey(existing)
}
