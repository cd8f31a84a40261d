package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Antonio-Toppin/sweetmanage/internal/apperr"
	"github.com/Antonio-Toppin/sweetmanage/internal/logging"
	"github.com/Antonio-Toppin/sweetmanage/internal/models"
	"github.com/Antonio-Toppin/sweetmanage/internal/repo"
)

type CustomerService struct {
	Repo    *repo.GormRepo
	Confirm Confirmer
}

type CustomerInput struct {
	CustomerID string
	Name       string
	Phone      string
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	items, err := s.Repo.ListCustomers(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*models.Customer, error) {
	cust, err := s.Repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return cust, nil
}

// digitsOf strips everything but digits, the canonical form a phone number is
// validated against. The display format is stored as entered.
func digitsOf(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *CustomerService) validate(in CustomerInput) (*models.Customer, error) {
	id := strings.TrimSpace(in.CustomerID)
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if id == "" || name == "" || phone == "" {
		return nil, fmt.Errorf("%w: all fields are required", apperr.ErrValidation)
	}
	digits := digitsOf(phone)
	if len(digits) < 7 || len(digits) > 15 {
		return nil, fmt.Errorf("%w: phone number must have 7 to 15 digits", apperr.ErrValidation)
	}
	return &models.Customer{
		CustomerID: id,
		Name:       name,
		Phone:      phone,
	}, nil
}

func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (*models.Customer, error) {
	l := logging.FromContext(ctx).With("svc", "customers.create")

	cust, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	exists, err := s.Repo.CustomerExists(ctx, cust.CustomerID)
	if err != nil {
		l.Error("customer_create_error", "error", err)
		return nil, storeErr(err)
	}
	if exists {
		return nil, fmt.Errorf("%w: customer ID already exists", apperr.ErrDuplicateKey)
	}

	if err := s.Repo.CreateCustomer(ctx, cust); err != nil {
		l.Error("customer_create_error", "error", err)
		return nil, storeErr(err)
	}
	l.Info("customer_created", "customer_id", cust.CustomerID)
	return cust, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, in CustomerInput) (*models.Customer, error) {
	l := logging.FromContext(ctx).With("svc", "customers.update", "customer_id", id)

	cust, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	if cust.CustomerID != id {
		exists, err := s.Repo.CustomerExists(ctx, cust.CustomerID)
		if err != nil {
			l.Error("customer_update_error", "error", err)
			return nil, storeErr(err)
		}
		if exists {
			return nil, fmt.Errorf("%w: customer ID already exists", apperr.ErrDuplicateKey)
		}
	}

	if err := s.Repo.UpdateCustomer(ctx, id, cust); err != nil {
		l.Error("customer_update_error", "error", err)
		return nil, storeErr(err)
	}
	l.Info("customer_updated", "customer_id", cust.CustomerID)
	return cust, nil
}

// Delete asks the confirmation capability first; historical orders referencing
// the customer are left untouched.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if !confirmed(ctx, s.Confirm, "Delete Customer", "Are you sure you want to delete this customer?") {
		return apperr.ErrCancelled
	}
	if err := s.Repo.DeleteCustomer(ctx, id); err != nil {
		logging.FromContext(ctx).With("svc", "customers.delete").
			Error("customer_delete_error", "customer_id", id, "error", err)
		return storeErr(err)
	}
	return nil
}

func (s *CustomerService) GenerateID(ctx context.Context) (string, error) {
	existing, err := s.Repo.CustomerIDs(ctx)
	if err != nil {
		return "", storeErr(err)
	}
	return generateKey(existing)
}
