package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Antonio-Toppin/sweetmanage/internal/apperr"
	"github.com/Antonio-Toppin/sweetmanage/internal/logging"
	"github.com/Antonio-Toppin/sweetmanage/internal/models"
	"github.com/Antonio-Toppin/sweetmanage/internal/repo"
)

// OrderComposer builds one in-progress order draft: header fields plus line
// items with price snapshots, committed atomically. A composer holds at most
// one draft; Commit and Cancel reset it to empty.
type OrderComposer struct {
	Repo    *repo.GormRepo
	Confirm Confirmer

	date       string
	customerID string
	lines      []models.OrderLineItem
}

func (c *OrderComposer) SetDate(date string) { c.date = date }

func (c *OrderComposer) SetCustomer(id string) { c.customerID = id }

func (c *OrderComposer) Date() string { return c.date }

func (c *OrderComposer) CustomerID() string { return c.customerID }

func (c *OrderComposer) Lines() []models.OrderLineItem {
	out := make([]models.OrderLineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the running sum of the draft's line subtotals.
func (c *OrderComposer) Total() float64 {
	var sum float64
	for _, line := range c.lines {
		sum += line.Subtotal
	}
	return roundCents(sum)
}

func (c *OrderComposer) dirty() bool {
	return c.date != "" || c.customerID != "" || len(c.lines) > 0
}

func (c *OrderComposer) reset() {
	c.date = ""
	c.customerID = ""
	c.lines = nil
}

// AddLineItem snapshots the product's current price into a new line.
// Adding the same product twice appends a second distinct line; quantities
// are never merged.
func (c *OrderComposer) AddLineItem(ctx context.Context, productNumber string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be a positive number", apperr.ErrValidation)
	}
	prod, err := c.Repo.GetProduct(ctx, productNumber)
	if err != nil {
		return storeErr(err)
	}

	c.lines = append(c.lines, models.OrderLineItem{
		ProductNumber: prod.ProductNumber,
		Qty:           uint(qty),
		Subtotal:      roundCents(prod.Price * float64(qty)),
	})
	return nil
}

// RemoveLineItem drops the first line matching the product, after
// confirmation.
func (c *OrderComposer) RemoveLineItem(ctx context.Context, productNumber string) error {
	if !confirmed(ctx, c.Confirm, "Remove Product", "Remove this product from the order?") {
		return apperr.ErrCancelled
	}
	for i, line := range c.lines {
		if line.ProductNumber == productNumber {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: product not in order", apperr.ErrNotFound)
}

// Cancel discards the draft. A non-empty draft needs confirmation first.
func (c *OrderComposer) Cancel(ctx context.Context) error {
	if c.dirty() && !confirmed(ctx, c.Confirm, "Cancel Order", "Discard the current order?") {
		return apperr.ErrCancelled
	}
	c.reset()
	return nil
}

// Commit validates the draft, then persists the header and every line item
// in one transaction. On success the new order number is returned and the
// draft resets to empty; on failure nothing is written and the draft is kept.
func (c *OrderComposer) Commit(ctx context.Context) (uint, error) {
	l := logging.FromContext(ctx).With("svc", "orders.commit")

	if _, err := time.Parse("2006-01-02", c.date); err != nil {
		return 0, fmt.Errorf("%w: date must be a valid YYYY-MM-DD date", apperr.ErrValidation)
	}
	if len(c.lines) == 0 {
		return 0, apperr.ErrEmptyOrder
	}

	exists, err := c.Repo.CustomerExists(ctx, c.customerID)
	if err != nil {
		l.Error("order_commit_error", "error", err)
		return 0, storeErr(err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: customer %q does not exist", apperr.ErrValidation, c.customerID)
	}

	for _, line := range c.lines {
		ok, err := c.Repo.ProductExists(ctx, line.ProductNumber)
		if err != nil {
			l.Error("order_commit_error", "error", err)
			return 0, storeErr(err)
		}
		if !ok {
			return 0, fmt.Errorf("%w: product %q no longer exists", apperr.ErrValidation, line.ProductNumber)
		}
	}

	order := &models.Order{
		Date:       c.date,
		CustomerID: c.customerID,
		TotalPrice: c.Total(),
	}
	orderNumber, err := c.Repo.CreateOrder(ctx, order, c.lines)
	if err != nil {
		l.Error("order_commit_error", "error", err)
		return 0, storeErr(err)
	}

	l.Info("order_committed", "order_number", orderNumber, "total_price", order.TotalPrice)
	c.reset()
	return orderNumber, nil
}

// Delete removes a persisted order and all its line items atomically, after
// confirmation.
func (c *OrderComposer) Delete(ctx context.Context, orderNumber uint) error {
	if !confirmed(ctx, c.Confirm, "Delete Order", "Are you sure you want to delete this order?") {
		return apperr.ErrCancelled
	}
	if err := c.Repo.DeleteOrder(ctx, orderNumber); err != nil {
		logging.FromContext(ctx).With("svc", "orders.delete").
			Error("order_delete_error", "order_number", orderNumber, "error", err)
		return storeErr(err)
	}
	return nil
}

// List returns every order newest-first with its customer's name.
func (c *OrderComposer) List(ctx context.Context) ([]repo.OrderSummary, error) {
	summaries, err := c.Repo.ListOrderSummaries(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return summaries, nil
}

// Detail returns one order's line items with product names.
func (c *OrderComposer) Detail(ctx context.Context, orderNumber uint) ([]repo.LineDetail, error) {
	lines, err := c.Repo.OrderLines(ctx, orderNumber)
	if err != nil {
		return nil, storeErr(err)
	}
	return lines, nil
}
