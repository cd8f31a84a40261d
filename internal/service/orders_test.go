package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Antonio-Toppin/sweetmanage/internal/apperr"
	"github.com/Antonio-Toppin/sweetmanage/internal/models"
	"github.com/Antonio-Toppin/sweetmanage/internal/repo"
)

func seedCatalog(t *testing.T, r *repo.GormRepo) {
	t.Helper()
	ctx := context.Background()
	customers := &CustomerService{Repo: r}
	products := &ProductService{Repo: r}

	_, err := customers.Create(ctx, CustomerInput{CustomerID: "1001", Name: "Jane Doe", Phone: "(246) 123-4567"})
	require.NoError(t, err)
	_, err = products.Create(ctx, ProductInput{ProductNumber: "2001", Name: "Cupcake", Price: "3.50"})
	require.NoError(t, err)
}

func TestCommitOrderEndToEnd(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	seedCatalog(t, r)

	composer := &OrderComposer{Repo: r}
	composer.SetDate("2024-06-01")
	composer.SetCustomer("1001")
	require.NoError(t, composer.AddLineItem(ctx, "2001", 4))
	require.Equal(t, 14.0, composer.Total())

	orderNumber, err := composer.Commit(ctx)
	require.NoError(t, err)
	require.NotZero(t, orderNumber)

	// draft reset to empty
	require.Empty(t, composer.Lines())
	require.Empty(t, composer.Date())
	require.Empty(t, composer.CustomerID())

	order, err := r.GetOrder(ctx, orderNumber)
	require.NoError(t, err)
	require.Equal(t, 14.0, order.TotalPrice)
	require.Len(t, order.Items, 1)
	require.Equal(t, 14.0, order.Items[0].Subtotal)
	require.EqualValues(t, 1, countRows(t, r, &models.Order{}))
	require.EqualValues(t, 1, countRows(t, r, &models.OrderLineItem{}))
}

func TestCommitEmptyOrder(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	seedCatalog(t, r)

	composer := &OrderComposer{Repo: r}
	composer.SetDate("2024-06-01")
	composer.SetCustomer("1001")

	_, err := composer.Commit(ctx)
	require.ErrorIs(t, err, apperr.ErrEmptyOrder)
	require.Zero(t, countRows(t, r, &models.Order{}))
	require.Zero(t, countRows(t, r, &models.OrderLineItem{}))
}

func TestCommitValidatesHeader(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	seedCatalog(t, r)

	composer := &OrderComposer{Repo: r}
	require.NoError(t, composer.AddLineItem(ctx, "2001", 1))

	composer.SetDate("01/06/2024")
	composer.SetCustomer("1001")
	_, err := composer.Commit(ctx)
	require.ErrorIs(t, err, apperr.ErrValidation, "wrong date shape")

	composer.SetDate("2024-02-30")
	_, err = composer.Commit(ctx)
	require.ErrorIs(t, err, apperr.ErrValidation, "not a real calendar date")

	composer.SetDate("2024-06-01")
	composer.SetCustomer("9999")
	_, err = composer.Commit(ctx)
	require.ErrorIs(t, err, apperr.ErrValidation, "unknown customer")

	require.Zero(t, countRows(t, r, &models.Order{}))
}

func TestCommitRejectsVanishedProduct(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	seedCatalog(t, r)

	composer := &OrderComposer{Repo: r}
	composer.SetDate("2024-06-01")
	composer.SetCustomer("1001")
	require.NoError(t, composer.AddLineItem(ctx, "2001", 2))

	// product disappears between draft and commit
	products := &ProductService{Repo: r}
	require.NoError(t, products.Delete(ctx, "2001"))

	_, err := composer.Commit(ctx)
	require.ErrorIs(t, err, apperr.ErrValidation)
	require.Zero(t, countRows(t, r, &models.Order{}))
}

func TestAddLineItem(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	seedCatalog(t, r)

	composer := &OrderComposer{Repo: r}

	require.ErrorIs(t, composer.AddLineItem(ctx, "2001", 0), apperr.ErrValidation)
	require.ErrorIs(t, composer.AddLineItem(ctx, "2001", -2), apperr.ErrValidation)
	require.ErrorIs(t, composer.AddLineItem(ctx, "9999", 1), apperr.ErrNotFound)

	require.NoError(t, composer.AddLineItem(ctx, "2001", 2))
	require.NoError(t, composer.AddLineItem(ctx, "2001", 3))

	// same product twice stays two distinct lines
	lines := composer.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, 7.0, lines[0].Subtotal)
	require.Equal(t, 10.5, lines[1].Subtotal)
	require.Equal(t, 17.5, composer.Total())
}

func TestLineItemSubtotalIsPriceSnapshot(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	seedCatalog(t, r)

	composer := &OrderComposer{Repo: r}
	composer.SetDate("2024-06-01")
	composer.SetCustomer("1001")
	require.NoError(t, composer.AddLineItem(ctx, "2001", 4))

	// price change after the draft line was added does not touch the snapshot
	products := &ProductService{Repo: r}
	_, err := products.Update(ctx, "2001", ProductInput{ProductNumber: "2001", Name: "Cupcake", Price: "9.99"})
	require.NoError(t, err)

	orderNumber, err := composer.Commit(ctx)
	require.NoError(t, err)

	order, err := r.GetOrder(ctx, orderNumber)
	require.NoError(t, err)
	require.Equal(t, 14.0, order.Items[0].Subtotal)
}

func TestRemoveLineItem(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	seedCatalog(t, r)

	composer := &OrderComposer{Repo: r, Confirm: answer(false)}
	require.NoError(t, composer.AddLineItem(ctx, "2001", 1))

	require.ErrorIs(t, composer.RemoveLineItem(ctx, "2001"), apperr.ErrCancelled)
	require.Len(t, composer.Lines(), 1)

	composer.Confirm = answer(true)
	require.NoError(t, composer.RemoveLineItem(ctx, "2001"))
	require.Empty(t, composer.Lines())

	require.ErrorIs(t, composer.RemoveLineItem(ctx, "2001"), apperr.ErrNotFound)
}

func TestCancelDraft(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	seedCatalog(t, r)

	// an empty draft cancels without asking
	composer := &OrderComposer{Repo: r, Confirm: answer(false)}
	require.NoError(t, composer.Cancel(ctx))

	require.NoError(t, composer.AddLineItem(ctx, "2001", 1))
	require.ErrorIs(t, composer.Cancel(ctx), apperr.ErrCancelled)
	require.Len(t, composer.Lines(), 1)

	composer.Confirm = answer(true)
	require.NoError(t, composer.Cancel(ctx))
	require.Empty(t, composer.Lines())
}

func TestDeleteOrder(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	seedCatalog(t, r)

	composer := &OrderComposer{Repo: r}
	composer.SetDate("2024-06-01")
	composer.SetCustomer("1001")
	require.NoError(t, composer.AddLineItem(ctx, "2001", 4))
	orderNumber, err := composer.Commit(ctx)
	require.NoError(t, err)

	composer.Confirm = answer(false)
	require.ErrorIs(t, composer.Delete(ctx, orderNumber), apperr.ErrCancelled)
	require.EqualValues(t, 1, countRows(t, r, &models.Order{}))

	composer.Confirm = answer(true)
	require.NoError(t, composer.Delete(ctx, orderNumber))
	require.Zero(t, countRows(t, r, &models.Order{}))
	require.Zero(t, countRows(t, r, &models.OrderLineItem{}))

	require.ErrorIs(t, composer.Delete(ctx, orderNumber), apperr.ErrNotFound)
}

func TestOrderListAndDetail(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	seedCatalog(t, r)

	composer := &OrderComposer{Repo: r}
	composer.SetDate("2024-06-01")
	composer.SetCustomer("1001")
	require.NoError(t, composer.AddLineItem(ctx, "2001", 4))
	orderNumber, err := composer.Commit(ctx)
	require.NoError(t, err)

	summaries, err := composer.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "Jane Doe", summaries[0].CustomerName)
	require.Equal(t, 14.0, summaries[0].TotalPrice)

	lines, err := composer.Detail(ctx, orderNumber)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "Cupcake", lines[0].ProductName)
	require.EqualValues(t, 4, lines[0].Qty)
}
