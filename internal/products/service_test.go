package products

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"api_vendas/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewLocalStorage(storage.NewMemoryDB()), zaptest.NewLogger(t))
}

func TestCreateProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Teclado", decimal.RequireFromString("59.90"), 10)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Teclado", p.Name)
	assert.Equal(t, 10, p.Stock)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("59.90")))

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestCreateProduct_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", decimal.RequireFromString("10"), 1)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(ctx, "Teclado", decimal.Zero, 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Create(ctx, "Teclado", decimal.RequireFromString("-1"), 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestUpdateProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Teclado", decimal.RequireFromString("59.90"), 10)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID, "Teclado Mecanico", decimal.RequireFromString("89.90"), 4)
	require.NoError(t, err)
	assert.Equal(t, "Teclado Mecanico", updated.Name)
	assert.Equal(t, 4, updated.Stock)

	_, err = svc.Update(ctx, "no-such-id", "X", decimal.RequireFromString("1"), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "Teclado", decimal.RequireFromString("59.90"), 10)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, p.ID), ErrNotFound)
}

func TestListProducts_OrderedByName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Mouse", decimal.RequireFromString("20"), 1)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Cabo", decimal.RequireFromString("5"), 1)
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Cabo", list[0].Name)
	assert.Equal(t, "Mouse", list[1].Name)
}
