package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"api_vendas/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewLocalStorage(storage.NewMemoryDB()), zaptest.NewLogger(t))
}

func TestCreateCustomer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, "Maria Silva", "maria@example.com", "11 99999-0000")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Maria Silva", c.Name)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", got.Email)
}

func TestCreateCustomer_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "maria@example.com", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(ctx, "Maria", "  ", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	// Phone is optional.
	_, err = svc.Create(ctx, "Maria", "maria@example.com", "")
	assert.NoError(t, err)
}

func TestUpdateCustomer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, "Maria", "maria@example.com", "")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, c.ID, "Maria Souza", "souza@example.com", "11 98888-0000")
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", updated.Name)
	assert.Equal(t, "souza@example.com", updated.Email)

	_, err = svc.Update(ctx, "no-such-id", "X", "x@example.com", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCustomer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, "Maria", "maria@example.com", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCustomers_OrderedByName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Pedro", "pedro@example.com", "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Ana", "ana@example.com", "")
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "Pedro", list[1].Name)
}
