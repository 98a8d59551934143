package service

import (
	"context"
	"testing"

	"github.com/gyeongmo89/samsip/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestSupplierCreate(t *testing.T) {
	e := newEnv()
	svc := NewSupplierService(e.suppliers)
	ctx := context.Background()

	resp, err := svc.Create(ctx, dto.CreateSupplierRequest{
		Name:    "Acme Foods",
		Contact: strp("010-1234-5678"),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Acme Foods", resp.Name)
	require.NotNil(t, resp.Contact)
	assert.Equal(t, "010-1234-5678", *resp.Contact)
}

func TestSupplierCreateDuplicate(t *testing.T) {
	e := newEnv()
	svc := NewSupplierService(e.suppliers)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateSupplierRequest{Name: "Acme Foods"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateSupplierRequest{Name: "Acme Foods"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSupplierNameFreedBySoftDelete(t *testing.T) {
	e := newEnv()
	svc := NewSupplierService(e.suppliers)
	ctx := context.Background()

	first, err := svc.Create(ctx, dto.CreateSupplierRequest{Name: "Acme Foods"})
	require.NoError(t, err)

	n, err := svc.BulkDelete(ctx, []uint{first.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	second, err := svc.Create(ctx, dto.CreateSupplierRequest{Name: "Acme Foods"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSupplierListExcludesDeleted(t *testing.T) {
	e := newEnv()
	svc := NewSupplierService(e.suppliers)
	ctx := context.Background()

	a, err := svc.Create(ctx, dto.CreateSupplierRequest{Name: "Acme Foods"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateSupplierRequest{Name: "Busan Seafood"})
	require.NoError(t, err)

	_, err = svc.BulkDelete(ctx, []uint{a.ID})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Busan Seafood", list[0].Name)
}

func TestSupplierUpdate(t *testing.T) {
	e := newEnv()
	svc := NewSupplierService(e.suppliers)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateSupplierRequest{Name: "Acme Foods"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.CreateSupplierRequest{
		Name:    "Acme Foods Co.",
		Address: strp("12 Market St"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme Foods Co.", updated.Name)

	t.Run("rename onto an existing name conflicts", func(t *testing.T) {
		other, err := svc.Create(ctx, dto.CreateSupplierRequest{Name: "Busan Seafood"})
		require.NoError(t, err)
		_, err = svc.Update(ctx, other.ID, dto.CreateSupplierRequest{Name: "Acme Foods Co."})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, 999, dto.CreateSupplierRequest{Name: "Nobody"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("soft-deleted id", func(t *testing.T) {
		_, err := svc.BulkDelete(ctx, []uint{created.ID})
		require.NoError(t, err)
		_, err = svc.Update(ctx, created.ID, dto.CreateSupplierRequest{Name: "Ghost"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSupplierBulkDeleteCountsOnlyLiveRows(t *testing.T) {
	e := newEnv()
	svc := NewSupplierService(e.suppliers)
	ctx := context.Background()

	a, err := svc.Create(ctx, dto.CreateSupplierRequest{Name: "Acme Foods"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, dto.CreateSupplierRequest{Name: "Busan Seafood"})
	require.NoError(t, err)

	n, err := svc.BulkDelete(ctx, []uint{a.ID, b.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// Deleting again is a no-op, not an error.
	n, err = svc.BulkDelete(ctx, []uint{a.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
