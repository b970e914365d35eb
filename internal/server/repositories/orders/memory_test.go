package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/server/models"
)

func TestMemory_Orders(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	o, err := r.Create(ctx, models.NewOrder{
		BuyerID: uuid.NewString(), SellerID: uuid.NewString(), ItemID: uuid.NewString(),
		ShippingStatus: models.ShippingPending,
	})
	require.NoError(t, err)

	ok, err := r.UpdateStatus(ctx, o.ID, models.ShippingShipped)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := r.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ShippingShipped, got.ShippingStatus)

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	ok, err = r.Delete(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.UpdateStatus(ctx, o.ID, models.ShippingDelivered)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.GetByID(ctx, o.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.Create(ctx, models.NewOrder{BuyerID: "x"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
