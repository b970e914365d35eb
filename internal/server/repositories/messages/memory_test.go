package messages

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/server/models"
)

func TestMemory_Messages(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	owner, alice, bob := uuid.NewString(), uuid.NewString(), uuid.NewString()

	m1, err := r.Create(ctx, models.NewMessage{ItemOwnerID: owner, SenderID: alice, Content: "one"})
	require.NoError(t, err)
	_, err = r.Create(ctx, models.NewMessage{ItemOwnerID: owner, SenderID: bob, Content: "two"})
	require.NoError(t, err)

	byOwner, err := r.ListByItemOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, byOwner, 2)
	assert.Equal(t, "one", byOwner[0].Content)

	bySender, err := r.ListBySender(ctx, alice)
	require.NoError(t, err)
	require.Len(t, bySender, 1)

	none, err := r.ListBySender(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	ok, err := r.Delete(ctx, m1.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = r.GetByID(ctx, m1.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.Create(ctx, models.NewMessage{ItemOwnerID: "bad", SenderID: alice})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
