package accounts

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slugmart/slugmart/internal/common"
	"github.com/slugmart/slugmart/internal/server/models"
)

func seed(t *testing.T, r *MemoryRepository, email, password string, roles ...string) *models.Account {
	t.Helper()
	acc, err := r.Create(context.Background(), models.NewAccount{
		Email: email, Password: password, FirstName: "First", LastName: "Last",
		Roles: roles, Username: email,
	})
	require.NoError(t, err)
	return acc
}

func TestMemory_VerifyCredentials(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository("crypt-secret")
	molly := seed(t, r, "molly@books.com", "mollymember", "Shopper")
	seed(t, r, "vic@shop.com", "vicvendor", "Vendor")

	got, err := r.VerifyCredentials(ctx, "molly@books.com", "mollymember")
	require.NoError(t, err)
	assert.Equal(t, molly.ID, got.ID)
	assert.Equal(t, models.Name{First: "First", Last: "Last"}, got.Name)

	_, err = r.VerifyCredentials(ctx, "molly@books.com", "wrong")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.VerifyCredentials(ctx, "nobody@books.com", "mollymember")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// vendors start restricted
	_, err = r.VerifyCredentials(ctx, "vic@shop.com", "vicvendor")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	ok, err := r.SetRestrictedByEmail(ctx, "vic@shop.com", false)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = r.VerifyCredentials(ctx, "vic@shop.com", "vicvendor")
	assert.NoError(t, err)
}

func TestMemory_SecretChangesHash(t *testing.T) {
	a := NewMemoryRepository("one")
	b := NewMemoryRepository("two")
	assert.NotEqual(t, a.hash("pw"), b.hash("pw"))
	assert.Equal(t, a.hash("pw"), a.hash("pw"))
}

func TestMemory_DuplicateEmail(t *testing.T) {
	r := NewMemoryRepository("s")
	seed(t, r, "a@b.c", "pw")
	_, err := r.Create(context.Background(), models.NewAccount{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestMemory_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository("s")
	seed(t, r, "b@x.com", "pw", "Shopper")
	vendor := seed(t, r, "a@x.com", "pw", "Vendor")
	seed(t, r, "c@x.com", "pw", "vendor")

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a@x.com", all[0].Email)

	restricted, err := r.ListRestrictedVendors(ctx)
	require.NoError(t, err)
	require.Len(t, restricted, 1)
	assert.Equal(t, vendor.ID, restricted[0].ID)

	ok, err := r.DeleteByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = r.GetByID(ctx, vendor.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	ok, err = r.DeleteByID(ctx, vendor.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_ReturnedAccountsAreCopies(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository("s")
	acc := seed(t, r, "a@x.com", "pw", "Shopper")

	acc.Roles[0] = "Admin"
	stored, err := r.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Shopper"}, stored.Roles)
}

func TestMemory_UpdateProfileConcurrent(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository("s")
	acc := seed(t, r, "a@x.com", "pw")

	bio := "bio"
	pic := "pic"

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = r.UpdateProfile(ctx, acc.ID, models.ProfileUpdate{Bio: &bio})
	}()
	go func() {
		defer wg.Done()
		_, _ = r.UpdateProfile(ctx, acc.ID, models.ProfileUpdate{ProfilePicture: &pic})
	}()
	wg.Wait()

	got, err := r.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Profile.Bio)
	require.NotNil(t, got.Profile.ProfilePicture)
	assert.Equal(t, "a@x.com", got.Profile.Username)

	_, err = r.UpdateProfile(ctx, "missing", models.ProfileUpdate{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
