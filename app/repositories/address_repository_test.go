package repositories

import (
	"context"
	"testing"

	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAddress(userID, name string) *models.UserAddress {
	return &models.UserAddress{
		UserID:   userID,
		Name:     name,
		Phone:    "9876543210",
		Address1: "12 MG Road",
		City:     "Pune",
		State:    "Maharashtra",
		Pincode:  "411001",
	}
}

func TestCreateAddressFirstBecomesDefault(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	first := newTestAddress("user-1", "Home")
	require.NoError(t, repo.CreateAddress(ctx, first))
	assert.True(t, first.IsDefault)

	second := newTestAddress("user-1", "Office")
	require.NoError(t, repo.CreateAddress(ctx, second))
	assert.False(t, second.IsDefault)

	def, err := repo.GetDefaultAddressByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, first.ID, def.ID)
}

func TestCreateAddressWithDefaultFlagDemotesOthers(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	first := newTestAddress("user-1", "Home")
	require.NoError(t, repo.CreateAddress(ctx, first))

	second := newTestAddress("user-1", "Office")
	second.IsDefault = true
	require.NoError(t, repo.CreateAddress(ctx, second))

	addresses, err := repo.FindAddressesByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, addresses, 2)

	defaults := 0
	for _, a := range addresses {
		if a.IsDefault {
			defaults++
			assert.Equal(t, second.ID, a.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestSetDefaultAddress(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	home := newTestAddress("user-1", "Home")
	require.NoError(t, repo.CreateAddress(ctx, home))
	office := newTestAddress("user-1", "Office")
	require.NoError(t, repo.CreateAddress(ctx, office))

	require.NoError(t, repo.SetDefaultAddress(ctx, "user-1", office.ID))

	def, err := repo.GetDefaultAddressByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, office.ID, def.ID)

	// Exactly one default survives the switch.
	var count int64
	require.NoError(t, db.Model(&models.UserAddress{}).
		Where("user_id = ? AND is_default = ?", "user-1", true).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSetDefaultAddressRejectsForeignAddress(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	mine := newTestAddress("user-1", "Home")
	require.NoError(t, repo.CreateAddress(ctx, mine))
	theirs := newTestAddress("user-2", "Home")
	require.NoError(t, repo.CreateAddress(ctx, theirs))

	err := repo.SetDefaultAddress(ctx, "user-1", theirs.ID)
	assert.Error(t, err)

	// The existing default is untouched when the switch fails.
	def, err := repo.GetDefaultAddressByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, mine.ID, def.ID)
}
