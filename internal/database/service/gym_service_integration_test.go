package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartgym/backend-go/internal/database/models"
	"github.com/smartgym/backend-go/internal/database/repository"
	"github.com/smartgym/backend-go/internal/database/service"
	"github.com/smartgym/backend-go/internal/testutil"
)

// ==================== GYM SERVICE AGAINST A REAL STORE ====================

func newStoreBackedGymService(t *testing.T) (service.GymService, *models.User) {
	t.Helper()

	db := testutil.NewTestDB(t)
	owner := testutil.SeedUser(t, db, 1)

	return service.NewGymService(
		repository.NewGymRepository(db),
		repository.NewUserRepository(db),
		testutil.DiscardLogger(),
	), owner
}

func TestGymService_Lifecycle(t *testing.T) {
	gymService, owner := newStoreBackedGymService(t)
	ctx := t.Context()

	created, err := gymService.Create(ctx, models.NewGym{
		Name:    "SmartGym",
		Address: "Ruta 8 esq cochabamba",
		Email:   "example@gmail.com",
		UserID:  owner.ID,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, "", created.Phone)
	assert.Equal(t, "", created.Website)

	found, err := gymService.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *found)

	// An empty change set returns the stored gym unchanged.
	unchanged, err := gymService.Update(ctx, created.ID, models.GymChanges{})
	require.NoError(t, err)
	assert.Equal(t, *created, *unchanged)

	updated, err := gymService.Update(ctx, created.ID, models.GymChanges{Phone: strPtr("096972933")})
	require.NoError(t, err)
	assert.Equal(t, "096972933", updated.Phone)
	assert.Equal(t, created.Email, updated.Email)

	removed, err := gymService.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed.IsActive)
	assert.Equal(t, "096972933", removed.Phone)

	afterRemove, err := gymService.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, afterRemove.IsActive)

	all, err := gymService.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)

	owned, err := gymService.FindByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestGymService_NameStaysReservedAfterRemove(t *testing.T) {
	gymService, owner := newStoreBackedGymService(t)
	ctx := t.Context()

	input := models.NewGym{Name: "SmartGym", Address: "Ruta 8", Email: "a@gym.com", UserID: owner.ID}
	created, err := gymService.Create(ctx, input)
	require.NoError(t, err)

	_, err = gymService.Remove(ctx, created.ID)
	require.NoError(t, err)

	_, err = gymService.Create(ctx, input)
	assert.ErrorIs(t, err, service.ErrGymAlreadyExists)
}

func TestGymService_RenameOntoExistingName(t *testing.T) {
	gymService, owner := newStoreBackedGymService(t)
	ctx := t.Context()

	_, err := gymService.Create(ctx, models.NewGym{Name: "alpha", Address: "Ruta 8", Email: "a@gym.com", UserID: owner.ID})
	require.NoError(t, err)
	beta, err := gymService.Create(ctx, models.NewGym{Name: "beta", Address: "Ruta 9", Email: "b@gym.com", UserID: owner.ID})
	require.NoError(t, err)

	_, err = gymService.Update(ctx, beta.ID, models.GymChanges{Name: strPtr("alpha")})
	assert.ErrorIs(t, err, service.ErrGymAlreadyExists)

	still, err := gymService.FindOne(ctx, beta.ID)
	require.NoError(t, err)
	assert.Equal(t, "beta", still.Name)
}

func TestGymService_UnknownIDs(t *testing.T) {
	gymService, _ := newStoreBackedGymService(t)
	ctx := t.Context()
	missing := uuid.New()

	_, err := gymService.FindOne(ctx, missing)
	assert.ErrorIs(t, err, service.ErrGymNotFound)

	_, err = gymService.Update(ctx, missing, models.GymChanges{})
	assert.ErrorIs(t, err, service.ErrGymNotFound)

	_, err = gymService.Remove(ctx, missing)
	assert.ErrorIs(t, err, service.ErrGymNotFound)

	_, err = gymService.Create(ctx, models.NewGym{Name: "ghost", Address: "x", Email: "g@gym.com", UserID: missing})
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	all, err := gymService.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
