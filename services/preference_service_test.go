package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oraconsoleapi/models"
	"oraconsoleapi/repository"
	"oraconsoleapi/utils"
)

func TestPreferenceService_RoundTripPerConnection(t *testing.T) {
	store := setupStore(t)
	connRepo := repository.NewConnectionRepositoryWithDB(store)
	svc := NewPreferenceService(connRepo, repository.NewPreferenceRepositoryWithDB(store))
	ctx := context.Background()

	got, err := svc.Get(ctx, "sessions")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.ErrorIs(t, svc.Save(ctx, models.PreferenceRequest{ScreenID: "sessions"}), utils.ErrNoActiveConnection)

	first := activeProfile(t, store)
	require.NoError(t, svc.Save(ctx, models.PreferenceRequest{ScreenID: "sessions", Data: map[string]interface{}{"show_inactive": true, "interval": 5.0}}))
	require.NoError(t, svc.Save(ctx, models.PreferenceRequest{ScreenID: "sessions", Data: map[string]interface{}{"show_inactive": false}}))

	got, err = svc.Get(ctx, "sessions")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"show_inactive": false}, got)

	second := &models.DatabaseConnection{Name: "dev", Type: models.ConnTypeDev}
	require.NoError(t, store.Create(second).Error)
	require.NoError(t, connRepo.Activate(nil, second))
	got, err = svc.Get(ctx, "sessions")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestPreferenceService_Validation(t *testing.T) {
	store := setupStore(t)
	svc := NewPreferenceService(repository.NewConnectionRepositoryWithDB(store), repository.NewPreferenceRepositoryWithDB(store))
	assert.ErrorIs(t, svc.Save(context.Background(), models.PreferenceRequest{}), utils.ErrValidation)
}
