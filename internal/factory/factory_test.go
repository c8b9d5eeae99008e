package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithMemoryStorage(t *testing.T) {
	app, err := New(context.Background(), Config{})
	require.NoError(t, err)

	assert.NotNil(t, app.Storage)
	assert.NotNil(t, app.CatalogService)
	assert.NotNil(t, app.BadgeService)
	assert.NotNil(t, app.AccountsService)
	assert.NotNil(t, app.JourneyService)
	assert.False(t, app.CatalogService.IsLoaded())
}

func TestNewWithSQLiteStorage(t *testing.T) {
	app, err := New(context.Background(), Config{
		StorageType: StorageTypeSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "journey.db"),
	})
	require.NoError(t, err)
	assert.NotNil(t, app.Storage)
}

func TestNewLoadsCatalog(t *testing.T) {
	app, err := New(context.Background(), Config{
		CatalogPath: "../../data/museums.json",
	})
	require.NoError(t, err)
	assert.True(t, app.CatalogService.IsLoaded())
	assert.Equal(t, 8, app.CatalogService.Count())
}

func TestNewRejectsInvalidStorageType(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestNewRequiresRedisConfig(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestNewRequiresSQLitePath(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: StorageTypeSQLite})
	assert.Error(t, err)
}

func TestNewRequiresDatabaseURI(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: StorageTypePostgres})
	assert.Error(t, err)
}
