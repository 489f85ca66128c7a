package database

import (
	"context"
	"testing"

	"quickgigs/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

func TestConnectGorm_SQLite(t *testing.T) {
	db, err := ConnectGorm(config.StoreConfig{Driver: config.StoreDriverSQLite, SQLitePath: "file::memory:"}, &sample{})
	require.NoError(t, err)

	require.NoError(t, db.Create(&sample{ID: "p1", Name: "first"}).Error)
	var got sample
	require.NoError(t, db.First(&got, "id = ?", "p1").Error)
	assert.Equal(t, "first", got.Name)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	require.NoError(t, sqlDB.Close())
}

func TestConnectGorm_UnsupportedDriver(t *testing.T) {
	_, err := ConnectGorm(config.StoreConfig{Driver: config.StoreDriverDynamoDB})
	assert.ErrorContains(t, err, "unsupported relational driver")
}

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.DynamoDBConfig{
		Region:          "sa-east-1",
		Endpoint:        "http://localhost:8000",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}
