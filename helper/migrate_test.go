package helper

import (
	"journal/config"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Write.Username = "journal"
	cfg.DB.Postgres.Write.Password = "p@ss"
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "journal"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"

	dsn, err := migrationDSN(cfg)
	require.NoError(t, err)

	parsed, err := url.Parse(dsn)
	require.NoError(t, err)

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "/journal", parsed.Path)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "schema_migrations", parsed.Query().Get("x-migrations-table"))

	password, _ := parsed.User.Password()
	assert.Equal(t, "p@ss", password)
}

func TestRunnerUnknownAction(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.MigrationPath = "file://does-not-exist"

	_, err := Runner(cfg, "sideways")
	assert.Error(t, err)
}
