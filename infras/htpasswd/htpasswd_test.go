package htpasswd_test

import (
	"journal/config"
	"journal/infras/htpasswd"
	"journal/shared/password"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertAndVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htpasswd")

	exists, err := htpasswd.Exists(path, "admin")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, htpasswd.Upsert(path, "admin", "first"))
	require.NoError(t, htpasswd.Upsert(path, "editor", "second"))
	require.NoError(t, htpasswd.Upsert(path, "admin", "third"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(raw), "\n"))

	exists, err = htpasswd.Exists(path, "admin")
	require.NoError(t, err)
	assert.True(t, exists)

	cfg := &config.Config{}
	cfg.App.Htpasswd = path
	store := htpasswd.New(cfg)

	assert.NoError(t, store.Verify("admin", "third"))
	assert.ErrorIs(t, store.Verify("admin", "first"), password.ErrInvalidPassword)
	assert.NoError(t, store.Verify("editor", "second"))
	assert.ErrorIs(t, store.Verify("ghost", "x"), htpasswd.ErrUnknownUser)
}

func TestReadSkipsCommentsAndBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htpasswd")
	hash, err := password.Hash("secret")
	require.NoError(t, err)

	content := "# managed by bootstrap\n\nadmin:" + hash + "\nbroken-line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := &config.Config{}
	cfg.App.Htpasswd = path
	store := htpasswd.New(cfg)

	assert.NoError(t, store.Verify("admin", "secret"))
	assert.ErrorIs(t, store.Verify("broken-line", "secret"), htpasswd.ErrUnknownUser)
}

func TestUpsertRejectsInvalidUser(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htpasswd")

	assert.ErrorIs(t, htpasswd.Upsert(path, "", "x"), htpasswd.ErrInvalidUser)
	assert.ErrorIs(t, htpasswd.Upsert(path, "a:b", "x"), htpasswd.ErrInvalidUser)
}

func TestMissingFileRejectsEveryone(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Htpasswd = filepath.Join(t.TempDir(), "missing")

	assert.ErrorIs(t, htpasswd.New(cfg).Verify("admin", "x"), htpasswd.ErrUnknownUser)
}
