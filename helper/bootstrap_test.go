package helper

import (
	"bytes"
	"context"
	"errors"
	"journal/config"
	"journal/infras/htpasswd"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()

	original := readPassword
	t.Cleanup(func() { readPassword = original })

	readPassword = func(int) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no more answers")
		}

		answer := answers[0]
		answers = answers[1:]

		return []byte(answer), nil
	}
}

func newTestBootstrapper(t *testing.T, input string) (*Bootstrapper, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.App.Htpasswd = filepath.Join(dir, "htpasswd")
	cfg.Storage.Driver = config.StorageDriverDisk
	cfg.Storage.Disk.Dir = filepath.Join(dir, "img")

	out := &bytes.Buffer{}
	b := NewBootstrapper(cfg, strings.NewReader(input), out)

	// postgres stays out of these tests; the database and schema steps
	// report a change only on the first run.
	dbCreated, schemaApplied := false, false
	b.ensureDatabase = func(context.Context, config.Config) (bool, error) {
		created := !dbCreated
		dbCreated = true

		return created, nil
	}
	b.migrate = func(_ *config.Config, action string) (bool, error) {
		assert.Equal(t, ActionUp, action)

		applied := !schemaApplied
		schemaApplied = true

		return applied, nil
	}

	return b, out
}

func changedSteps(results []StepResult) []string {
	var names []string

	for _, r := range results {
		if r.Changed {
			names = append(names, r.Name)
		}
	}

	return names
}

func TestBootstrapIsIdempotent(t *testing.T) {
	stubPasswords(t, "secret", "secret")

	b, out := newTestBootstrapper(t, "\n")

	results, err := b.Run(context.Background(), BootstrapOptions{GenerateKeys: true})
	require.NoError(t, err)
	assert.Equal(t, []string{StepDatabase, StepSchema, StepAdmin, StepImages, StepVAPID}, changedSteps(results))
	assert.Contains(t, out.String(), "WEB_PUSH_VAPID_PUBLIC_KEY=")

	exists, err := htpasswd.Exists(b.cfg.App.Htpasswd, defaultAdminUsername)
	require.NoError(t, err)
	assert.True(t, exists)

	info, err := os.Stat(filepath.Join(b.cfg.Storage.Disk.Dir, "thumbnails"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// keys generated on the first run are expected in the env from now on
	b.cfg.WebPush.VAPIDPublicKey = "public"

	results, err = b.Run(context.Background(), BootstrapOptions{Username: defaultAdminUsername, GenerateKeys: true})
	require.NoError(t, err)
	assert.Empty(t, changedSteps(results))
	assert.Len(t, results, 5)
}

func TestBootstrapAdmin(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		username  string
		passwords []string
		wantUser  string
		wantErr   error
	}{
		{
			name:      "prompted username",
			input:     "editor\n",
			passwords: []string{"pw", "pw"},
			wantUser:  "editor",
		},
		{
			name:      "username from flag",
			username:  "owner",
			passwords: []string{"pw", "pw"},
			wantUser:  "owner",
		},
		{
			name:      "mismatched confirmation",
			username:  "owner",
			passwords: []string{"pw", "other"},
			wantErr:   ErrPasswordMismatch,
		},
		{
			name:      "empty password",
			username:  "owner",
			passwords: []string{""},
			wantErr:   ErrPasswordEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubPasswords(t, tt.passwords...)

			b, _ := newTestBootstrapper(t, tt.input)

			changed, err := b.ensureAdmin(tt.username)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.True(t, changed)

			exists, err := htpasswd.Exists(b.cfg.App.Htpasswd, tt.wantUser)
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestBootstrapStopsOnFailure(t *testing.T) {
	b, _ := newTestBootstrapper(t, "")
	b.migrate = func(*config.Config, string) (bool, error) {
		return false, errors.New("connection refused")
	}

	results, err := b.Run(context.Background(), BootstrapOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), StepSchema)
	assert.Len(t, results, 1)
}

func TestBootstrapImageFolderSkippedForS3(t *testing.T) {
	b, _ := newTestBootstrapper(t, "")
	b.cfg.Storage.Driver = config.StorageDriverS3

	changed, err := b.ensureImageFolder()
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = os.Stat(b.cfg.Storage.Disk.Dir)
	assert.True(t, os.IsNotExist(err))
}
