package permissions_test

import (
	"journal/permissions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
		wantRole []string
	}{
		{name: "photo list is public", path: "/v1/photos", method: "GET", wantSkip: true},
		{name: "photo detail is public", path: "/v1/photos/{id:[0-9]+}", method: "GET", wantSkip: true},
		{name: "upload requires admin", path: "/v1/photos", method: "POST", wantRole: []string{"admin"}},
		{name: "delete requires admin", path: "/v1/photos/{id:[0-9]+}", method: "DELETE", wantRole: []string{"admin"}},
		{name: "unknown route requires auth", path: "/v1/other", method: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRole, permission.Permissions)
		})
	}
}

func TestParse(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/x","method":"*","skip":true}]}`))
	require.NoError(t, err)
	assert.True(t, data.FindPermissions("/x", "DELETE").Skip)

	_, err = permissions.Parse([]byte(`{`))
	assert.Error(t, err)
}
