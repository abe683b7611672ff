package password_test

import (
	"strings"
	"testing"

	"journal/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "admin password", password: "correct horse battery staple"},
		{name: "unicode", password: "pässwörd-日本"},
		{name: "exactly 72 bytes", password: strings.Repeat("a", 72)},
		{name: "empty", password: "", wantErr: password.ErrEmptyPassword},
		{name: "over 72 bytes", password: strings.Repeat("a", 73), wantErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, password.IsBcrypt(hash))

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, password.Cost, cost)
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("letmein")
	require.NoError(t, err)

	second, err := password.Hash("letmein")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, password.Verify("letmein", first))
	assert.NoError(t, password.Verify("letmein", second))
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("letmein")
	require.NoError(t, err)

	apache := "$2y$" + strings.TrimPrefix(hash, "$2a$")

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "match", password: "letmein", hash: hash},
		{name: "htpasswd -B entry", password: "letmein", hash: apache},
		{name: "wrong password", password: "letmeout", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "case matters", password: "LETMEIN", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "letmein", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "md5 entry", password: "letmein", hash: "$apr1$x5T0Hp2Y$ZqJb0y9c0p0Jm3o8yQxkQ0", wantErr: password.ErrUnsupportedHash},
		{name: "sha1 entry", password: "letmein", hash: "{SHA}qUqP5cyxm6YcTAhz05Hph5gvu9M=", wantErr: password.ErrUnsupportedHash},
		{name: "truncated bcrypt", password: "letmein", hash: "$2y$10$short", wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestIsBcrypt(t *testing.T) {
	assert.True(t, password.IsBcrypt("$2a$10$abc"))
	assert.True(t, password.IsBcrypt("$2b$10$abc"))
	assert.True(t, password.IsBcrypt("$2y$05$abc"))
	assert.False(t, password.IsBcrypt("$apr1$abc"))
	assert.False(t, password.IsBcrypt("plain"))
}
