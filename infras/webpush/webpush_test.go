package webpush_test

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"journal/config"
	"journal/infras/otel/mocks"
	"journal/infras/webpush"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientSubscription(t *testing.T, endpoint string) webpush.Subscription {
	t.Helper()

	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	auth := make([]byte, 16)
	_, err = rand.Read(auth)
	require.NoError(t, err)

	return webpush.Subscription{
		Endpoint: endpoint,
		Keys: webpush.Keys{
			Auth:   base64.RawURLEncoding.EncodeToString(auth),
			P256dh: base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
		},
	}
}

func newSender(t *testing.T, enable bool) webpush.Sender {
	t.Helper()

	keys, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.WebPush.Enable = enable
	cfg.WebPush.VAPIDPublicKey = keys.PublicKey
	cfg.WebPush.VAPIDPrivateKey = keys.PrivateKey
	cfg.WebPush.Subject = "mailto:admin@example.com"
	cfg.WebPush.TTLSeconds = 60

	return webpush.New(cfg, mocks.NewOtel())
}

func TestSend(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantErr  bool
		wantGone bool
	}{
		{name: "created", status: http.StatusCreated},
		{name: "gone", status: http.StatusGone, wantErr: true, wantGone: true},
		{name: "not found", status: http.StatusNotFound, wantErr: true, wantGone: true},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "aes128gcm", r.Header.Get("Content-Encoding"))
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			status, err := newSender(t, true).Send(context.Background(), clientSubscription(t, server.URL), []byte(`{"title":"hi"}`))

			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantGone, webpush.IsGone(status))
		})
	}
}

func TestSendDisabled(t *testing.T) {
	sender := newSender(t, false)

	assert.False(t, sender.Enabled())
	assert.NotEmpty(t, sender.PublicKey())

	_, err := sender.Send(context.Background(), webpush.Subscription{Endpoint: "http://localhost"}, nil)
	assert.ErrorIs(t, err, webpush.ErrDisabled)
}
