package webpush

//go:generate go run go.uber.org/mock/mockgen -source=./webpush.go -destination=./mocks/webpush_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"journal/config"
	"journal/infras/otel"
	"journal/shared/constant"
	"net/http"

	pushGo "github.com/SherClockHolmes/webpush-go"
	"github.com/rs/zerolog/log"
)

var ErrDisabled = errors.New("web push disabled")

// Keys are the client keys of a PushSubscription.
type Keys struct {
	Auth   string `json:"auth"`
	P256dh string `json:"p256dh"`
}

// Subscription mirrors the browser PushSubscription JSON.
type Subscription struct {
	Endpoint       string  `json:"endpoint"`
	ExpirationTime *string `json:"expirationTime,omitempty"`
	Keys           Keys    `json:"keys"`
}

type VAPIDKeys struct {
	PublicKey  string
	PrivateKey string
}

type Sender interface {
	Send(ctx context.Context, subscription Subscription, payload []byte) (statusCode int, err error)
	PublicKey() string
	Enabled() bool
}

type senderImpl struct {
	cfg    *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Sender {
	if cfg.WebPush.Enable && (cfg.WebPush.VAPIDPublicKey == "" || cfg.WebPush.VAPIDPrivateKey == "") {
		log.Warn().Msg("Web push enabled without VAPID keys, notifications will be skipped")
	}

	return &senderImpl{cfg: cfg, client: &http.Client{}, otel: otl}
}

func (s *senderImpl) Enabled() bool {
	return s.cfg.WebPush.Enable && s.cfg.WebPush.VAPIDPublicKey != "" && s.cfg.WebPush.VAPIDPrivateKey != ""
}

func (s *senderImpl) PublicKey() string {
	return s.cfg.WebPush.VAPIDPublicKey
}

// Send delivers one encrypted payload. The push service status code is returned even on non-2xx answers.
func (s *senderImpl) Send(ctx context.Context, subscription Subscription, payload []byte) (statusCode int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".webpush.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.Enabled() {
		return 0, ErrDisabled
	}

	resp, err := pushGo.SendNotificationWithContext(ctx, payload, &pushGo.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: pushGo.Keys{
			Auth:   subscription.Keys.Auth,
			P256dh: subscription.Keys.P256dh,
		},
	}, &pushGo.Options{
		HTTPClient:      s.client,
		Subscriber:      s.cfg.WebPush.Subject,
		VAPIDPublicKey:  s.cfg.WebPush.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.WebPush.VAPIDPrivateKey,
		TTL:             s.cfg.WebPush.TTLSeconds,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	scope.SetAttribute("status_code", resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, fmt.Errorf("push service responded %d", resp.StatusCode)
	}

	return resp.StatusCode, nil
}

// IsGone reports whether the push service says the subscription no longer exists.
func IsGone(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode == http.StatusGone
}

func GenerateVAPIDKeys() (VAPIDKeys, error) {
	privateKey, publicKey, err := pushGo.GenerateVAPIDKeys()
	if err != nil {
		return VAPIDKeys{}, fmt.Errorf("failed to generate VAPID keys: %w", err)
	}

	return VAPIDKeys{PublicKey: publicKey, PrivateKey: privateKey}, nil
}
