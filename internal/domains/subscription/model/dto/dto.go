package dto

import (
	"encoding/json"
	"fmt"
	"journal/infras/webpush"
	"journal/internal/domains/subscription/model"

	"github.com/jmoiron/sqlx/types"
)

// SubscribeRequest is the browser PushSubscription.toJSON() body.
type SubscribeRequest struct {
	Endpoint       string  `json:"endpoint"       validate:"required,url"`
	ExpirationTime *string `json:"expirationTime"`
	Keys           struct {
		Auth   string `json:"auth"   validate:"required"`
		P256dh string `json:"p256dh" validate:"required"`
	} `json:"keys"`
}

func (r *SubscribeRequest) ToModel() (model.Subscription, error) {
	raw, err := json.Marshal(webpush.Subscription{
		Endpoint:       r.Endpoint,
		ExpirationTime: r.ExpirationTime,
		Keys: webpush.Keys{
			Auth:   r.Keys.Auth,
			P256dh: r.Keys.P256dh,
		},
	})
	if err != nil {
		return model.Subscription{}, fmt.Errorf("failed to encode subscription: %w", err)
	}

	return model.Subscription{Subscription: types.JSONText(raw)}, nil
}

type PublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// Notification is the JSON payload pushed to every subscriber.
type Notification struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Body    string `json:"body,omitempty"`
	URL     string `json:"url,omitempty"`
	Image   string `json:"image,omitempty"`
	PhotoID int64  `json:"photo_id,omitempty"`
}

// Delivery is the outcome of one push attempt.
type Delivery struct {
	SubscriptionID int64
	StatusCode     int
	Err            error
}

// Report summarises one broadcast once every delivery has finished.
type Report struct {
	Deliveries []Delivery
	Pruned     []int64
}

func (r Report) Failed() int {
	failed := 0

	for _, d := range r.Deliveries {
		if d.Err != nil {
			failed++
		}
	}

	return failed
}
