package model

import (
	"fmt"
	"journal/infras/webpush"
	"journal/shared/model"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "subscriptions"
	EntityName = "subscription"

	FieldID           = "id"
	FieldSubscription = "subscription"
	FieldEndpoint     = "subscription->>'endpoint'"
)

type Subscription struct {
	ID           int64          `db:"id"           readonly:"true"`
	Subscription types.JSONText `db:"subscription"`
	model.Metadata
}

// Decode unmarshals the stored browser PushSubscription.
func (s Subscription) Decode() (webpush.Subscription, error) {
	var sub webpush.Subscription

	if err := s.Subscription.Unmarshal(&sub); err != nil {
		return sub, fmt.Errorf("failed to decode subscription %d: %w", s.ID, err)
	}

	return sub, nil
}
