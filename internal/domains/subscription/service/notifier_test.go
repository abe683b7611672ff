package service_test

import (
	"context"
	"errors"
	"journal/config"
	"journal/infras/otel/mocks"
	"journal/infras/webpush"
	webpushMocks "journal/infras/webpush/mocks"
	subscriptionMocks "journal/internal/domains/subscription/mocks"
	"journal/internal/domains/subscription/model"
	"journal/internal/domains/subscription/model/dto"
	"journal/internal/domains/subscription/service"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stored(id int64, endpoint string) model.Subscription {
	return model.Subscription{
		ID:           id,
		Subscription: types.JSONText(`{"endpoint":"` + endpoint + `","keys":{"auth":"a","p256dh":"p"}}`),
	}
}

func waitReport(t *testing.T, reports <-chan dto.Report) dto.Report {
	t.Helper()

	select {
	case report, ok := <-reports:
		require.True(t, ok, "report channel closed without a report")

		_, open := <-reports
		assert.False(t, open, "report channel must be closed after the report")

		return report
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast did not finish")
	}

	return dto.Report{}
}

func TestNotifier_Broadcast(t *testing.T) {
	cfg := &config.Config{}
	cfg.WebPush.MaxWorkers = 2

	notification := dto.Notification{Type: "new_photo", Title: "New photo", PhotoID: 1}

	tests := []struct {
		name           string
		setupMock      func(repo *subscriptionMocks.MockSubscription, sender *webpushMocks.MockSender)
		wantDeliveries int
		wantFailed     int
		wantPruned     []int64
	}{
		{
			name: "every subscriber receives the push",
			setupMock: func(repo *subscriptionMocks.MockSubscription, sender *webpushMocks.MockSender) {
				sender.EXPECT().Enabled().Return(true)
				repo.EXPECT().List(gomock.Any()).Return([]model.Subscription{stored(1, "https://push/1"), stored(2, "https://push/2")}, nil)
				sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusCreated, nil).Times(2)
			},
			wantDeliveries: 2,
		},
		{
			name: "gone and not found subscriptions are pruned",
			setupMock: func(repo *subscriptionMocks.MockSubscription, sender *webpushMocks.MockSender) {
				sender.EXPECT().Enabled().Return(true)
				repo.EXPECT().List(gomock.Any()).Return([]model.Subscription{
					stored(1, "https://push/1"),
					stored(2, "https://push/2"),
					stored(3, "https://push/3"),
				}, nil)
				sender.EXPECT().Send(gomock.Any(), webpush.Subscription{Endpoint: "https://push/1", Keys: webpush.Keys{Auth: "a", P256dh: "p"}}, gomock.Any()).
					Return(http.StatusGone, errors.New("gone"))
				sender.EXPECT().Send(gomock.Any(), webpush.Subscription{Endpoint: "https://push/2", Keys: webpush.Keys{Auth: "a", P256dh: "p"}}, gomock.Any()).
					Return(http.StatusCreated, nil)
				sender.EXPECT().Send(gomock.Any(), webpush.Subscription{Endpoint: "https://push/3", Keys: webpush.Keys{Auth: "a", P256dh: "p"}}, gomock.Any()).
					Return(http.StatusNotFound, errors.New("not found"))
				repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
				repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
			},
			wantDeliveries: 3,
			wantFailed:     2,
			wantPruned:     []int64{1, 3},
		},
		{
			name: "server errors are swallowed without pruning",
			setupMock: func(repo *subscriptionMocks.MockSubscription, sender *webpushMocks.MockSender) {
				sender.EXPECT().Enabled().Return(true)
				repo.EXPECT().List(gomock.Any()).Return([]model.Subscription{stored(1, "https://push/1"), stored(2, "https://push/2")}, nil)
				sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusInternalServerError, errors.New("boom"))
				sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusCreated, nil)
			},
			wantDeliveries: 2,
			wantFailed:     1,
		},
		{
			name: "failed prune is not reported",
			setupMock: func(repo *subscriptionMocks.MockSubscription, sender *webpushMocks.MockSender) {
				sender.EXPECT().Enabled().Return(true)
				repo.EXPECT().List(gomock.Any()).Return([]model.Subscription{stored(4, "https://push/4")}, nil)
				sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusGone, errors.New("gone"))
				repo.EXPECT().Delete(gomock.Any(), int64(4)).Return(errors.New("database error"))
			},
			wantDeliveries: 1,
			wantFailed:     1,
		},
		{
			name: "corrupt subscription is skipped",
			setupMock: func(repo *subscriptionMocks.MockSubscription, sender *webpushMocks.MockSender) {
				sender.EXPECT().Enabled().Return(true)
				repo.EXPECT().List(gomock.Any()).Return([]model.Subscription{{ID: 5, Subscription: types.JSONText(`{`)}}, nil)
			},
			wantDeliveries: 1,
			wantFailed:     1,
		},
		{
			name: "listing failure yields an empty report",
			setupMock: func(repo *subscriptionMocks.MockSubscription, sender *webpushMocks.MockSender) {
				sender.EXPECT().Enabled().Return(true)
				repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))
			},
		},
		{
			name: "disabled sender skips listing",
			setupMock: func(_ *subscriptionMocks.MockSubscription, sender *webpushMocks.MockSender) {
				sender.EXPECT().Enabled().Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := subscriptionMocks.NewMockSubscription(ctrl)
			sender := webpushMocks.NewMockSender(ctrl)
			tt.setupMock(repo, sender)

			notifier := service.NewNotifier(cfg, repo, sender, mocks.NewOtel())
			defer notifier.Close()

			report := waitReport(t, notifier.Broadcast(context.Background(), notification))

			assert.Len(t, report.Deliveries, tt.wantDeliveries)
			assert.Equal(t, tt.wantFailed, report.Failed())
			assert.Equal(t, tt.wantPruned, report.Pruned)
		})
	}
}

func TestNotifier_BroadcastAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := subscriptionMocks.NewMockSubscription(ctrl)
	sender := webpushMocks.NewMockSender(ctrl)

	notifier := service.NewNotifier(&config.Config{}, repo, sender, mocks.NewOtel())
	notifier.Close()
	notifier.Close()

	report := waitReport(t, notifier.Broadcast(context.Background(), dto.Notification{}))
	assert.Empty(t, report.Deliveries)
}

func TestNotifier_CloseWaitsForRunningBroadcast(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := subscriptionMocks.NewMockSubscription(ctrl)
	sender := webpushMocks.NewMockSender(ctrl)

	release := make(chan struct{})

	sender.EXPECT().Enabled().Return(true)
	repo.EXPECT().List(gomock.Any()).Return([]model.Subscription{stored(1, "https://push/1")}, nil)
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ webpush.Subscription, _ []byte) (int, error) {
			<-release

			return http.StatusCreated, nil
		})

	notifier := service.NewNotifier(&config.Config{}, repo, sender, mocks.NewOtel())
	reports := notifier.Broadcast(context.Background(), dto.Notification{})

	closed := make(chan struct{})
	go func() {
		notifier.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned before the broadcast finished")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)

	report := waitReport(t, reports)
	assert.Len(t, report.Deliveries, 1)
	<-closed
}
