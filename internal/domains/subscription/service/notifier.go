package service

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"cmp"
	"context"
	"encoding/json"
	"journal/config"
	"journal/infras/otel"
	"journal/infras/webpush"
	"journal/internal/domains/subscription/model"
	"journal/internal/domains/subscription/model/dto"
	"journal/internal/domains/subscription/repository"
	"journal/shared/constant"
	"slices"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/rs/zerolog/log"
)

const defaultMaxWorkers = 8

// Notifier fans a notification out to every stored subscription in the background.
// Broadcast never blocks on delivery; the returned channel yields exactly one
// Report when every delivery has finished and is then closed.
type Notifier interface {
	Broadcast(ctx context.Context, notification dto.Notification) <-chan dto.Report
	Close()
}

type notifierImpl struct {
	repo   repository.Subscription
	sender webpush.Sender
	otel   otel.Otel
	pool   pond.Pool

	mu      sync.Mutex
	closed  bool
	running sync.WaitGroup
}

func NewNotifier(cfg *config.Config, repo repository.Subscription, sender webpush.Sender, otl otel.Otel) Notifier {
	workers := cfg.WebPush.MaxWorkers
	if workers <= 0 {
		workers = defaultMaxWorkers
	}

	return &notifierImpl{
		repo:   repo,
		sender: sender,
		otel:   otl,
		pool:   pond.NewPool(workers),
	}
}

func (n *notifierImpl) Broadcast(ctx context.Context, notification dto.Notification) <-chan dto.Report {
	reports := make(chan dto.Report, 1)

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		log.Warn().Msg("notifier closed, dropping notification")

		reports <- dto.Report{}
		close(reports)

		return reports
	}

	n.running.Add(1)
	n.mu.Unlock()

	go func() {
		defer n.running.Done()
		defer close(reports)

		reports <- n.broadcast(ctx, notification)
	}()

	return reports
}

func (n *notifierImpl) broadcast(ctx context.Context, notification dto.Notification) (report dto.Report) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notifier.Broadcast")
	defer scope.End()

	if !n.sender.Enabled() {
		log.Debug().Msg("web push disabled, skipping broadcast")

		return report
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to encode notification")

		return report
	}

	subscriptions, err := n.repo.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list subscriptions")

		return report
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, subscription := range subscriptions {
		wg.Add(1)

		n.pool.Submit(func() {
			defer wg.Done()

			delivery, pruned := n.deliver(ctx, subscription, payload)

			mu.Lock()
			defer mu.Unlock()

			report.Deliveries = append(report.Deliveries, delivery)
			if pruned {
				report.Pruned = append(report.Pruned, subscription.ID)
			}
		})
	}

	wg.Wait()

	slices.SortFunc(report.Deliveries, func(a, b dto.Delivery) int {
		return cmp.Compare(a.SubscriptionID, b.SubscriptionID)
	})
	slices.Sort(report.Pruned)

	scope.SetAttributes(map[string]any{
		"deliveries": len(report.Deliveries),
		"failed":     report.Failed(),
		"pruned":     len(report.Pruned),
	})

	log.Info().
		Int("deliveries", len(report.Deliveries)).
		Int("failed", report.Failed()).
		Int("pruned", len(report.Pruned)).
		Msg("notification broadcast finished")

	return report
}

// deliver sends one push. A 404 or 410 answer deletes the subscription; other failures are only logged.
func (n *notifierImpl) deliver(ctx context.Context, subscription model.Subscription, payload []byte) (delivery dto.Delivery, pruned bool) {
	delivery.SubscriptionID = subscription.ID

	target, err := subscription.Decode()
	if err != nil {
		log.Error().Err(err).Int64("subscription", subscription.ID).Msg("invalid stored subscription")
		delivery.Err = err

		return delivery, false
	}

	delivery.StatusCode, delivery.Err = n.sender.Send(ctx, target, payload)
	if delivery.Err == nil {
		return delivery, false
	}

	if !webpush.IsGone(delivery.StatusCode) {
		log.Warn().Err(delivery.Err).Int64("subscription", subscription.ID).Msg("push delivery failed")

		return delivery, false
	}

	if err = n.repo.Delete(ctx, subscription.ID); err != nil {
		log.Error().Err(err).Int64("subscription", subscription.ID).Msg("failed to delete expired subscription")

		return delivery, false
	}

	log.Info().Int64("subscription", subscription.ID).Int("status", delivery.StatusCode).Msg("expired subscription deleted")

	return delivery, true
}

// Close waits for running broadcasts and stops the worker pool.
func (n *notifierImpl) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()

		return
	}

	n.closed = true
	n.mu.Unlock()

	n.running.Wait()
	_ = n.pool.Stop().Wait()
}
