package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"journal/infras/otel"
	"journal/infras/webpush"
	"journal/internal/domains/subscription/model/dto"
	"journal/internal/domains/subscription/repository"
	"journal/shared/constant"
	"journal/shared/failure"

	"github.com/rs/zerolog/log"
)

type Subscription interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest) (created bool, err error)
	PublicKey(ctx context.Context) (res dto.PublicKeyResponse, err error)
}

type serviceImpl struct {
	repo   repository.Subscription
	sender webpush.Sender
	otel   otel.Otel
}

func New(repo repository.Subscription, sender webpush.Sender, otel otel.Otel) Subscription {
	return &serviceImpl{
		repo:   repo,
		sender: sender,
		otel:   otel,
	}
}

// Subscribe stores the subscription once per endpoint. created is false for a known endpoint.
func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeRequest) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.ExistsByEndpoint(ctx, req.Endpoint)
	if err != nil {
		log.Error().Err(err).Msg("failed to check subscription existence")

		return false, err //nolint:wrapcheck
	}

	if exist {
		log.Debug().Msg("subscription already registered")

		return false, nil
	}

	subscription, err := req.ToModel()
	if err != nil {
		return false, failure.BadRequest(err) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, subscription); err != nil {
		log.Error().Err(err).Msg("failed to insert subscription")

		return false, err //nolint:wrapcheck
	}

	return true, nil
}

func (s *serviceImpl) PublicKey(ctx context.Context) (res dto.PublicKeyResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PublicKey")
	defer scope.End()

	if !s.sender.Enabled() {
		return res, failure.NotFound("web push is not configured")
	}

	res.PublicKey = s.sender.PublicKey()

	return res, nil
}
