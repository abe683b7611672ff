package subscription

import (
	"journal/infras/otel"
	"journal/internal/domains/subscription/model/dto"
	"journal/internal/domains/subscription/service"
	"journal/shared/constant"
	"journal/shared/validator"
	"journal/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Subscription
	otel    otel.Otel
}

func New(service service.Subscription, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/subscriptions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Subscribe)
		routerGroup.Get("/key", handler.PublicKey)
	})
}

// Subscribe registers a browser push subscription.
// @Summary Register a push subscription
// @Description Stores the PushSubscription once per endpoint.
// @Tags Subscription
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "PushSubscription"
// @Success 201 {object} response.Message "Subscription saved"
// @Success 200 {object} response.Message "Already subscribed"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/subscriptions [post]
func (handler *Handler) Subscribe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	req := dto.SubscribeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	created, err := handler.service.Subscribe(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save subscription")

		response.WithError(writer, err)

		return
	}

	if !created {
		response.WithMessage(writer, http.StatusOK, "Already subscribed")

		return
	}

	scope.AddEvent("Subscription saved")

	response.WithMessage(writer, http.StatusCreated, "Subscription saved")
}

// PublicKey returns the VAPID public key browsers subscribe with.
// @Summary Get the push public key
// @Tags Subscription
// @Produce json
// @Success 200 {object} response.Data[dto.PublicKeyResponse]
// @Failure 404 {object} response.Error "Web push is not configured"
// @Router /v1/subscriptions/key [get]
func (handler *Handler) PublicKey(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublicKey")
	defer scope.End()

	res, err := handler.service.PublicKey(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
