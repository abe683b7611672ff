package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"journal/infras/htpasswd"
	"journal/infras/jwt"
	"journal/infras/otel"
	"journal/internal/domains/auth/model/dto"
	"journal/shared/constant"
	"journal/shared/failure"

	"github.com/rs/zerolog/log"
)

const messageInvalidCredentials = "invalid username or password"

// Auth exchanges htpasswd credentials for a JWT pair.
type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	htpasswd   htpasswd.Htpasswd
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(htpasswd htpasswd.Htpasswd, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		htpasswd:   htpasswd,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.htpasswd.Verify(req.Username, req.Password); err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("login attempt with invalid credentials")

		return res, failure.Unauthorized(messageInvalidCredentials)
	}

	// every htpasswd user administers the journal
	tokenPair, err := s.jwtService.GenerateTokenPair(req.Username, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
