package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"journal/infras/otel"
	"journal/infras/postgres"
	"journal/internal/domains/subscription/model"
	"journal/shared"
	"journal/shared/constant"
	gDto "journal/shared/dto"
	"journal/shared/logger"
	gRepo "journal/shared/repository"
)

type Subscription interface {
	List(ctx context.Context) (subscriptions []model.Subscription, err error)
	Insert(ctx context.Context, subscription model.Subscription) error
	ExistsByEndpoint(ctx context.Context, endpoint string) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Subscription]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Subscription {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Subscription](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) List(ctx context.Context) (subscriptions []model.Subscription, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stmt := ListSubscriptions()
	scope.SetAttribute(constant.OtelQueryAttributeKey, stmt.Query)

	subscriptions = []model.Subscription{}

	if err = r.db.Read.SelectContext(ctx, &subscriptions, stmt.Query, stmt.Args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return subscriptions, nil
}

func (r *repositoryImpl) ExistsByEndpoint(ctx context.Context, endpoint string) (bool, error) {
	return r.Exist(ctx, gDto.FilterGroup{ //nolint:wrapcheck
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEndpoint,
				ArgName:  "endpoint",
				Operator: gDto.FilterOperatorEq,
				Value:    endpoint,
			},
		},
	})
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.Repository.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
