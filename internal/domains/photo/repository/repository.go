package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"journal/infras/otel"
	"journal/infras/postgres"
	"journal/internal/domains/photo/model"
	"journal/shared/constant"
	"journal/shared/logger"
)

type Photo interface {
	Count(ctx context.Context) (total int, err error)
	List(ctx context.Context, offset, limit int) (photos []model.Photo, err error)
	Find(ctx context.Context, id int64) (photo model.Photo, err error)
	Insert(ctx context.Context, photo model.Photo) (created model.Photo, err error)
	Update(ctx context.Context, id int64, changes PhotoChanges) (updated model.Photo, err error)
	Delete(ctx context.Context, id int64) (err error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Photo {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) scope(ctx context.Context, name string, stmt Statement) (context.Context, otel.Scope) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, name))
	scope.SetAttribute(constant.OtelQueryAttributeKey, stmt.Query)

	return ctx, scope
}

func (r *repositoryImpl) Count(ctx context.Context) (total int, err error) {
	stmt := CountPhotos()

	ctx, scope := r.scope(ctx, "Count", stmt)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.db.Read.GetContext(ctx, &total, stmt.Query, stmt.Args...); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", model.EntityName, err)
	}

	return total, nil
}

func (r *repositoryImpl) List(ctx context.Context, offset, limit int) (photos []model.Photo, err error) {
	stmt := ListPhotos(offset, limit)

	ctx, scope := r.scope(ctx, "List", stmt)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	photos = []model.Photo{}

	if err = r.db.Read.SelectContext(ctx, &photos, stmt.Query, stmt.Args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	return photos, nil
}

// Find returns a zero Photo and no error when the id does not exist.
func (r *repositoryImpl) Find(ctx context.Context, id int64) (photo model.Photo, err error) {
	stmt := FindPhoto(id)

	ctx, scope := r.scope(ctx, "Find", stmt)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.getOne(ctx, stmt, r.db.Read.GetContext)
}

func (r *repositoryImpl) Insert(ctx context.Context, photo model.Photo) (created model.Photo, err error) {
	stmt := InsertPhoto(photo)

	ctx, scope := r.scope(ctx, "Insert", stmt)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.getOne(ctx, stmt, r.db.Write.GetContext)
}

// Update returns a zero Photo and no error when the id does not exist.
func (r *repositoryImpl) Update(ctx context.Context, id int64, changes PhotoChanges) (updated model.Photo, err error) {
	stmt := UpdatePhoto(id, changes)

	ctx, scope := r.scope(ctx, "Update", stmt)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.getOne(ctx, stmt, r.db.Write.GetContext)
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) (err error) {
	stmt := DeletePhoto(id)

	ctx, scope := r.scope(ctx, "Delete", stmt)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = r.db.Write.ExecContext(ctx, stmt.Query, stmt.Args...); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return nil
}

type getter func(ctx context.Context, dest any, query string, args ...any) error

func (r *repositoryImpl) getOne(ctx context.Context, stmt Statement, get getter) (photo model.Photo, err error) {
	err = get(ctx, &photo, stmt.Query, stmt.Args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Photo{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.Photo{}, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return photo, nil
}
