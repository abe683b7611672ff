package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"journal/config"
	"journal/infras/imaging"
	"journal/infras/kafka"
	"journal/infras/otel"
	"journal/infras/storage"
	"journal/internal/domains/photo/model"
	"journal/internal/domains/photo/model/dto"
	"journal/internal/domains/photo/repository"
	subscriptionDto "journal/internal/domains/subscription/model/dto"
	subscriptionService "journal/internal/domains/subscription/service"
	"journal/shared"
	"journal/shared/cache"
	"journal/shared/constant"
	gDto "journal/shared/dto"
	"journal/shared/failure"
	"journal/shared/validator"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPhoto        = "photo:get"
	cacheListPhoto       = "photo:list"
	cacheCountPhoto      = "photo:count"
	cacheGenerationPhoto = "photo:generation"

	MessagePhotoRequired = "Photo is required"
	NotificationNewPhoto = "new_photo"
)

type Photo interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, pager gDto.Pager) (dto.ListPhotosResponse, error)
	Get(ctx context.Context, id int64) (dto.PhotoResponse, error)
	Create(ctx context.Context, req dto.CreatePhotoRequest) (dto.PhotoResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdatePhotoRequest) (dto.PhotoResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     repository.Photo
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	storage  storage.Storage
	imaging  imaging.Imaging
	notifier subscriptionService.Notifier
	events   kafka.Client
}

func New(
	repo repository.Photo,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	storage storage.Storage,
	imaging imaging.Imaging,
	notifier subscriptionService.Notifier,
	events kafka.Client,
) Photo {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		storage:  storage,
		imaging:  imaging,
		notifier: notifier,
		events:   events,
	}
}

// NewFileName returns a lowercase ULID keeping the extension of the uploaded file.
func NewFileName(original string) string {
	return strings.ToLower(ulid.Make().String()) + filepath.Ext(original)
}

type upload struct {
	name        string
	contentType string
	data        []byte
}

func (s *serviceImpl) acceptable(file *multipart.FileHeader) bool {
	return file != nil && validator.IsAllowedMimeType(file, s.cfg.App.Upload.AllowedMimeTypes)
}

func readUpload(file *multipart.FileHeader) (res upload, err error) {
	src, err := file.Open()
	if err != nil {
		return res, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	res.data, err = io.ReadAll(src)
	if err != nil {
		return res, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	res.name = NewFileName(file.Filename)
	res.contentType = file.Header.Get(constant.RequestHeaderContentType)

	return res, nil
}

// store writes the file and its thumbnail. A thumbnail failure is logged only.
func (s *serviceImpl) store(ctx context.Context, file *multipart.FileHeader) (res upload, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".store")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = readUpload(file)
	if err != nil {
		return res, err
	}

	if err = s.storage.Save(ctx, res.name, res.contentType, res.data); err != nil {
		log.Error().Err(err).Str("name", res.name).Msg("failed to store photo")

		return res, fmt.Errorf("failed to store photo: %w", err)
	}

	thumbnail, err := s.imaging.Thumbnail(ctx, res.data)
	if err != nil {
		log.Warn().Err(err).Str("name", res.name).Msg("failed to create thumbnail")

		return res, nil
	}

	if err := s.storage.Save(ctx, imaging.ThumbnailName(res.name), "image/jpeg", thumbnail); err != nil {
		log.Warn().Err(err).Str("name", res.name).Msg("failed to store thumbnail")
	}

	return res, nil
}

// discard removes a photo file and its thumbnail. Failures are logged only.
func (s *serviceImpl) discard(ctx context.Context, name string) {
	for _, target := range []string{name, imaging.ThumbnailName(name)} {
		if err := s.storage.Remove(ctx, target); err != nil {
			log.Warn().Err(err).Str("name", target).Msg("failed to remove photo file")
		}
	}
}

func (s *serviceImpl) orientation(ctx context.Context, req *dto.CreatePhotoRequest, data []byte) {
	if req.Portrait != nil || req.Square != nil {
		return
	}

	dimensions, err := s.imaging.Inspect(ctx, data)
	if err != nil {
		log.Warn().Err(err).Msg("failed to inspect photo dimensions")

		return
	}

	portrait := dimensions.Portrait()
	square := dimensions.Square()
	req.Portrait = &portrait
	req.Square = &square
}

func (s *serviceImpl) Count(ctx context.Context) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheCountPhoto, s.generation(ctx))

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for photo count")

		return total, nil
	}

	total, err = s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count photos")

		return 0, err //nolint:wrapcheck
	}

	s.save(ctx, cacheKey, total)

	return total, nil
}

func (s *serviceImpl) List(ctx context.Context, pager gDto.Pager) (res dto.ListPhotosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheListPhoto, s.generation(ctx), pager.Offset, pager.Limit)

	var items []dto.PhotoResponse

	err = s.cache.Get(ctx, cacheKey, &items)
	if err == nil && items != nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for photos")

		return dto.ListPhotosResponse{Items: items, Pager: pager}, nil
	}

	photos, err := s.repo.List(ctx, pager.Offset, pager.Limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get photos")

		return res, err //nolint:wrapcheck
	}

	res.FromModels(photos, pager)

	s.save(ctx, cacheKey, res.Items)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPhoto, s.generation(ctx), id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for photo")

		return res, nil
	}

	photo, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(photo)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id int64) (model.Photo, error) {
	photo, err := s.repo.Find(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get photo")

		return photo, fmt.Errorf("failed to get photo: %w", err)
	}

	if photo.ID == 0 {
		return photo, failure.NotFound("photo not found")
	}

	return photo, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePhotoRequest) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.acceptable(req.File) {
		return res, failure.UnprocessableEntity(MessagePhotoRequired)
	}

	stored, err := s.store(ctx, req.File)
	if err != nil {
		return res, err
	}

	s.orientation(ctx, &req, stored.data)

	photo, err := s.repo.Insert(ctx, req.ToModel(stored.name))
	if err != nil {
		log.Error().Err(err).Msg("failed to insert photo")
		s.discard(context.WithoutCancel(ctx), stored.name)

		return res, fmt.Errorf("failed to insert photo: %w", err)
	}

	res.FromModel(photo)

	s.invalidate(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		s.notifier.Broadcast(c, s.newPhotoNotification(photo))
		s.publish(c, dto.EventPhotoCreated, photo)
	}()

	return res, nil
}

func (s *serviceImpl) newPhotoNotification(photo model.Photo) subscriptionDto.Notification {
	return subscriptionDto.Notification{
		Type:    NotificationNewPhoto,
		Title:   "New photo",
		Body:    photo.Title.String,
		URL:     "/photos/" + strconv.FormatInt(photo.ID, 10),
		Image:   s.storage.URL(imaging.ThumbnailName(photo.Name)),
		PhotoID: photo.ID,
	}
}

// Update keeps the previous file when a new one replaces it.
// A file with a disallowed type is ignored and the rest of the form still applies.
func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdatePhotoRequest) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.find(ctx, id); err != nil {
		return res, err
	}

	var name *string

	if req.File != nil && !s.acceptable(req.File) {
		log.Warn().Int64("id", id).Str("filename", req.File.Filename).Msg("ignoring file with disallowed type")
	}

	if s.acceptable(req.File) {
		stored, err := s.store(ctx, req.File)
		if err != nil {
			return res, err
		}

		name = &stored.name
	}

	photo, err := s.repo.Update(ctx, id, req.ToChanges(name))
	if err == nil && photo.ID == 0 {
		err = failure.NotFound("photo not found")
	}

	if err != nil {
		if name != nil {
			s.discard(context.WithoutCancel(ctx), *name)
		}

		log.Error().Err(err).Int64("id", id).Msg("failed to update photo")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(photo)

	s.invalidate(ctx)

	go s.publish(context.WithoutCancel(ctx), dto.EventPhotoUpdated, photo)

	return res, nil
}

// Delete removes the file before the row. File removal is best effort.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	photo, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	s.discard(ctx, photo.Name)

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete photo")

		return fmt.Errorf("failed to delete photo: %w", err)
	}

	s.invalidate(ctx)

	go s.publish(context.WithoutCancel(ctx), dto.EventPhotoDeleted, photo)

	return nil
}

// generation versions every photo cache key. A read that started before a
// mutation saves under the previous generation, which is never read again.
func (s *serviceImpl) generation(ctx context.Context) int64 {
	var generation int64

	if err := s.cache.Get(ctx, cacheGenerationPhoto, &generation); err != nil {
		return 0
	}

	return generation
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save photo cache")
	}
}

// invalidate runs before a mutation returns so the next read goes to the database.
func (s *serviceImpl) invalidate(ctx context.Context) {
	if _, err := s.cache.Increment(ctx, cacheGenerationPhoto); err != nil {
		log.Error().Err(err).Msg("failed to bump photo cache generation")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetPhoto)
	shared.InvalidateCaches(ctx, s.cache, cacheListPhoto)
	shared.InvalidateCaches(ctx, s.cache, cacheCountPhoto)
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, photo model.Photo) {
	message := kafka.Message{
		Key:   strconv.FormatInt(photo.ID, 10),
		Value: dto.NewPhotoEvent(eventType, photo),
	}

	if err := s.events.SendMessages(ctx, s.cfg.Kafka.TopicPhotos, message); err != nil {
		log.Error().Err(err).Str("event", eventType).Msg("failed to publish photo event")
	}
}
