package photo

import (
	"errors"
	"journal/config"
	"journal/infras/otel"
	"journal/internal/domains/photo/model"
	"journal/internal/domains/photo/model/dto"
	"journal/internal/domains/photo/service"
	"journal/shared"
	"journal/shared/constant"
	gDto "journal/shared/dto"
	"journal/shared/failure"
	"journal/shared/validator"
	"journal/transport/http/middleware"
	"journal/transport/http/response"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formTitle       = "title"
	formDescription = "description"
	formPosition    = "position"
	formPortrait    = "portrait"
	formSquare      = "square"
)

var errPagerMissing = errors.New("pager missing from request context")

type Handler struct {
	service    service.Photo
	otel       otel.Otel
	middleware middleware.AppMiddleware
	pageSize   int
}

func New(service service.Photo, otel otel.Otel, middleware middleware.AppMiddleware, cfg *config.Config) Handler {
	pageSize := cfg.App.PageSize
	if pageSize < 1 {
		pageSize = model.PageSize
	}

	return Handler{
		service:    service,
		otel:       otel,
		middleware: middleware,
		pageSize:   pageSize,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/photos", func(routerGroup chi.Router) {
		routerGroup.With(handler.middleware.Paginate(handler.service, handler.pageSize)).Get("/", handler.ListPhotos)
		routerGroup.Post("/", handler.CreatePhoto)
		routerGroup.Get("/{id:[0-9]+}", handler.GetPhoto)
		routerGroup.Patch("/{id:[0-9]+}", handler.UpdatePhoto)
		routerGroup.Delete("/{id:[0-9]+}", handler.DeletePhoto)
	})
}

// writeError answers not found with an empty body and a rejected upload with a message.
func writeError(writer http.ResponseWriter, err error) {
	switch failure.GetCode(err) {
	case http.StatusNotFound:
		response.WithEmpty(writer, http.StatusNotFound)
	case http.StatusUnprocessableEntity:
		response.WithMessage(writer, http.StatusUnprocessableEntity, err.Error())
	default:
		response.WithError(writer, err)
	}
}

func photoID(request *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}

// parseForm reads a multipart body. A body that is not multipart counts as an empty form.
func parseForm(request *http.Request) (fields dto.PhotoFields, file *multipart.FileHeader, err error) {
	err = request.ParseMultipartForm(constant.RequestMaxMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return fields, nil, failure.BadRequest(err)
	}

	fields = dto.PhotoFields{
		Title:       formValue(request, formTitle),
		Description: formValue(request, formDescription),
		Position:    formValue(request, formPosition),
	}

	if value := formValue(request, formPortrait); value != nil {
		fields.Portrait = shared.ConvertStringToBool(*value)
	}

	if value := formValue(request, formSquare); value != nil {
		fields.Square = shared.ConvertStringToBool(*value)
	}

	if request.MultipartForm != nil {
		if files := request.MultipartForm.File[constant.FormFile]; len(files) > 0 {
			file = files[0]
		}
	}

	return fields, file, nil
}

// formValue is nil when the field was not submitted at all.
func formValue(request *http.Request, key string) *string {
	values, ok := request.PostForm[key]
	if !ok || len(values) == 0 {
		return nil
	}

	return &values[0]
}

// ListPhotos returns one page of photos, newest first.
// @Summary List photos
// @Description Returns the requested page of photos with its pager. A page past the end is empty.
// @Tags Photo
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.ListPhotosResponse
// @Failure 500 {object} response.Error
// @Router /v1/photos [get]
func (handler *Handler) ListPhotos(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListPhotos")
	defer scope.End()

	pager, ok := gDto.PagerFromContext(ctx)
	if !ok {
		scope.TraceError(errPagerMissing)
		response.WithError(writer, errPagerMissing)

		return
	}

	res, err := handler.service.List(ctx, pager)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list photos")
		response.WithError(writer, err)

		return
	}

	response.WithBody(writer, http.StatusOK, res)
}

// CreatePhoto uploads a photo.
// @Summary Upload a photo
// @Description Stores the image, inserts the photo and notifies push subscribers.
// @Tags Photo
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image (jpeg, png, gif, webp)"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param position formData string false "Position" Enums(left, center, right)
// @Param portrait formData boolean false "Portrait orientation"
// @Param square formData boolean false "Square crop"
// @Success 200 {object} dto.PhotoResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/photos [post]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) CreatePhoto(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePhoto")
	defer scope.End()

	fields, file, err := parseForm(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreatePhotoRequest{PhotoFields: fields, File: file}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		writeError(writer, err)

		return
	}

	scope.AddEvent("Photo created")

	response.WithBody(writer, http.StatusOK, res)
}

// GetPhoto returns a single photo.
// @Summary Get a photo
// @Tags Photo
// @Produce json
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.PhotoResponse
// @Failure 404 "Photo not found"
// @Failure 500 {object} response.Error
// @Router /v1/photos/{id} [get]
func (handler *Handler) GetPhoto(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPhoto")
	defer scope.End()

	id, ok := photoID(request)
	if !ok {
		response.WithEmpty(writer, http.StatusNotFound)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		writeError(writer, err)

		return
	}

	response.WithBody(writer, http.StatusOK, res)
}

// UpdatePhoto changes the submitted fields of a photo.
// @Summary Update a photo
// @Description Partial update. A new file replaces the stored name; fields left out are unchanged.
// @Tags Photo
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Photo ID"
// @Param file formData file false "Replacement image"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param position formData string false "Position" Enums(left, center, right)
// @Param portrait formData boolean false "Portrait orientation"
// @Param square formData boolean false "Square crop"
// @Success 200 {object} dto.PhotoResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 "Photo not found"
// @Failure 500 {object} response.Error
// @Router /v1/photos/{id} [patch]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) UpdatePhoto(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePhoto")
	defer scope.End()

	id, ok := photoID(request)
	if !ok {
		response.WithEmpty(writer, http.StatusNotFound)

		return
	}

	fields, file, err := parseForm(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.UpdatePhotoRequest{PhotoFields: fields, File: file}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		writeError(writer, err)

		return
	}

	scope.AddEvent("Photo updated")

	response.WithBody(writer, http.StatusOK, res)
}

// DeletePhoto removes a photo and its file.
// @Summary Delete a photo
// @Tags Photo
// @Param id path int true "Photo ID"
// @Success 200 "Photo deleted"
// @Failure 401 {object} response.Error
// @Failure 404 "Photo not found"
// @Failure 500 {object} response.Error
// @Router /v1/photos/{id} [delete]
// @Security BasicAuth
// @Security BearerAuth
func (handler *Handler) DeletePhoto(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePhoto")
	defer scope.End()

	id, ok := photoID(request)
	if !ok {
		response.WithEmpty(writer, http.StatusNotFound)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		writeError(writer, err)

		return
	}

	scope.AddEvent("Photo deleted")

	response.WithEmpty(writer, http.StatusOK)
}
