package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"journal/config"
	"journal/shared/constant"
	"journal/shared/failure"
	"mime/multipart"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const bytesConversion = 1024.0

var validate *val.Validate

func fileHeader(field val.FieldLevel) (*multipart.FileHeader, bool) {
	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return &file, true
	case *multipart.FileHeader:
		return file, file != nil
	}

	return nil, false
}

// registerMimetypeValidation falls back to APP_UPLOAD_ALLOWED_MIME_TYPES when the tag has no param.
func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := fileHeader(field)
	if !ok {
		return false
	}

	allowed := config.Get().App.Upload.AllowedMimeTypes
	if field.Param() != "" {
		allowed = strings.Split(field.Param(), " ")
	}

	return IsAllowedMimeType(file, allowed)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	file, ok := fileHeader(field)
	if !ok {
		return false
	}

	maxSizeMB := config.Get().App.Upload.MaxSizeMB

	if field.Param() != "" {
		var err error

		maxSizeMB, err = strconv.ParseFloat(field.Param(), 64)
		if err != nil {
			return false
		}
	}

	return WithinFileSize(file, maxSizeMB)
}

// IsAllowedMimeType reports whether the declared content type of the uploaded part is in allowed.
// Parameters such as "; charset=" are ignored.
func IsAllowedMimeType(file *multipart.FileHeader, allowed []string) bool {
	if file == nil {
		return false
	}

	contentType := file.Header.Get(constant.RequestHeaderContentType)
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if contentType == "" {
		return false
	}

	return slices.ContainsFunc(allowed, func(mime string) bool {
		return strings.EqualFold(strings.TrimSpace(mime), contentType)
	})
}

// WithinFileSize reports whether file fits in maxSizeMB. A non-positive limit disables the check.
func WithinFileSize(file *multipart.FileHeader, maxSizeMB float64) bool {
	if file == nil {
		return false
	}

	if maxSizeMB <= 0 {
		return true
	}

	return float64(file.Size) <= maxSizeMB*bytesConversion*bytesConversion
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
