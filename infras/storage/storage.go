package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=./mocks/storage_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"journal/config"
	"journal/infras/otel"
	"journal/infras/s3"
	"journal/shared/constant"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	dirPermission  = 0o755
	filePermission = 0o644
	otelAttrName   = "name"
)

var ErrInvalidName = errors.New("invalid file name")

// Storage keeps uploaded photo files addressed by their generated name.
type Storage interface {
	Save(ctx context.Context, name, contentType string, data []byte) (err error)
	Remove(ctx context.Context, name string) (err error)
	URL(name string) string
}

func New(cfg *config.Config, otl otel.Otel) Storage {
	if cfg.Storage.Driver == config.StorageDriverS3 {
		log.Info().Str("bucket", cfg.Storage.S3.BucketName).Msg("Using S3 photo storage")

		return NewS3(s3.New(cfg, otl), otl)
	}

	log.Info().Str("dir", cfg.Storage.Disk.Dir).Msg("Using disk photo storage")

	return NewDisk(cfg.Storage.Disk.Dir, cfg.Storage.Disk.URLPrefix, otl)
}

func cleanName(name string) (string, error) {
	cleaned := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || !filepath.IsLocal(cleaned) {
		return constant.Empty, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return cleaned, nil
}

type disk struct {
	dir       string
	urlPrefix string
	otel      otel.Otel
}

func NewDisk(dir, urlPrefix string, otl otel.Otel) Storage {
	return &disk{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/"), otel: otl}
}

func (d *disk) Save(ctx context.Context, name, _ string, data []byte) (err error) {
	_, scope := d.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".disk.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrName, name)

	name, err = cleanName(name)
	if err != nil {
		return err
	}

	target := filepath.Join(d.dir, filepath.FromSlash(name))

	if err = os.MkdirAll(filepath.Dir(target), dirPermission); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err = os.WriteFile(target, data, filePermission); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Remove treats an already missing file as removed.
func (d *disk) Remove(ctx context.Context, name string) (err error) {
	_, scope := d.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".disk.Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelAttrName, name)

	name, err = cleanName(name)
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(d.dir, filepath.FromSlash(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	return nil
}

func (d *disk) URL(name string) string {
	return d.urlPrefix + "/" + name
}

type objectStore struct {
	client s3.S3
	otel   otel.Otel
}

func NewS3(client s3.S3, otl otel.Otel) Storage {
	return &objectStore{client: client, otel: otl}
}

func (o *objectStore) Save(ctx context.Context, name, contentType string, data []byte) (err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".s3.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name, err = cleanName(name)
	if err != nil {
		return err
	}

	return o.client.PutObject(ctx, name, contentType, data) //nolint:wrapcheck
}

func (o *objectStore) Remove(ctx context.Context, name string) (err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".s3.Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name, err = cleanName(name)
	if err != nil {
		return err
	}

	return o.client.DeleteObject(ctx, name) //nolint:wrapcheck
}

func (o *objectStore) URL(name string) string {
	return o.client.ObjectURL(name)
}
