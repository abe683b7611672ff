package imaging

//go:generate go run go.uber.org/mock/mockgen -source=./imaging.go -destination=./mocks/imaging_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif" //nolint:revive
	"image/jpeg"
	_ "image/png" //nolint:revive
	"journal/config"
	"journal/infras/otel"
	"journal/shared/constant"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp" //nolint:revive
)

const (
	// ThumbnailDir is the storage prefix thumbnails are written under.
	ThumbnailDir   = "thumbnails"
	jpegQuality    = 85
	defaultMaxEdge = 300
)

// Dimensions of a decoded image.
type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) Portrait() bool {
	return d.Height > d.Width
}

func (d Dimensions) Square() bool {
	return d.Width == d.Height
}

type Imaging interface {
	Inspect(ctx context.Context, data []byte) (dimensions Dimensions, err error)
	Thumbnail(ctx context.Context, data []byte) (thumbnail []byte, err error)
}

type imagingImpl struct {
	maxEdge uint
	otel    otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Imaging {
	maxEdge := cfg.App.Upload.ThumbnailSize
	if maxEdge == 0 {
		maxEdge = defaultMaxEdge
	}

	return &imagingImpl{maxEdge: maxEdge, otel: otl}
}

func ThumbnailName(name string) string {
	return ThumbnailDir + "/" + name
}

func (i *imagingImpl) Inspect(ctx context.Context, data []byte) (dimensions Dimensions, err error) {
	_, scope := i.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".imaging.Inspect")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, fmt.Errorf("error decoding image config: %w", err)
	}

	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}

// Thumbnail scales the longest edge down to the configured size and encodes a JPEG.
// Images already smaller than that are re-encoded without upscaling.
func (i *imagingImpl) Thumbnail(ctx context.Context, data []byte) (thumbnail []byte, err error) {
	_, scope := i.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".imaging.Thumbnail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	resized := i.resize(img)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("error encoding thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

func (i *imagingImpl) resize(img image.Image) image.Image {
	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if width <= i.maxEdge && height <= i.maxEdge {
		return img
	}

	var newWidth, newHeight uint
	if width > height {
		newWidth = i.maxEdge
		newHeight = uint(float64(height) * (float64(i.maxEdge) / float64(width)))
	} else {
		newHeight = i.maxEdge
		newWidth = uint(float64(width) * (float64(i.maxEdge) / float64(height)))
	}

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}
