package photos

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"journal/internal/domains/photo/model/dto"
	"journal/shared/constant"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	photosPath     = "/v1/photos"
	defaultTimeout = 30 * time.Second
)

type Client interface {
	List(ctx context.Context, page int) (dto.ListPhotosResponse, error)
	Get(ctx context.Context, id int64) (Photo, error)
	Create(ctx context.Context, upload Upload) (Photo, error)
	Update(ctx context.Context, id int64, upload Upload) (Photo, error)
	Delete(ctx context.Context, id int64) error
}

// Upload is a multipart photo form. Nil fields are not sent; Content is optional on update.
type Upload struct {
	FileName    string
	ContentType string
	Content     io.Reader
	Title       *string
	Description *string
	Position    *string
	Portrait    *bool
	Square      *bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("photos api: %d %s", e.Code, e.Message)
}

type Option func(*httpClient)

func WithHTTPClient(client *http.Client) Option {
	return func(c *httpClient) { c.http = client }
}

func WithBasicAuth(username, password string) Option {
	return func(c *httpClient) { c.username, c.password = username, password }
}

type httpClient struct {
	baseURL  string
	http     *http.Client
	username string
	password string
}

func NewClient(baseURL string, opts ...Option) Client {
	c := &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *httpClient) List(ctx context.Context, page int) (res dto.ListPhotosResponse, err error) {
	query := url.Values{constant.RequestParamPage: {strconv.Itoa(page)}}

	err = c.do(ctx, http.MethodGet, photosPath+"?"+query.Encode(), nil, "", &res)

	return res, err
}

func (c *httpClient) Get(ctx context.Context, id int64) (res Photo, err error) {
	err = c.do(ctx, http.MethodGet, photoPath(id), nil, "", &res)

	return res, err
}

func (c *httpClient) Create(ctx context.Context, upload Upload) (res Photo, err error) {
	body, contentType, err := upload.encode()
	if err != nil {
		return res, err
	}

	err = c.do(ctx, http.MethodPost, photosPath, body, contentType, &res)

	return res, err
}

func (c *httpClient) Update(ctx context.Context, id int64, upload Upload) (res Photo, err error) {
	body, contentType, err := upload.encode()
	if err != nil {
		return res, err
	}

	err = c.do(ctx, http.MethodPatch, photoPath(id), body, contentType, &res)

	return res, err
}

func (c *httpClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, photoPath(id), nil, "", nil)
}

func photoPath(id int64) string {
	return photosPath + "/" + strconv.FormatInt(id, 10)
}

func (c *httpClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if contentType != "" {
		req.Header.Set(constant.RequestHeaderContentType, contentType)
	}

	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func decodeError(resp *http.Response) *Error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	_ = json.NewDecoder(resp.Body).Decode(&payload)

	message := payload.Message
	if message == "" {
		message = payload.Error
	}

	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &Error{Status: StatusError, Code: resp.StatusCode, Message: message}
}

func (u Upload) encode() (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]*string{
		"title":       u.Title,
		"description": u.Description,
		"position":    u.Position,
	}

	for name, value := range fields {
		if value != nil {
			if err := writer.WriteField(name, *value); err != nil {
				return nil, "", fmt.Errorf("failed to write %s: %w", name, err)
			}
		}
	}

	flags := map[string]*bool{
		"portrait": u.Portrait,
		"square":   u.Square,
	}

	for name, value := range flags {
		if value != nil {
			if err := writer.WriteField(name, strconv.FormatBool(*value)); err != nil {
				return nil, "", fmt.Errorf("failed to write %s: %w", name, err)
			}
		}
	}

	if u.Content != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, constant.FormFile, u.FileName))
		header.Set(constant.RequestHeaderContentType, u.ContentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part: %w", err)
		}

		if _, err = io.Copy(part, u.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write file part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}
