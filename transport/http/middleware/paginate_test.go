package middleware_test

import (
	"context"
	"errors"
	"journal/config"
	"journal/infras/otel/mocks"
	cacheMocks "journal/shared/cache/mocks"
	"journal/shared/dto"
	"journal/transport/http/middleware"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type counterFunc func(ctx context.Context) (int, error)

func (f counterFunc) Count(ctx context.Context) (int, error) {
	return f(ctx)
}

func newAppMiddleware(t *testing.T) middleware.AppMiddleware {
	t.Helper()

	ctrl := gomock.NewController(t)

	return middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl))
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		total        int
		countErr     error
		expectedCode int
		expected     dto.Pager
	}{
		{
			name:         "first page by default",
			query:        "",
			total:        3,
			expectedCode: http.StatusOK,
			expected:     dto.Pager{Page: 1, PageCount: 2, TotalCount: 3, Offset: 0, Limit: 2},
		},
		{
			name:         "second page",
			query:        "?page=2",
			total:        3,
			expectedCode: http.StatusOK,
			expected:     dto.Pager{Page: 2, PageCount: 2, TotalCount: 3, Offset: 2, Limit: 2},
		},
		{
			name:         "page past the end keeps the real pager",
			query:        "?page=3",
			total:        3,
			expectedCode: http.StatusOK,
			expected:     dto.Pager{Page: 3, PageCount: 2, TotalCount: 3, Offset: 4, Limit: 2},
		},
		{
			name:         "non numeric page",
			query:        "?page=abc",
			total:        3,
			expectedCode: http.StatusOK,
			expected:     dto.Pager{Page: 1, PageCount: 2, TotalCount: 3, Offset: 0, Limit: 2},
		},
		{
			name:         "negative page",
			query:        "?page=-1",
			total:        0,
			expectedCode: http.StatusOK,
			expected:     dto.Pager{Page: 1, PageCount: 0, TotalCount: 0, Offset: 0, Limit: 2},
		},
		{
			name:         "huge page keeps a non negative offset",
			query:        "?page=" + strconv.Itoa(math.MaxInt),
			total:        3,
			expectedCode: http.StatusOK,
			expected:     dto.Pager{Page: math.MaxInt / 2, PageCount: 2, TotalCount: 3, Offset: (math.MaxInt/2 - 1) * 2, Limit: 2},
		},
		{
			name:         "page beyond int range",
			query:        "?page=92233720368547758070",
			total:        3,
			expectedCode: http.StatusOK,
			expected:     dto.Pager{Page: 1, PageCount: 2, TotalCount: 3, Offset: 0, Limit: 2},
		},
		{
			name:         "count failure",
			query:        "?page=1",
			countErr:     errors.New("connection refused"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			counter := counterFunc(func(_ context.Context) (int, error) {
				calls++

				return tt.total, tt.countErr
			})

			var (
				got     dto.Pager
				reached bool
			)

			handler := newAppMiddleware(t).Paginate(counter, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				got, _ = dto.PagerFromContext(r.Context())

				w.WriteHeader(http.StatusOK)
			}))

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/photos"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, recorder.Code)
			assert.Equal(t, 1, calls)

			if tt.countErr != nil {
				assert.False(t, reached)
				assert.JSONEq(t, `{"error":"internal server error"}`, recorder.Body.String())

				return
			}

			assert.True(t, reached)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRequestLoggerAndTracingPassThrough(t *testing.T) {
	mw := newAppMiddleware(t)

	handler := mw.Tracing(mw.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, recorder.Code)
}

func TestRateLimitDisabled(t *testing.T) {
	handler := newAppMiddleware(t).RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/photos", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get("X-RateLimit-Limit"))
}

func TestPaginateTracesPager(t *testing.T) {
	recorder := mocks.NewRecorder()
	mw := middleware.NewAppMiddleware(recorder, &config.Config{}, cacheMocks.NewMockRedisCache(gomock.NewController(t)))

	counter := counterFunc(func(_ context.Context) (int, error) {
		return 41, nil
	})

	handler := mw.Paginate(counter, 20)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/photos?page=3", nil))

	scope := recorder.Find("paginate.middleware")
	if assert.NotNil(t, scope) {
		assert.True(t, scope.Ended())
		assert.Equal(t, map[string]any{"pager.page": 3, "pager.total": 41}, scope.Attributes())
	}
}
