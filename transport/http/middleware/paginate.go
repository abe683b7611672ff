package middleware

import (
	"journal/shared/constant"
	"journal/shared/dto"
	"journal/transport/http/response"
	"net/http"
)

// Paginate counts the collection once and stores the resulting pager in the
// request context before next runs. Unusable page values fall back to page 1.
func (a *appMiddleware) Paginate(counter Counter, limit int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx, scope := a.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "paginate.middleware")

			total, err := counter.Count(ctx)
			if err != nil {
				scope.TraceError(err)
				scope.End()
				response.WithError(writer, err)

				return
			}

			pager := dto.NewPager(dto.ParsePage(request.URL.Query().Get(constant.RequestParamPage)), total, limit)

			scope.SetAttributes(map[string]any{
				"pager.page":  pager.Page,
				"pager.total": pager.TotalCount,
			})
			scope.End()

			next.ServeHTTP(writer, request.WithContext(dto.WithPager(request.Context(), pager)))
		})
	}
}
