package dto

import (
	"context"
	"journal/shared/constant"
	"math"
	"strconv"
	"strings"
)

// Pager describes the window of a paginated listing. It is derived on every
// list request and never persisted.
type Pager struct {
	Page       int `json:"page"`
	PageCount  int `json:"pageCount"`
	TotalCount int `json:"totalCount"`
	Offset     int `json:"offset"`
	Limit      int `json:"limit"`
}

// NewPager builds the pager for the requested page. Pages below 1 are
// treated as 1 and a non-positive limit falls back to the default. The page
// is capped so the offset always fits in an int.
func NewPager(page, totalCount, limit int) Pager {
	if page < 1 {
		page = constant.DefaultValuePage
	}

	if limit < 1 {
		limit = constant.DefaultValueLimit
	}

	if page > math.MaxInt/limit {
		page = math.MaxInt / limit
	}

	if totalCount < 0 {
		totalCount = 0
	}

	return Pager{
		Page:       page,
		PageCount:  CalculatePageCount(totalCount, limit),
		TotalCount: totalCount,
		Offset:     (page - 1) * limit,
		Limit:      limit,
	}
}

// CalculatePageCount returns ceil(total/limit); an empty table has no pages.
func CalculatePageCount(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// ParsePage coerces a raw page value into a 1-based page number.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return constant.DefaultValuePage
	}

	return page
}

func WithPager(ctx context.Context, pager Pager) context.Context {
	return context.WithValue(ctx, constant.ContextKeyPager, pager)
}

func PagerFromContext(ctx context.Context) (Pager, bool) {
	pager, ok := ctx.Value(constant.ContextKeyPager).(Pager)

	return pager, ok
}
