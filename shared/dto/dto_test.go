package dto_test

import (
	"context"
	"journal/shared/constant"
	"journal/shared/dto"
	"journal/shared/model"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt, UpdatedAt: updatedAt})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.UpdatedAt)

	parsed, err := time.Parse(constant.DateFormat, metadata.UpdatedAt)
	assert.NoError(t, err)
	assert.True(t, parsed.Equal(updatedAt))
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "absent", raw: "", expected: 1},
		{name: "valid", raw: "3", expected: 3},
		{name: "padded", raw: " 2 ", expected: 2},
		{name: "zero", raw: "0", expected: 1},
		{name: "negative", raw: "-4", expected: 1},
		{name: "non numeric", raw: "abc", expected: 1},
		{name: "float", raw: "1.5", expected: 1},
		{name: "max int", raw: strconv.Itoa(math.MaxInt), expected: math.MaxInt},
		{name: "beyond int range", raw: "92233720368547758070", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dto.ParsePage(tt.raw))
		})
	}
}

func TestNewPager(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		total    int
		limit    int
		expected dto.Pager
	}{
		{
			name:     "empty table has no pages",
			page:     1,
			total:    0,
			limit:    20,
			expected: dto.Pager{Page: 1, PageCount: 0, TotalCount: 0, Offset: 0, Limit: 20},
		},
		{
			name:     "first page",
			page:     1,
			total:    3,
			limit:    2,
			expected: dto.Pager{Page: 1, PageCount: 2, TotalCount: 3, Offset: 0, Limit: 2},
		},
		{
			name:     "last partial page",
			page:     2,
			total:    3,
			limit:    2,
			expected: dto.Pager{Page: 2, PageCount: 2, TotalCount: 3, Offset: 2, Limit: 2},
		},
		{
			name:     "page past the end is kept",
			page:     3,
			total:    3,
			limit:    2,
			expected: dto.Pager{Page: 3, PageCount: 2, TotalCount: 3, Offset: 4, Limit: 2},
		},
		{
			name:     "non positive page becomes first page",
			page:     -7,
			total:    45,
			limit:    20,
			expected: dto.Pager{Page: 1, PageCount: 3, TotalCount: 45, Offset: 0, Limit: 20},
		},
		{
			name:     "non positive limit uses default",
			page:     2,
			total:    45,
			limit:    0,
			expected: dto.Pager{Page: 2, PageCount: 3, TotalCount: 45, Offset: constant.DefaultValueLimit, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "huge page is capped so the offset cannot overflow",
			page:     math.MaxInt,
			total:    3,
			limit:    20,
			expected: dto.Pager{Page: math.MaxInt / 20, PageCount: 1, TotalCount: 3, Offset: (math.MaxInt/20 - 1) * 20, Limit: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dto.NewPager(tt.page, tt.total, tt.limit))
		})
	}
}

func TestNewPager_Invariants(t *testing.T) {
	for limit := 1; limit <= 7; limit++ {
		for total := 0; total <= 50; total++ {
			for page := 1; page <= 10; page++ {
				pager := dto.NewPager(page, total, limit)

				assert.Equal(t, (page-1)*limit, pager.Offset)
				assert.Equal(t, (total+limit-1)/limit, pager.PageCount)
				assert.GreaterOrEqual(t, pager.Offset, 0)
			}
		}
	}

	for _, limit := range []int{1, 2, 3, 20, 1000} {
		for _, page := range []int{math.MaxInt, math.MaxInt - 1, math.MaxInt / limit, math.MaxInt/limit + 1} {
			pager := dto.NewPager(page, 3, limit)

			assert.GreaterOrEqual(t, pager.Offset, 0)
			assert.GreaterOrEqual(t, pager.Page, 1)
			assert.Equal(t, (pager.Page-1)*limit, pager.Offset)
		}
	}

	pager := dto.NewPager(dto.ParsePage(strconv.Itoa(math.MaxInt)), 3, 20)
	assert.GreaterOrEqual(t, pager.Offset, 0)
}

func TestPagerContext(t *testing.T) {
	_, ok := dto.PagerFromContext(context.Background())
	assert.False(t, ok)

	pager := dto.NewPager(2, 10, 5)
	ctx := dto.WithPager(context.Background(), pager)

	got, ok := dto.PagerFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, pager, got)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "subscription->>'endpoint'",
				ArgName:  "endpoint",
				Value:    "https://push.example.com/abc",
				Operator: dto.FilterOperatorEq,
			},
			dto.Filter{
				Field:    "id",
				Value:    []int64{1, 2},
				Operator: dto.FilterOperatorIn,
				Table:    "subscriptions",
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(subscription->>'endpoint' = :endpoint AND subscriptions.id IN (:id_0, :id_1) )", where)
	assert.Equal(t, "https://push.example.com/abc", args["endpoint"])
	assert.Equal(t, int64(1), args["id_0"])
	assert.Equal(t, int64(2), args["id_1"])
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
