package photos_test

import (
	"journal/internal/client/photos"
	"testing"

	"github.com/stretchr/testify/assert"
)

func photo(id int64, title string) photos.Photo {
	return photos.Photo{ID: id, Title: title}
}

func loaded(items ...photos.Photo) photos.State {
	return photos.Reduce(photos.InitialState(), photos.ListSucceeded{
		Items: items,
		Pager: photos.Pager{Page: 1, PageCount: 1, TotalCount: len(items), Limit: 20},
	})
}

func TestInitialState(t *testing.T) {
	state := photos.InitialState()

	assert.Empty(t, state.Items)
	assert.NotNil(t, state.Items)
	assert.Nil(t, state.Pager)
	assert.True(t, state.IsLoading)
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		state  photos.State
		action photos.Action
		check  func(t *testing.T, before, after photos.State)
	}{
		{
			name:   "list requested keeps stale items",
			state:  loaded(photo(1, "a")),
			action: photos.ListRequested{},
			check: func(t *testing.T, before, after photos.State) {
				assert.True(t, after.IsLoading)
				assert.Equal(t, before.Items, after.Items)
				assert.Equal(t, before.Pager, after.Pager)
			},
		},
		{
			name:  "list succeeded replaces items and pager",
			state: loaded(photo(1, "a")),
			action: photos.ListSucceeded{
				Items: []photos.Photo{photo(3, "c"), photo(2, "b")},
				Pager: photos.Pager{Page: 2, PageCount: 2, TotalCount: 3, Offset: 2, Limit: 2},
			},
			check: func(t *testing.T, _, after photos.State) {
				assert.False(t, after.IsLoading)
				assert.Equal(t, []photos.Photo{photo(3, "c"), photo(2, "b")}, after.Items)
				assert.Equal(t, 2, after.Pager.Page)
			},
		},
		{
			name:   "list failed stops loading and keeps the last page",
			state:  photos.Reduce(loaded(photo(1, "a")), photos.ListRequested{}),
			action: photos.ListFailed{Error: photos.Error{Code: 500, Message: "internal server error"}},
			check: func(t *testing.T, before, after photos.State) {
				assert.False(t, after.IsLoading)
				assert.Equal(t, before.Items, after.Items)
				assert.Equal(t, before.Pager, after.Pager)
				assert.Equal(t, photos.StatusError, after.Error.Status)
				assert.Equal(t, 500, after.Error.Code)
			},
		},
		{
			name:   "detail is independent of items",
			state:  loaded(photo(1, "a")),
			action: photos.DetailSucceeded{Photo: photo(9, "z")},
			check: func(t *testing.T, before, after photos.State) {
				assert.Equal(t, int64(9), after.Detail.ID)
				assert.Equal(t, before.Items, after.Items)
			},
		},
		{
			name: "create prepends and clears the error",
			state: photos.Reduce(loaded(photo(1, "a")), photos.CreateFailed{
				Error: photos.Error{Code: 422, Message: "Photo is required"},
			}),
			action: photos.CreateSucceeded{Photo: photo(2, "b")},
			check: func(t *testing.T, _, after photos.State) {
				assert.Equal(t, []photos.Photo{photo(2, "b"), photo(1, "a")}, after.Items)
				assert.Nil(t, after.Error)
			},
		},
		{
			name:   "create failed stores the error",
			state:  loaded(photo(1, "a")),
			action: photos.CreateFailed{Error: photos.Error{Code: 422, Message: "Photo is required"}},
			check: func(t *testing.T, before, after photos.State) {
				assert.Equal(t, &photos.Error{Status: photos.StatusError, Code: 422, Message: "Photo is required"}, after.Error)
				assert.Equal(t, before.Items, after.Items)
			},
		},
		{
			name:   "edit replaces in place",
			state:  loaded(photo(3, "c"), photo(2, "b"), photo(1, "a")),
			action: photos.EditSucceeded{Photo: photo(2, "edited")},
			check: func(t *testing.T, _, after photos.State) {
				assert.Equal(t, []photos.Photo{photo(3, "c"), photo(2, "edited"), photo(1, "a")}, after.Items)
			},
		},
		{
			name:   "edit of unknown id is a no-op",
			state:  loaded(photo(1, "a")),
			action: photos.EditSucceeded{Photo: photo(7, "x")},
			check: func(t *testing.T, before, after photos.State) {
				assert.Equal(t, before, after)
			},
		},
		{
			name:   "delete removes exactly one item",
			state:  loaded(photo(3, "c"), photo(2, "b"), photo(1, "a")),
			action: photos.DeleteSucceeded{ID: 2},
			check: func(t *testing.T, _, after photos.State) {
				assert.Equal(t, []photos.Photo{photo(3, "c"), photo(1, "a")}, after.Items)
			},
		},
		{
			name:   "delete of unknown id is a no-op",
			state:  loaded(photo(1, "a")),
			action: photos.DeleteSucceeded{ID: 7},
			check: func(t *testing.T, before, after photos.State) {
				assert.Equal(t, before, after)
			},
		},
		{
			name:   "unknown action",
			state:  loaded(photo(1, "a")),
			action: nil,
			check: func(t *testing.T, before, after photos.State) {
				assert.Equal(t, before, after)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.state
			snapshot := append([]photos.Photo(nil), before.Items...)

			after := photos.Reduce(tt.state, tt.action)

			tt.check(t, before, after)
			assert.Equal(t, snapshot, before.Items, "input items must not be mutated")
		})
	}
}
