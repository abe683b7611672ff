package photos_test

import (
	"context"
	"errors"
	"journal/internal/client/photos"
	"journal/internal/client/photos/mocks"
	"journal/internal/domains/photo/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStoreLoadPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().List(gomock.Any(), 1).Return(dto.ListPhotosResponse{
		Items: []photos.Photo{photo(1, "a")},
		Pager: photos.Pager{Page: 1, PageCount: 1, TotalCount: 1, Limit: 20},
	}, nil)

	store := photos.NewStore(client)
	require.NoError(t, store.LoadPage(context.Background(), 1))

	state := store.State()
	assert.False(t, state.IsLoading)
	assert.Equal(t, []photos.Photo{photo(1, "a")}, state.Items)
	assert.Equal(t, 1, state.Pager.TotalCount)
}

func TestStoreDiscardsStaleResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	started := make(chan struct{})
	cancelled := make(chan struct{})

	client.EXPECT().List(gomock.Any(), 1).DoAndReturn(func(ctx context.Context, _ int) (dto.ListPhotosResponse, error) {
		close(started)
		<-ctx.Done()
		close(cancelled)

		// a late answer that still made it through must not win
		return dto.ListPhotosResponse{Items: []photos.Photo{photo(1, "stale")}}, nil
	})
	client.EXPECT().List(gomock.Any(), 2).Return(dto.ListPhotosResponse{
		Items: []photos.Photo{photo(2, "fresh")},
		Pager: photos.Pager{Page: 2, PageCount: 2, TotalCount: 3, Offset: 2, Limit: 2},
	}, nil)

	store := photos.NewStore(client)

	first := make(chan error, 1)
	go func() { first <- store.LoadPage(context.Background(), 1) }()

	<-started
	require.NoError(t, store.LoadPage(context.Background(), 2))
	<-cancelled

	assert.ErrorIs(t, <-first, photos.ErrStale)
	assert.Equal(t, []photos.Photo{photo(2, "fresh")}, store.State().Items)
	assert.Equal(t, 2, store.State().Pager.Page)
}

func TestStoreLoadPageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().List(gomock.Any(), 1).Return(dto.ListPhotosResponse{}, errors.New("connection refused"))

	store := photos.NewStore(client)

	assert.Error(t, store.LoadPage(context.Background(), 1))

	state := store.State()
	assert.Nil(t, state.Pager)
	assert.False(t, state.IsLoading)
	require.NotNil(t, state.Error)
	assert.Equal(t, photos.StatusError, state.Error.Status)
	assert.Equal(t, "connection refused", state.Error.Message)
}

func TestStoreStaleFailureKeepsLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})

	client.EXPECT().List(gomock.Any(), 1).DoAndReturn(func(ctx context.Context, _ int) (dto.ListPhotosResponse, error) {
		close(started)
		<-ctx.Done()

		return dto.ListPhotosResponse{}, ctx.Err()
	})
	client.EXPECT().List(gomock.Any(), 2).DoAndReturn(func(_ context.Context, _ int) (dto.ListPhotosResponse, error) {
		<-release

		return dto.ListPhotosResponse{}, errors.New("bad gateway")
	})

	store := photos.NewStore(client)

	first := make(chan error, 1)
	go func() { first <- store.LoadPage(context.Background(), 1) }()

	<-started

	second := make(chan error, 1)
	go func() { second <- store.LoadPage(context.Background(), 2) }()

	// the cancelled request resolves first and must not end the newer load
	assert.ErrorIs(t, <-first, photos.ErrStale)
	assert.True(t, store.State().IsLoading)
	assert.Nil(t, store.State().Error)

	close(release)

	assert.EqualError(t, <-second, "bad gateway")
	assert.False(t, store.State().IsLoading)
	assert.Equal(t, "bad gateway", store.State().Error.Message)
}

func TestStoreMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().List(gomock.Any(), 1).Return(dto.ListPhotosResponse{Items: []photos.Photo{photo(1, "a")}}, nil),
		client.EXPECT().Create(gomock.Any(), gomock.Any()).Return(photos.Photo{}, &photos.Error{Code: 422, Message: "Photo is required"}),
		client.EXPECT().Create(gomock.Any(), gomock.Any()).Return(photo(2, "b"), nil),
		client.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(photo(1, "edited"), nil),
		client.EXPECT().Get(gomock.Any(), int64(2)).Return(photo(2, "b"), nil),
		client.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil),
	)

	store := photos.NewStore(client)
	require.NoError(t, store.LoadPage(ctx, 1))

	require.Error(t, store.Create(ctx, photos.Upload{}))
	assert.Equal(t, photos.StatusError, store.State().Error.Status)
	assert.Equal(t, 422, store.State().Error.Code)

	require.NoError(t, store.Create(ctx, photos.Upload{}))
	assert.Nil(t, store.State().Error)

	require.NoError(t, store.Edit(ctx, 1, photos.Upload{}))
	require.NoError(t, store.LoadDetail(ctx, 2))
	assert.Equal(t, int64(2), store.State().Detail.ID)

	require.NoError(t, store.Delete(ctx, 2))
	assert.Equal(t, []photos.Photo{photo(1, "edited")}, store.State().Items)
}
