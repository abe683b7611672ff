package dto_test

import (
	"database/sql"
	"journal/internal/domains/photo/model"
	"journal/internal/domains/photo/model/dto"
	gDto "journal/shared/dto"
	gModel "journal/shared/model"
	"journal/shared/timezone"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreatePhotoRequest_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreatePhotoRequest
		expected model.Photo
	}{
		{
			name: "defaults",
			req:  dto.CreatePhotoRequest{},
			expected: model.Photo{
				Name:     "01hz.jpg",
				Position: model.PositionLeft,
			},
		},
		{
			name: "all fields",
			req: dto.CreatePhotoRequest{PhotoFields: dto.PhotoFields{
				Title:       ptr("Sunset"),
				Description: ptr("Over the bay"),
				Position:    ptr("right"),
				Portrait:    ptr(true),
				Square:      ptr(true),
			}},
			expected: model.Photo{
				Title:       sql.NullString{String: "Sunset", Valid: true},
				Description: sql.NullString{String: "Over the bay", Valid: true},
				Name:        "01hz.jpg",
				Position:    model.PositionRight,
				Portrait:    true,
				Square:      true,
			},
		},
		{
			name: "empty title stored as null",
			req:  dto.CreatePhotoRequest{PhotoFields: dto.PhotoFields{Title: ptr("")}},
			expected: model.Photo{
				Name:     "01hz.jpg",
				Position: model.PositionLeft,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.ToModel("01hz.jpg"))
		})
	}
}

func TestUpdatePhotoRequest_ToChanges(t *testing.T) {
	req := dto.UpdatePhotoRequest{PhotoFields: dto.PhotoFields{
		Title:    ptr(""),
		Position: ptr("center"),
	}}

	changes := req.ToChanges(nil)
	assert.Equal(t, ptr(""), changes.Title)
	assert.Equal(t, ptr(model.PositionCenter), changes.Position)
	assert.Nil(t, changes.Name)
	assert.Nil(t, changes.Description)
	assert.Nil(t, changes.Portrait)

	changes = req.ToChanges(ptr("new.png"))
	assert.Equal(t, ptr("new.png"), changes.Name)
}

func TestPhotoResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	photo := model.Photo{
		ID:       5,
		Title:    sql.NullString{String: "Dunes", Valid: true},
		Name:     "01hz.jpg",
		Position: model.PositionCenter,
		Square:   true,
		Metadata: gModel.Metadata{CreatedAt: now, UpdatedAt: now},
	}

	var res dto.PhotoResponse
	res.FromModel(photo)

	assert.Equal(t, int64(5), res.ID)
	assert.Equal(t, "Dunes", res.Title)
	assert.Equal(t, "", res.Description)
	assert.Equal(t, "center", res.Position)
	assert.True(t, res.Square)
	assert.NotEmpty(t, res.CreatedAt)
}

func TestListPhotosResponse_FromModels(t *testing.T) {
	pager := gDto.NewPager(3, 41, 20)

	var res dto.ListPhotosResponse
	res.FromModels([]model.Photo{}, pager)

	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.Equal(t, pager, res.Pager)

	res.FromModels([]model.Photo{{ID: 2}, {ID: 1}}, pager)
	assert.Equal(t, int64(2), res.Items[0].ID)
	assert.Equal(t, int64(1), res.Items[1].ID)
}

func TestNewPhotoEvent(t *testing.T) {
	event := dto.NewPhotoEvent(dto.EventPhotoCreated, model.Photo{ID: 9, Name: "a.jpg"})

	assert.Equal(t, "photo.created", event.Type)
	assert.Equal(t, int64(9), event.PhotoID)
	assert.Equal(t, "a.jpg", event.Name)
	assert.False(t, event.At.IsZero())
}
