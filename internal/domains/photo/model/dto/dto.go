package dto

import (
	"database/sql"
	"journal/internal/domains/photo/model"
	"journal/internal/domains/photo/repository"
	gDto "journal/shared/dto"
	"journal/shared/timezone"
	"mime/multipart"
	"time"
)

const (
	EventPhotoCreated = "photo.created"
	EventPhotoUpdated = "photo.updated"
	EventPhotoDeleted = "photo.deleted"
)

// PhotoFields are the optional multipart fields shared by create and update.
// A nil pointer means the field was not submitted.
type PhotoFields struct {
	Title       *string `form:"title"       json:"title,omitempty"       validate:"omitempty,max=255"`
	Description *string `form:"description" json:"description,omitempty"`
	Position    *string `form:"position"    json:"position,omitempty"    validate:"omitempty,oneof=left center right"`
	Portrait    *bool   `form:"portrait"    json:"portrait,omitempty"`
	Square      *bool   `form:"square"      json:"square,omitempty"`
}

type CreatePhotoRequest struct {
	PhotoFields
	File *multipart.FileHeader `form:"file" json:"-" swaggerignore:"true" validate:"-"`
}

func nullString(value *string) sql.NullString {
	if value == nil || *value == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: *value, Valid: true}
}

func (c *CreatePhotoRequest) ToModel(name string) model.Photo {
	photo := model.Photo{
		Title:       nullString(c.Title),
		Description: nullString(c.Description),
		Name:        name,
		Position:    model.PositionLeft,
	}

	if c.Position != nil {
		photo.Position = model.Position(*c.Position)
	}

	if c.Portrait != nil {
		photo.Portrait = *c.Portrait
	}

	if c.Square != nil {
		photo.Square = *c.Square
	}

	return photo
}

type UpdatePhotoRequest struct {
	PhotoFields
	File *multipart.FileHeader `form:"file" json:"-" swaggerignore:"true" validate:"-"`
}

// ToChanges maps submitted fields onto the update allow-list. name is set only when a new file was stored.
func (u *UpdatePhotoRequest) ToChanges(name *string) repository.PhotoChanges {
	changes := repository.PhotoChanges{
		Title:       u.Title,
		Description: u.Description,
		Name:        name,
		Portrait:    u.Portrait,
		Square:      u.Square,
	}

	if u.Position != nil {
		position := model.Position(*u.Position)
		changes.Position = &position
	}

	return changes
}

type PhotoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Portrait    bool   `json:"portrait"`
	Square      bool   `json:"square"`
	gDto.Metadata
}

func (r *PhotoResponse) FromModel(photo model.Photo) {
	r.ID = photo.ID
	r.Title = photo.Title.String
	r.Description = photo.Description.String
	r.Name = photo.Name
	r.Position = string(photo.Position)
	r.Portrait = photo.Portrait
	r.Square = photo.Square
	r.Metadata.FromModel(photo.Metadata)
}

type ListPhotosResponse struct {
	Items []PhotoResponse `json:"items"`
	Pager gDto.Pager      `json:"pager"`
}

func (r *ListPhotosResponse) FromModels(photos []model.Photo, pager gDto.Pager) {
	r.Pager = pager
	r.Items = make([]PhotoResponse, len(photos))

	for i, photo := range photos {
		r.Items[i].FromModel(photo)
	}
}

// PhotoEvent is published on the photos topic after every mutation.
type PhotoEvent struct {
	Type    string    `json:"type"`
	PhotoID int64     `json:"photo_id"`
	Name    string    `json:"name"`
	At      time.Time `json:"at"`
}

func NewPhotoEvent(eventType string, photo model.Photo) PhotoEvent {
	return PhotoEvent{
		Type:    eventType,
		PhotoID: photo.ID,
		Name:    photo.Name,
		At:      timezone.Now(),
	}
}
