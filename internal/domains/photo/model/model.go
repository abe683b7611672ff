package model

import (
	"database/sql"
	"journal/shared/model"
	"slices"
)

const (
	TableName  = "photos"
	EntityName = "photo"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldName        = "name"
	FieldPosition    = "position"
	FieldPortrait    = "portrait"
	FieldSquare      = "square"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"

	// PageSize is the listing window when APP_PAGE_SIZE is not set.
	PageSize = 20
)

// Position is the POSITION_TYPE enum.
type Position string

const (
	PositionLeft   Position = "left"
	PositionCenter Position = "center"
	PositionRight  Position = "right"
)

var positions = []Position{PositionLeft, PositionCenter, PositionRight}

func (p Position) Valid() bool {
	return slices.Contains(positions, p)
}

type Photo struct {
	ID          int64          `db:"id"          readonly:"true"`
	Title       sql.NullString `db:"title"`
	Description sql.NullString `db:"description"`
	Name        string         `db:"name"`
	Position    Position       `db:"position"`
	Portrait    bool           `db:"portrait"`
	Square      bool           `db:"square"`
	model.Metadata
}
