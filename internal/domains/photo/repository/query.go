package repository

import (
	"fmt"
	"journal/internal/domains/photo/model"
	gRepo "journal/shared/repository"
	"strings"
)

type Statement = gRepo.Statement

// PhotoChanges is the allow-list of columns an update may touch. Nil fields are left untouched.
type PhotoChanges struct {
	Title       *string
	Description *string
	Name        *string
	Position    *model.Position
	Portrait    *bool
	Square      *bool
}

func (c PhotoChanges) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.Name == nil &&
		c.Position == nil && c.Portrait == nil && c.Square == nil
}

// ListPhotos splices offset and limit as literals. Both only ever come from the pager.
// Rows sharing a created_at are ordered by id so pages never overlap.
func ListPhotos(offset, limit int) Statement {
	return Statement{
		Query: fmt.Sprintf(
			"SELECT * FROM %s ORDER BY %s DESC, %s DESC OFFSET %d LIMIT %d",
			model.TableName,
			model.FieldCreatedAt,
			model.FieldID,
			offset,
			limit,
		),
	}
}

func CountPhotos() Statement {
	return Statement{Query: fmt.Sprintf("SELECT COUNT(*) FROM %s", model.TableName)}
}

func FindPhoto(id int64) Statement {
	return Statement{
		Query: fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", model.TableName, model.FieldID),
		Args:  []any{id},
	}
}

func InsertPhoto(photo model.Photo) Statement {
	columns := []string{
		model.FieldTitle,
		model.FieldDescription,
		model.FieldName,
		model.FieldPosition,
		model.FieldPortrait,
		model.FieldSquare,
	}

	return Statement{
		Query: fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6) RETURNING *",
			model.TableName,
			strings.Join(columns, ", "),
		),
		Args: []any{
			photo.Title,
			photo.Description,
			photo.Name,
			string(photo.Position),
			photo.Portrait,
			photo.Square,
		},
	}
}

// UpdatePhoto always refreshes updated_at, so an empty change set still touches the row.
func UpdatePhoto(id int64, changes PhotoChanges) Statement {
	sets := []string{}
	args := []any{}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if changes.Title != nil {
		add(model.FieldTitle, *changes.Title)
	}

	if changes.Description != nil {
		add(model.FieldDescription, *changes.Description)
	}

	if changes.Name != nil {
		add(model.FieldName, *changes.Name)
	}

	if changes.Position != nil {
		add(model.FieldPosition, string(*changes.Position))
	}

	if changes.Portrait != nil {
		add(model.FieldPortrait, *changes.Portrait)
	}

	if changes.Square != nil {
		add(model.FieldSquare, *changes.Square)
	}

	sets = append(sets, model.FieldUpdatedAt+" = now()")
	args = append(args, id)

	return Statement{
		Query: fmt.Sprintf(
			"UPDATE %s SET %s WHERE %s = $%d RETURNING *",
			model.TableName,
			strings.Join(sets, ", "),
			model.FieldID,
			len(args),
		),
		Args: args,
	}
}

func DeletePhoto(id int64) Statement {
	return Statement{
		Query: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", model.TableName, model.FieldID),
		Args:  []any{id},
	}
}
