package repository_test

import (
	"database/sql"
	"journal/internal/domains/photo/model"
	"journal/internal/domains/photo/repository"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestListPhotos(t *testing.T) {
	stmt := repository.ListPhotos(40, 20)

	assert.Equal(t, "SELECT * FROM photos ORDER BY created_at DESC, id DESC OFFSET 40 LIMIT 20", stmt.Query)
	assert.Empty(t, stmt.Args)
}

func TestCountPhotos(t *testing.T) {
	assert.Equal(t, "SELECT COUNT(*) FROM photos", repository.CountPhotos().Query)
}

func TestFindAndDeletePhoto(t *testing.T) {
	find := repository.FindPhoto(7)
	assert.Equal(t, "SELECT * FROM photos WHERE id = $1", find.Query)
	assert.Equal(t, []any{int64(7)}, find.Args)

	del := repository.DeletePhoto(7)
	assert.Equal(t, "DELETE FROM photos WHERE id = $1", del.Query)
	assert.Equal(t, []any{int64(7)}, del.Args)
}

func TestInsertPhoto(t *testing.T) {
	stmt := repository.InsertPhoto(model.Photo{
		Title:    sql.NullString{String: "Sunset", Valid: true},
		Name:     "01hz.jpg",
		Position: model.PositionCenter,
		Portrait: true,
	})

	assert.Equal(t, "INSERT INTO photos (title, description, name, position, portrait, square) VALUES ($1, $2, $3, $4, $5, $6) RETURNING *", stmt.Query)
	assert.Equal(t, []any{
		sql.NullString{String: "Sunset", Valid: true},
		sql.NullString{},
		"01hz.jpg",
		"center",
		true,
		false,
	}, stmt.Args)
}

func TestUpdatePhoto(t *testing.T) {
	tests := []struct {
		name          string
		changes       repository.PhotoChanges
		expectedQuery string
		expectedArgs  []any
	}{
		{
			name:          "no changes only touches updated_at",
			changes:       repository.PhotoChanges{},
			expectedQuery: "UPDATE photos SET updated_at = now() WHERE id = $1 RETURNING *",
			expectedArgs:  []any{int64(3)},
		},
		{
			name: "subset keeps allow-list order",
			changes: repository.PhotoChanges{
				Square: ptr(true),
				Title:  ptr("Dunes"),
			},
			expectedQuery: "UPDATE photos SET title = $1, square = $2, updated_at = now() WHERE id = $3 RETURNING *",
			expectedArgs:  []any{"Dunes", true, int64(3)},
		},
		{
			name: "every column",
			changes: repository.PhotoChanges{
				Title:       ptr("a"),
				Description: ptr("b"),
				Name:        ptr("c.jpg"),
				Position:    ptr(model.PositionRight),
				Portrait:    ptr(false),
				Square:      ptr(false),
			},
			expectedQuery: "UPDATE photos SET title = $1, description = $2, name = $3, position = $4, portrait = $5, square = $6, updated_at = now() WHERE id = $7 RETURNING *",
			expectedArgs:  []any{"a", "b", "c.jpg", "right", false, false, int64(3)},
		},
		{
			name:          "hostile value stays in args",
			changes:       repository.PhotoChanges{Title: ptr("x'; DROP TABLE photos; --")},
			expectedQuery: "UPDATE photos SET title = $1, updated_at = now() WHERE id = $2 RETURNING *",
			expectedArgs:  []any{"x'; DROP TABLE photos; --", int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := repository.UpdatePhoto(3, tt.changes)

			assert.Equal(t, tt.expectedQuery, stmt.Query)
			assert.Equal(t, tt.expectedArgs, stmt.Args)
		})
	}
}

func TestPlaceholdersMatchArgs(t *testing.T) {
	placeholder := regexp.MustCompile(`\$\d+`)

	statements := []repository.Statement{
		repository.FindPhoto(1),
		repository.InsertPhoto(model.Photo{}),
		repository.UpdatePhoto(1, repository.PhotoChanges{Name: ptr("n"), Portrait: ptr(true)}),
		repository.DeletePhoto(1),
	}

	for _, stmt := range statements {
		assert.Len(t, placeholder.FindAllString(stmt.Query, -1), len(stmt.Args), stmt.Query)
	}
}

func TestPhotoChangesIsEmpty(t *testing.T) {
	assert.True(t, repository.PhotoChanges{}.IsEmpty())
	assert.False(t, repository.PhotoChanges{Square: ptr(false)}.IsEmpty())
}

func TestPositionValid(t *testing.T) {
	assert.True(t, model.PositionLeft.Valid())
	assert.False(t, model.Position("top").Valid())
}
