/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity_test

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/kindstore/datastore/testmodels"
	"github.com/suparena/kindstore/entity"
)

func TestFromStoreFormat(t *testing.T) {
	t.Run("SynthesizesNumericID", func(t *testing.T) {
		rec := &entity.Record{
			Key: entity.IDKey("Book", 42),
			Properties: []entity.Property{
				{Name: "title", Value: "Dune"},
				{Name: "description", Value: "desert", ExcludeFromIndexes: true},
			},
		}
		got := entity.FromStoreFormat(rec)
		assert.Equal(t, entity.Entity{"title": "Dune", "description": "desert", "id": int64(42)}, got)
	})

	t.Run("SynthesizesNameID", func(t *testing.T) {
		rec := &entity.Record{Key: entity.NameKey("Book", "dune")}
		got := entity.FromStoreFormat(rec)
		assert.Equal(t, "dune", got["id"])
	})

	t.Run("KeyOverridesDataID", func(t *testing.T) {
		rec := &entity.Record{
			Key:        entity.IDKey("Book", 7),
			Properties: []entity.Property{{Name: "id", Value: int64(99)}},
			Data:       entity.Entity{"id": "stale"},
		}
		got := entity.FromStoreFormat(rec)
		assert.Equal(t, int64(7), got["id"])
	})

	t.Run("DataOverlaysProperties", func(t *testing.T) {
		rec := &entity.Record{
			Properties: []entity.Property{{Name: "title", Value: "old"}, {Name: "author", Value: "Herbert"}},
			Data:       entity.Entity{"title": "new"},
		}
		got := entity.FromStoreFormat(rec)
		assert.Equal(t, entity.Entity{"title": "new", "author": "Herbert"}, got)
	})

	t.Run("MissingKeyHasNoID", func(t *testing.T) {
		got := entity.FromStoreFormat(&entity.Record{Properties: []entity.Property{{Name: "a", Value: 1}}})
		_, ok := got.ID()
		assert.False(t, ok)
	})

	t.Run("IncompleteKeyHasNoID", func(t *testing.T) {
		got := entity.FromStoreFormat(&entity.Record{Key: entity.IncompleteKey("Book")})
		_, ok := got.ID()
		assert.False(t, ok)
	})

	t.Run("NilRecord", func(t *testing.T) {
		got := entity.FromStoreFormat(nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestToStoreFormat(t *testing.T) {
	data := entity.Entity{
		"title":       "Dune",
		"description": "desert planet",
		"rating":      4.5,
		"missing":     nil,
		"id":          int64(3),
	}

	props := entity.ToStoreFormat(data, "description")

	require.Len(t, props, 3)
	assert.Equal(t, []entity.Property{
		{Name: "description", Value: "desert planet", ExcludeFromIndexes: true},
		{Name: "rating", Value: 4.5},
		{Name: "title", Value: "Dune"},
	}, props)
}

func TestToStoreFormatMarksExactlyNonIndexed(t *testing.T) {
	data := entity.Entity{"a": 1, "b": 2, "c": 3}

	props := entity.ToStoreFormat(data, "b", "c", "not-present")
	excluded := map[string]bool{}
	for _, p := range props {
		excluded[p.Name] = p.ExcludeFromIndexes
	}
	assert.Equal(t, map[string]bool{"a": false, "b": true, "c": true}, excluded)

	// Default list is empty
	for _, p := range entity.ToStoreFormat(data) {
		assert.False(t, p.ExcludeFromIndexes, p.Name)
	}
}

func TestToStoreFormatIsDeterministic(t *testing.T) {
	data := entity.Entity{"z": 1, "m": 2, "a": 3, "q": 4}
	first := entity.ToStoreFormat(data)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, entity.ToStoreFormat(data))
	}
	assert.Equal(t, "a", first[0].Name)
	assert.Equal(t, "z", first[len(first)-1].Name)
}

func TestRoundTrip(t *testing.T) {
	rec := &entity.Record{
		Key: entity.IDKey("Book", 11),
		Properties: []entity.Property{
			{Name: "author", Value: "Le Guin"},
			{Name: "description", Value: "anarchists", ExcludeFromIndexes: true},
			{Name: "title", Value: "The Dispossessed"},
		},
	}

	props := entity.ToStoreFormat(entity.FromStoreFormat(rec))

	// Same names and values; the unindexed flag is write-only metadata.
	require.Len(t, props, len(rec.Properties))
	for i, p := range props {
		assert.Equal(t, rec.Properties[i].Name, p.Name)
		assert.Equal(t, rec.Properties[i].Value, p.Value)
	}
}

func TestKey(t *testing.T) {
	assert.True(t, entity.IncompleteKey("Book").Incomplete())
	assert.False(t, entity.IDKey("Book", 1).Incomplete())
	assert.False(t, entity.NameKey("Book", "x").Incomplete())

	assert.Equal(t, "Book/12", entity.IDKey("Book", 12).String())
	assert.Equal(t, `Book/"dune"`, entity.NameKey("Book", "dune").String())
	assert.Equal(t, int64(12), entity.IDKey("Book", 12).IDValue())
}

func TestStructConversion(t *testing.T) {
	published := strfmt.DateTime(time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC))
	book := testmodels.Book{
		Title:         aws.String("Dune"),
		Author:        "Frank Herbert",
		PublishedDate: &published,
		Rating:        4.5,
	}

	e, err := entity.FromStruct(book)
	require.NoError(t, err)
	assert.Equal(t, "Dune", e["title"])
	assert.Equal(t, "Frank Herbert", e["author"])
	assert.Equal(t, 4.5, e["rating"])
	assert.Contains(t, e["publishedDate"], "1965-08-01")
	_, hasID := e.ID()
	assert.False(t, hasID, "zero id is omitted")

	e["id"] = int64(5)
	var decoded testmodels.Book
	require.NoError(t, e.Decode(&decoded))
	assert.Equal(t, int64(5), decoded.ID)
	assert.Equal(t, "Dune", *decoded.Title)
	require.NotNil(t, decoded.PublishedDate)
	assert.True(t, time.Time(*decoded.PublishedDate).Equal(time.Time(published)))
}
