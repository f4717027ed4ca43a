package storagemodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilder(t *testing.T) {
	q := NewQuery("Book").WithLimit(5).WithStart("abc")
	assert.Equal(t, &QueryParams{Kind: "Book", Limit: 5, StartCursor: "abc"}, q)
}

func TestNextCursor(t *testing.T) {
	assert.Equal(t, "c1", QueryInfo{EndCursor: "c1", MoreResults: true}.NextCursor())
	assert.Equal(t, "", QueryInfo{EndCursor: "c1", MoreResults: false}.NextCursor())
}

func TestStreamOptions(t *testing.T) {
	opts := DefaultStreamOptions()
	assert.Equal(t, 100, opts.BufferSize)
	assert.Equal(t, 100, opts.PageSize)

	called := false
	for _, o := range []StreamOption{WithBufferSize(3), WithPageSize(7), WithProgressHandler(func(StreamProgress) { called = true })} {
		o(&opts)
	}
	assert.Equal(t, 3, opts.BufferSize)
	assert.Equal(t, 7, opts.PageSize)
	opts.ProgressHandler(StreamProgress{})
	assert.True(t, called)
}
