package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCommentPage(t *testing.T) {
	docs := []CommentContent{{Content: "a"}, {Content: "b"}}

	tests := []struct {
		name      string
		total     int64
		page      int64
		limit     int64
		wantPages int64
		wantPrev  bool
		wantNext  bool
	}{
		{name: "first of three", total: 5, page: 1, limit: 2, wantPages: 3, wantPrev: false, wantNext: true},
		{name: "last page", total: 5, page: 3, limit: 2, wantPages: 3, wantPrev: true, wantNext: false},
		{name: "exact fit", total: 4, page: 2, limit: 2, wantPages: 2, wantPrev: true, wantNext: false},
		{name: "empty", total: 0, page: 1, limit: 10, wantPages: 0, wantPrev: false, wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewCommentPage(docs, tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantPrev, p.HasPrevPage)
			assert.Equal(t, tt.wantNext, p.HasNextPage)
		})
	}
}

func TestNewCommentPageNilDocs(t *testing.T) {
	p := NewCommentPage(nil, 0, 1, 10)
	assert.NotNil(t, p.Docs)
	assert.Empty(t, p.Docs)
}
