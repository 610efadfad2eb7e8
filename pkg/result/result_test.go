package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestParameters(t *testing.T) {
	tests := []struct {
		name       string
		params     RequestParameters
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"defaults", RequestParameters{}, 1, DefaultPageSize, 0},
		{"explicit", RequestParameters{PageNumber: 3, PageSize: 10}, 3, 10, 20},
		{"negative page", RequestParameters{PageNumber: -1, PageSize: 10}, 1, 10, 0},
		{"oversized page size capped", RequestParameters{PageNumber: 2, PageSize: 9999}, 2, MaxPageSize, MaxPageSize},
		{"zero size falls back to default", RequestParameters{PageNumber: 2}, 2, DefaultPageSize, DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPage, tt.params.Page())
			assert.Equal(t, tt.wantSize, tt.params.Size())
			assert.Equal(t, tt.wantOffset, tt.params.Offset())
		})
	}
}

func TestPaginate(t *testing.T) {
	p := Paginate([]string{"a", "b", "c"}, 11, 2, 3)

	assert.True(t, p.Succeeded)
	assert.Equal(t, 3, len(p.Data))
	assert.Equal(t, 4, p.TotalPages)
	assert.Equal(t, 11, p.TotalCount)
	assert.True(t, p.HasPreviousPage())
	assert.True(t, p.HasNextPage())

	last := Paginate([]string{"k"}, 11, 4, 3)
	assert.False(t, last.HasNextPage())
	assert.True(t, last.HasPreviousPage())
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate[string](nil, 0, 1, 25)
	assert.NotNil(t, p.Data)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasPreviousPage())
	assert.False(t, p.HasNextPage())
}

func TestResult(t *testing.T) {
	ok := Ok(42, "created")
	assert.True(t, ok.Succeeded)
	assert.Equal(t, 42, ok.Data)
	assert.Equal(t, []string{"created"}, ok.Messages)

	fail := Fail[int]("boom")
	assert.False(t, fail.Succeeded)
	assert.Equal(t, []string{"boom"}, fail.Messages)
}
