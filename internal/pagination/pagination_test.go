package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromQuery_Defaults(t *testing.T) {
	p := FromQuery(url.Values{})
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestFromQuery_Values(t *testing.T) {
	p := FromQuery(url.Values{"page": {"3"}, "pageSize": {"10"}})
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, int64(20), p.Skip())
}

func TestFromQuery_BadValuesFallBack(t *testing.T) {
	p := FromQuery(url.Values{"page": {"0"}, "pageSize": {"nope"}})
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestFromQuery_CapsPageSize(t *testing.T) {
	p := FromQuery(url.Values{"pageSize": {"5000"}})
	assert.Equal(t, MaxPageSize, p.PageSize)
}

func TestNewPage_HasMore(t *testing.T) {
	p := Params{Page: 1, PageSize: 2}
	page := NewPage([]string{"a", "b"}, 5, p)
	assert.True(t, page.HasMore)
	assert.Equal(t, int64(5), page.TotalCount)

	last := NewPage([]string{"e"}, 5, Params{Page: 3, PageSize: 2})
	assert.False(t, last.HasMore)
}

func TestNewPage_NilItemsBecomeEmptySlice(t *testing.T) {
	page := NewPage[string](nil, 0, Params{Page: 1, PageSize: 20})
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
