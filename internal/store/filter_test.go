package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterEncode(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   string
	}{
		{
			name:   "empty",
			filter: Where(),
			want:   "",
		},
		{
			name:   "single eq",
			filter: Where().Eq("status", "active"),
			want:   "status=eq.active",
		},
		{
			name:   "eq with non-string value",
			filter: Where().Eq("backers_count", 0),
			want:   "backers_count=eq.0",
		},
		{
			name:   "ilike wraps pattern",
			filter: Where().ILike("title", "solar"),
			want:   "title=ilike.%2Asolar%2A",
		},
		{
			name:   "combined with limit",
			filter: Where().Eq("status", "active").Eq("category", "tech").Limit(100),
			want:   "category=eq.tech&limit=100&status=eq.active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Encode())
		})
	}
}

func TestFilterLimitOverwrites(t *testing.T) {
	f := Where().Limit(10).Limit(1)
	assert.Equal(t, "limit=1", f.Encode())
}
