//go:build unit

package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Apply(t *testing.T) {
	t.Parallel()

	base := NewState(10).Apply(Filters{Text: "spa", City: "Lima", Country: "Peru"}).GoTo(3)

	tests := []struct {
		name     string
		filters  Filters
		wantPage int
	}{
		{name: "text change resets page", filters: Filters{Text: "gym", City: "Lima", Country: "Peru"}, wantPage: 0},
		{name: "city change resets page", filters: Filters{Text: "spa", City: "Cusco", Country: "Peru"}, wantPage: 0},
		{name: "country change resets page", filters: Filters{Text: "spa", City: "Lima", Country: "Chile"}, wantPage: 0},
		{name: "same filters keep page", filters: Filters{Text: "spa", City: "Lima", Country: "Peru"}, wantPage: 3},
		{name: "surrounding whitespace is not a change", filters: Filters{Text: " spa ", City: "Lima", Country: "Peru"}, wantPage: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := base.Apply(tt.filters)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, 10, got.PageSize)
		})
	}
}

func TestState_GoTo(t *testing.T) {
	t.Parallel()

	s := NewState(0).Apply(Filters{Text: "barber"})
	assert.Equal(t, DefaultPageSize, s.PageSize)

	moved := s.GoTo(2)
	assert.Equal(t, 2, moved.Page)
	assert.Equal(t, s.Filters, moved.Filters)
	assert.Equal(t, 20, moved.Offset())

	assert.Equal(t, 0, s.GoTo(-4).Page)
	assert.Equal(t, 0, s.Page, "receiver must not change")

	far := s.GoTo(math.MaxInt)
	assert.Equal(t, MaxPage, far.Page)
	assert.Equal(t, MaxPage*DefaultPageSize, far.Offset())

	stored := State{Page: math.MaxInt / 2, PageSize: math.MaxInt / 2}
	assert.Equal(t, MaxPage*MaxPageSize, stored.Offset(), "restored state cannot overflow the offset")
}

func TestPageCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 0, PageCount(5, 0))
}
