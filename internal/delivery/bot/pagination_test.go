package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{name: "empty listing still has one page", total: 0, pageSize: 5, want: 1},
		{name: "exact fit", total: 10, pageSize: 5, want: 2},
		{name: "remainder adds a page", total: 11, pageSize: 5, want: 3},
		{name: "single short page", total: 2, pageSize: 3, want: 1},
		{name: "seven items by three", total: 7, pageSize: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pageCount(tt.total, tt.pageSize))
		})
	}
}

func TestPageSlice(t *testing.T) {
	// Seven items paged by three: [0,3) [3,6) [6,7).
	tests := []struct {
		name   string
		page   int
		wantLo int
		wantHi int
	}{
		{name: "first page", page: 1, wantLo: 0, wantHi: 3},
		{name: "middle page", page: 2, wantLo: 3, wantHi: 6},
		{name: "last short page", page: 3, wantLo: 6, wantHi: 7},
		{name: "beyond the end clamps to last", page: 9, wantLo: 6, wantHi: 7},
		{name: "below one clamps to first", page: 0, wantLo: 0, wantHi: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := pageSlice(7, 3, tt.page)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
		})
	}
}

func TestPageSlice_ConcatenationCoversEverything(t *testing.T) {
	items := []string{"A", "B", "C", "D", "E", "F", "G"}

	var got []string
	for page := 1; page <= pageCount(len(items), 3); page++ {
		lo, hi := pageSlice(len(items), 3, page)
		got = append(got, items[lo:hi]...)
	}

	assert.Equal(t, items, got)

	// Page two of seven items by three.
	lo, hi := pageSlice(len(items), 3, 2)
	assert.Equal(t, []string{"D", "E", "F"}, items[lo:hi])
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, clampPage(0, 5, 3))
	assert.Equal(t, 2, clampPage(10, 5, 2))
	assert.Equal(t, 2, clampPage(10, 5, 7))
	assert.Equal(t, 1, clampPage(10, 5, 0))
}
