package naturalsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "abc", "abc", 0},
		{"case insensitive", "ABC", "abc", 0},
		{"plain lexical", "apple", "banana", -1},
		{"numeric run beats lexical", "item2", "item10", -1},
		{"numeric equality continues", "item10b", "item10a", 1},
		{"leading zeros equal value", "item002", "item2", 0},
		{"prefix orders first", "unit", "unit1", -1},
		{"large numbers", "v100000000000000000002", "v100000000000000000010", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestStrings(t *testing.T) {
	s := []string{"Room 10", "Room 2", "Room 1", "Annex B", "Annex A"}
	Strings(s)
	assert.Equal(t, []string{"Annex A", "Annex B", "Room 1", "Room 2", "Room 10"}, s)
}
