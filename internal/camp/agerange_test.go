package camp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAgeRange(t *testing.T) {
	cases := []struct {
		input string
		want  AgeInterval
		ok    bool
	}{
		{"10-14", AgeInterval{10, 14}, true},
		{"4-6 years", AgeInterval{4, 6}, true},
		{"18+", AgeInterval{18, 100}, true},
		{"18+ years", AgeInterval{18, 100}, true},
		{"12", AgeInterval{12, 12}, true},
		{"12 years", AgeInterval{12, 12}, true},
		{"7 - 9 years", AgeInterval{7, 9}, true},
		{"all ages", AgeInterval{}, false},
		{"", AgeInterval{}, false},
		{"x-y", AgeInterval{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ExtractAgeRange(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestAgeIntervalsOverlap(t *testing.T) {
	assert.True(t, AgeIntervalsOverlap(AgeInterval{10, 14}, AgeInterval{14, 17}))
	assert.True(t, AgeIntervalsOverlap(AgeInterval{14, 17}, AgeInterval{10, 14}))
	assert.False(t, AgeIntervalsOverlap(AgeInterval{10, 14}, AgeInterval{15, 17}))
	assert.False(t, AgeIntervalsOverlap(AgeInterval{18, 100}, AgeInterval{14, 17}))
	assert.True(t, AgeIntervalsOverlap(AgeInterval{12, 100}, AgeInterval{14, 17}))
	assert.True(t, AgeIntervalsOverlap(AgeInterval{5, 5}, AgeInterval{4, 6}))
}
