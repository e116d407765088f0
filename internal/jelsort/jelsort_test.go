package jelsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type numbered struct {
	n     int
	label string
}

func Test_By(t *testing.T) {
	byNum := func(left, right numbered) bool {
		return left.n < right.n
	}

	testCases := []struct {
		name   string
		input  []numbered
		lt     func(left, right numbered) bool
		expect []numbered
	}{
		{
			name:   "nil input",
			input:  nil,
			lt:     byNum,
			expect: nil,
		},
		{
			name:   "empty input",
			input:  []numbered{},
			lt:     byNum,
			expect: []numbered{},
		},
		{
			name:   "out of order",
			input:  []numbered{{16, "max"}, {2, "alpha"}, {7, "delta"}, {1, "entry"}},
			lt:     byNum,
			expect: []numbered{{1, "entry"}, {2, "alpha"}, {7, "delta"}, {16, "max"}},
		},
		{
			name:   "equal keys keep input order",
			input:  []numbered{{3, "first"}, {1, "low"}, {3, "second"}},
			lt:     byNum,
			expect: []numbered{{1, "low"}, {3, "first"}, {3, "second"}},
		},
		{
			name:   "nil func gives a plain copy",
			input:  []numbered{{2, "b"}, {1, "a"}},
			lt:     nil,
			expect: []numbered{{2, "b"}, {1, "a"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			var original []numbered
			if tc.input != nil {
				original = make([]numbered, len(tc.input))
				copy(original, tc.input)
			}

			actual := By(tc.input, tc.lt)

			assert.Equal(tc.expect, actual)
			assert.Equal(original, tc.input, "input was modified")
		})
	}
}
