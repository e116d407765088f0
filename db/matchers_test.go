package db

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AnyID_Match(t *testing.T) {
	testCases := []struct {
		name   string
		m      AnyID
		input  driver.Value
		expect bool
	}{
		{
			name:   "int64 - positive",
			m:      AnyID{},
			input:  int64(12),
			expect: true,
		},
		{
			name:   "int64 - zero",
			m:      AnyID{},
			input:  int64(0),
			expect: false,
		},
		{
			name:   "int64 - negative",
			m:      AnyID{},
			input:  int64(-1),
			expect: false,
		},
		{
			name:   "int - positive",
			m:      AnyID{},
			input:  3,
			expect: true,
		},
		{
			name:   "nil - unassigned not allowed",
			m:      AnyID{},
			input:  nil,
			expect: false,
		},
		{
			name:   "nil - unassigned allowed",
			m:      AnyID{AllowUnassigned: true},
			input:  nil,
			expect: true,
		},
		{
			name:   "string",
			m:      AnyID{AllowUnassigned: true},
			input:  "12",
			expect: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := tc.m.Match(tc.input)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_NullableText_Match(t *testing.T) {
	testCases := []struct {
		name   string
		m      NullableText
		input  driver.Value
		expect bool
	}{
		{
			name:   "empty matches NULL",
			m:      NullableText(""),
			input:  nil,
			expect: true,
		},
		{
			name:   "empty does not match empty string",
			m:      NullableText(""),
			input:  "",
			expect: false,
		},
		{
			name:   "text matches same string",
			m:      NullableText("B-01"),
			input:  "B-01",
			expect: true,
		},
		{
			name:   "text matches same bytes",
			m:      NullableText("B-01"),
			input:  []byte("B-01"),
			expect: true,
		},
		{
			name:   "text does not match NULL",
			m:      NullableText("B-01"),
			input:  nil,
			expect: false,
		},
		{
			name:   "text does not match other string",
			m:      NullableText("B-01"),
			input:  "B-02",
			expect: false,
		},
		{
			name:   "integer",
			m:      NullableText("1"),
			input:  int64(1),
			expect: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := tc.m.Match(tc.input)

			assert.Equal(tc.expect, actual)
		})
	}
}
