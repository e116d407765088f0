package studentdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Student_Equal(t *testing.T) {
	law := &Specialty{ID: 1, Name: "Law"}

	testCases := []struct {
		name   string
		left   Student
		right  Student
		expect bool
	}{
		{
			name:   "same fields, same specialty pointer",
			left:   Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M", Specialty: law},
			right:  Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M", Specialty: law},
			expect: true,
		},
		{
			name:   "same fields, equal specialty copies",
			left:   Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M", Specialty: law},
			right:  Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M", Specialty: &Specialty{ID: 1, Name: "Law"}},
			expect: true,
		},
		{
			name:   "both without specialty",
			left:   Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M"},
			right:  Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M"},
			expect: true,
		},
		{
			name:   "one without specialty",
			left:   Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M", Specialty: law},
			right:  Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M"},
			expect: false,
		},
		{
			name:   "different specialty",
			left:   Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M", Specialty: law},
			right:  Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M", Specialty: &Specialty{ID: 1, Name: "Banking"}},
			expect: false,
		},
		{
			name:   "different age",
			left:   Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M"},
			right:  Student{ID: 1, Name: "Ivanov", Age: 19, Sex: "M"},
			expect: false,
		},
		{
			name:   "different ID",
			left:   Student{ID: 1, Name: "Ivanov", Age: 18, Sex: "M"},
			right:  Student{ID: 2, Name: "Ivanov", Age: 18, Sex: "M"},
			expect: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, tc.left.Equal(tc.right))
			assert.Equal(tc.expect, tc.right.Equal(tc.left), "not symmetric")
		})
	}
}

func Test_Student_SpecialtyID(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int64(0), Student{}.SpecialtyID())
	assert.Equal(int64(4), Student{Specialty: &Specialty{ID: 4}}.SpecialtyID())
}

func Test_String(t *testing.T) {
	assert := assert.New(t)

	sp := Specialty{ID: 2, Name: "Banking", Description: "Banking studies", Code: "B-01"}
	assert.Equal(`Specialty{ID: 2, Name: "Banking", Description: "Banking studies", Code: "B-01"}`, sp.String())

	st := Student{ID: 3, Name: "Ivanov", Age: 18, Sex: "M"}
	assert.Equal(`Student{ID: 3, Name: "Ivanov", Age: 18, Sex: "M", Specialty: <nil>}`, st.String())

	st.Specialty = &sp
	assert.Equal(`Student{ID: 3, Name: "Ivanov", Age: 18, Sex: "M", Specialty: `+sp.String()+`}`, st.String())
}

func Test_SortByID(t *testing.T) {
	assert := assert.New(t)

	input := []Specialty{{ID: 3, Name: "C"}, {ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	actual := SortByID(input)

	assert.Equal([]Specialty{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}, actual)
	assert.Equal(int64(3), input[0].ID, "input was modified")

	models := SortByID([]Model{Student{ID: 9}, &Specialty{ID: 4}})
	assert.Equal(int64(4), models[0].ModelID())
	assert.Equal(int64(9), models[1].ModelID())
}
