package studentdb

import (
	"fmt"

	"github.com/dekarrin/studentdb/internal/jelsort"
)

// Model is a record that can be stored by a mapper.
type Model interface {
	// ModelID returns the ID that identifies the Model uniquely within its
	// table. It is 0 if the store has not yet assigned one.
	ModelID() int64
}

// Specialty is a field of study that a Student is enrolled in.
type Specialty struct {
	ID          int64  // PK
	Name        string // NOT NULL
	Description string
	Code        string
}

func (sp Specialty) ModelID() int64 {
	return sp.ID
}

// Equal returns whether sp and o have the same value in every field.
func (sp Specialty) Equal(o Specialty) bool {
	return sp == o
}

func (sp Specialty) String() string {
	return fmt.Sprintf("Specialty{ID: %d, Name: %q, Description: %q, Code: %q}", sp.ID, sp.Name, sp.Description, sp.Code)
}

// Student is a person enrolled in a Specialty.
type Student struct {
	ID   int64  // PK
	Name string // NOT NULL
	Age  int    // NOT NULL
	Sex  string // NOT NULL

	// Specialty is the specialty the student is enrolled in. Only its ID is
	// persisted. It will be nil when read back if the referenced specialty does
	// not exist.
	Specialty *Specialty // NOT NULL
}

func (st Student) ModelID() int64 {
	return st.ID
}

// Equal returns whether st and o have the same value in every field, including
// the fields of their specialties.
func (st Student) Equal(o Student) bool {
	if st.ID != o.ID || st.Name != o.Name || st.Age != o.Age || st.Sex != o.Sex {
		return false
	}
	if st.Specialty == nil || o.Specialty == nil {
		return st.Specialty == nil && o.Specialty == nil
	}
	return st.Specialty.Equal(*o.Specialty)
}

// SpecialtyID returns the ID of the student's specialty, or 0 if it has none.
func (st Student) SpecialtyID() int64 {
	if st.Specialty == nil {
		return 0
	}
	return st.Specialty.ID
}

func (st Student) String() string {
	spec := "<nil>"
	if st.Specialty != nil {
		spec = st.Specialty.String()
	}
	return fmt.Sprintf("Student{ID: %d, Name: %q, Age: %d, Sex: %q, Specialty: %s}", st.ID, st.Name, st.Age, st.Sex, spec)
}

// SortByID returns a copy of items ordered by ascending ID. items is not
// modified.
func SortByID[M Model](items []M) []M {
	return jelsort.By(items, func(left, right M) bool {
		return left.ModelID() < right.ModelID()
	})
}
