package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dekarrin/studentdb"
	"github.com/dekarrin/studentdb/dao"
	"github.com/dekarrin/studentdb/dao/sqlite/dbconv"
)

// Students maps studentdb.Student entities to rows of the Student table. Only
// the ID of a student's specialty is stored; it is resolved through a
// Specialties mapper whenever a student is read.
type Students struct {
	exec        *dao.Executor
	specialties *Specialties
}

// NewStudents creates a Students mapper that runs its statements with exec and
// looks up specialties with specialties.
func NewStudents(exec *dao.Executor, specialties *Specialties) *Students {
	return &Students{exec: exec, specialties: specialties}
}

var _ dao.DataMapper = (*Students)(nil)

func studentOf(m studentdb.Model) (*studentdb.Student, error) {
	switch st := m.(type) {
	case studentdb.Student:
		return &st, nil
	case *studentdb.Student:
		if st != nil {
			return st, nil
		}
	}
	return nil, studentdb.TypeMismatch(m, "studentdb.Student")
}

// studentRow is a Student row before its specialty has been looked up.
type studentRow struct {
	student     studentdb.Student
	specialtyID int64
}

func scanStudent(row dao.RowScanner, r *studentRow) error {
	var name, sex sql.NullString
	var specID sql.NullInt64

	err := row.Scan(
		&r.student.ID,
		&name,
		&r.student.Age,
		&sex,
		&specID,
	)
	if err != nil {
		return err
	}

	if err := dbconv.Text.FromDB(name, &r.student.Name); err != nil {
		return fmt.Errorf("stored name is invalid: %w", err)
	}
	if err := dbconv.Text.FromDB(sex, &r.student.Sex); err != nil {
		return fmt.Errorf("stored sex is invalid: %w", err)
	}
	if err := dbconv.ID.FromDB(specID, &r.specialtyID); err != nil {
		return fmt.Errorf("stored speciality_id is invalid: %w", err)
	}
	return nil
}

// resolve looks up the specialty referenced by r. A reference to a specialty
// that does not exist leaves the student's Specialty nil.
func (repo *Students) resolve(ctx context.Context, r studentRow) (studentdb.Student, error) {
	st := r.student
	if r.specialtyID == 0 {
		return st, nil
	}

	sp, err := repo.specialties.Get(ctx, r.specialtyID)
	if err != nil {
		return st, fmt.Errorf("get specialty %d of student %d: %w", r.specialtyID, st.ID, err)
	}
	st.Specialty = sp
	return st, nil
}

// Save inserts m, which must be a studentdb.Student or a pointer to one, and
// returns a *studentdb.Student holding the ID of the new row. Only the ID of
// the student's specialty is written; the specialty itself is not saved.
func (repo *Students) Save(ctx context.Context, m studentdb.Model) (studentdb.Model, error) {
	st, err := studentOf(m)
	if err != nil {
		return nil, err
	}

	id, err := repo.exec.ExecuteWrite(ctx, dao.OpInsert, `INSERT INTO Student (id, name, age, sex, speciality_id) VALUES (?, ?, ?, ?, ?);`,
		dbconv.ID.ToDB(st.ID),
		dbconv.Text.ToDB(st.Name),
		st.Age,
		dbconv.Text.ToDB(st.Sex),
		dbconv.ID.ToDB(st.SpecialtyID()),
	)
	if err != nil {
		return nil, err
	}

	st.ID = id
	return st, nil
}

// FindByID returns the *studentdb.Student with the given ID, or nil if there is
// none.
func (repo *Students) FindByID(ctx context.Context, id int64) (studentdb.Model, error) {
	st, err := repo.Get(ctx, id)
	if err != nil || st == nil {
		return nil, err
	}
	return st, nil
}

// FindAll returns every student as a *studentdb.Student.
func (repo *Students) FindAll(ctx context.Context) ([]studentdb.Model, error) {
	all, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	models := make([]studentdb.Model, len(all))
	for i := range all {
		models[i] = &all[i]
	}
	return models, nil
}

// Update sets the name, age, sex, and specialty ID of the row with m's ID.
func (repo *Students) Update(ctx context.Context, m studentdb.Model) (int64, error) {
	st, err := studentOf(m)
	if err != nil {
		return 0, err
	}

	return repo.exec.ExecuteWrite(ctx, dao.OpUpdate, `UPDATE Student SET name=?, age=?, sex=?, speciality_id=? WHERE id=?;`,
		dbconv.Text.ToDB(st.Name),
		st.Age,
		dbconv.Text.ToDB(st.Sex),
		dbconv.ID.ToDB(st.SpecialtyID()),
		st.ID,
	)
}

func (repo *Students) Delete(ctx context.Context, id int64) (int64, error) {
	return repo.exec.ExecuteWrite(ctx, dao.OpDelete, `DELETE FROM Student WHERE id=?;`, id)
}

// Get is FindByID without the conversion to studentdb.Model. If there is no
// student with the given ID, nil is returned with a nil error.
func (repo *Students) Get(ctx context.Context, id int64) (*studentdb.Student, error) {
	var r studentRow

	found, err := repo.exec.FetchOne(ctx, `SELECT id, name, age, sex, speciality_id FROM Student WHERE id=?;`, []any{id}, func(row dao.RowScanner) error {
		return scanStudent(row, &r)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	// the student's connection is released by now
	st, err := repo.resolve(ctx, r)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// GetAll is FindAll without the conversion to studentdb.Model. If there are no
// students, the returned slice is empty and non-nil. The specialty of each
// student is looked up separately.
func (repo *Students) GetAll(ctx context.Context) ([]studentdb.Student, error) {
	var rows []studentRow

	_, err := repo.exec.FetchAll(ctx, `SELECT id, name, age, sex, speciality_id FROM Student;`, func(row dao.RowScanner) error {
		var r studentRow
		if err := scanStudent(row, &r); err != nil {
			return err
		}
		rows = append(rows, r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	all := make([]studentdb.Student, 0, len(rows))
	for _, r := range rows {
		st, err := repo.resolve(ctx, r)
		if err != nil {
			return nil, err
		}
		all = append(all, st)
	}

	return all, nil
}
