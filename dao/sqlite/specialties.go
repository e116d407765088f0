// Package sqlite contains the data mappers that store studentdb entities in the
// Speciality and Student tables of a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dekarrin/studentdb"
	"github.com/dekarrin/studentdb/dao"
	"github.com/dekarrin/studentdb/dao/sqlite/dbconv"
)

// Specialties maps studentdb.Specialty entities to rows of the Speciality
// table.
type Specialties struct {
	exec *dao.Executor
}

// NewSpecialties creates a Specialties mapper that runs its statements with
// exec.
func NewSpecialties(exec *dao.Executor) *Specialties {
	return &Specialties{exec: exec}
}

var _ dao.DataMapper = (*Specialties)(nil)

func specialtyOf(m studentdb.Model) (*studentdb.Specialty, error) {
	switch sp := m.(type) {
	case studentdb.Specialty:
		return &sp, nil
	case *studentdb.Specialty:
		if sp != nil {
			return sp, nil
		}
	}
	return nil, studentdb.TypeMismatch(m, "studentdb.Specialty")
}

func scanSpecialty(row dao.RowScanner, sp *studentdb.Specialty) error {
	var name, desc, code sql.NullString

	err := row.Scan(
		&sp.ID,
		&name,
		&desc,
		&code,
	)
	if err != nil {
		return err
	}

	if err := dbconv.Text.FromDB(name, &sp.Name); err != nil {
		return fmt.Errorf("stored name is invalid: %w", err)
	}
	if err := dbconv.Text.FromDB(desc, &sp.Description); err != nil {
		return fmt.Errorf("stored description is invalid: %w", err)
	}
	if err := dbconv.Text.FromDB(code, &sp.Code); err != nil {
		return fmt.Errorf("stored code is invalid: %w", err)
	}
	return nil
}

// Save inserts m, which must be a studentdb.Specialty or a pointer to one, and
// returns a *studentdb.Specialty holding the ID of the new row.
func (repo *Specialties) Save(ctx context.Context, m studentdb.Model) (studentdb.Model, error) {
	sp, err := specialtyOf(m)
	if err != nil {
		return nil, err
	}

	id, err := repo.exec.ExecuteWrite(ctx, dao.OpInsert, `INSERT INTO Speciality (id, name, description, code) VALUES (?, ?, ?, ?);`,
		dbconv.ID.ToDB(sp.ID),
		dbconv.Text.ToDB(sp.Name),
		dbconv.Text.ToDB(sp.Description),
		dbconv.Text.ToDB(sp.Code),
	)
	if err != nil {
		return nil, err
	}

	sp.ID = id
	return sp, nil
}

// FindByID returns the *studentdb.Specialty with the given ID, or nil if there
// is none.
func (repo *Specialties) FindByID(ctx context.Context, id int64) (studentdb.Model, error) {
	sp, err := repo.Get(ctx, id)
	if err != nil || sp == nil {
		return nil, err
	}
	return sp, nil
}

// FindAll returns every specialty as a *studentdb.Specialty.
func (repo *Specialties) FindAll(ctx context.Context) ([]studentdb.Model, error) {
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

// Update sets the name, description, and code of the row with m's ID.
func (repo *Specialties) Update(ctx context.Context, m studentdb.Model) (int64, error) {
	sp, err := specialtyOf(m)
	if err != nil {
		return 0, err
	}

	return repo.exec.ExecuteWrite(ctx, dao.OpUpdate, `UPDATE Speciality SET name=?, description=?, code=? WHERE id=?;`,
		dbconv.Text.ToDB(sp.Name),
		dbconv.Text.ToDB(sp.Description),
		dbconv.Text.ToDB(sp.Code),
		sp.ID,
	)
}

func (repo *Specialties) Delete(ctx context.Context, id int64) (int64, error) {
	return repo.exec.ExecuteWrite(ctx, dao.OpDelete, `DELETE FROM Speciality WHERE id=?;`, id)
}

// Get is FindByID without the conversion to studentdb.Model. If there is no
// specialty with the given ID, nil is returned with a nil error.
func (repo *Specialties) Get(ctx context.Context, id int64) (*studentdb.Specialty, error) {
	var sp studentdb.Specialty

	found, err := repo.exec.FetchOne(ctx, `SELECT id, name, description, code FROM Speciality WHERE id=?;`, []any{id}, func(row dao.RowScanner) error {
		return scanSpecialty(row, &sp)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return &sp, nil
}

// GetAll is FindAll without the conversion to studentdb.Model. If there are no
// specialties, the returned slice is empty and non-nil.
func (repo *Specialties) GetAll(ctx context.Context) ([]studentdb.Specialty, error) {
	all := []studentdb.Specialty{}

	_, err := repo.exec.FetchAll(ctx, `SELECT id, name, description, code FROM Speciality;`, func(row dao.RowScanner) error {
		var sp studentdb.Specialty
		if err := scanSpecialty(row, &sp); err != nil {
			return err
		}
		all = append(all, sp)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return all, nil
}
