package sqlxrepos

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/SaranshGupta02/TimeTable/core/timetable"
)

type classRow struct {
	ClassID   string    `db:"class_id"`
	Days      string    `db:"days"`
	Periods   int       `db:"periods"`
	TimeSlots string    `db:"time_slots"`
	CreatedAt time.Time `db:"created_at"`
}

func (r classRow) grid() (timetable.ClassGrid, error) {
	grid := timetable.ClassGrid{
		ID:          r.ClassID,
		PeriodCount: r.Periods,
		CreatedAt:   r.CreatedAt.UTC(),
	}
	if err := json.Unmarshal([]byte(r.Days), &grid.Days); err != nil {
		return timetable.ClassGrid{}, errors.Wrapf(err, "decoding days of class %s", r.ClassID)
	}
	if err := json.Unmarshal([]byte(r.TimeSlots), &grid.TimeLabels); err != nil {
		return timetable.ClassGrid{}, errors.Wrapf(err, "decoding time labels of class %s", r.ClassID)
	}
	return grid, nil
}

type slotRow struct {
	ClassID    string `db:"class_id"`
	Period     int    `db:"period_index"`
	Day        int    `db:"day_index"`
	Department string `db:"department"`
	Subject    string `db:"subject"`
}

func (r slotRow) slot() timetable.Slot {
	return timetable.Slot(r)
}

type timetableRepository struct {
	db *sqlx.DB
}

var _ timetable.Repository = (*timetableRepository)(nil)

func NewTimetableRepository(db *sqlx.DB) *timetableRepository {
	return &timetableRepository{db: db}
}

// CreateClass inserts the grid row and all its slot rows in one transaction.
// A concurrent create of the same id loses on the primary key and observes
// ErrClassExists; a half-seeded class is never visible.
func (repo *timetableRepository) CreateClass(grid timetable.ClassGrid, slots []timetable.Slot) (timetable.ClassGrid, error) {
	days, err := json.Marshal(grid.Days)
	if err != nil {
		return timetable.ClassGrid{}, errors.Wrap(err, "encoding days")
	}
	labels, err := json.Marshal(grid.TimeLabels)
	if err != nil {
		return timetable.ClassGrid{}, errors.Wrap(err, "encoding time labels")
	}

	tx, err := repo.db.Beginx()
	if err != nil {
		return timetable.ClassGrid{}, errors.Wrap(err, "beginning transaction")
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		"INSERT INTO timetable_classes (class_id, days, periods, time_slots, created_at) VALUES ($1, $2, $3, $4, $5)",
		grid.ID, string(days), grid.PeriodCount, string(labels), grid.CreatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return timetable.ClassGrid{}, timetable.ErrClassExists
		}
		return timetable.ClassGrid{}, errors.Wrap(err, "inserting class")
	}

	if len(slots) > 0 {
		placeholders := make([]string, 0, len(slots))
		args := make([]interface{}, 0, len(slots)*5)
		for i, slot := range slots {
			n := i * 5
			placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5))
			args = append(args, slot.ClassID, slot.Period, slot.Day, slot.Department, slot.Subject)
		}
		q := "INSERT INTO timetable_slots (class_id, period_index, day_index, department, subject) VALUES " +
			strings.Join(placeholders, ", ")
		if _, err = tx.Exec(q, args...); err != nil {
			return timetable.ClassGrid{}, errors.Wrap(err, "inserting slots")
		}
	}

	if err = tx.Commit(); err != nil {
		return timetable.ClassGrid{}, errors.Wrap(err, "committing class creation")
	}
	return grid, nil
}

func (repo *timetableRepository) GetClass(classID string) (timetable.ClassGrid, error) {
	var row classRow
	err := repo.db.Get(&row, "SELECT * FROM timetable_classes WHERE class_id = $1", classID)
	if err != nil {
		if err == sql.ErrNoRows {
			return timetable.ClassGrid{}, timetable.ErrClassNotFound
		}
		return timetable.ClassGrid{}, errors.Wrap(err, "getting class")
	}
	return row.grid()
}

func (repo *timetableRepository) QueryAllClasses() ([]timetable.ClassGrid, error) {
	var rows []classRow
	if err := repo.db.Select(&rows, "SELECT * FROM timetable_classes ORDER BY class_id"); err != nil {
		return nil, errors.Wrap(err, "querying classes")
	}
	grids := make([]timetable.ClassGrid, len(rows))
	for i, r := range rows {
		grid, err := r.grid()
		if err != nil {
			return nil, err
		}
		grids[i] = grid
	}
	return grids, nil
}

// DeleteClass removes the slot rows and the grid row in one transaction so
// readers either see the full grid or none of it.
func (repo *timetableRepository) DeleteClass(classID string) error {
	tx, err := repo.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.Exec("DELETE FROM timetable_slots WHERE class_id = $1", classID); err != nil {
		return errors.Wrap(err, "deleting slots")
	}
	res, err := tx.Exec("DELETE FROM timetable_classes WHERE class_id = $1", classID)
	if err != nil {
		return errors.Wrap(err, "deleting class")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return timetable.ErrClassNotFound
	}
	return errors.Wrap(tx.Commit(), "committing class deletion")
}

func (repo *timetableRepository) GetSlot(classID string, period, day int) (timetable.Slot, error) {
	var row slotRow
	err := repo.db.Get(&row,
		"SELECT * FROM timetable_slots WHERE class_id = $1 AND period_index = $2 AND day_index = $3",
		classID, period, day,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return timetable.Slot{}, timetable.ErrSlotNotFound
		}
		return timetable.Slot{}, errors.Wrap(err, "getting slot")
	}
	return row.slot(), nil
}

func (repo *timetableRepository) QuerySlots(classID string) ([]timetable.Slot, error) {
	var rows []slotRow
	err := repo.db.Select(&rows,
		"SELECT * FROM timetable_slots WHERE class_id = $1 ORDER BY period_index, day_index", classID)
	if err != nil {
		return nil, errors.Wrap(err, "querying slots")
	}
	slots := make([]timetable.Slot, len(rows))
	for i, r := range rows {
		slots[i] = r.slot()
	}
	return slots, nil
}

func (repo *timetableRepository) UpdateSlotDepartment(classID string, period, day int, department string) (timetable.Slot, error) {
	return repo.updateSlot("department", department, classID, period, day)
}

func (repo *timetableRepository) UpdateSlotSubject(classID string, period, day int, subject string) (timetable.Slot, error) {
	return repo.updateSlot("subject", subject, classID, period, day)
}

// updateSlot overwrites a single column of one slot row; the single UPDATE
// statement serializes same-slot writers at the store.
func (repo *timetableRepository) updateSlot(column, value, classID string, period, day int) (timetable.Slot, error) {
	var row slotRow
	err := repo.db.Get(&row,
		`UPDATE timetable_slots SET `+column+` = $1
		 WHERE class_id = $2 AND period_index = $3 AND day_index = $4
		 RETURNING class_id, period_index, day_index, department, subject`,
		value, classID, period, day,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return timetable.Slot{}, timetable.ErrSlotNotFound
		}
		return timetable.Slot{}, errors.Wrap(err, "updating slot")
	}
	return row.slot(), nil
}
