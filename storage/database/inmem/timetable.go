package inmemdb

import (
	"sort"

	"github.com/SaranshGupta02/TimeTable/core/timetable"
)

type timetableRepository struct {
	db *DB
}

var _ timetable.Repository = (*timetableRepository)(nil)

func NewTimetableRepository(db *DB) *timetableRepository {
	return &timetableRepository{db: db}
}

func (repo *timetableRepository) CreateClass(grid timetable.ClassGrid, slots []timetable.Slot) (timetable.ClassGrid, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, exists := repo.db.classes[grid.ID]; exists {
		return timetable.ClassGrid{}, timetable.ErrClassExists
	}
	entry := &classEntry{
		grid:  grid,
		slots: make(map[slotKey]*timetable.Slot, len(slots)),
	}
	for i := range slots {
		slot := slots[i]
		entry.slots[slotKey{slot.Period, slot.Day}] = &slot
	}
	repo.db.classes[grid.ID] = entry
	return grid, nil
}

func (repo *timetableRepository) GetClass(classID string) (timetable.ClassGrid, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if entry, ok := repo.db.classes[classID]; ok {
		return entry.grid, nil
	}
	return timetable.ClassGrid{}, timetable.ErrClassNotFound
}

func (repo *timetableRepository) QueryAllClasses() ([]timetable.ClassGrid, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	grids := make([]timetable.ClassGrid, 0, len(repo.db.classes))
	for _, entry := range repo.db.classes {
		grids = append(grids, entry.grid)
	}
	sort.Slice(grids, func(i, j int) bool { return grids[i].ID < grids[j].ID })
	return grids, nil
}

func (repo *timetableRepository) DeleteClass(classID string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.classes[classID]; !ok {
		return timetable.ErrClassNotFound
	}
	delete(repo.db.classes, classID)
	return nil
}

func (repo *timetableRepository) GetSlot(classID string, period, day int) (timetable.Slot, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	slot, err := repo.getSlot(classID, period, day)
	if err != nil {
		return timetable.Slot{}, err
	}
	return *slot, nil
}

func (repo *timetableRepository) getSlot(classID string, period, day int) (*timetable.Slot, error) {
	entry, ok := repo.db.classes[classID]
	if !ok {
		return nil, timetable.ErrSlotNotFound
	}
	slot, ok := entry.slots[slotKey{period, day}]
	if !ok {
		return nil, timetable.ErrSlotNotFound
	}
	return slot, nil
}

func (repo *timetableRepository) QuerySlots(classID string) ([]timetable.Slot, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entry, ok := repo.db.classes[classID]
	if !ok {
		return nil, nil
	}
	slots := make([]timetable.Slot, 0, len(entry.slots))
	for _, slot := range entry.slots {
		slots = append(slots, *slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Period != slots[j].Period {
			return slots[i].Period < slots[j].Period
		}
		return slots[i].Day < slots[j].Day
	})
	return slots, nil
}

func (repo *timetableRepository) UpdateSlotDepartment(classID string, period, day int, department string) (timetable.Slot, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	slot, err := repo.getSlot(classID, period, day)
	if err != nil {
		return timetable.Slot{}, err
	}
	slot.Department = department
	return *slot, nil
}

func (repo *timetableRepository) UpdateSlotSubject(classID string, period, day int, subject string) (timetable.Slot, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	slot, err := repo.getSlot(classID, period, day)
	if err != nil {
		return timetable.Slot{}, err
	}
	slot.Subject = subject
	return *slot, nil
}
