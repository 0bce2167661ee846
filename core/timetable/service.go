package timetable

import (
	"errors"
	"time"

	"github.com/SaranshGupta02/TimeTable/core"
	"github.com/SaranshGupta02/TimeTable/core/user"
)

var (
	// errors
	ErrClassNotFound = errors.New("class not found")
	ErrSlotNotFound  = errors.New("slot not found")
	ErrClassExists   = errors.New("a class with this id already exists")
)

type (
	// Repository is the durable store for class shapes and slot rows.
	//
	// CreateClass and DeleteClass are atomic units: either the grid row and
	// all its slot rows are applied, or none are. Slot updates are atomic at
	// the granularity of one row and never block writers to other slots.
	Repository interface {
		CreateClass(grid ClassGrid, slots []Slot) (ClassGrid, error)
		GetClass(classID string) (ClassGrid, error)
		// QueryAllClasses returns all classes in ascending id order.
		QueryAllClasses() ([]ClassGrid, error)
		DeleteClass(classID string) error

		GetSlot(classID string, period, day int) (Slot, error)
		QuerySlots(classID string) ([]Slot, error)
		UpdateSlotDepartment(classID string, period, day int, department string) (Slot, error)
		UpdateSlotSubject(classID string, period, day int, subject string) (Slot, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateClass persists the class shape and eagerly materializes one unowned
// slot per (period, day) pair, as one atomic unit. Input must already be
// validated.
func (svc *Service) CreateClass(nc NewClass) (ClassGrid, error) {
	grid := nc.grid(time.Now().UTC())
	return svc.repo.CreateClass(grid, grid.seedSlots())
}

func (svc *Service) GetClass(classID string) (ClassGrid, error) {
	return svc.repo.GetClass(core.CleanString(classID))
}

// ListClasses returns the class ids in ascending order.
func (svc *Service) ListClasses() ([]string, error) {
	grids, err := svc.repo.QueryAllClasses()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(grids))
	for i, g := range grids {
		ids[i] = g.ID
	}
	return ids, nil
}

// DeleteClass removes the class and all of its slots as one atomic unit.
func (svc *Service) DeleteClass(classID string) error {
	return svc.repo.DeleteClass(core.CleanString(classID))
}

// GetTimetable reconstructs the dense grid view of a class from its declared
// shape and its slot rows.
func (svc *Service) GetTimetable(classID string) (Timetable, error) {
	grid, err := svc.repo.GetClass(core.CleanString(classID))
	if err != nil {
		return Timetable{}, err
	}
	slots, err := svc.repo.QuerySlots(grid.ID)
	if err != nil {
		return Timetable{}, err
	}
	return Timetable{
		ClassID:     grid.ID,
		Days:        grid.Days,
		PeriodCount: grid.PeriodCount,
		TimeLabels:  grid.TimeLabels,
		Grid:        Assemble(grid, slots),
	}, nil
}

// WriteSlot applies a single-slot mutation on behalf of an actor, gated by
// the authorization policy. A set Department makes this an ownership change;
// otherwise the subject text is written. Concurrent writers to the same slot
// serialize at the store; last writer wins.
func (svc *Service) WriteSlot(actor user.Actor, classID string, period, day int, ws WriteSlot) (Slot, error) {
	if err := ws.Validate(); err != nil {
		return Slot{}, err
	}

	classID = core.CleanString(classID)
	slot, err := svc.repo.GetSlot(classID, period, day)
	if err != nil {
		return Slot{}, err
	}

	action := ChangeSubject
	if ws.Department != nil {
		action = ChangeDepartment
	}
	if err = Authorize(actor, action, slot); err != nil {
		return Slot{}, err
	}

	if action == ChangeDepartment {
		return svc.repo.UpdateSlotDepartment(classID, period, day, core.CleanString(*ws.Department))
	}
	var subject string
	if ws.Subject != nil {
		subject = core.CleanString(*ws.Subject)
	}
	return svc.repo.UpdateSlotSubject(classID, period, day, subject)
}
