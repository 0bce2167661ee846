package timetable

import (
	"fmt"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/SaranshGupta02/TimeTable/core"
)

// DepartmentCommon marks a slot that no department owns yet. Approved
// professors cannot edit such slots; an admin must assign a department first.
const DepartmentCommon = "Common"

// Shape defaults applied when class creation omits them.
var (
	DefaultDays        = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	DefaultPeriodCount = 8
)

// ClassGrid is the declared shape of one timetable: its day labels, period
// count and per-period time-range labels. The shape is immutable once created.
type ClassGrid struct {
	ID          string    `json:"class_id"`
	Days        []string  `json:"days"`
	PeriodCount int       `json:"period_count"`
	TimeLabels  []string  `json:"time_labels"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

// Slot is one addressable cell of a ClassGrid, keyed by
// (class, period index, day index).
type Slot struct {
	ClassID    string `json:"class_id"`
	Period     int    `json:"period_index"`
	Day        int    `json:"day_index"`
	Department string `json:"department"`
	Subject    string `json:"subject"`
}

// Cell is the read-side projection of one grid position.
type Cell struct {
	Department string `json:"department"`
	Subject    string `json:"subject"`
}

// Timetable is the full read model of one class: its shape plus the dense grid.
type Timetable struct {
	ClassID     string   `json:"class_id"`
	Days        []string `json:"days"`
	PeriodCount int      `json:"period_count"`
	TimeLabels  []string `json:"time_labels"`
	Grid        [][]Cell `json:"grid"`
}

// NewClass contains information needed to create a class and materialize its slots.
type NewClass struct {
	ID          string   `json:"class_id" validate:"required,max=50,alphanum_"`
	Days        []string `json:"days" validate:"omitempty,min=1,dive,required"`
	PeriodCount int      `json:"period_count" validate:"omitempty,min=1,max=24"`
	TimeLabels  []string `json:"time_labels" validate:"omitempty,dive,required"`
}

func (nc *NewClass) Validate(validate *validator.Validate, translator ut.Translator) error {
	nc.ID = core.CleanString(nc.ID)

	if err := validate.Struct(nc); err != nil {
		return err
	}
	// a supplied-but-empty day list is not "use the defaults"
	if nc.Days != nil && len(nc.Days) == 0 {
		return core.NewValidationError(nil, core.FieldError{
			Field: "days",
			Error: "at least one day is required",
		})
	}
	if nc.TimeLabels != nil && len(nc.TimeLabels) != nc.periodCount() {
		return core.NewValidationError(nil, core.FieldError{
			Field: "time_labels",
			Error: fmt.Sprintf("expected %d labels, one per period", nc.periodCount()),
		})
	}
	return nil
}

func (nc NewClass) periodCount() int {
	if nc.PeriodCount > 0 {
		return nc.PeriodCount
	}
	return DefaultPeriodCount
}

// grid applies defaults and builds the ClassGrid to persist.
func (nc NewClass) grid(now time.Time) ClassGrid {
	days := nc.Days
	if len(days) == 0 {
		days = append([]string(nil), DefaultDays...)
	}
	periods := nc.periodCount()
	labels := nc.TimeLabels
	if labels == nil {
		labels = DeriveTimeLabels(periods)
	}
	return ClassGrid{
		ID:          nc.ID,
		Days:        days,
		PeriodCount: periods,
		TimeLabels:  labels,
		CreatedAt:   now,
	}
}

// seedSlots materializes one unowned slot per (period, day) pair of the grid.
func (g ClassGrid) seedSlots() []Slot {
	slots := make([]Slot, 0, g.PeriodCount*len(g.Days))
	for p := 0; p < g.PeriodCount; p++ {
		for d := range g.Days {
			slots = append(slots, Slot{
				ClassID:    g.ID,
				Period:     p,
				Day:        d,
				Department: DepartmentCommon,
				Subject:    "",
			})
		}
	}
	return slots
}

// DeriveTimeLabels builds hourly labels starting at 09:00, one per period.
func DeriveTimeLabels(periods int) []string {
	labels := make([]string, periods)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d:00 - %d:00", 9+i, 10+i)
	}
	return labels
}

// WriteSlot is the payload of a single-slot mutation. A set Department takes
// precedence and makes the write an ownership change; otherwise Subject is
// written. Exactly one of the two must be set.
type WriteSlot struct {
	Subject    *string `json:"subject"`
	Department *string `json:"department"`
}

func (ws WriteSlot) Validate() error {
	if ws.Department == nil && ws.Subject == nil {
		return core.NewValidationError(nil,
			core.FieldError{Field: "subject", Error: "either subject or department is required"})
	}
	if ws.Department != nil && core.CleanString(*ws.Department) == "" {
		return core.NewValidationError(nil,
			core.FieldError{Field: "department", Error: "department must not be blank"})
	}
	return nil
}
