package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_defaults(t *testing.T) {
	grid := NewClass{ID: "E101"}.grid(time.Now().UTC())

	cells := Assemble(grid, nil)

	require.Len(t, cells, DefaultPeriodCount)
	for _, row := range cells {
		require.Len(t, row, len(DefaultDays))
		for _, cell := range row {
			assert.Equal(t, Cell{Department: DepartmentCommon, Subject: ""}, cell)
		}
	}
}

func TestAssemble_placesSlots(t *testing.T) {
	grid := ClassGrid{ID: "E201", Days: []string{"Monday", "Tuesday"}, PeriodCount: 2, TimeLabels: DeriveTimeLabels(2)}
	slots := []Slot{
		{ClassID: "E201", Period: 0, Day: 0, Department: "CSE", Subject: "Algorithms"},
		{ClassID: "E201", Period: 1, Day: 1, Department: "ECE", Subject: ""},
	}

	cells := Assemble(grid, slots)

	assert.Equal(t, Cell{Department: "CSE", Subject: "Algorithms"}, cells[0][0])
	assert.Equal(t, Cell{Department: DepartmentCommon}, cells[0][1])
	assert.Equal(t, Cell{Department: DepartmentCommon}, cells[1][0])
	assert.Equal(t, Cell{Department: "ECE", Subject: ""}, cells[1][1])
}

func TestAssemble_ignoresOutOfShapeSlots(t *testing.T) {
	grid := ClassGrid{ID: "E201", Days: []string{"Monday"}, PeriodCount: 1, TimeLabels: DeriveTimeLabels(1)}
	slots := []Slot{
		{ClassID: "E201", Period: 0, Day: 0, Department: "CSE", Subject: "DBMS"},
		{ClassID: "E201", Period: 5, Day: 0, Department: "ECE", Subject: "VLSI"},
		{ClassID: "E201", Period: 0, Day: 3, Department: "MECH", Subject: "CAD"},
		{ClassID: "E201", Period: -1, Day: 0, Department: "MATH", Subject: "Calculus"},
	}

	cells := Assemble(grid, slots)

	require.Len(t, cells, 1)
	require.Len(t, cells[0], 1)
	assert.Equal(t, Cell{Department: "CSE", Subject: "DBMS"}, cells[0][0])
}

func TestAssemble_isPure(t *testing.T) {
	grid := NewClass{ID: "E101", Days: []string{"Monday", "Tuesday", "Wednesday"}, PeriodCount: 4}.grid(time.Now().UTC())
	slots := grid.seedSlots()
	slots[3].Department = "CSE"
	slots[3].Subject = "OS"

	first := Assemble(grid, slots)
	second := Assemble(grid, slots)

	assert.Equal(t, first, second)
}

func TestDeriveTimeLabels(t *testing.T) {
	labels := DeriveTimeLabels(3)
	assert.Equal(t, []string{"9:00 - 10:00", "10:00 - 11:00", "11:00 - 12:00"}, labels)
}

func TestClassGrid_seedSlots(t *testing.T) {
	grid := NewClass{ID: "E201", Days: []string{"Monday", "Tuesday"}, PeriodCount: 2}.grid(time.Now().UTC())

	slots := grid.seedSlots()

	require.Len(t, slots, 4)
	for _, slot := range slots {
		assert.Equal(t, "E201", slot.ClassID)
		assert.Equal(t, DepartmentCommon, slot.Department)
		assert.Empty(t, slot.Subject)
	}
	// shape invariant: one label per period, every (period, day) pair covered
	assert.Len(t, grid.TimeLabels, grid.PeriodCount)
	assert.Equal(t, Slot{ClassID: "E201", Period: 1, Day: 1, Department: DepartmentCommon}, slots[3])
}
