package timetable

// Assemble projects sparse slot rows onto the dense grid declared by the
// class shape. Every cell defaults to an unowned, unfilled state; slots whose
// indices fall outside the declared shape are ignored. The function is pure:
// row order follows period index 0..N-1 and column order follows the declared
// day order, on every call.
func Assemble(grid ClassGrid, slots []Slot) [][]Cell {
	cells := make([][]Cell, grid.PeriodCount)
	for p := range cells {
		row := make([]Cell, len(grid.Days))
		for d := range row {
			row[d] = Cell{Department: DepartmentCommon}
		}
		cells[p] = row
	}

	for _, slot := range slots {
		if slot.Period < 0 || slot.Period >= grid.PeriodCount {
			continue
		}
		if slot.Day < 0 || slot.Day >= len(grid.Days) {
			continue
		}
		cells[slot.Period][slot.Day] = Cell{Department: slot.Department, Subject: slot.Subject}
	}
	return cells
}
