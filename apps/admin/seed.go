package main

import (
	"github.com/SaranshGupta02/TimeTable/core/timetable"
	"github.com/SaranshGupta02/TimeTable/core/user"
)

// seedDepartments is the default ownership layout applied to each seeded
// class, one row per period, one entry per weekday.
var seedDepartments = [][]string{
	{"CSE", "MATH", "ECE", "CSE", "MECH"},
	{"ECE", "CSE", "MATH", "PHYSICS", "CSE"},
	{"MATH", "ECE", "CSE", "MATH", "ECE"},
	{"CSE", "PHYSICS", "MECH", "ECE", "MATH"},
	{"PHYSICS", "CSE", "PHYSICS", "CSE", "PHYSICS"},
	{"MECH", "MECH", "CSE", "MATH", "CSE"},
	{"CSE", "ECE", "ECE", "CSE", "MECH"},
	{"MATH", "CSE", "MATH", "MECH", "ECE"},
}

var seedClassIDs = []string{"E101", "E102", "E103"}

// seed creates the default classes with a pre-assigned department layout.
// Classes that already exist are left untouched.
func (cli *commandLine) seed() error {
	admin := user.Actor{Role: user.RoleAdmin}

	for _, classID := range seedClassIDs {
		grid, err := cli.ttSvc.CreateClass(timetable.NewClass{ID: classID})
		if err != nil {
			if err == timetable.ErrClassExists {
				logger.Printf("class %s already exists, skipping", classID)
				continue
			}
			return err
		}

		for p := 0; p < grid.PeriodCount && p < len(seedDepartments); p++ {
			for d := 0; d < len(grid.Days) && d < len(seedDepartments[p]); d++ {
				dept := seedDepartments[p][d]
				if _, err := cli.ttSvc.WriteSlot(admin, classID, p, d, timetable.WriteSlot{Department: &dept}); err != nil {
					return err
				}
			}
		}
		logger.Printf("class %s seeded", classID)
	}
	return nil
}
