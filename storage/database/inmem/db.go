// Package inmemdb provides in-memory repositories with the same contracts as
// the SQL ones. Used by tests and local development without a database.
package inmemdb

import (
	"sync"

	"github.com/SaranshGupta02/TimeTable/core/timetable"
	"github.com/SaranshGupta02/TimeTable/core/user"
)

type slotKey struct {
	period int
	day    int
}

type classEntry struct {
	grid  timetable.ClassGrid
	slots map[slotKey]*timetable.Slot
}

type DB struct {
	mutex   sync.RWMutex
	users   map[string]*user.User
	classes map[string]*classEntry
}

func Open() (*DB, error) {
	return &DB{
		users:   make(map[string]*user.User),
		classes: make(map[string]*classEntry),
	}, nil
}

// Reset drops all stored data. Test helper.
func (db *DB) Reset() {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.users = make(map[string]*user.User)
	db.classes = make(map[string]*classEntry)
}
