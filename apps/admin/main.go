package main

import (
	"log"
	"os"

	"github.com/SaranshGupta02/TimeTable/core"
	"github.com/SaranshGupta02/TimeTable/core/timetable"
	"github.com/SaranshGupta02/TimeTable/core/user"
	"github.com/SaranshGupta02/TimeTable/storage/database"
	sqlxrepos "github.com/SaranshGupta02/TimeTable/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(err)

	// set up DB
	errAndDie(database.CreateIfNotExist(conf))
	db, err := database.Open(conf)
	errAndDie(err)
	defer func() { _ = db.Close() }()
	errAndDie(db.Ping())

	// start CLI
	cli := commandLine{
		db:     db,
		usrSvc: user.NewService(sqlxrepos.NewUserRepository(db), nil),
		ttSvc:  timetable.NewService(sqlxrepos.NewTimetableRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
