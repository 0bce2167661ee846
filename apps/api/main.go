package main

import (
	"fmt"
	"log"
	"os"

	echoapi "github.com/SaranshGupta02/TimeTable/apps/api/echo"
	"github.com/SaranshGupta02/TimeTable/core"
	"github.com/SaranshGupta02/TimeTable/core/timetable"
	"github.com/SaranshGupta02/TimeTable/core/user"
	emailsvc "github.com/SaranshGupta02/TimeTable/services/email"
	logsvc "github.com/SaranshGupta02/TimeTable/services/logger"
	"github.com/SaranshGupta02/TimeTable/storage/database"
	sqlxrepos "github.com/SaranshGupta02/TimeTable/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatalf("loading config: %v", err)
	}

	// set up logging
	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewStdLogger(std)
	}

	// set up DB
	db, err := database.Open(conf)
	errAndDie(logger, err)
	defer func() { _ = db.Close() }()
	errAndDie(logger, db.Ping())

	// set up services
	var mailSvc core.EmailService
	if conf.Debug || conf.SendgridAPIKey == "" {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	usrSvc := user.NewService(sqlxrepos.NewUserRepository(db), mailSvc)
	ttSvc := timetable.NewService(sqlxrepos.NewTimetableRepository(db))

	validate, translator := core.NewValidator(conf.AllowedEmailDomain)

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Addr:         fmt.Sprintf(":%d", conf.Server.Port),
		Conf:         conf,
		Logger:       logger,
		Validate:     validate,
		Translator:   translator,
		UserSvc:      usrSvc,
		TimetableSvc: ttSvc,
	})
	app.Start()
}

func errAndDie(logger core.Logger, err error) {
	if err != nil {
		logger.Fatal(err.Error())
	}
}
