package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/SaranshGupta02/TimeTable/core/timetable"
	"github.com/SaranshGupta02/TimeTable/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db     *sqlx.DB
	usrSvc *user.Service
	ttSvc  *timetable.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate                         - apply pending database migrations")
	fmt.Println("  addadmin -email EMAIL -name NAME - create an admin account (password prompted)")
	fmt.Println("  resetpassword -email EMAIL      - reset an account's password (password prompted)")
	fmt.Println("  seed                            - create the default classes")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addAdminCmd := flag.NewFlagSet("addadmin", flag.ExitOnError)
	addAdminEmail := addAdminCmd.String("email", "", "The admin's email. The password will be prompted next.")
	addAdminName := addAdminCmd.String("name", "Admin", "The admin's display name.")

	resetPwdCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPwdEmail := resetPwdCmd.String("email", "", "The account's email. The new password will be prompted next.")

	switch args[1] {
	case "migrate":
		return cli.migrate()
	case "seed":
		return cli.seed()
	case "addadmin":
		if err := addAdminCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addAdminEmail == "" {
			addAdminCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addAdminCmd.Usage()
			return errHelp
		}
		return cli.addAdmin(*addAdminEmail, *addAdminName, string(pwd))
	case "resetpassword":
		if err := resetPwdCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPwdEmail == "" {
			resetPwdCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter new password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPwdCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPwdEmail, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}
