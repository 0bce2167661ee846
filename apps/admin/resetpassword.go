package main

func (cli *commandLine) resetPassword(email, pwd string) error {
	usr, err := cli.usrSvc.ResetPassword(email, pwd)
	if err != nil {
		return err
	}
	logger.Printf("password reset for %s", usr.Email)
	return nil
}
