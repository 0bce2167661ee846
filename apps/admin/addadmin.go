package main

func (cli *commandLine) addAdmin(email, name, pwd string) error {
	usr, err := cli.usrSvc.CreateAdmin(email, name, pwd)
	if err != nil {
		return err
	}
	logger.Printf("admin account created: %s", usr.Email)
	return nil
}
