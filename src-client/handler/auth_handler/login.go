package auth_handler

import (
	"context"
	"fmt"

	"campusevents/src-client/form"
	"campusevents/src-client/utils"
)

func login(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "login"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<email> [--password p]",
		Description: "Log in and remember the session.",
	})
	cmdHandler[id] = loginHandler(as)
}

func loginHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		f := form.LoginForm{}
		fs := as.NewFlagSet("auth login")
		fs.StringVar(&f.Password, "password", "", "password, prompted when omitted")
		positional, err := utils.ParseArgs(fs, args)
		if err != nil {
			return err
		}
		if len(positional) > 0 {
			f.Username = positional[0]
		}
		if f.Password == "" {
			if f.Password, err = as.ReadPassword("Password: "); err != nil {
				return fmt.Errorf("loginHandler: %w", err)
			}
		}
		if err := f.Validate(); err != nil {
			return err
		}

		result, err := as.API.Login(ctx, f.Username, f.Password)
		if err != nil {
			return fmt.Errorf("loginHandler: %w", err)
		}
		name := result.Session.Name
		if name == "" {
			name = f.Username
		}
		fmt.Fprintf(as.Out, "Logged in as %s (%s).\n", name, utils.CleanupString(string(result.Session.Role)))
		return nil
	}
}

func logout(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "logout"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Description: "Forget the stored session.",
	})
	cmdHandler[id] = func(ctx context.Context, args []string) error {
		if err := as.API.Logout(ctx); err != nil {
			return fmt.Errorf("logoutHandler: %w", err)
		}
		fmt.Fprintln(as.Out, "Logged out.")
		return nil
	}
}
