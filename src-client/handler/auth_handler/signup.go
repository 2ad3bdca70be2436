package auth_handler

import (
	"context"
	"fmt"

	"campusevents/src-client/form"
	"campusevents/src-client/utils"
)

func signup(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "signup"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "--name n --email e [--role r] [--password p]",
		Description: "Create an account. The backend emails a verification link.",
	})
	cmdHandler[id] = signupHandler(as)
}

func signupHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		f := form.SignupForm{}
		fs := as.NewFlagSet("auth signup")
		fs.StringVar(&f.Name, "name", "", "full name")
		fs.StringVar(&f.Email, "email", "", "email address")
		fs.StringVar(&f.Role, "role", "", "student, faculty, recruiter or judge (default student)")
		fs.StringVar(&f.Password, "password", "", "password, prompted when omitted")
		if _, err := utils.ParseArgs(fs, args); err != nil {
			return err
		}

		var err error
		if f.Password == "" {
			if f.Password, err = as.ReadPassword("Password: "); err != nil {
				return fmt.Errorf("signupHandler: %w", err)
			}
			if f.ConfirmPassword, err = as.ReadPassword("Confirm password: "); err != nil {
				return fmt.Errorf("signupHandler: %w", err)
			}
		} else {
			f.ConfirmPassword = f.Password
		}
		if err := f.Validate(); err != nil {
			return err
		}

		result, err := as.API.Signup(ctx, f.Input())
		if err != nil {
			return fmt.Errorf("signupHandler: %w", err)
		}
		fmt.Fprintln(as.Out, result.Message)
		return nil
	}
}

func forgotPassword(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "forgot-password"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<email>",
		Description: "Request a password reset email.",
	})
	cmdHandler[id] = func(ctx context.Context, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("forgotPasswordHandler: %w: missing email", utils.ErrUsage)
		}
		result, err := as.API.ForgotPassword(ctx, args[0])
		if err != nil {
			return fmt.Errorf("forgotPasswordHandler: %w", err)
		}
		fmt.Fprintln(as.Out, result.Message)
		return nil
	}
}
