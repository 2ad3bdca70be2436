package handler

import (
	"context"
	"fmt"
	"strconv"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/model"
	"campusevents/src-client/notify"
	"campusevents/src-client/scheduler"
	"campusevents/src-client/utils"

	"github.com/dustin/go-humanize"
)

// Admin injects the "admin" command with its subcommands.
func Admin(as *utils.AppState) {
	localCmdInfo := []*utils.CmdInfo{
		{Name: "stats", Description: "Show platform counters."},
		{Name: "notifications", Description: "Show recent notifications."},
		{Name: "users", Description: "List every user."},
		{Name: "pending", Description: "List accounts awaiting approval."},
		{Name: "authorize", Usage: "<user-id> [--active=false] [--role r]", Description: "Approve or disable an account and set its role."},
		{Name: "resumes", Description: "List active resumes."},
		{Name: "resume-delete", Usage: "<resume-id>", Description: "Delete a resume."},
		{Name: "watch", Description: "Relay new notifications until interrupted."},
	}
	localCmdHandler := map[string]utils.CmdHandler{
		"stats":         adminStatsHandler(as),
		"notifications": adminNotificationsHandler(as),
		"users":         adminUsersHandler(as, false),
		"pending":       adminUsersHandler(as, true),
		"authorize":     adminAuthorizeHandler(as),
		"resumes":       adminResumesHandler(as),
		"resume-delete": adminResumeDeleteHandler(as),
		"watch":         adminWatchHandler(as),
	}

	id := "admin"
	as.AddCmdInfo(id, &utils.CmdInfo{
		Name:        id,
		Usage:       "<subcommand>",
		Description: "Administration commands.",
		Options:     localCmdInfo,
	})
	as.AddCmdHandler(id, as.Group(id, localCmdInfo, localCmdHandler))
}

func requireAdmin(ctx context.Context, as *utils.AppState, action string) error {
	return as.Require(ctx, action, func(c dashboard.Capabilities) bool { return c.ManageUsers })
}

func adminStatsHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireAdmin(ctx, as, "admin stats"); err != nil {
			return err
		}
		stats, err := as.API.AdminStats(ctx)
		if err != nil {
			return fmt.Errorf("adminStatsHandler: %w", err)
		}
		fmt.Fprintf(as.Out, "Pending requests: %d\n", stats.PendingRequests)
		fmt.Fprintf(as.Out, "New users today:  %d\n", stats.NewUsersToday)
		fmt.Fprintf(as.Out, "Active events:    %d\n", stats.ActiveEvents)
		fmt.Fprintf(as.Out, "New judges:       %d\n", stats.NewJudges)
		return nil
	}
}

func adminNotificationsHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireAdmin(ctx, as, "admin notifications"); err != nil {
			return err
		}
		notifications, err := as.API.AdminNotifications(ctx)
		if err != nil {
			return fmt.Errorf("adminNotificationsHandler: %w", err)
		}
		if len(notifications) == 0 {
			fmt.Fprintln(as.Out, "No notifications.")
			return nil
		}
		return notify.NewWriterRelay(as.Out).Relay(ctx, notifications)
	}
}

func adminUsersHandler(as *utils.AppState, pendingOnly bool) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireAdmin(ctx, as, "admin users"); err != nil {
			return err
		}
		var users []model.User
		var err error
		if pendingOnly {
			users, err = as.API.PendingUsers(ctx)
		} else {
			users, err = as.API.Users(ctx)
		}
		if err != nil {
			return fmt.Errorf("adminUsersHandler: %w", err)
		}
		utils.PrintUsers(as.Out, users)
		return nil
	}
}

func adminAuthorizeHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireAdmin(ctx, as, "admin authorize"); err != nil {
			return err
		}
		fs := as.NewFlagSet("admin authorize")
		active := fs.Bool("active", true, "activate the account, false to disable it")
		roleFlag := fs.String("role", string(model.RoleStudent), "role to grant")
		positional, err := utils.ParseArgs(fs, args)
		if err != nil {
			return err
		}
		userID, err := utils.ParseID(positional, 0, "user id")
		if err != nil {
			return err
		}
		role, err := model.ParseRole(*roleFlag)
		if err != nil {
			return fmt.Errorf("adminAuthorizeHandler: %w: %w", utils.ErrUsage, err)
		}

		result, err := as.API.AuthorizeUser(ctx, userID, *active, role)
		if err != nil {
			return fmt.Errorf("adminAuthorizeHandler: %w", err)
		}
		fmt.Fprintln(as.Out, result.Message)
		return nil
	}
}

func adminResumesHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireAdmin(ctx, as, "admin resumes"); err != nil {
			return err
		}
		resumes, err := as.API.AdminResumes(ctx)
		if err != nil {
			return fmt.Errorf("adminResumesHandler: %w", err)
		}
		if len(resumes) == 0 {
			fmt.Fprintln(as.Out, "No resumes.")
			return nil
		}
		fmt.Fprintf(as.Out, "%s %s %s %s\n",
			utils.FitWidth("ID", 6), utils.FitWidth("STUDENT", 24), utils.FitWidth("FILE", 28), "UPLOADED")
		for _, resume := range resumes {
			fmt.Fprintf(as.Out, "%s %s %s %s\n",
				utils.FitWidth(strconv.FormatInt(resume.ID, 10), 6),
				utils.FitWidth(resume.Student.Name+" <"+resume.Student.Email+">", 24),
				utils.FitWidth(resume.FileNameOriginal, 28),
				humanize.Time(resume.UploadedAt.Time))
		}
		return nil
	}
}

func adminResumeDeleteHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireAdmin(ctx, as, "admin resume-delete"); err != nil {
			return err
		}
		resumeID, err := utils.ParseID(args, 0, "resume id")
		if err != nil {
			return err
		}
		if err := as.API.DeleteResume(ctx, resumeID); err != nil {
			return fmt.Errorf("adminResumeDeleteHandler: %w", err)
		}
		fmt.Fprintf(as.Out, "Resume #%d deleted.\n", resumeID)
		return nil
	}
}

func adminWatchHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireAdmin(ctx, as, "admin watch"); err != nil {
			return err
		}
		var relay notify.Relay = notify.NewWriterRelay(as.Out)
		if as.DgSession != nil && as.Config.GetDiscordChannelID() != "" {
			relay = notify.NewDiscordRelay(as.DgSession, as.Config.GetDiscordChannelID())
		}
		poller, err := scheduler.NewNotificationPoller(as.API, relay, as.Config.GetPollInterval())
		if err != nil {
			return fmt.Errorf("adminWatchHandler: %w", err)
		}
		fmt.Fprintf(as.Out, "Watching notifications every %s, press Ctrl+C to stop.\n", as.Config.GetPollInterval())
		poller.Run(ctx.Done())
		return nil
	}
}
