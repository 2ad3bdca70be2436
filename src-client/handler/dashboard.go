package handler

import (
	"context"
	"fmt"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/utils"
)

func Dashboard(as *utils.AppState) {
	id := "dashboard"
	as.AddCmdHandler(id, dashboardHandler(as))
	as.AddCmdInfo(id, &utils.CmdInfo{
		Name:        id,
		Description: "Show the landing screen of your role.",
	})
}

func dashboardHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		current, err := as.API.CurrentSession(ctx)
		if err != nil {
			return fmt.Errorf("dashboardHandler: %w", err)
		}
		board, err := dashboard.Load(ctx, as.API, current.Role)
		if err != nil {
			return fmt.Errorf("dashboardHandler: %w", err)
		}

		fmt.Fprintf(as.Out, "Welcome back, %s (%s)\n\n", current.Name, utils.CleanupString(string(current.Role)))
		switch board := board.(type) {
		case *dashboard.Admin:
			if board.Stats != nil {
				fmt.Fprintf(as.Out, "Pending requests: %d   New users today: %d   Active events: %d   New judges: %d\n\n",
					board.Stats.PendingRequests, board.Stats.NewUsersToday, board.Stats.ActiveEvents, board.Stats.NewJudges)
			}
			if len(board.Notifications) > 0 {
				fmt.Fprintln(as.Out, "Notifications:")
				for _, n := range board.Notifications {
					fmt.Fprintf(as.Out, "  [%s] %s (%s)\n", n.Type, n.Message, n.Time)
				}
				fmt.Fprintln(as.Out)
			}
			fmt.Fprintf(as.Out, "Pending approvals: %d\n", len(board.PendingUsers))
			utils.PrintUsers(as.Out, board.PendingUsers)
			fmt.Fprintln(as.Out)
			utils.PrintEvents(as.Out, board.Events)
		case *dashboard.Faculty:
			utils.PrintEvents(as.Out, board.Events)
		case *dashboard.Recruiter:
			fmt.Fprintln(as.Out, "Sponsored events:")
			utils.PrintEvents(as.Out, board.SponsoredEvents)
		case *dashboard.Judge:
			fmt.Fprintln(as.Out, "Assigned events:")
			utils.PrintEvents(as.Out, board.AssignedEvents)
		case *dashboard.Student:
			utils.PrintEvents(as.Out, board.Events)
			fmt.Fprintf(as.Out, "\nYou have %d registrations.\n", len(board.Registrations))
		}
		return nil
	}
}
