package handler

import (
	"context"
	"fmt"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/utils"
)

// Judge injects the "judge" command with its subcommands.
func Judge(as *utils.AppState) {
	localCmdInfo := []*utils.CmdInfo{
		{Name: "events", Description: "List events you judge."},
		{Name: "roster", Usage: "<event-id> [--skill s]", Description: "List participants, optionally by skill."},
		{Name: "profile", Usage: "<student-id>", Description: "Show a participant's profile."},
	}
	localCmdHandler := map[string]utils.CmdHandler{
		"events":  judgeEventsHandler(as),
		"roster":  judgeRosterHandler(as),
		"profile": judgeProfileHandler(as),
	}

	id := "judge"
	as.AddCmdInfo(id, &utils.CmdInfo{
		Name:        id,
		Usage:       "<subcommand>",
		Description: "Judge commands.",
		Options:     localCmdInfo,
	})
	as.AddCmdHandler(id, as.Group(id, localCmdInfo, localCmdHandler))
}

func requireJudge(ctx context.Context, as *utils.AppState, action string) error {
	return as.Require(ctx, action, func(c dashboard.Capabilities) bool { return c.ViewRoster })
}

func judgeEventsHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireJudge(ctx, as, "judge events"); err != nil {
			return err
		}
		events, err := as.API.JudgeEvents(ctx)
		if err != nil {
			return fmt.Errorf("judgeEventsHandler: %w", err)
		}
		utils.PrintEvents(as.Out, events)
		return nil
	}
}

func judgeRosterHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireJudge(ctx, as, "judge roster"); err != nil {
			return err
		}
		fs := as.NewFlagSet("judge roster")
		skill := fs.String("skill", "", "only participants with this skill")
		positional, err := utils.ParseArgs(fs, args)
		if err != nil {
			return err
		}
		eventID, err := utils.ParseID(positional, 0, "event id")
		if err != nil {
			return err
		}
		regs, err := as.API.Roster(ctx, eventID, *skill)
		if err != nil {
			return fmt.Errorf("judgeRosterHandler: %w", err)
		}
		utils.PrintRegistrations(as.Out, regs)
		return nil
	}
}

func judgeProfileHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireJudge(ctx, as, "judge profile"); err != nil {
			return err
		}
		studentID, err := utils.ParseID(args, 0, "student id")
		if err != nil {
			return err
		}
		user, err := as.API.StudentProfile(ctx, studentID)
		if err != nil {
			return fmt.Errorf("judgeProfileHandler: %w", err)
		}
		printProfile(as, user)
		return nil
	}
}
