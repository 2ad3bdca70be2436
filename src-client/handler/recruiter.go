package handler

import (
	"context"
	"fmt"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/utils"
)

// Recruiter injects the "recruiter" command with its subcommands.
func Recruiter(as *utils.AppState) {
	localCmdInfo := []*utils.CmdInfo{
		{Name: "events", Description: "List events your company sponsors."},
		{Name: "students", Usage: "<event-id>", Description: "List students registered for a sponsored event."},
	}
	localCmdHandler := map[string]utils.CmdHandler{
		"events":   recruiterEventsHandler(as),
		"students": recruiterStudentsHandler(as),
	}

	id := "recruiter"
	as.AddCmdInfo(id, &utils.CmdInfo{
		Name:        id,
		Usage:       "<subcommand>",
		Description: "Recruiter commands.",
		Options:     localCmdInfo,
	})
	as.AddCmdHandler(id, as.Group(id, localCmdInfo, localCmdHandler))
}

func recruiterEventsHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "recruiter events", func(c dashboard.Capabilities) bool { return c.ViewStudents }); err != nil {
			return err
		}
		events, err := as.API.RecruiterEvents(ctx)
		if err != nil {
			return fmt.Errorf("recruiterEventsHandler: %w", err)
		}
		utils.PrintEvents(as.Out, events)
		return nil
	}
}

func recruiterStudentsHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "recruiter students", func(c dashboard.Capabilities) bool { return c.ViewStudents }); err != nil {
			return err
		}
		eventID, err := utils.ParseID(args, 0, "event id")
		if err != nil {
			return err
		}
		regs, err := as.API.EventStudents(ctx, eventID)
		if err != nil {
			return fmt.Errorf("recruiterStudentsHandler: %w", err)
		}
		utils.PrintRegistrations(as.Out, regs)
		return nil
	}
}
