package event_handler

import (
	"context"
	"fmt"
	"strings"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/export"
	"campusevents/src-client/form"
	"campusevents/src-client/utils"
)

func registrations(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "registrations"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id>",
		Description: "List who registered for an event.",
	})
	cmdHandler[id] = registrationsHandler(as)
}

func registrationsHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event registrations", func(c dashboard.Capabilities) bool { return c.ExportRegistrations }); err != nil {
			return err
		}
		eventID, err := utils.ParseID(args, 0, "event id")
		if err != nil {
			return err
		}
		regs, err := as.API.EventRegistrations(ctx, eventID)
		if err != nil {
			return fmt.Errorf("registrationsHandler: %w", err)
		}
		utils.PrintRegistrations(as.Out, regs)
		return nil
	}
}

func exportCSV(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "export-csv"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id> [--out file|-]",
		Description: "Export an event's registrations as CSV.",
	})
	cmdHandler[id] = exportCSVHandler(as)
}

func exportCSVHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event export-csv", func(c dashboard.Capabilities) bool { return c.ExportRegistrations }); err != nil {
			return err
		}
		fs := as.NewFlagSet("event export-csv")
		out := fs.String("out", "", "output file, - for stdout (default registrations_event_<id>.csv)")
		positional, err := utils.ParseArgs(fs, args)
		if err != nil {
			return err
		}
		eventID, err := utils.ParseID(positional, 0, "event id")
		if err != nil {
			return err
		}

		regs, err := as.API.EventRegistrations(ctx, eventID)
		if err != nil {
			return fmt.Errorf("exportCSVHandler: %w", err)
		}
		if len(regs) == 0 {
			fmt.Fprintln(as.Out, "No registrations to export.")
			return nil
		}

		path := *out
		if path == "" {
			path = export.CSVFileName(eventID)
		}
		w, err := openOutput(as, path)
		if err != nil {
			return err
		}
		if err := export.WriteRegistrationsCSV(w, regs); err != nil {
			w.Close()
			return fmt.Errorf("exportCSVHandler: %w", err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("exportCSVHandler: %w", err)
		}
		if path != "-" {
			fmt.Fprintf(as.Out, "%d registrations written to %s\n", len(regs), path)
		}
		return nil
	}
}

func invite(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "invite"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id> <email>[,<email>...]",
		Description: "Invite guests to an event by email.",
	})
	cmdHandler[id] = inviteHandler(as)
}

func inviteHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event invite", func(c dashboard.Capabilities) bool { return c.InviteGuests }); err != nil {
			return err
		}
		eventID, err := utils.ParseID(args, 0, "event id")
		if err != nil {
			return err
		}
		f := form.NewInviteForm(strings.Join(args[1:], " "))
		if err := f.Validate(); err != nil {
			return err
		}
		result, err := as.API.InviteGuests(ctx, eventID, f.Emails)
		if err != nil {
			return fmt.Errorf("inviteHandler: %w", err)
		}
		fmt.Fprintln(as.Out, result.Message)
		return nil
	}
}

func feedbackRequest(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "feedback-request"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id>",
		Description: "Ask attendees of an event for feedback.",
	})
	cmdHandler[id] = feedbackRequestHandler(as)
}

func feedbackRequestHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event feedback-request", func(c dashboard.Capabilities) bool { return c.RequestFeedback }); err != nil {
			return err
		}
		eventID, err := utils.ParseID(args, 0, "event id")
		if err != nil {
			return err
		}
		result, err := as.API.RequestFeedback(ctx, eventID)
		if err != nil {
			return fmt.Errorf("feedbackRequestHandler: %w", err)
		}
		fmt.Fprintln(as.Out, result.Message)
		return nil
	}
}
