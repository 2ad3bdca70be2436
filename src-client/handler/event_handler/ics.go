package event_handler

import (
	"context"
	"fmt"
	"io"

	"campusevents/src-client/ical"
	"campusevents/src-client/utils"
)

func ics(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "ics"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id> [--out file|-]",
		Description: "Save an event as an iCalendar file.",
	})
	cmdHandler[id] = icsHandler(as)
}

func icsHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		fs := as.NewFlagSet("event ics")
		out := fs.String("out", "", "output file, - for stdout (default event_<id>.ics)")
		positional, err := utils.ParseArgs(fs, args)
		if err != nil {
			return err
		}
		eventID, err := utils.ParseID(positional, 0, "event id")
		if err != nil {
			return err
		}

		event, err := as.API.GetEvent(ctx, eventID)
		if err != nil {
			return fmt.Errorf("icsHandler: %w", err)
		}
		content, err := ical.EventFile(*event)
		if err != nil {
			return fmt.Errorf("icsHandler: %w", err)
		}

		path := *out
		if path == "" {
			path = ical.FileName(event)
		}
		w, err := openOutput(as, path)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, content); err != nil {
			w.Close()
			return fmt.Errorf("icsHandler: %w", err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("icsHandler: %w", err)
		}
		if path != "-" {
			fmt.Fprintf(as.Out, "Saved %s\n", path)
		}
		return nil
	}
}
