package event_handler

import (
	"context"
	"fmt"
	"log/slog"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/utils"
)

func delete(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "delete"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id>",
		Description: "Delete an event.",
	})
	cmdHandler[id] = deleteHandler(as)
}

func deleteHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event delete", func(c dashboard.Capabilities) bool { return c.ManageEvents }); err != nil {
			return err
		}
		eventID, err := utils.ParseID(args, 0, "event id")
		if err != nil {
			return err
		}
		if err := as.API.DeleteEvent(ctx, eventID); err != nil {
			return fmt.Errorf("deleteHandler: %w", err)
		}
		if err := as.Events.ApplyDelete(eventID); err != nil {
			slog.Debug("deleted event is not in the local list", "id", eventID)
		}
		fmt.Fprintf(as.Out, "Event #%d deleted.\n", eventID)
		return nil
	}
}
