package event_handler

import (
	"context"
	"fmt"

	"campusevents/src-client/utils"
)

func list(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "list"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "[--search term] [--category c] [--offline]",
		Description: "List events in display order.",
	})
	cmdHandler[id] = listHandler(as)
}

func listHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		fs := as.NewFlagSet("event list")
		search := fs.String("search", "", "case-insensitive match on title or description")
		category := fs.String("category", "all", "category to show, or all")
		offline := fs.Bool("offline", false, "read the local cache only")
		if _, err := utils.ParseArgs(fs, args); err != nil {
			return err
		}

		if err := loadEvents(ctx, as, *offline); err != nil {
			return err
		}
		as.Events.SetFilter(*search, *category)
		view := as.Events.View()
		utils.PrintEvents(as.Out, view)
		if total := len(as.Events.Events()); total != len(view) {
			fmt.Fprintf(as.Out, "%d of %d events shown\n", len(view), total)
		}
		return nil
	}
}
