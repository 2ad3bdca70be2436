package event_handler

import (
	"context"
	"fmt"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/store"
	"campusevents/src-client/utils"
)

func move(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "move"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id> <over-id> [--search term] [--category c]",
		Description: "Drag an event onto another one's place.",
	})
	cmdHandler[id] = moveHandler(as)
}

func moveHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event move", func(c dashboard.Capabilities) bool { return c.ManageEvents }); err != nil {
			return err
		}
		fs := as.NewFlagSet("event move")
		search := fs.String("search", "", "filter active while moving")
		category := fs.String("category", "all", "category filter active while moving")
		positional, err := utils.ParseArgs(fs, args)
		if err != nil {
			return err
		}
		activeID, err := utils.ParseID(positional, 0, "event id")
		if err != nil {
			return err
		}
		overID, err := utils.ParseID(positional, 1, "target event id")
		if err != nil {
			return err
		}

		if err := loadEvents(ctx, as, false); err != nil {
			return err
		}
		as.Events.SetFilter(*search, *category)

		if err := as.Reorder.Drag(activeID); err != nil {
			return fmt.Errorf("moveHandler: %w", err)
		}
		persisting, err := as.Reorder.Drop(ctx, overID)
		if err != nil {
			as.Reorder.Cancel()
			return fmt.Errorf("moveHandler: %w", err)
		}
		as.Reorder.Wait()

		switch {
		case !persisting && !as.Events.Unfiltered():
			fmt.Fprintln(as.Out, "Moved locally. Order is not saved while a filter is active.")
		case !persisting:
			fmt.Fprintln(as.Out, "Nothing to move.")
		case as.Reorder.LastErr() != nil:
			fmt.Fprintf(as.Out, "Moved locally, but the new order could not be saved: %v\n", as.Reorder.LastErr())
		default:
			fmt.Fprintln(as.Out, "Order saved.")
		}
		printOrder(as)
		return nil
	}
}

func reorder(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "reorder"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id> <id> ...",
		Description: "Set the full display order at once.",
	})
	cmdHandler[id] = reorderHandler(as)
}

func reorderHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event reorder", func(c dashboard.Capabilities) bool { return c.ManageEvents }); err != nil {
			return err
		}
		if len(args) == 0 {
			return fmt.Errorf("reorderHandler: %w: no ids given", utils.ErrUsage)
		}
		ids := make([]int64, len(args))
		for i := range args {
			id, err := utils.ParseID(args, i, "event id")
			if err != nil {
				return err
			}
			ids[i] = id
		}

		if err := loadEvents(ctx, as, false); err != nil {
			return err
		}
		if err := as.Events.ApplyReorder(ids); err != nil {
			return fmt.Errorf("reorderHandler: %w", err)
		}
		if err := as.API.ReorderEvents(ctx, store.IDs(as.Events.Events())); err != nil {
			fmt.Fprintf(as.Out, "Reordered locally, but the new order could not be saved: %v\n", err)
		} else {
			fmt.Fprintln(as.Out, "Order saved.")
		}
		printOrder(as)
		return nil
	}
}

func printOrder(as *utils.AppState) {
	for i, event := range as.Events.View() {
		fmt.Fprintf(as.Out, "%3d. #%d %s\n", i+1, event.ID, event.Title)
	}
}
