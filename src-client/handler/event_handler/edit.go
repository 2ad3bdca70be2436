package event_handler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/form"
	"campusevents/src-client/model"
	"campusevents/src-client/utils"

	"github.com/AlekSi/pointer"
)

func edit(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "edit"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id> [--title t] [--start ...] [--active=false] [--frozen] [flags]",
		Description: "Edit an event. Fields not given keep their value.",
	})
	cmdHandler[id] = editHandler(as)
}

func editHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event edit", func(c dashboard.Capabilities) bool { return c.ManageEvents }); err != nil {
			return err
		}
		eventID, err := utils.ParseID(args, 0, "event id")
		if err != nil {
			return err
		}

		current, err := as.API.GetEvent(ctx, eventID)
		if err != nil {
			return fmt.Errorf("editHandler: %w", err)
		}

		loc := as.Config.GetLocation()
		f := form.EventFormFrom(current, loc)
		fs := as.NewFlagSet("event edit")
		flags := bindEventFlags(fs, &f)
		active := fs.Bool("active", current.IsActive, "whether the event is listed")
		frozen := fs.Bool("frozen", current.IsFrozen, "whether registrations are frozen")
		if _, err := utils.ParseArgs(fs, args[1:]); err != nil {
			return err
		}

		now := time.Now()
		if err := flags.resolve(as, now); err != nil {
			return err
		}
		if err := f.Validate(now, loc, true); err != nil {
			return err
		}
		patch, err := f.Patch(loc)
		if err != nil {
			return err
		}
		if *active != current.IsActive {
			patch.IsActive = pointer.ToBool(*active)
		}
		if *frozen != current.IsFrozen {
			patch.IsFrozen = pointer.ToBool(*frozen)
		}

		updated, err := as.API.UpdateEvent(ctx, eventID, patch)
		if err != nil {
			return fmt.Errorf("editHandler: %w", err)
		}
		applyLocally(ctx, as, eventID, patch)
		fmt.Fprintf(as.Out, "Event #%d %q updated.\n", updated.ID, updated.Title)
		return nil
	}
}

// applyLocally merges the accepted patch into the store, loading it first
// since a fresh process starts empty.
func applyLocally(ctx context.Context, as *utils.AppState, eventID int64, patch model.EventPatch) {
	if err := loadEvents(ctx, as, false); err != nil {
		slog.Warn("can't refresh the local event list", "error", err)
		return
	}
	if err := as.Events.ApplyMutation(eventID, patch); err != nil {
		slog.Debug("updated event is not in the local list", "id", eventID, "error", err)
	}
}
