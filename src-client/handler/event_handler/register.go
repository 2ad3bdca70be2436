package event_handler

import (
	"context"
	"fmt"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/utils"
)

func register(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "register"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id>",
		Description: "Register for an event.",
	})
	cmdHandler[id] = registerHandler(as)
}

func registerHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event register", func(c dashboard.Capabilities) bool { return c.RegisterForEvents }); err != nil {
			return err
		}
		eventID, err := utils.ParseID(args, 0, "event id")
		if err != nil {
			return err
		}
		reg, err := as.API.Register(ctx, eventID)
		if err != nil {
			return fmt.Errorf("registerHandler: %w", err)
		}
		fmt.Fprintf(as.Out, "Registered for event #%d, status: %s\n", eventID, utils.CleanupString(string(reg.Status)))
		return nil
	}
}

func unregister(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "unregister"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id>",
		Description: "Cancel a registration.",
	})
	cmdHandler[id] = unregisterHandler(as)
}

func unregisterHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event unregister", func(c dashboard.Capabilities) bool { return c.RegisterForEvents }); err != nil {
			return err
		}
		eventID, err := utils.ParseID(args, 0, "event id")
		if err != nil {
			return err
		}
		if err := as.API.Unregister(ctx, eventID); err != nil {
			return fmt.Errorf("unregisterHandler: %w", err)
		}
		fmt.Fprintf(as.Out, "Registration for event #%d cancelled.\n", eventID)
		return nil
	}
}
