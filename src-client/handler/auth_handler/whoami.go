package auth_handler

import (
	"context"
	"errors"
	"fmt"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/session"
	"campusevents/src-client/utils"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

func whoami(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "whoami"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Description: "Show the stored session.",
	})
	cmdHandler[id] = whoamiHandler(as)
}

func whoamiHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		current, err := as.API.CurrentSession(ctx)
		if errors.Is(err, session.ErrNoSession) {
			fmt.Fprintln(as.Out, "Not logged in.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("whoamiHandler: %w", err)
		}

		name := current.Name
		if name == "" {
			name = "(no name)"
		}
		fmt.Fprintf(as.Out, "%s, %s\n", name, utils.CleanupString(string(current.Role)))
		if expiresAt, ok := current.ExpiresAt(); ok {
			fmt.Fprintf(as.Out, "Session expires %s\n", humanize.Time(expiresAt))
		}

		capabilities := dashboard.CapabilitiesOf(current.Role)
		var can []string
		for _, c := range []struct {
			ok   bool
			name string
		}{
			{capabilities.ManageEvents, "manage events"},
			{capabilities.ExportRegistrations, "export registrations"},
			{capabilities.RequestFeedback, "request feedback"},
			{capabilities.InviteGuests, "invite guests"},
			{capabilities.ManageUsers, "manage users"},
			{capabilities.RegisterForEvents, "register for events"},
			{capabilities.EditProfile, "edit profile"},
			{capabilities.ViewRoster, "view rosters"},
			{capabilities.ViewStudents, "view students"},
		} {
			if c.ok {
				can = append(can, c.name)
			}
		}
		if len(can) > 0 {
			fmt.Fprintf(as.Out, "Can: %s\n", english.OxfordWordSeries(can, "and"))
		}
		return nil
	}
}
