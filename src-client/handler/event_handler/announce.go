package event_handler

import (
	"context"
	"errors"
	"fmt"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/model"
	"campusevents/src-client/notify"
	"campusevents/src-client/utils"
)

var ErrNoDiscord = errors.New("discord is not configured, set DISCORD_APP_TOKEN and DISCORD_CHANNEL_ID")

func announce(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "announce"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id> [<id>...]",
		Description: "Post events to the Discord channel.",
	})
	cmdHandler[id] = announceHandler(as)
}

func announceHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event announce", func(c dashboard.Capabilities) bool { return c.ManageEvents }); err != nil {
			return err
		}
		if as.DgSession == nil || as.Config.GetDiscordChannelID() == "" {
			return fmt.Errorf("announceHandler: %w", ErrNoDiscord)
		}
		if len(args) == 0 {
			return fmt.Errorf("announceHandler: %w: missing event id", utils.ErrUsage)
		}

		events := make([]model.Event, 0, len(args))
		for i := range args {
			eventID, err := utils.ParseID(args, i, "event id")
			if err != nil {
				return err
			}
			event, err := as.API.GetEvent(ctx, eventID)
			if err != nil {
				return fmt.Errorf("announceHandler: %w", err)
			}
			events = append(events, *event)
		}

		relay := notify.NewDiscordRelay(as.DgSession, as.Config.GetDiscordChannelID())
		if err := relay.Announce(ctx, events); err != nil {
			return fmt.Errorf("announceHandler: %w", err)
		}
		fmt.Fprintf(as.Out, "Announced %d event(s).\n", len(events))
		return nil
	}
}
