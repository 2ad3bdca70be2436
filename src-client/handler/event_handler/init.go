package event_handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"campusevents/src-client/utils"
)

// Init injects one "event" command with multiple subcommands into the
// command registry in AppState.
func Init(as *utils.AppState) {
	localCmdInfo := make([]*utils.CmdInfo, 0)
	localCmdHandler := make(map[string]utils.CmdHandler)

	list(as, &localCmdInfo, localCmdHandler)
	show(as, &localCmdInfo, localCmdHandler)
	create(as, &localCmdInfo, localCmdHandler)
	edit(as, &localCmdInfo, localCmdHandler)
	delete(as, &localCmdInfo, localCmdHandler)
	move(as, &localCmdInfo, localCmdHandler)
	reorder(as, &localCmdInfo, localCmdHandler)
	registrations(as, &localCmdInfo, localCmdHandler)
	exportCSV(as, &localCmdInfo, localCmdHandler)
	ics(as, &localCmdInfo, localCmdHandler)
	announce(as, &localCmdInfo, localCmdHandler)
	invite(as, &localCmdInfo, localCmdHandler)
	feedbackRequest(as, &localCmdInfo, localCmdHandler)
	register(as, &localCmdInfo, localCmdHandler)
	unregister(as, &localCmdInfo, localCmdHandler)

	id := "event"
	as.AddCmdInfo(id, &utils.CmdInfo{
		Name:        id,
		Usage:       "<subcommand>",
		Description: "Event management commands.",
		Options:     localCmdInfo,
	})
	as.AddCmdHandler(id, as.Group(id, localCmdInfo, localCmdHandler))
}

// loadEvents fills the store from the backend, or from the local cache
// when offline is set or the backend can't be reached.
func loadEvents(ctx context.Context, as *utils.AppState, offline bool) error {
	if offline {
		if err := as.Events.LoadCached(ctx); err != nil {
			return fmt.Errorf("loadEvents: %w", err)
		}
		return nil
	}
	err := as.Events.Load(ctx)
	if err == nil {
		return nil
	}
	slog.Warn("can't load events, falling back to the local cache", "error", err)
	if cacheErr := as.Events.LoadCached(ctx); cacheErr != nil || len(as.Events.Events()) == 0 {
		return fmt.Errorf("loadEvents: %w", err)
	}
	return nil
}

// openOutput opens path for writing, "-" meaning the command output.
func openOutput(as *utils.AppState, path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{as.Out}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("openOutput: %w", err)
	}
	return file, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
