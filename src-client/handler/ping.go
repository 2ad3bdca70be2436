package handler

import (
	"context"
	"fmt"
	"runtime"

	"campusevents/src-client/utils"

	"github.com/dustin/go-humanize"
)

func Ping(as *utils.AppState) {
	id := "ping"
	as.AddCmdHandler(id, pingHandler(as))
	as.AddCmdInfo(id, &utils.CmdInfo{
		Name:        id,
		Description: "Check the backend is reachable.",
	})
}

func pingHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		latency, err := as.API.Ping(ctx)
		if err != nil {
			return fmt.Errorf("pingHandler: %w", err)
		}
		fmt.Fprintln(as.Out, "Pong!")
		fmt.Fprintf(as.Out, "  Backend:    %s\n", as.Gateway.BaseURL())
		fmt.Fprintf(as.Out, "  Latency:    %dms\n", latency.Milliseconds())
		fmt.Fprintf(as.Out, "  Uptime:     %s\n", as.GetUptime())
		fmt.Fprintf(as.Out, "  Go version: %s\n", runtime.Version())
		fmt.Fprintf(as.Out, "  Memory:     %s\n", humanize.IBytes(m.Sys))
		return nil
	}
}
