package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusevents/src-client/gateway"
	"campusevents/src-client/handler"
	"campusevents/src-client/handler/auth_handler"
	"campusevents/src-client/handler/event_handler"
	"campusevents/src-client/metric"
	"campusevents/src-client/session"
	"campusevents/src-client/utils"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Debug(err.Error())
	}
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	as := utils.NewAppState()

	// injecting command handlers into the registry in AppState
	event_handler.Init(as)
	auth_handler.Init(as)
	handler.Dashboard(as)
	handler.Profile(as)
	handler.MyRegistrations(as)
	handler.Feedback(as)
	handler.Admin(as)
	handler.Judge(as)
	handler.Recruiter(as)
	handler.Ping(as)

	args := os.Args[1:]
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printHelp(as.Out, as)
		as.GracefulShutdown()
		return
	}

	cmdHandler, ok := as.GetCmdHandler(args[0])
	if !ok {
		printHelp(os.Stderr, as)
		slog.Error("unknown command", "command", args[0])
		as.GracefulShutdown()
		os.Exit(2)
	}

	if as.Config.GetMetricPort() != "" {
		metric.Init(as)
		go metric.Serve(as)
	}

	ctx, cancel := context.WithCancel(context.Background())
	signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	go func() {
		<-as.AppCloseSignalChan
		slog.Debug("interrupted, cancelling")
		cancel()
	}()

	err := cmdHandler(ctx, args[1:])
	cancel()
	as.GracefulShutdown()
	os.Exit(exitCode(err, args[0]))
}

func exitCode(err error, command string) int {
	var apiErr *gateway.APIError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, session.ErrNoSession):
		slog.Error("not logged in, run: auth login <email>", "command", command)
		return 1
	case errors.As(err, &apiErr) && apiErr.Unauthorized():
		slog.Error("session expired or not permitted, run: auth login <email>", "command", command, "detail", apiErr.Detail)
		return 1
	case errors.Is(err, utils.ErrUsage):
		slog.Error("invalid usage", "command", command, "error", err)
		return 2
	default:
		slog.Error("command failed", "command", command, "error", err)
		return 1
	}
}

func printHelp(w io.Writer, as *utils.AppState) {
	fmt.Fprintln(w, "Usage: campusevents <command> [arguments]")
	fmt.Fprintln(w)
	as.IterateCmdInfo(func(id string, info *utils.CmdInfo) {
		fmt.Fprintf(w, "  %s %s\n", utils.FitWidth(id+" "+info.Usage, 28), info.Description)
		for _, option := range info.Options {
			fmt.Fprintf(w, "      %s %s\n", utils.FitWidth(option.Name+" "+option.Usage, 24), option.Description)
		}
	})
}
