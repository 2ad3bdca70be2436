package utils

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/model"
)

var (
	ErrUsage     = errors.New("usage")
	ErrForbidden = errors.New("not allowed for your role")
)

// NewFlagSet returns a flag set that reports errors instead of exiting and
// prints its usage to the command output.
func (as *AppState) NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(as.Out)
	return fs
}

// Group wraps a set of subcommands into one handler dispatching on the
// first argument.
func (as *AppState) Group(id string, cmdInfo []*CmdInfo, cmdHandler map[string]CmdHandler) CmdHandler {
	return func(ctx context.Context, args []string) error {
		if len(args) == 0 {
			PrintUsage(as.Out, id, cmdInfo)
			return fmt.Errorf("%s: %w: missing subcommand", id, ErrUsage)
		}
		if handler, ok := cmdHandler[args[0]]; ok {
			return handler(ctx, args[1:])
		}
		PrintUsage(as.Out, id, cmdInfo)
		return fmt.Errorf("%s: %w: unknown subcommand %q", id, ErrUsage, args[0])
	}
}

func PrintUsage(w io.Writer, id string, cmdInfo []*CmdInfo) {
	fmt.Fprintf(w, "Usage of %s:\n", id)
	for _, info := range cmdInfo {
		fmt.Fprintf(w, "  %s %s\n", FitWidth(info.Name+" "+info.Usage, 40), info.Description)
	}
}

// Role returns the role of the stored session.
func (as *AppState) Role(ctx context.Context) (model.Role, error) {
	s, err := as.Sessions.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("(*AppState).Role: %w", err)
	}
	return s.Role, nil
}

// Require fails with ErrForbidden unless the stored session's role has the
// capability picked by allowed.
func (as *AppState) Require(ctx context.Context, action string, allowed func(dashboard.Capabilities) bool) error {
	role, err := as.Role(ctx)
	if err != nil {
		return err
	}
	if !allowed(dashboard.CapabilitiesOf(role)) {
		return fmt.Errorf("%s: %w (%s)", action, ErrForbidden, role)
	}
	return nil
}

// ParseID reads the positional id argument at index i.
func ParseID(args []string, i int, what string) (int64, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("%w: missing %s", ErrUsage, what)
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrUsage, what, args[i])
	}
	return id, nil
}

// ParseArgs parses flags placed anywhere among the positional arguments and
// returns the positional ones in order.
func ParseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", fs.Name(), ErrUsage, err)
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}
