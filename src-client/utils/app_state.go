package utils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"campusevents/src-client/api"
	"campusevents/src-client/gateway"
	"campusevents/src-client/model"
	"campusevents/src-client/reorder"
	"campusevents/src-client/session"
	"campusevents/src-client/store"

	"github.com/bwmarrin/discordgo"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

type AppState struct {
	Config *Config
	RawDB  *sql.DB
	BunDB  *bun.DB
	When   *when.Parser

	Sessions session.Store
	Gateway  *gateway.Gateway
	API      *api.Client
	Events   *store.Store
	Reorder  *reorder.Controller

	// nil unless DISCORD_APP_TOKEN is set
	DgSession   *discordgo.Session
	MetricChans *Metric

	// command output, stdout outside of tests
	Out io.Writer
	// password prompt, swapped out in tests
	ReadPassword func(prompt string) (string, error)

	cmdInfo    map[string]*CmdInfo
	cmdHandler map[string]CmdHandler

	AppCloseSignalChan  chan os.Signal
	shutdownMu          sync.Mutex
	gracefulShutdownChs []chan struct{}
	startedAt           time.Time
}

// NewAppState opens the local database named by SESSION_DB and wires every
// client component on top of it.
func NewAppState() *AppState {
	config := NewConfig()
	rawDB, err := sql.Open(sqliteshim.ShimName, config.GetSessionDB()+"?mode=rwc")
	if err != nil {
		slog.Error("cannot open sqlite database", "error", err)
		os.Exit(1)
	}
	as, err := NewAppStateWith(config, rawDB, os.Stdout)
	if err != nil {
		slog.Error("cannot initialize app state", "error", err)
		os.Exit(1)
	}
	return as
}

func NewAppStateWith(config *Config, rawDB *sql.DB, out io.Writer) (*AppState, error) {
	as := &AppState{
		Config:             config,
		RawDB:              rawDB,
		Out:                out,
		MetricChans:        NewMetric(),
		cmdInfo:            make(map[string]*CmdInfo),
		cmdHandler:         make(map[string]CmdHandler),
		AppCloseSignalChan: make(chan os.Signal, 1),
		startedAt:          time.Now(),
	}

	// date parser
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	// database
	as.RawDB.SetMaxIdleConns(8)
	as.BunDB = bun.NewDB(as.RawDB, sqlitedialect.New())
	as.BunDB.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(true),
		bundebug.FromEnv("BUNDEBUG"),
	))
	if err := model.CreateSchema(context.Background(), as.BunDB); err != nil {
		return nil, fmt.Errorf("NewAppStateWith: %w", err)
	}

	// backend
	as.Sessions = session.NewBunStore(as.BunDB)
	as.Gateway = gateway.New(
		config.GetAPIURL(),
		as.Sessions,
		gateway.WithHTTPClient(&http.Client{Timeout: config.GetRequestTimeout()}),
		gateway.WithObserver(as.MetricChans.Observe),
	)
	as.API = api.New(as.Gateway, as.Sessions)
	as.Events = store.New(as.API, store.WithCache(&model.EventCache{DB: as.BunDB}))
	as.Reorder = reorder.New(as.Events, as.API)
	as.Reorder.OnPersisted = func(ids []int64, took time.Duration, err error) {
		if err == nil {
			as.MetricChans.ObserveReorder(took)
		}
	}

	// optional relay
	if token := config.GetDiscordAppToken(); token != "" {
		dg, err := discordgo.New("Bot " + token)
		if err != nil {
			return nil, fmt.Errorf("NewAppStateWith: can't create discord session: %w", err)
		}
		as.DgSession = dg
	}

	as.ReadPassword = readPasswordFromTerminal
	return as, nil
}

func (as *AppState) GetUptime() time.Duration {
	return time.Since(as.startedAt).Round(time.Second)
}

// CreateGracefulShutdownChan returns a channel closed by GracefulShutdown.
func (as *AppState) CreateGracefulShutdownChan() <-chan struct{} {
	as.shutdownMu.Lock()
	defer as.shutdownMu.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownChs = append(as.gracefulShutdownChs, ch)
	return ch
}

// GracefulShutdown stops background loops, waits for pending reorder saves
// and closes the database.
func (as *AppState) GracefulShutdown() {
	as.shutdownMu.Lock()
	for _, ch := range as.gracefulShutdownChs {
		close(ch)
	}
	as.gracefulShutdownChs = nil
	as.shutdownMu.Unlock()

	as.Reorder.Wait()
	if as.DgSession != nil {
		if err := as.DgSession.Close(); err != nil {
			slog.Warn("can't close discord session", "error", err)
		}
	}
	if err := as.BunDB.Close(); err != nil {
		slog.Warn("can't close database", "error", err)
	}
}

// #region - commands

type CmdHandler func(ctx context.Context, args []string) error

type CmdInfo struct {
	Name        string
	Usage       string // arguments after the name, e.g. "<id> [--search term]"
	Description string
	Options     []*CmdInfo // subcommands
}

func (as *AppState) AddCmdInfo(id string, info *CmdInfo) {
	as.cmdInfo[id] = info
}

func (as *AppState) AddCmdHandler(id string, handler CmdHandler) {
	as.cmdHandler[id] = handler
}

func (as *AppState) GetCmdHandler(id string) (CmdHandler, bool) {
	handler, ok := as.cmdHandler[id]
	return handler, ok
}

// IterateCmdInfo walks the registered commands in name order.
func (as *AppState) IterateCmdInfo(fn func(id string, info *CmdInfo)) {
	ids := make([]string, 0, len(as.cmdInfo))
	for id := range as.cmdInfo {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fn(id, as.cmdInfo[id])
	}
}

// #endregion
