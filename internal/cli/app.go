package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/tuneboxed/sessionstore/internal/config"
	"github.com/tuneboxed/sessionstore/internal/logging"
	"github.com/tuneboxed/sessionstore/internal/session"
	"github.com/tuneboxed/sessionstore/internal/storage"
)

// App wires the session store to an interactive terminal loop.
type App struct {
	config *config.Config
	store  *session.Store
	log    logging.Logger
	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(storage.NewStateStore(db, log), log)
	if err := store.Load(ctx, c.ResetOnLaunch); err != nil {
		return nil, err
	}

	return &App{
		config: c,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.log.Debug(ctx, "starting interactive loop", "db", a.config.DatabaseDSN)
	a.Root(ctx)
}
