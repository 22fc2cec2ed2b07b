package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/command"
	"github.com/faizmokh/amigos/internal/config"
	"github.com/faizmokh/amigos/internal/files"
	"github.com/faizmokh/amigos/internal/logging"
	"github.com/faizmokh/amigos/internal/storage"
)

// app carries the wiring shared by every subcommand. The store is opened
// lazily so commands that never touch data do not create any files.
type app struct {
	flags config.Config

	log   logging.Logger
	store storage.Store
}

func (a *app) open(ctx context.Context) (storage.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg = config.Merge(cfg, a.flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}
	a.log = log

	manager, err := files.NewManager(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, cfg, manager, log)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage, err)
	}
	a.store = store
	a.log.Debug(ctx, "storage ready", "storage", cfg.Storage, "dir", manager.BasePath())
	return store, nil
}

func (a *app) logger() logging.Logger {
	if a.log == nil {
		a.log = logging.Discard()
	}
	return a.log
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// load opens the store if needed and reads the address book.
func (a *app) load(ctx context.Context) (storage.Store, *addressbook.AddressBook, error) {
	store, err := a.open(ctx)
	if err != nil {
		return nil, nil, err
	}
	book, err := store.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return store, book, nil
}

// query executes c against a freshly loaded book without saving it. Used by
// commands that only change the displayed view.
func (a *app) query(ctx context.Context, name string, c command.Command) (command.Result, *addressbook.AddressBook, error) {
	_, book, err := a.load(ctx)
	if err != nil {
		return command.Result{}, nil, err
	}
	result, err := c.Execute(book)
	if err != nil {
		return command.Result{}, nil, err
	}
	a.logger().Debug(ctx, "query executed", "command", name)
	return result, book, nil
}

// run executes c against a freshly loaded book and persists the result.
func (a *app) run(ctx context.Context, name string, c command.Command) (command.Result, *addressbook.AddressBook, error) {
	store, book, err := a.load(ctx)
	if err != nil {
		return command.Result{}, nil, err
	}

	result, err := c.Execute(book)
	if err != nil {
		a.logger().Info(ctx, "command rejected", "command", name, "error", err)
		return command.Result{}, nil, err
	}

	if err := store.Save(ctx, book); err != nil {
		return command.Result{}, nil, err
	}
	a.logger().Info(ctx, "command executed", "command", name)
	return result, book, nil
}
