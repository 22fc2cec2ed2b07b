// Package storage selects and opens the persistence backend for the address book.
package storage

import (
	"context"
	"fmt"

	"github.com/faizmokh/amigos/internal/addressbook"
	"github.com/faizmokh/amigos/internal/config"
	"github.com/faizmokh/amigos/internal/files"
	"github.com/faizmokh/amigos/internal/logging"
	"github.com/faizmokh/amigos/internal/storage/markdown"
	"github.com/faizmokh/amigos/internal/storage/sqlite"
)

// Store loads and saves a whole address book.
type Store interface {
	Load(ctx context.Context) (*addressbook.AddressBook, error)
	Save(ctx context.Context, book *addressbook.AddressBook) error
	Close() error
}

// Open returns the backend named by cfg.Storage, rooted in manager's data directory.
func Open(ctx context.Context, cfg config.Config, manager *files.Manager, log logging.Logger) (Store, error) {
	switch cfg.Storage {
	case "", config.StorageMarkdown:
		return markdown.NewStore(manager, log), nil
	case config.StorageSQLite:
		if err := manager.EnsureDir(); err != nil {
			return nil, err
		}
		return sqlite.Open(ctx, manager.DatabasePath(), log)
	default:
		return nil, fmt.Errorf("%w: unknown storage %q", config.ErrInvalidConfig, cfg.Storage)
	}
}
