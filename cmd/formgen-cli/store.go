package main

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbuilder/internal/config"
	"github.com/goliatone/go-formbuilder/pkg/storage"
	"github.com/goliatone/go-formbuilder/pkg/themes"
)

// openStore builds the theme store on the configured storage driver. The
// returned close function releases the underlying slot.
func openStore(ctx context.Context) (*themes.Store, func() error, error) {
	noop := func() error { return nil }
	cfg := appConfig.Theme.Storage

	var (
		slot    storage.Slot
		closeFn = noop
	)
	switch cfg.Driver {
	case config.DriverMemory:
		slot = storage.NewMemorySlot()
	case config.DriverFile:
		slot = storage.NewFileSlot(cfg.Path)
	case config.DriverSQLite:
		db, err := storage.OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		slot, closeFn = db, db.Close
	default:
		return nil, noop, fmt.Errorf("unknown theme storage driver %q", cfg.Driver)
	}

	store := themes.NewStore(ctx,
		themes.WithSlot(slot),
		themes.WithLogger(logger),
	)
	return store, closeFn, nil
}
