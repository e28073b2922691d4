package storages

import (
	"context"
	"errors"

	"github.com/reusee/chrono/chronoconfigs"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs chronoconfigs.Module
}

var ErrStoreDisabled = errors.New("solution store disabled")

// OpenStore opens the configured store. Callers close it.
type OpenStore func(ctx context.Context) (*Store, error)

func (Module) OpenStore(
	path chronoconfigs.DBPath,
	logger logs.Logger,
) OpenStore {
	return func(ctx context.Context) (*Store, error) {
		if path == "" {
			return nil, ErrStoreDisabled
		}
		logger.DebugContext(ctx, "open store", "path", string(path))
		return Open(ctx, string(path))
	}
}
