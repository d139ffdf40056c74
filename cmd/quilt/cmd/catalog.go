package cmd

import (
	"context"
	"fmt"

	"github.com/quiltlabs/quilt/pkg/core"
	"github.com/quiltlabs/quilt/pkg/dlogger"
	"github.com/quiltlabs/quilt/pkg/storage"
	"github.com/quiltlabs/quilt/pkg/storage/badgerdb"
	"github.com/quiltlabs/quilt/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// openCatalog reopens the archive configured through flags, config
// file or environment. The returned closer releases the backend and
// must be called before exit.
func openCatalog(ctx context.Context) (*core.Catalog, func(), error) {
	logger, err := dlogger.GetLogger(viper.GetString("loglevel"))
	if err != nil {
		return nil, nil, fmt.Errorf("configure logging: %w", err)
	}

	kind := viper.GetString("store.kind")
	path := viper.GetString("store.path")

	var (
		store  storage.Store
		closer = func() {}
	)
	switch kind {
	case storeKindLocalFS:
		store = localfs.New(afero.NewBasePathFs(afero.NewOsFs(), path))
	case storeKindBadger:
		bdg, err := badgerdb.New(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open badger store at %q: %w", path, err)
		}
		store = bdg
		closer = func() { _ = bdg.Close() }
	default:
		return nil, nil, fmt.Errorf("unknown store kind %q (want %s or %s)", kind, storeKindLocalFS, storeKindBadger)
	}

	catalog, err := core.Reopen(ctx, store, core.Logger(logger))
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("reopen catalog from %s: %w", store, err)
	}
	return catalog, closer, nil
}
