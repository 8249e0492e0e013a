package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/littlelemon/internal/config"
	"github.com/idilsaglam/littlelemon/internal/source"
	"github.com/idilsaglam/littlelemon/internal/store"
	"github.com/idilsaglam/littlelemon/internal/store/filestore"
	"github.com/idilsaglam/littlelemon/internal/store/memstore"
	"github.com/idilsaglam/littlelemon/internal/store/sqlitestore"
)

// openStore builds the configured backend. DriverNone yields a nil store,
// which removes the local tier.
func openStore(cfg config.Config, logger *zerolog.Logger) (store.Store, func(), error) {
	noop := func() {}
	switch cfg.Store.Driver {
	case config.DriverNone:
		return nil, noop, nil
	case config.DriverMemory:
		return memstore.New(), noop, nil
	case config.DriverJSON:
		return filestore.New(filestore.Config{Path: cfg.StorePath(), Format: filestore.JSON, Logger: logger}), noop, nil
	case config.DriverCBOR:
		return filestore.New(filestore.Config{Path: cfg.StorePath(), Format: filestore.CBOR, Logger: logger}), noop, nil
	case config.DriverSQLite:
		s, err := sqlitestore.Open(sqlitestore.Config{Path: cfg.StorePath(), Logger: logger})
		if err != nil {
			return nil, noop, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				logger.Warn().Err(err).Msg("closing store")
			}
		}, nil
	}
	return nil, noop, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func newResolver(cfg config.Config, st store.Store, logger *zerolog.Logger) *source.Resolver {
	var remote source.Fetcher
	if !cfg.Remote.Disabled {
		remote = source.NewRemote(cfg.Remote.URL, cfg.Remote.Timeout)
	}
	return source.New(source.Config{
		Remote: remote,
		Store:  st,
		Logger: logger,
	})
}
