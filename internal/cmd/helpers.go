package cmd

import (
	"strconv"

	"github.com/spf13/viper"

	"tasktracker/internal/config"
	"tasktracker/internal/errors"
	"tasktracker/internal/logging"
	"tasktracker/internal/registry"
	"tasktracker/internal/store"
)

// openRegistry loads configuration, builds the logger, and constructs a
// registry over the configured store file. The returned cleanup function
// closes the logger and must be called before the command exits.
func openRegistry(command string) (*registry.Registry, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "load configuration")
	}

	// The --file flag overrides the configured storage path.
	if file := viper.GetString("file"); file != "" {
		cfg.Storage.Path = file
	}

	log := logging.NopLogger()
	cleanup := func() {}
	if cfg.Logging.Enabled {
		log, err = logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
		if err != nil {
			return nil, nil, errors.Wrap(err, "initialize logging")
		}
		cleanup = func() { _ = log.Close() }
	}
	log = log.WithCommand(command)

	st := store.New(cfg.Storage.Path, log)
	reg, err := registry.Load(st, log)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return reg, cleanup, nil
}

// parseID converts a raw id argument into a positive integer. Anything else
// is rejected as invalid input before it reaches the core.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("id must be a positive integer").
			WithField("id").
			WithValue(raw)
	}
	return id, nil
}
