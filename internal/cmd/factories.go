package cmd

import (
	"errors"

	adapterstorage "timekeeper/internal/adapters/storage"
	"timekeeper/internal/config"
	"timekeeper/internal/domain"
	"timekeeper/internal/logging"
	"timekeeper/internal/services"
	"timekeeper/paths"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	BlockService     *services.BlockService
	HistoryService   *services.HistoryService
	StopwatchService *services.StopwatchService
	TagService       *services.TagService

	Settings *config.Settings

	// Internal - for cleanup only
	store *adapterstorage.Store
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	store, err := openStore(paths.GetDBPath())
	if err != nil {
		return nil, err
	}
	return newContainerWithStore(store, settings), nil
}

func newContainerWithStore(store *adapterstorage.Store, settings *config.Settings) *Container {
	if settings == nil {
		settings = &config.Settings{}
	}

	historySettings := services.HistorySettings{
		DailyGoal:   settings.GetDailyGoal(),
		StartOfWeek: settings.GetStartOfWeek(),
		WeeklyGoal:  settings.GetWeeklyGoal(),
	}

	return &Container{
		BlockService:     services.NewBlockService(store.Blocks(), store.Tags()),
		HistoryService:   services.NewHistoryService(store.Blocks(), historySettings, nil),
		StopwatchService: services.NewStopwatchService(store.Blocks(), nil),
		TagService:       services.NewTagService(store.Tags()),
		Settings:         settings,
		store:            store,
	}
}

// openStore opens the store at dbPath. When the file cannot be created or opened
// it falls back to an in-memory store; migration faults stay fatal.
func openStore(dbPath string) (*adapterstorage.Store, error) {
	store, err := adapterstorage.Open(dbPath)
	if err == nil {
		return store, nil
	}
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		logging.Logger.Error("Failed to open store", "path", dbPath, "error", err)
		return nil, err
	}

	logging.Logger.Warn("Store unavailable, using in-memory store", "path", dbPath, "error", err)
	return adapterstorage.OpenInMemory()
}

// InMemory reports whether nothing is being saved to disk
func (c *Container) InMemory() bool {
	return c.store != nil && c.store.InMemory()
}

// StorePath returns the path of the open store
func (c *Container) StorePath() string {
	if c.store == nil {
		return ""
	}
	return c.store.Path()
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
