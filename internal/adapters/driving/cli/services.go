package cli

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docfind/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docfind/internal/adapters/driven/storage"
	"github.com/custodia-labs/docfind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
	"github.com/custodia-labs/docfind/internal/core/services"
	"github.com/custodia-labs/docfind/internal/logger"
)

// Services used by commands. They are built on first use, or injected by tests.
var (
	settingsService driving.SettingsService
	searchService   driving.SearchService
	corpusService   driving.CorpusService

	// corpusStore backs searchService and corpusService when they were
	// built here. Nil when services were injected.
	corpusStore *storage.ReloadingStore

	// asyncThreshold is the configured corpus size for off-loop ranking.
	asyncThreshold = domain.DefaultAsyncThreshold
)

// loadSettings builds settingsService from the configuration flags.
func loadSettings() error {
	if settingsService != nil {
		return nil
	}

	var store driven.ConfigStore
	if noConfig {
		store = memory.NewConfigStore(nil)
	} else {
		dir := configDir
		if dir == "" {
			var err error
			if dir, err = file.DefaultConfigDir(); err != nil {
				return err
			}
		}
		fileStore, err := file.NewConfigStore(dir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		store = fileStore
	}

	settingsService = services.NewSettingsService(store)
	logger.Debug("Config: %s", settingsService.Path())
	return nil
}

// loadCorpus builds the corpus, search and corpus services.
// The corpus comes from --corpus, then corpus.path, then the builtin set.
func loadCorpus(ctx context.Context) error {
	if searchService != nil && corpusService != nil {
		return nil
	}
	if err := loadSettings(); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	path := corpusFlag
	if path == "" {
		path = settings.CorpusPath
	}
	source, err := storage.NewCorpusSource(path)
	if err != nil {
		return err
	}
	store, err := storage.NewReloadingStore(ctx, source)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	search, err := services.NewSearchService(store, settings.Search)
	if err != nil {
		return err
	}

	corpusStore = store
	searchService = search
	corpusService = services.NewCorpusService(store)
	asyncThreshold = settings.AsyncThreshold
	return nil
}

// corpusFilePath returns the path of the loaded corpus file, or "" for the builtin corpus.
func corpusFilePath() string {
	if corpusFlag != "" {
		return corpusFlag
	}
	if settingsService == nil {
		return ""
	}
	settings, err := settingsService.Get()
	if err != nil {
		return ""
	}
	return settings.CorpusPath
}

// startWatch reloads the corpus whenever its file changes, until ctx is done.
func startWatch(ctx context.Context) error {
	if corpusStore == nil {
		return fmt.Errorf("%w: --watch needs a corpus loaded by docfind", domain.ErrInvalidInput)
	}
	watcher, err := storage.NewWatcher(corpusStore, corpusFilePath(), storage.DefaultReloadInterval)
	if err != nil {
		return err
	}

	reloads := watcher.Run(ctx)
	go func() {
		defer watcher.Close()
		for reload := range reloads {
			if reload.Err != nil {
				logger.Warn("Corpus reload failed: %v", reload.Err)
			}
		}
	}()
	return nil
}
