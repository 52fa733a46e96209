package app

import (
	"log/slog"

	"github.com/openride-labs/ridesync/internal/adapters/interactive"
	"github.com/openride-labs/ridesync/internal/config"
	"github.com/openride-labs/ridesync/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Selector *interactive.SelectorAdapter

	// Use cases
	SyncEnv         *usecase.SyncEnv
	ShowDeployment  *usecase.ShowDeployment
	CheckDeployment *usecase.CheckDeployment
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector *interactive.SelectorAdapter,
	syncEnv *usecase.SyncEnv,
	showDeployment *usecase.ShowDeployment,
	checkDeployment *usecase.CheckDeployment,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		Selector:        selector,
		SyncEnv:         syncEnv,
		ShowDeployment:  showDeployment,
		CheckDeployment: checkDeployment,
	}, nil
}
