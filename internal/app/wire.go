//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/openride-labs/ridesync/internal/adapters"
	"github.com/openride-labs/ridesync/internal/adapters/interactive"
	"github.com/openride-labs/ridesync/internal/config"
	"github.com/openride-labs/ridesync/internal/logging"
	"github.com/openride-labs/ridesync/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Runtime configuration
		config.Provider,

		// Logging
		logging.NewLogger,

		// Adapters
		adapters.AllAdapters,
		interactive.NewSelectorAdapter,

		// Use cases
		usecase.NewSyncEnv,
		usecase.NewShowDeployment,
		usecase.NewCheckDeployment,

		// App
		NewApp,
	)
	return nil, nil
}
