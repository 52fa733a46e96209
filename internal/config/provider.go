package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	project, err := loadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}

	envFile := v.GetString("env_file")
	deploymentsDir := v.GetString("deployments_dir")
	if project != nil {
		if project.Paths.EnvFile != "" {
			envFile = project.Paths.EnvFile
		}
		if project.Paths.DeploymentsDir != "" {
			deploymentsDir = project.Paths.DeploymentsDir
		}
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".ridesync"),
		DeploymentsDir: absJoin(projectRoot, deploymentsDir),
		EnvFile:        absJoin(projectRoot, envFile),
		Network:        v.GetString("network"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		Defaults:       resolveDefaults(project),
		Project:        project,
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory looking for a
// ridesync.toml or a deployments directory. Falls back to the current
// directory so the tool keeps working when invoked next to bare artifacts.
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectConfigName)); err == nil {
			return dir
		}
		if fi, err := os.Stat(filepath.Join(dir, "deployments")); err == nil && fi.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".ridesync"))

	v.SetEnvPrefix("RIDESYNC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("network", "localhost")
	v.SetDefault("env_file", ".env")
	v.SetDefault("deployments_dir", "deployments")
	v.SetDefault("timeout", "30s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Config file is optional
	_ = v.ReadInConfig()

	bindFlags(v, cmd.Flags())
	bindFlags(v, cmd.InheritedFlags())

	return v
}

// bindFlags binds a flag set into viper under underscore-normalized keys
// (--non-interactive -> non_interactive).
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})
}

func absJoin(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
