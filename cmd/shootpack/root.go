package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/shootpack/config"
)

const envPrefix = "SHOOTPACK"

// newRootCmd builds the command tree with its own viper instance
// Flags bind to SHOOTPACK_* environment variables, e.g. SHOOTPACK_LOG_LEVEL
func newRootCmd() *cobra.Command {
	v := newViper()

	root := &cobra.Command{
		Use:           "shootpack",
		Short:         "Satellite rows and gauge zero-crossing events for a terminal scene",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "TOML config file")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-file", "", "log file, logging is discarded when empty")
	_ = v.BindPFlags(root.PersistentFlags())

	root.AddCommand(newRunCmd(v))
	root.AddCommand(newLayoutCmd(v))
	return root
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig resolves the config file then applies flag and environment overrides
func loadConfig(v *viper.Viper) (config.Config, error) {
	cfg := config.Default()
	if path := v.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if lvl := v.GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if file := v.GetString("log-file"); file != "" {
		cfg.Log.File = file
	}
	return cfg, nil
}
