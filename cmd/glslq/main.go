package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/glslq/config"
)

const version = "0.1.0"

var (
	verbosity  int
	configPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "glslq",
		Short:        "Parse, inspect and format GLSL shaders",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to "+config.FileName+" (default: nearest to the working directory)")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newGrammarCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config, or the nearest config file. A config
// verbosity applies when -v was not given.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadNearest(".")
	}
	if err != nil {
		return nil, err
	}
	if verbosity == 0 && cfg.Verbosity > 0 {
		commonlog.Configure(cfg.Verbosity, nil)
	}
	return cfg, nil
}
