// Command kaiseki trains and applies restaurant-rating regression models
// from the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kaiseki-ml/kaiseki/pkg/log"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "kaiseki",
	Short: "kaiseki: closed-form rating prediction for tabular restaurant data",
	Long: `kaiseki fits a linear regression model to a cleaned tabular dataset
using the normal equation with a pseudo-inverse solve, evaluates it on a
deterministic train/test split and ranks features by learned weight.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetupLogger(logLevel)
	},
}

func main() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./kaiseki.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

// loadConfig reads an optional YAML config file. Flags bound to viper keys
// override config values when set on the command line.
func loadConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kaiseki")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; all settings have flag equivalents.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		fmt.Fprintf(os.Stderr, "Warning: failed to read config: %v\n", err)
	}
}
