// Package cmd is for command line interactions with the mhci application
package cmd

import (
	stdlog "log"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/recinall/mhci-binding-predictor/config"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "mhci",
	Short: `Score, rank and filter candidate MHC class I epitopes.
Immunogenicity is computed locally; binding metrics come from external prediction exports`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if settings := viper.GetString("settings"); settings != "" {
			viper.SetConfigFile(settings)
			if err := viper.ReadInConfig(); err != nil {
				stdlog.Fatalf("failed to read settings file: %v", err)
			}
		}

		log.SetLevel(log.WarnLevel)
		if viper.GetBool("verbose") {
			log.SetLevel(log.InfoLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		stdlog.Fatalf("%v", err)
	}
}

// set flags
func init() {
	rootCmd.PersistentFlags().StringP("settings", "s", "", "settings file overriding the built-in defaults")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log scoring diagnostics to stderr")
	rootCmd.PersistentFlags().String("weight-mode", config.DefaultWeightMode, "short-peptide weight indexing, clamp or truncate")
	rootCmd.PersistentFlags().Int("min-length", config.DefaultMinLength, "minimum peptide length, inclusive")
	rootCmd.PersistentFlags().Int("max-length", config.DefaultMaxLength, "maximum peptide length, inclusive")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("weight-mode", rootCmd.PersistentFlags().Lookup("weight-mode"))
	viper.BindPFlag("min-length", rootCmd.PersistentFlags().Lookup("min-length"))
	viper.BindPFlag("max-length", rootCmd.PersistentFlags().Lookup("max-length"))
}
