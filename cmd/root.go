// Package cmd is for command line interactions with the seqtax application
package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/dnakit/seqtax/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stderr is for user-facing fatal errors, without a log-line timestamp
// cluttering the command-line output.
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "seqtax",
	Short: `Find open reading frames in nucleotide sequences and query an NCBI
taxonomy dump for lineage, rank, and lowest-common-ancestor information.`,
	Version: "0.1.0",
}

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.PersistentFlags().StringP("settings", "s", config.RootSettingsFile, "path to a settings file")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
}

// initSettings loads whatever settings file --settings points at, if it
// exists. A missing file is not an error: defaults (and any flags bound
// directly to Viper) still apply.
func initSettings() {
	viper.SetConfigFile(viper.GetString("settings"))
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("could not read settings file: %v", err)
		}
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
