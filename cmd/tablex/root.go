package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rusperres/tablex/internal/config"
	"github.com/rusperres/tablex/internal/detect"
	"github.com/rusperres/tablex/internal/extract"
	"github.com/rusperres/tablex/internal/home"
	"github.com/rusperres/tablex/version"
)

var (
	cfgFile string
	homeDir string

	rootCmd = &cobra.Command{
		Use:   "tablex <pdf_path>",
		Short: "Extract tables from a PDF as JSON records",
		Long: `Tablex extracts every table from a PDF document and prints them to
stdout as a single JSON array of flat records, one record per table row.

Detection first looks for ruled tables; if the document has none, it
falls back to inferring tables from text alignment. Failures are
reported as a single JSON object on stderr.`,
		Version:       version.GitRelease,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := resolveConfigFile()
			if err != nil {
				return err
			}
			mgr, err := config.NewManager(cfgPath)
			if err != nil {
				return err
			}
			cfg := mgr.Get()
			logger := newLogger(cfg)

			engine := detect.NewEngine(cfg.Detect, logger)
			driver := extract.NewDriver(engine, logger)

			out, err := driver.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
)

// newLogger builds the process logger on stderr, keeping stdout free
// for the extraction result.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// resolveConfigFile picks the explicit --config file, or the config
// inside --home when one was given and the file exists. An empty
// return falls through to the default search paths.
func resolveConfigFile() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	if homeDir == "" {
		return "", nil
	}
	h, err := home.New(homeDir)
	if err != nil {
		return "", err
	}
	if h.ConfigExists() {
		return h.ConfigPath(), nil
	}
	return "", nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tablex/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "tablex home directory (default is $HOME/.tablex)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}
