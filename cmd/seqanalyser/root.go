package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aria-lang/seqanalyser-go/internal/config"
	"github.com/aria-lang/seqanalyser-go/internal/sequence"
	"github.com/aria-lang/seqanalyser-go/internal/session"
	"github.com/aria-lang/seqanalyser-go/pkg/seqanalyser"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:          "seqanalyser",
		Short:        "Analyse DNA sequences from CSV, FASTA or spreadsheet files",
		Version:      seqanalyser.Version(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(a.v, path)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Log.NewLogger(cmd.ErrOrStderr())
			a.logger.Debug("loaded config", "log_level", cfg.Log.Level, "legacy_dispatch", cfg.Parser.LegacyDispatch, "window_width", cfg.Analysis.WindowWidth)
			return nil
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "settings file (yaml, json or toml)")
	root.PersistentFlags().Bool("legacy-dispatch", false, "read every non-CSV file as FASTA")
	root.PersistentFlags().Int("window", sequence.DefaultWindowWidth, "GC window width")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	a.v.BindPFlag("parser.legacy-dispatch", root.PersistentFlags().Lookup("legacy-dispatch"))
	a.v.BindPFlag("analysis.window-width", root.PersistentFlags().Lookup("window"))
	a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		a.analyzeCmd(),
		a.summaryCmd(),
		a.chartCmd(),
		a.exportCmd(),
		versionCmd(),
	)
	return root
}

// load parses path into a fresh session configured from a.cfg.
func (a *app) load(path string) (*session.State, error) {
	if path == "" {
		return nil, fmt.Errorf("--file is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	s := session.New(
		session.WithLogger(a.logger),
		session.WithLegacyDispatch(a.cfg.Parser.LegacyDispatch),
		session.WithWindowWidth(a.cfg.Analysis.WindowWidth),
	)
	if err := s.Upload(data, filepath.Base(path)); err != nil {
		return nil, err
	}
	return s, nil
}

// selectValue selects value, or the first option when value was not given.
func selectValue(s *session.State, value string, given bool) error {
	if !given {
		values := s.Table().Values()
		if len(values) == 0 {
			return seqanalyser.ErrNoRecords
		}
		value = values[0]
	}
	return s.Select(value)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), seqanalyser.Info())
		},
	}
}
