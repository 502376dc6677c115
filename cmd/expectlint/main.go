// Command expectlint validates a test expectations file: every entry must
// parse, declared regexp patterns must compile, and match strategies must
// have a message to match. Its init subcommand writes a starter file.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	internalconfig "github.com/nisha-kaushik/nunit/internal/config"
	"github.com/nisha-kaushik/nunit/pkg/config"
	"github.com/nisha-kaushik/nunit/pkg/logger"
)

var (
	// ErrInvalidExpectations is returned when one or more entries fail lint.
	ErrInvalidExpectations = errors.New("invalid expectations")

	// ErrConfigExists is returned when init would overwrite an existing file.
	ErrConfigExists = errors.New("expectations file already exists")
)

var (
	configPath string
	logFile    string
	debugMode  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "expectlint",
		Short:         "Validate a test expectations file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}

			return lint(cmd, configPath, log)
		},
	}

	cmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		internalconfig.DefaultConfigFile,
		"path to the expectations file",
	)
	cmd.PersistentFlags().StringVar(
		&logFile,
		"log-file",
		"",
		"write structured logs to this file",
	)
	cmd.PersistentFlags().BoolVar(
		&debugMode,
		"debug",
		false,
		"enable debug logging",
	)

	cmd.AddCommand(newInitCmd())

	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter expectations file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}

			return initConfig(cmd, configPath, log)
		},
	}
}

// newLogger builds the CLI logger: silent unless a log file is given.
//
//nolint:ireturn // interface for polymorphism
func newLogger() (logger.Logger, error) {
	if logFile == "" {
		return logger.NewNoOpLogger(), nil
	}

	log, err := logger.NewFileLogger(logFile, debugMode, false)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", logFile)
	}

	return log, nil
}

func lint(cmd *cobra.Command, path string, log logger.Logger) error {
	cfg, err := internalconfig.NewLoader(path).Load()
	if err != nil {
		log.Error("loading expectations failed", "path", path, "error", err)

		return err
	}

	log.Info("loaded expectations",
		"path", path,
		"entries", len(cfg.Expectations),
	)

	entryErrs := internalconfig.Validate(cfg)

	failures := make(map[string]string, len(entryErrs))
	for _, entryErr := range entryErrs {
		failures[entryErr.Test] = entryErr.Err.Error()

		log.Error("invalid expectation entry",
			"test", entryErr.Test,
			"error", entryErr.Err,
		)
	}

	renderReport(cmd, cfg, failures)

	if len(entryErrs) > 0 {
		return errors.Wrapf(
			ErrInvalidExpectations,
			"%d of %d entries invalid",
			len(entryErrs),
			len(cfg.Expectations),
		)
	}

	return nil
}

// initConfig writes the scaffold expectations file, refusing to overwrite.
func initConfig(cmd *cobra.Command, path string, log logger.Logger) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Wrapf(ErrConfigExists, "%s", path)
	}

	if err := internalconfig.NewWriter().WriteFile(path, internalconfig.Scaffold()); err != nil {
		log.Error("writing scaffold failed", "path", path, "error", err)

		return err
	}

	log.Info("wrote scaffold expectations", "path", path)
	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}

func renderReport(cmd *cobra.Command, cfg *config.Config, failures map[string]string) {
	names := make([]string, 0, len(cfg.Expectations))
	for name := range cfg.Expectations {
		names = append(names, name)
	}

	sort.Strings(names)

	t := tablewriter.NewTable(cmd.OutOrStdout())
	t.Header([]string{"Test", "Type", "Match", "Status", "Detail"})

	for _, name := range names {
		entry := cfg.Expectations[name]

		status, detail := "ok", ""
		if msg, failed := failures[name]; failed {
			status, detail = "invalid", msg
		}

		row := []string{name, entryType(entry), entryMatch(entry), status, detail}

		_ = t.Append(row)
	}

	_ = t.Render()
}

func entryType(entry *config.ExpectationConfig) string {
	if entry == nil || entry.Type == "" {
		return "(any)"
	}

	return entry.Type
}

func entryMatch(entry *config.ExpectationConfig) string {
	if entry == nil {
		return ""
	}

	if !entry.HasMessage() {
		return "(none)"
	}

	return entry.Match.String()
}
