// Package cmd implements the spark CLI: the component showcase and theme
// file tooling.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-drift/spark/pkg/errors"
	"github.com/go-drift/spark/pkg/logging"
)

// Version information set through SetVersion.
var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersion records build information for the version command.
func SetVersion(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// app carries the state shared by every command of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	stdout  io.Writer
	stderr  io.Writer
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "spark",
		Short: "Spark component kit tools",
		Long: `spark runs the interactive component showcase and manages theme files.

Configuration is read from --config, then SPARK_* environment variables
(SPARK_LOG_LEVEL, SPARK_THEME_FILE, ...), then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.initConfig()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/spark/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "auto", "log format (auto, text, json)")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))

	root.AddCommand(
		newShowcaseCmd(a),
		newThemeCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) initConfig() error {
	a.v.SetDefault("showcase.tick", "33ms")
	a.v.SetDefault("showcase.step", "1s")

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".spark")
		a.v.AddConfigPath("$HOME/.config/spark")
	}
	a.v.SetEnvPrefix("SPARK")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.E("cmd.initConfig", errors.KindConfig, err).WithPath(a.cfgFile)
		}
	}

	logger := logging.New(logging.Config{
		Level:  a.v.GetString("log.level"),
		Format: a.v.GetString("log.format"),
		Output: a.stderr,
	})
	logging.SetDefault(logger)
	verbose := logging.ParseLevel(a.v.GetString("log.level")) == slog.LevelDebug
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
	return nil
}

// bindFlags binds config keys to flags of cmd. Flags are bound when cmd
// runs because several commands share a key.
func (a *app) bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return errors.E("cmd.bindFlags", errors.KindConfig, err)
		}
	}
	return nil
}
