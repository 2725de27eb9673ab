package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"desknotify/config"
	"desknotify/internal/event"
	"desknotify/internal/notification"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// app is the state shared by all subcommands once the root command has
// loaded configuration.
type app struct {
	envFile  string
	logLevel string

	cfg    config.Config
	log    zerolog.Logger
	stderr io.Writer

	// notificationOptions are passed to every notification; tests use it
	// to swap the platform backend.
	notificationOptions []notification.Option
}

// Execute is the entry point called from main.go.
func Execute() {
	if err := newRootCmd(&app{stderr: os.Stderr}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "desknotify",
		Short: "Show desktop notifications",
		Long: `desknotify shows desktop notifications through the platform's
notification service: the freedesktop D-Bus interface on Linux and BSD,
Notification Center on macOS and toasts on Windows.

  desknotify show            Show a single notification
  desknotify watch           Show a notification per line read from stdin
  desknotify server-info     Identify the running notification server
  desknotify capabilities    List the server's optional features`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile,
		"dotenv file to load DESKNOTIFY_* settings from")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"log level: trace, debug, info, warn, error (default from DESKNOTIFY_LOG_LEVEL or info)")

	root.Version = Version
	root.AddCommand(
		newShowCmd(a),
		newWatchCmd(a),
		newServerInfoCmd(a),
		newCapabilitiesCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if a.stderr == nil {
		a.stderr = cmd.ErrOrStderr()
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: a.stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().
		Logger()
	return nil
}

// defaults turns the loaded configuration into event defaults.
func (a *app) defaults() event.Event {
	return event.Event{
		AppName: a.cfg.AppName,
		Icon:    a.cfg.Icon,
		Timeout: a.cfg.Timeout,
		Urgency: a.cfg.Urgency,
	}
}
