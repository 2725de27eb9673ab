package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"desknotify/internal/repository"
	"desknotify/internal/service"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		replace  bool
		interval time.Duration
		burst    int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a notification for every line read from stdin",
		Long: `Watch reads events from stdin until it is closed or the process is
interrupted. Each line is either a JSON object with the fields summary,
body, subtitle, appname, icon, image_path, sound_name, timeout, urgency
and id, or plain text where everything before the first ':' is the
summary and the rest is the body.`,
		Example: `  tail -f build.log | grep --line-buffered FAILED | desknotify watch --replace`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := service.Config{
				Defaults:            a.defaults(),
				Replace:             replace,
				Interval:            a.cfg.WatchInterval,
				Burst:               a.cfg.WatchBurst,
				NotificationOptions: a.notificationOptions,
			}
			if cmd.Flags().Changed("interval") {
				cfg.Interval = interval
			}
			if cmd.Flags().Changed("burst") {
				cfg.Burst = burst
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := service.NewService(repository.NewRepository(cmd.InOrStdin()), cfg, a.log)
			return svc.Start(ctx)
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "update a single notification instead of showing one per event")
	cmd.Flags().DurationVar(&interval, "interval", 0, "minimum time between notifications (default from DESKNOTIFY_WATCH_INTERVAL)")
	cmd.Flags().IntVar(&burst, "burst", 0, "notifications allowed back to back before the interval applies")
	return cmd
}
