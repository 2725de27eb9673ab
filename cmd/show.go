package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"desknotify/internal/event"
	"desknotify/internal/notification"
	"desknotify/internal/service"
)

type showOptions struct {
	appName   string
	summary   string
	subtitle  string
	body      string
	icon      string
	autoIcon  bool
	imagePath string
	soundName string
	timeout   int32
	urgency   int
	id        uint32
}

func newShowCmd(a *app) *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a single notification",
		Long: `Show builds one notification and delivers it.

Timeout is -1 for the server default, -2 for never, or a lifetime in
milliseconds. Urgency is 0 (low), 1 (normal) or 2 (critical) and is only
available where notifications go over D-Bus. When the platform returns a
notification id it is printed; pass it back with --id to replace that
notification.`,
		Example: `  desknotify show --summary "Build finished" --body "Target X succeeded" --timeout 5000 --urgency 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ev := opts.event(cmd)
			n, err := service.Build(ev, a.defaults(), a.notificationOptions...)
			if err != nil {
				return err
			}
			if opts.autoIcon {
				n.AutoIcon()
			}

			id, hasID, err := service.Deliver(n)
			if err != nil {
				return fmt.Errorf("showing notification: %w", err)
			}
			a.log.Debug().Str("summary", n.Summary()).Str("timeout", n.TimeoutValue().String()).Msg("Sent notification")
			if hasID {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.appName, "appname", "", "application name (default: executable name)")
	f.StringVarP(&opts.summary, "summary", "s", "", "single-line summary, usually shown as the title")
	f.StringVar(&opts.subtitle, "subtitle", "", "subtitle (macOS only)")
	f.StringVarP(&opts.body, "body", "b", "", "body text; servers may support simple markup")
	f.StringVarP(&opts.icon, "icon", "i", "", "icon theme name or file path")
	f.BoolVar(&opts.autoIcon, "auto-icon", false, "use the executable name as the icon")
	f.StringVar(&opts.imagePath, "image-path", "", "image to show alongside the notification")
	f.StringVar(&opts.soundName, "sound-name", "", "sound to play")
	f.Int32VarP(&opts.timeout, "timeout", "t", notification.TimeoutDefault, "lifetime: -1 default, -2 never, or milliseconds")
	f.IntVarP(&opts.urgency, "urgency", "u", int(notification.UrgencyNormal), "urgency: 0 low, 1 normal, 2 critical")
	f.Uint32Var(&opts.id, "id", 0, "id of a notification to replace")
	_ = cmd.MarkFlagRequired("summary")
	return cmd
}

// event only carries the optional fields whose flags were given, so
// configuration defaults and platform capability checks apply to the rest.
func (o *showOptions) event(cmd *cobra.Command) event.Event {
	changed := cmd.Flags().Changed
	ev := event.Event{
		AppName: o.appName,
		Summary: o.summary,
		Body:    o.body,
		Icon:    o.icon,
	}
	if changed("subtitle") {
		ev.Subtitle = &o.subtitle
	}
	if changed("image-path") {
		ev.ImagePath = &o.imagePath
	}
	if changed("sound-name") {
		ev.SoundName = &o.soundName
	}
	if changed("timeout") {
		ev.Timeout = &o.timeout
	}
	if changed("urgency") {
		ev.Urgency = &o.urgency
	}
	if changed("id") {
		ev.ID = &o.id
	}
	return ev
}
