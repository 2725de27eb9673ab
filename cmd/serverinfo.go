package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"desknotify/internal/notification"
)

func newServerInfoCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "server-info",
		Short: "Show the name, vendor and version of the notification server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := notification.GetServerInformation()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:         %s\n", info.Name)
			fmt.Fprintf(out, "vendor:       %s\n", info.Vendor)
			fmt.Fprintf(out, "version:      %s\n", info.Version)
			fmt.Fprintf(out, "spec version: %s\n", info.SpecVersion)
			return nil
		},
	}
}

func newCapabilitiesCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "List the optional features of the notification server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			caps, err := notification.GetCapabilities()
			if err != nil {
				return err
			}
			for _, c := range caps {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
