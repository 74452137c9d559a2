package cli

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Chimelu/hafak-surgicals-backend/internal/keepalive"
	"github.com/spf13/cobra"
)

func (a *app) pingCmd() *cobra.Command {

	var url string

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Hit the health endpoint once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				url = a.cfg.PingURL()
			}

			client := &http.Client{Timeout: a.cfg.KeepAlive.Timeout}

			status, err := keepalive.Ping(cmd.Context(), client, url)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s responded with %d\n", url, status)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "URL to ping (defaults to the configured health endpoint)")

	return cmd
}

func (a *app) keepAliveCmd() *cobra.Command {

	var url string

	cmd := &cobra.Command{
		Use:   "keepalive",
		Short: "Ping the health endpoint on the keep-alive schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				url = a.cfg.PingURL()
			}

			job, err := keepalive.New(a.cfg.KeepAlive, url)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			job.Start(ctx)

			fmt.Fprintf(cmd.OutOrStdout(), "🕐 Pinging %s on %q (UTC)\n", url, a.cfg.KeepAlive.Schedule)

			<-ctx.Done()
			<-job.Stop().Done()

			fmt.Fprintln(cmd.OutOrStdout(), "🛑 Keep-alive stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "URL to ping (defaults to the configured health endpoint)")

	return cmd
}
