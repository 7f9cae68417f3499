package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shelter-admin/service-shelter-web/internal/config"
	"github.com/shelter-admin/service-shelter-web/internal/platform/httpclient"
	"github.com/shelter-admin/service-shelter-web/internal/repository"
)

var pingTimeout time.Duration

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the backend answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromViper(v)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		client, err := httpclient.New(cfg.Backend.URL, cfg.Backend.Timeout)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), pingTimeout)
		defer cancel()

		if err := repository.NewBackendProbe(client).Ping(ctx); err != nil {
			return fmt.Errorf("backend %s unreachable: %s", cfg.Backend.URL, httpclient.Message(err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "backend %s OK\n", cfg.Backend.URL)
		return nil
	},
}

func init() {
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 5*time.Second, "How long to wait for the backend")
}
