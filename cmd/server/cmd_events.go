package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shelter-admin/service-shelter-web/internal/config"
	"github.com/shelter-admin/service-shelter-web/internal/events"
	"github.com/shelter-admin/service-shelter-web/internal/logger"
)

var tailGroup string

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the activity event stream",
}

var eventsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print activity events as they arrive",
	RunE:  runEventsTail,
}

func init() {
	eventsTailCmd.Flags().StringVar(&tailGroup, "group", "shelter-web-tail", "Kafka consumer group")
	eventsCmd.AddCommand(eventsTailCmd)
}

func runEventsTail(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromViper(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return errors.New("no kafka brokers configured (set SHELTER_KAFKA_BROKERS or --kafka-brokers)")
	}

	log, err := logger.NewNamed(cfg.AppEnv, "shelter-web-tail")
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := events.NewActivityConsumer(cfg.KafkaConfig.Brokers, tailGroup, cfg.KafkaConfig.Topic, log)
	defer func() { _ = consumer.Close() }()

	out := cmd.OutOrStdout()
	err = consumer.Start(ctx, func(_ context.Context, ce events.CloudEvent) error {
		_, werr := fmt.Fprintf(out, "%s  %-24s %s\n", ce.Time.Format("2006-01-02T15:04:05Z07:00"), ce.Type, ce.Data)
		return werr
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("activity tail stopped", zap.Error(err))
		return err
	}
	return nil
}
