package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelter-admin/service-shelter-web/internal/config"
)

// v holds env defaults with command-line flags bound over them.
var v = config.NewViper()

var rootCmd = &cobra.Command{
	Use:   "shelter-web",
	Short: "Animal shelter management web frontend",
	Long: `shelter-web renders the shelter management pages from the REST backend.

Configuration comes from SHELTER_* environment variables; flags override them.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("backend-url", "", "Backend REST base URL (env SHELTER_BACKEND_URL)")
	flags.Duration("backend-timeout", 0, "Per-request backend timeout, 0 for none (env SHELTER_BACKEND_TIMEOUT)")
	flags.String("app-env", "", "Environment name: development or production (env SHELTER_APP_ENV)")
	flags.String("kafka-brokers", "", "Comma separated Kafka brokers for activity events (env SHELTER_KAFKA_BROKERS)")
	flags.String("kafka-topic", "", "Activity event topic (env SHELTER_KAFKA_TOPIC)")

	bindFlag(rootCmd, "backend_url", "backend-url")
	bindFlag(rootCmd, "backend_timeout", "backend-timeout")
	bindFlag(rootCmd, "app_env", "app-env")
	bindFlag(rootCmd, "kafka_brokers", "kafka-brokers")
	bindFlag(rootCmd, "kafka_topic", "kafka-topic")

	rootCmd.AddCommand(serveCmd, pingCmd, eventsCmd)
}

// bindFlag binds a persistent flag to key. An unset flag leaves the env or
// default value in place.
func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
