package main

import (
	"circuits-lab/auth"
	"circuits-lab/contract"
	"circuits-lab/infrastructure/recnet"
	"circuits-lab/infrastructure/transport"
	"circuits-lab/internal"
	"circuits-lab/observability"
	"circuits-lab/services"
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// Exit codes of the transmitter.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		color.Error.Println(err)
	}
	os.Exit(code)
}

// app carries what every subcommand needs once the configuration is read.
type app struct {
	config internal.Config
	log    *slog.Logger
	client *services.Client
	room   string
	user   string
}

func run() (int, error) {
	config, err := internal.LoadConfig(internal.SecretEnvFile, ".env")
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	if config.MetricsAddr != "" {
		internal.StartMetricsServer(ctx, log, config.MetricsAddr, registry)
	}

	tokens := auth.NewAwaitableToken(config.TokenWait)
	provideToken(log, tokens, config.AccessToken, os.Stdin)

	a := &app{config: config, log: log, client: newClient(config, log, tokens, metrics)}
	defer func() { _ = a.client.Close() }()

	root := &cobra.Command{
		Use:           "transmitter",
		Short:         "Send data to a room participant through role changes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.client.Initialize(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&a.room, "room", "r", "", "room name or id")
	_ = root.MarkPersistentFlagRequired("room")

	root.AddCommand(
		a.sendTextCmd(),
		a.sendIntCmd(),
		a.sendBinaryCmd(),
		a.pingCmd(),
		a.playersCmd(),
		a.membersCmd(),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

func newClient(config internal.Config, log *slog.Logger, tokens contract.ITokenSource, metrics *observability.Metrics) *services.Client {
	tr := transport.NewTransport(transport.Config{
		HTTPClient:  &http.Client{Timeout: config.HTTPTimeout},
		Tokens:      tokens,
		MaxAttempts: config.MaxAttempts,
		Logger:      log,
		Metrics:     metrics,
	})
	api := recnet.NewClient(log, tr, recnet.Endpoints{
		Rooms:    config.RoomsURL,
		Accounts: config.AccountsURL,
		Match:    config.MatchURL,
		Images:   config.ImagesURL,
	})

	return services.NewClient(services.ClientConfig{
		Tokens:         tokens,
		Roles:          api,
		Rooms:          api,
		Accounts:       api,
		Presence:       api,
		Photos:         api,
		Logger:         log,
		Metrics:        metrics,
		ChannelTimeout: config.ChannelTimeout,
		PingWait:       config.PingWait,
	})
}
