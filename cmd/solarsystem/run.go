package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"mercator-hq/solarsystem/pkg/catalog"
	"mercator-hq/solarsystem/pkg/catalog/storage"
	"mercator-hq/solarsystem/pkg/cli"
	"mercator-hq/solarsystem/pkg/config"
	"mercator-hq/solarsystem/pkg/docs"
	"mercator-hq/solarsystem/pkg/server"
	"mercator-hq/solarsystem/pkg/telemetry/health"
	"mercator-hq/solarsystem/pkg/telemetry/logging"
	"mercator-hq/solarsystem/pkg/telemetry/metrics"
	"mercator-hq/solarsystem/pkg/telemetry/tracing"
)

// tracerShutdownTimeout bounds the final span flush.
const tracerShutdownTimeout = 5 * time.Second

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the catalog server",
	Long: `Start the catalog server with the specified configuration.

The server connects to the catalog store first and only starts listening
once the store has answered. If the store cannot be reached the command
exits with status 1.

Examples:
  # Start with default config
  solarsystem run

  # Start with custom config
  solarsystem run --config /etc/solarsystem/config.yaml

  # Override listen address
  solarsystem run --listen 0.0.0.0:8080

  # Validate config without starting server
  solarsystem run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}

	if err := setupLogging(cfg, cmd.OutOrStdout()); err != nil {
		return err
	}

	if runFlags.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration valid")
		return nil
	}

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()

	return serve(ctx, cfg, nil)
}

// loadConfig reads the --config file with environment overrides applied.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("", err.Error())
	}
	return cfg, nil
}

// setupLogging installs the configured logger as the slog default.
func setupLogging(cfg *config.Config, w io.Writer) error {
	logCfg := logging.FromConfig(cfg.Telemetry.Logging)
	logCfg.Writer = w

	logger, err := logging.New(logCfg)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}
	slog.SetDefault(logger)
	return nil
}

// serve runs the startup sequence and blocks until ctx is canceled: tracer,
// metrics, store handshake, connection monitor, documentation watcher and
// finally the listener. started, if non-nil, is called with the server once
// it is listening.
func serve(ctx context.Context, cfg *config.Config, started func(*server.Server)) error {
	tracer, err := tracing.New(&cfg.Telemetry.Tracing, Version)
	if err != nil {
		return cli.NewCommandError("run", fmt.Errorf("failed to initialize tracing: %w", err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), tracerShutdownTimeout)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	state := health.NewConnectionState()
	state.OnTransition(func(from, to health.State) {
		collector.RecordStoreTransition(to.String(), to == health.StateConnected)
	})

	state.Set(health.StateConnecting)
	slog.Info("connecting to catalog store", "backend", cfg.Store.Backend)

	store, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		state.Set(health.StateDisconnected)
		slog.Error("failed to connect to catalog store",
			"backend", cfg.Store.Backend,
			"error", err,
		)
		return cli.NewCommandError("run", err)
	}
	defer store.Close()

	state.Set(health.StateConnected)
	slog.Info("catalog store connected", "backend", store.Name())

	monitor := health.NewMonitor(store, state, cfg.Store.ProbeSchedule, cfg.Store.ProbeTimeout)
	if err := monitor.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}
	defer monitor.Stop()

	docServer := docs.NewServer(cfg.Docs.Path)
	if cfg.Docs.Watch {
		watcher, err := docs.NewWatcher(docServer, 0)
		if err != nil {
			slog.Warn("api document watcher disabled", "error", err)
		} else {
			watcher.OnChange(collector.RecordDocsCheck)
			defer watcher.Stop()
			go func() {
				if err := watcher.Watch(ctx); err != nil {
					slog.Warn("api document watcher stopped", "error", err)
				}
			}()
		}
	} else {
		_, err := docServer.Read()
		collector.RecordDocsCheck(err == nil)
		if err != nil {
			slog.Warn("api document is not servable", "path", cfg.Docs.Path, "error", err)
		}
	}

	repo := catalog.NewRepository(store, catalog.Options{
		Tracer:   tracer.Tracer(),
		Observer: collector,
	})

	srv := server.NewServer(cfg, server.Dependencies{
		Planets: repo,
		Prober:  health.NewProber(state, cfg.Server.NotReadyStatus),
		Docs:    docServer,
		Metrics: collector,
		Tracer:  tracer.Tracer(),
	})

	if err := srv.Listen(); err != nil {
		return cli.NewCommandError("run", err)
	}
	slog.Info("catalog server listening",
		"address", srv.Addr().String(),
		"environment", cfg.Server.Environment,
		"metrics_enabled", collector != nil,
		"tracing_enabled", tracer.Enabled(),
	)
	if started != nil {
		started(srv)
	}

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}
	return nil
}
