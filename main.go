package main

import (
	"context"
	"fmt"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"io"
	"net/http"
	"os"
	"tunefed/dal"
	"tunefed/logic"
	"tunefed/server"
	"tunefed/shared"
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

var logger *log.Logger

func main() {
	rootCmd := &cobra.Command{
		Use:   "tunefed",
		Short: "Federation service for a self-hosted music catalog",
		Long: `Tunefed crawls and aggregates peer music sites, and delivers the artists'
published notes to their followers on other servers.`,
		Run: func(cmd *cobra.Command, args []string) { runServe() },
	}
	rootCmd.AddCommand(serveCmd(), keygenCmd(), statusCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the federation service",
		Run:   func(cmd *cobra.Command, args []string) { runServe() },
	}
}

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate the instance key pair, encrypted with the passphrase from the secrets file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := shared.LoadConfig()
			pubKey, privKey, err := logic.MakeKeyPair(cfg.Secrets.PrivKeyPass)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pubKey)
			fmt.Fprintln(cmd.OutOrStdout(), privKey)
			return nil
		},
	}
}

func runServe() {

	cfg := shared.LoadConfig()
	provideConfig := func() *shared.Config {
		return cfg
	}

	logger = initLogger(cfg)
	provideLogger := func() shared.ILogger {
		return logger
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			provideConfig,
			provideLogger,
			shared.NewUserAgent,
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			logic.NewIdentity,
			logic.NewMetrics,
			logic.NewBlockedHosts,
			logic.NewPeerRegistry,
			logic.NewTrackAggregator,
			logic.NewVisibilityFilters,
			logic.NewPeerCrawler,
			logic.NewActivitySender,
			logic.NewDeliveryDispatcher,
			logic.NewPublicationLedger,
			logic.NewActorDirectory,
			logic.NewHttpSigChecker,
			logic.NewUserRetriever,
			logic.NewInbox,
			logic.NewProfiler,
			dal.NewRepo,
			asHandlerGroupDef(server.NewFederationHandlerGroup),
			asHandlerGroupDef(server.NewApiHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
		),
		fx.Invoke(
			func(repo dal.IRepo) { repo.InitUpdateDb() },
			registerHooks,
			func(*http.Server) {},
		),
		fx.ErrorHook(&initErrorHandler{}),
	)
	app.Run()
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

func initLogger(cfg *shared.Config) *log.Logger {

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		msg := fmt.Sprintf("Failed to open log file '%v': %v", cfg.LogFile, err)
		log.Fatal(msg)
	}

	logger := log.New(io.MultiWriter(os.Stdout, logFile))
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	switch cfg.LogLevel {
	case "Debug":
		logger.SetLevel(log.DebugLevel)
	case "Info":
		logger.SetLevel(log.InfoLevel)
	case "Warn":
		logger.SetLevel(log.WarnLevel)
	case "Error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.ErrorLevel)
	}
	logger.SetReportCaller(true)

	return logger
}

type lifecycleParams struct {
	fx.In
	Lc         fx.Lifecycle
	Repo       dal.IRepo
	Metrics    logic.IMetrics
	Registry   logic.IPeerRegistry
	Aggregator logic.ITrackAggregator
	Dispatcher logic.IDeliveryDispatcher
	Crawler    logic.IPeerCrawler
	Profiler   logic.IProfiler
}

// Registry before aggregator: stored tracks resolve their sites through it.
func registerHooks(p lifecycleParams) {
	p.Lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				logger.Printf("Application starting up")
				if err := p.Registry.Load(); err != nil {
					return err
				}
				if err := p.Aggregator.Load(); err != nil {
					return err
				}
				if count, err := p.Repo.GetFollowerCount(true); err == nil {
					p.Metrics.TotalFollowers(count)
				}
				p.Dispatcher.Start()
				p.Crawler.Start()
				p.Profiler.Start()
				p.Metrics.ServiceStarted()
				return nil
			},
			OnStop: func(context.Context) error {
				logger.Printf("Application shutting down")
				p.Crawler.Stop()
				p.Dispatcher.Stop()
				p.Profiler.Stop()
				return p.Repo.Close()
			},
		},
	)
}
