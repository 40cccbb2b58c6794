package main

import (
	"context"
	"fmt"
	"github.com/charmbracelet/log"
	"go.uber.org/fx"
	"io"
	"net/http"
	"os"
	"reddit_parrot/dal"
	"reddit_parrot/logic"
	"reddit_parrot/server"
	"reddit_parrot/shared"
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

var logger *log.Logger

func main() {

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
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			shared.NewUserAgent,
			shared.NewUrlBuilder,
			dal.NewLedger,
			logic.NewMetrics,
			logic.NewDownloader,
			logic.NewImgurClient,
			logic.NewGfycatClient,
			logic.NewMediaResolver,
			logic.NewFeedSource,
			logic.NewPublishers,
			logic.NewMediaJanitor,
			logic.NewPostCycle,
			asHandlerGroupDef(server.NewApiHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
		),
		fx.Invoke(
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

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			msg := fmt.Sprintf("Failed to open log file '%v': %v", cfg.LogFile, err)
			log.Fatal(msg)
		}
		out = io.MultiWriter(os.Stdout, logFile)
	}

	logger := log.New(out)
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
		logger.SetLevel(log.InfoLevel)
	}
	logger.SetReportCaller(true)

	return logger
}

func registerHooks(
	lc fx.Lifecycle,
	metrics logic.IMetrics,
	publishers []logic.IPublisher,
	ledger dal.ILedger,
	cycle logic.IPostCycle,
) {
	cycleCtx, cancelCycle := context.WithCancel(context.Background())
	cycleDone := make(chan struct{})

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				logger.Printf("Application starting up")
				// Bad credentials on any enabled platform stop the service here
				if err := logic.VerifyPublishers(ctx, logger, publishers); err != nil {
					return err
				}
				metrics.ServiceStarted()
				go func() {
					defer close(cycleDone)
					cycle.Run(cycleCtx)
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				logger.Printf("Application shutting down")
				cancelCycle()
				select {
				case <-cycleDone:
				case <-ctx.Done():
					logger.Warn("Post cycle did not stop in time")
				}
				if closer, ok := ledger.(io.Closer); ok {
					return closer.Close()
				}
				return nil
			},
		},
	)
}
