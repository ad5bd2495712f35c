package main

import (
	"context"
	"diasposter/dal"
	"diasposter/logic"
	"diasposter/server"
	"diasposter/shared"
	"diasposter/texts"
	"fmt"
	"github.com/charmbracelet/log"
	"go.uber.org/fx"
	"io"
	"net/http"
	"os"
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
			shared.NewUserAgent,
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			logic.NewMetrics,
			logic.NewHttpSigChecker,
			logic.NewDiasporaConnector,
			logic.NewRemoteCache,
			logic.NewRenderer,
			logic.NewTransformer,
			logic.NewNotifier,
			logic.NewModerator,
			logic.NewHostResolver,
			logic.NewSyncCoordinator,
			logic.NewReconciler,
			logic.NewDeletionPropagator,
			logic.NewSyncScheduler,
			logic.NewBlogWatcher,
			texts.NewTexts,
			dal.NewRepo,
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
	logger.SetOutput(io.MultiWriter(os.Stdout, logFile))
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

func registerHooks(
	lc fx.Lifecycle,
	metrics logic.IMetrics,
	scheduler logic.ISyncScheduler,
	watcher logic.IBlogWatcher,
) {
	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				logger.Printf("Application starting up")
				metrics.ServiceStarted()
				scheduler.Start()
				watcher.Start()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				logger.Printf("Application shutting down")
				watcher.Stop()
				select {
				case <-scheduler.Stop().Done():
				case <-ctx.Done():
					logger.Warnf("Comment sync still running at shutdown")
				}
				return nil
			},
		},
	)
}
