// Package main boots the Kratos HTTP entrypoint of the hello-world greeting service.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/bionicotaku/lingo-services-hello/internal/infrastructure/configloader"
	loginfra "github.com/bionicotaku/lingo-services-hello/internal/infrastructure/logger"
	"github.com/bionicotaku/lingo-services-hello/internal/services"

	"github.com/bionicotaku/lingo-utils/observability"
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name string
	// Version is the version of the compiled software.
	Version string
)

func newApp(meta configloader.ServiceMetadata, logger log.Logger, hs *http.Server, greeting *services.GreetingService) *kratos.App {
	return kratos.New(
		kratos.ID(meta.InstanceID),
		kratos.Name(meta.Name),
		kratos.Version(meta.Version),
		kratos.Metadata(map[string]string{"environment": meta.Environment}),
		kratos.Logger(logger),
		kratos.Server(
			hs,
		),
		kratos.BeforeStart(func(ctx context.Context) error {
			announce(ctx, logger, greeting)
			return nil
		}),
	)
}

// announce logs the startup banner: a plain hello, a sum and the locally selected greeting.
func announce(ctx context.Context, logger log.Logger, greeting *services.GreetingService) {
	helper := log.NewHelper(logger).WithContext(ctx)
	helper.Info("Hello, world!")
	helper.Infof("1 + 2 = %d", services.Add(1, 2))
	helper.Info(greeting.SayHelloWorld())
}

func main() {
	// Parse command-line flags (currently only -conf).
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	confPath, err := configloader.ParseConfPath(fs, os.Args[1:])
	if err != nil {
		panic(err)
	}

	// Load configuration once; HELLO_WORLD_URL and PORT are folded in here.
	bundle, err := configloader.Build(configloader.Params{
		ConfPath:       confPath,
		ServiceName:    Name,
		ServiceVersion: Version,
	})
	if err != nil {
		panic(err)
	}

	// Build the structured logger used by the entire application.
	loggr, err := loginfra.NewLogger(bundle.Service.LoggerConfig())
	if err != nil {
		panic(err)
	}

	obsShutdown, err := observability.Init(context.Background(), bundle.Runtime.Observability.ToObservability(),
		observability.WithLogger(loggr),
		observability.WithServiceName(bundle.Service.Name),
		observability.WithServiceVersion(bundle.Service.Version),
		observability.WithEnvironment(bundle.Service.Environment),
	)
	if err != nil {
		panic(err)
	}
	defer func() {
		if obsShutdown == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obsShutdown(ctx); err != nil {
			log.NewHelper(loggr).Warnf("shutdown observability: %v", err)
		}
	}()

	// Assemble all dependencies via Wire and create the Kratos app.
	app, cleanupApp, err := wireApp(bundle, loggr)
	if err != nil {
		panic(err)
	}
	defer cleanupApp()

	// Start the application and block until a stop signal is received.
	if err := app.Run(); err != nil {
		panic(err)
	}
}
