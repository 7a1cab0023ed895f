package clients

import (
	"github.com/bionicotaku/lingo-services-hello/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-hello/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet bundles business-level client providers for Wire.
var ProviderSet = wire.NewSet(NewGreeterRemote)

// NewGreeterRemote builds the HelloWorldClient from configuration and exposes it as services.GreeterRemote.
func NewGreeterRemote(cfg configloader.RemoteConfig, logger log.Logger) (services.GreeterRemote, func(), error) {
	helper := log.NewHelper(logger)
	client, err := NewHelloWorldClient(cfg.BaseURL, WithTimeout(cfg.Timeout), WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	helper.Infof("greeter remote targets %s", cfg.BaseURL)
	cleanup := func() {
		if err := client.Close(); err != nil {
			helper.Errorf("close greeter remote: %v", err)
		}
	}
	return client, cleanup, nil
}
