//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/bionicotaku/lingo-services-hello/internal/clients"
	"github.com/bionicotaku/lingo-services-hello/internal/controllers"
	"github.com/bionicotaku/lingo-services-hello/internal/infrastructure/assets"
	"github.com/bionicotaku/lingo-services-hello/internal/infrastructure/configloader"
	httpserver "github.com/bionicotaku/lingo-services-hello/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-hello/internal/services"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

//go:generate go run github.com/google/wire/cmd/wire

// wireApp init kratos application.
func wireApp(*configloader.Bundle, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		assets.ProviderSet,
		httpserver.ProviderSet,
		clients.ProviderSet,
		services.ProviderSet,
		controllers.ProviderSet,
		newApp,
	))
}
