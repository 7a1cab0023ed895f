package services

import (
	"context"
	"net/http"

	"github.com/bionicotaku/lingo-services-hello/internal/models/vo"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

var (
	// ErrUpstreamUnavailable is returned when the remote greeting service cannot be reached or read.
	ErrUpstreamUnavailable = errors.New(http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "remote greeting service unavailable")
	// ErrAssetNotFound is returned when the static index asset is missing.
	ErrAssetNotFound = errors.NotFound("ASSET_NOT_FOUND", "static asset not found")
)

// GreeterRemote abstracts the remote greeting service.
type GreeterRemote interface {
	FetchHello(ctx context.Context) (string, error)
}

// GreeterUsecase relays greetings fetched from the remote service.
type GreeterUsecase struct {
	remote GreeterRemote
	log    *log.Helper
}

// NewGreeterUsecase constructs a Greeter usecase.
func NewGreeterUsecase(remote GreeterRemote, logger log.Logger) *GreeterUsecase {
	return &GreeterUsecase{remote: remote, log: log.NewHelper(logger)}
}

// FetchRemoteGreeting returns the upstream text unmodified.
// Any client failure is reported as ErrUpstreamUnavailable with the client error attached as cause.
func (uc *GreeterUsecase) FetchRemoteGreeting(ctx context.Context) (*vo.Greeting, error) {
	if uc.remote == nil {
		uc.log.WithContext(ctx).Warn("greeter remote not configured")
		return nil, ErrUpstreamUnavailable
	}
	msg, err := uc.remote.FetchHello(ctx)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("fetch remote greeting failed: %v", err)
		return nil, ErrUpstreamUnavailable.WithCause(err)
	}
	return vo.NewGreeting(msg), nil
}
