package configloader

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

func fromBootstrap(b *Bootstrap) (RuntimeConfig, error) {
	if b == nil {
		b = &Bootstrap{}
	}
	server, err := serverFromBootstrap(b.Server)
	if err != nil {
		return RuntimeConfig{}, err
	}
	remote, err := remoteFromBootstrap(b.Remote)
	if err != nil {
		return RuntimeConfig{}, err
	}
	obs, err := observabilityFromBootstrap(b.Observability)
	if err != nil {
		return RuntimeConfig{}, err
	}
	rc := RuntimeConfig{
		Server:        server,
		Remote:        remote,
		Assets:        assetsFromBootstrap(b.Assets),
		Observability: obs,
	}
	fillDefaults(&rc)
	if err := validateBaseURL(rc.Remote.BaseURL); err != nil {
		return RuntimeConfig{}, err
	}
	return rc, nil
}

func serverFromBootstrap(s *ServerSection) (ServerConfig, error) {
	if s == nil || s.HTTP == nil {
		return ServerConfig{}, nil
	}
	timeout, err := parseDuration("server.http.timeout", s.HTTP.Timeout)
	if err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		Network: s.HTTP.Network,
		Address: s.HTTP.Addr,
		Timeout: timeout,
	}, nil
}

func remoteFromBootstrap(r *RemoteSection) (RemoteConfig, error) {
	if r == nil {
		return RemoteConfig{}, nil
	}
	timeout, err := parseDuration("remote.timeout", r.Timeout)
	if err != nil {
		return RemoteConfig{}, err
	}
	return RemoteConfig{
		BaseURL: strings.TrimSpace(r.HelloWorldURL),
		Timeout: timeout,
	}, nil
}

func assetsFromBootstrap(a *AssetsSection) AssetsConfig {
	if a == nil {
		return AssetsConfig{}
	}
	return AssetsConfig{Dir: a.Dir, Index: a.Index}
}

func observabilityFromBootstrap(o *ObservabilitySection) (ObservabilityConfig, error) {
	if o == nil {
		return ObservabilityConfig{}, nil
	}
	cfg := ObservabilityConfig{GlobalAttributes: mapCopy(o.GlobalAttributes)}
	if t := o.Tracing; t != nil {
		cfg.Tracing = TracingConfig{
			Enabled:       t.Enabled,
			Exporter:      t.Exporter,
			Endpoint:      t.Endpoint,
			Insecure:      t.Insecure,
			SamplingRatio: t.SamplingRatio,
			Required:      t.Required,
		}
	}
	if m := o.Metrics; m != nil {
		interval, err := parseDuration("observability.metrics.interval", m.Interval)
		if err != nil {
			return ObservabilityConfig{}, err
		}
		cfg.Metrics = MetricsConfig{
			Enabled:             m.Enabled,
			Exporter:            m.Exporter,
			Endpoint:            m.Endpoint,
			Insecure:            m.Insecure,
			Interval:            interval,
			DisableRuntimeStats: m.DisableRuntimeStats,
			Required:            m.Required,
		}
	}
	return cfg, nil
}

func fillDefaults(cfg *RuntimeConfig) {
	if cfg.Server.Network == "" {
		cfg.Server.Network = defaultHTTPNetwork
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = defaultHTTPAddr
	}
	if cfg.Remote.BaseURL == "" {
		cfg.Remote.BaseURL = defaultHelloWorldURL
	}
	if cfg.Remote.Timeout <= 0 {
		cfg.Remote.Timeout = defaultRemoteTimeout
	}
	if cfg.Assets.Index == "" {
		cfg.Assets.Index = defaultAssetsIndex
	}
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("remote.hello_world_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("remote.hello_world_url: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("remote.hello_world_url: missing host in %q", raw)
	}
	return nil
}

func parseDuration(field, raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

func mapCopy(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
