package configloader

import (
	loginfra "github.com/bionicotaku/lingo-services-hello/internal/infrastructure/logger"

	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/google/wire"
)

// ProviderSet exposes configuration-derived dependencies for Wire graphs.
var ProviderSet = wire.NewSet(
	ProvideRuntimeConfig,
	ProvideServiceMetadata,
	ProvideServerConfig,
	ProvideRemoteConfig,
	ProvideAssetsConfig,
)

// ProvideRuntimeConfig returns the normalised runtime configuration.
func ProvideRuntimeConfig(b *Bundle) RuntimeConfig {
	if b == nil {
		return RuntimeConfig{}
	}
	return b.Runtime
}

// ProvideServiceMetadata returns the resolved ServiceMetadata.
func ProvideServiceMetadata(b *Bundle) ServiceMetadata {
	if b == nil {
		return ServiceMetadata{}
	}
	return b.Service
}

// ProvideServerConfig returns the server section.
func ProvideServerConfig(rc RuntimeConfig) ServerConfig {
	return rc.Server
}

// ProvideRemoteConfig returns the upstream greeting service section.
func ProvideRemoteConfig(rc RuntimeConfig) RemoteConfig {
	return rc.Remote
}

// ProvideAssetsConfig returns the static assets section.
func ProvideAssetsConfig(rc RuntimeConfig) AssetsConfig {
	return rc.Assets
}

// LoggerConfig 将服务元信息转换为日志组件配置。
func (m ServiceMetadata) LoggerConfig() loginfra.Config {
	return loginfra.Config{
		Service: m.Name,
		Version: m.Version,
		HostID:  m.InstanceID,
		Env:     m.Environment,
	}
}

// ToObservability 转换为 observability 包的规范化结构；未启用的部分保持 nil。
func (c ObservabilityConfig) ToObservability() obswire.ObservabilityConfig {
	cfg := obswire.ObservabilityConfig{
		GlobalAttributes: mapCopy(c.GlobalAttributes),
	}
	if c.Tracing.Enabled {
		cfg.Tracing = &obswire.TracingConfig{
			Enabled:       true,
			Exporter:      c.Tracing.Exporter,
			Endpoint:      c.Tracing.Endpoint,
			Insecure:      c.Tracing.Insecure,
			SamplingRatio: c.Tracing.SamplingRatio,
			Required:      c.Tracing.Required,
		}
	}
	if c.Metrics.Enabled {
		cfg.Metrics = &obswire.MetricsConfig{
			Enabled:             true,
			Exporter:            c.Metrics.Exporter,
			Endpoint:            c.Metrics.Endpoint,
			Insecure:            c.Metrics.Insecure,
			Interval:            c.Metrics.Interval,
			DisableRuntimeStats: c.Metrics.DisableRuntimeStats,
			Required:            c.Metrics.Required,
		}
	}
	return cfg
}
