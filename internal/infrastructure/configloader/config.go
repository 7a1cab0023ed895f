package configloader

import "time"

// Bootstrap mirrors the on-disk YAML layout scanned by Kratos config.
// Durations are kept as strings ("5s") and parsed during normalisation.
type Bootstrap struct {
	Server        *ServerSection        `json:"server"`
	Remote        *RemoteSection        `json:"remote"`
	Assets        *AssetsSection        `json:"assets"`
	Observability *ObservabilitySection `json:"observability"`
}

// ServerSection 对应 server 节点。
type ServerSection struct {
	HTTP *HTTPSection `json:"http"`
}

// HTTPSection 对应 server.http 节点。
type HTTPSection struct {
	Network string `json:"network"`
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

// RemoteSection 对应 remote 节点，描述上游问候服务。
type RemoteSection struct {
	HelloWorldURL string `json:"hello_world_url"`
	Timeout       string `json:"timeout"`
}

// AssetsSection 对应 assets 节点。
type AssetsSection struct {
	Dir   string `json:"dir"`
	Index string `json:"index"`
}

// ObservabilitySection 对应 observability 节点。
type ObservabilitySection struct {
	GlobalAttributes map[string]string `json:"global_attributes"`
	Tracing          *TracingSection   `json:"tracing"`
	Metrics          *MetricsSection   `json:"metrics"`
}

// TracingSection 对应 observability.tracing 节点。
type TracingSection struct {
	Enabled       bool    `json:"enabled"`
	Exporter      string  `json:"exporter"`
	Endpoint      string  `json:"endpoint"`
	Insecure      bool    `json:"insecure"`
	SamplingRatio float64 `json:"sampling_ratio"`
	Required      bool    `json:"required"`
}

// MetricsSection 对应 observability.metrics 节点。
type MetricsSection struct {
	Enabled             bool   `json:"enabled"`
	Exporter            string `json:"exporter"`
	Endpoint            string `json:"endpoint"`
	Insecure            bool   `json:"insecure"`
	Interval            string `json:"interval"`
	DisableRuntimeStats bool   `json:"disable_runtime_stats"`
	Required            bool   `json:"required"`
}

// RuntimeConfig is the normalised, defaulted configuration consumed by the rest of the service.
type RuntimeConfig struct {
	Server        ServerConfig
	Remote        RemoteConfig
	Assets        AssetsConfig
	Observability ObservabilityConfig
}

// ServerConfig describes the inbound HTTP listener.
type ServerConfig struct {
	Network string
	Address string
	Timeout time.Duration
}

// RemoteConfig describes the upstream greeting service.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AssetsConfig describes where static files live. An empty Dir triggers directory discovery.
type AssetsConfig struct {
	Dir   string
	Index string
}

// ObservabilityConfig holds tracing and metrics exporter settings.
type ObservabilityConfig struct {
	GlobalAttributes map[string]string
	Tracing          TracingConfig
	Metrics          MetricsConfig
}

// TracingConfig 描述追踪导出配置。
type TracingConfig struct {
	Enabled       bool
	Exporter      string
	Endpoint      string
	Insecure      bool
	SamplingRatio float64
	Required      bool
}

// MetricsConfig 描述指标导出配置。
type MetricsConfig struct {
	Enabled             bool
	Exporter            string
	Endpoint            string
	Insecure            bool
	Interval            time.Duration
	DisableRuntimeStats bool
	Required            bool
}
