// Package configloader_test 提供 configloader 包的黑盒测试。
// 覆盖路径解析、默认值、环境变量覆盖与上游地址校验。
package configloader_test

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-hello/internal/infrastructure/configloader"

	"github.com/stretchr/testify/require"
)

// clearEnv 清空会影响 Build 结果的环境变量，避免宿主环境干扰。
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONF_PATH", "HELLO_WORLD_URL", "PORT", "SERVICE_NAME", "SERVICE_VERSION", "APP_ENV"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const fullConfig = `
server:
  http:
    network: tcp
    addr: 127.0.0.1:3100
    timeout: 3s
remote:
  hello_world_url: http://upstream.internal:8080
  timeout: 750ms
assets:
  dir: /srv/assets
  index: home.html
observability:
  global_attributes:
    team: hello
  tracing:
    enabled: true
    exporter: stdout
    sampling_ratio: 0.5
  metrics:
    enabled: false
    exporter: stdout
    interval: 30s
`

// TestResolveConfPath_ExplicitPath 验证显式路径优先级最高。
func TestResolveConfPath_ExplicitPath(t *testing.T) {
	t.Setenv("CONF_PATH", "/env/config")
	require.Equal(t, "/custom/config", configloader.ResolveConfPath("/custom/config"))
}

// TestResolveConfPath_EnvVar 验证环境变量在无显式路径时生效。
func TestResolveConfPath_EnvVar(t *testing.T) {
	t.Setenv("CONF_PATH", "/env/config")
	require.Equal(t, "/env/config", configloader.ResolveConfPath(""))
}

// TestResolveConfPath_Default 验证回退到默认路径。
func TestResolveConfPath_Default(t *testing.T) {
	t.Setenv("CONF_PATH", "")
	require.Equal(t, "configs", configloader.ResolveConfPath(""))
}

func TestParseConfPath(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	path, err := configloader.ParseConfPath(fs, []string{"-conf", "/etc/hello"})
	require.NoError(t, err)
	require.Equal(t, "/etc/hello", path)
}

// TestBuild_ValidConfig 验证加载完整配置文件后各节点被正确规范化。
func TestBuild_ValidConfig(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, fullConfig)

	bundle, err := configloader.Build(configloader.Params{ConfPath: path, ServiceName: "hello-test", ServiceVersion: "1.2.3"})
	require.NoError(t, err)

	rt := bundle.Runtime
	require.Equal(t, "tcp", rt.Server.Network)
	require.Equal(t, "127.0.0.1:3100", rt.Server.Address)
	require.Equal(t, 3*time.Second, rt.Server.Timeout)
	require.Equal(t, "http://upstream.internal:8080", rt.Remote.BaseURL)
	require.Equal(t, 750*time.Millisecond, rt.Remote.Timeout)
	require.Equal(t, "/srv/assets", rt.Assets.Dir)
	require.Equal(t, "home.html", rt.Assets.Index)
	require.Equal(t, map[string]string{"team": "hello"}, rt.Observability.GlobalAttributes)
	require.True(t, rt.Observability.Tracing.Enabled)
	require.InDelta(t, 0.5, rt.Observability.Tracing.SamplingRatio, 1e-9)
	require.Equal(t, 30*time.Second, rt.Observability.Metrics.Interval)

	require.Equal(t, "hello-test", bundle.Service.Name)
	require.Equal(t, "1.2.3", bundle.Service.Version)
	require.Equal(t, "development", bundle.Service.Environment)
	require.NotEmpty(t, bundle.Service.InstanceID)
}

// TestBuild_Defaults 验证空配置回退到默认监听地址与上游地址。
func TestBuild_Defaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server: {}\n")

	bundle, err := configloader.Build(configloader.Params{ConfPath: path})
	require.NoError(t, err)

	rt := bundle.Runtime
	require.Equal(t, "tcp", rt.Server.Network)
	require.Equal(t, "0.0.0.0:3000", rt.Server.Address)
	require.Equal(t, "http://localhost:8080", rt.Remote.BaseURL)
	require.Equal(t, 2*time.Second, rt.Remote.Timeout)
	require.Empty(t, rt.Assets.Dir)
	require.Equal(t, "index.html", rt.Assets.Index)
	require.Equal(t, "hello-world", bundle.Service.Name)
	require.Equal(t, "dev", bundle.Service.Version)
}

// TestBuild_EnvOverrides 验证 HELLO_WORLD_URL 与 PORT 覆盖配置文件中的值。
func TestBuild_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HELLO_WORLD_URL", "https://greeter.example.com")
	t.Setenv("PORT", "8088")
	t.Setenv("SERVICE_NAME", "from-env")
	t.Setenv("APP_ENV", "prod")
	path := writeConfig(t, fullConfig)

	bundle, err := configloader.Build(configloader.Params{ConfPath: path, ServiceName: "from-params"})
	require.NoError(t, err)
	require.Equal(t, "https://greeter.example.com", bundle.Runtime.Remote.BaseURL)
	require.Equal(t, "127.0.0.1:8088", bundle.Runtime.Server.Address)
	require.Equal(t, "from-env", bundle.Service.Name)
	require.Equal(t, "production", bundle.Service.Environment)
}

// TestBuild_PortWithoutServerSection 验证缺失的 server 节点会被创建。
func TestBuild_PortWithoutServerSection(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9999")
	path := writeConfig(t, "remote:\n  hello_world_url: http://localhost:8080\n")

	bundle, err := configloader.Build(configloader.Params{ConfPath: path})
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9999", bundle.Runtime.Server.Address)
}

func TestBuild_InvalidBaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "missing scheme", url: "localhost:8080"},
		{name: "unsupported scheme", url: "ftp://example.com"},
		{name: "missing host", url: "http://"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("HELLO_WORLD_URL", tt.url)
			path := writeConfig(t, "server: {}\n")

			_, err := configloader.Build(configloader.Params{ConfPath: path})
			require.Error(t, err)

			var buildErr configloader.BuildError
			require.True(t, errors.As(err, &buildErr))
			require.Equal(t, "validate", buildErr.Stage)
			require.Equal(t, path, buildErr.Path)
		})
	}
}

func TestBuild_InvalidDuration(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  http:\n    timeout: soon\n")

	_, err := configloader.Build(configloader.Params{ConfPath: path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "server.http.timeout")
}

func TestBuild_MissingFile(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := configloader.Build(configloader.Params{ConfPath: missing})
	require.Error(t, err)

	var buildErr configloader.BuildError
	require.True(t, errors.As(err, &buildErr))
	require.Equal(t, "load", buildErr.Stage)
}

// TestBuild_EnvironmentAliases 验证常见环境别名被规范化。
func TestBuild_EnvironmentAliases(t *testing.T) {
	cases := map[string]string{
		"local":   "development",
		"stg":     "staging",
		"testing": "test",
		"QA":      "qa",
	}
	path := writeConfig(t, "server: {}\n")
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("APP_ENV", raw)
			bundle, err := configloader.Build(configloader.Params{ConfPath: path})
			require.NoError(t, err)
			require.Equal(t, want, bundle.Service.Environment)
		})
	}
}
