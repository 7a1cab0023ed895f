// Package configloader 负责加载、覆盖与规范化服务配置，并通过 Wire 暴露给其它组件。
package configloader

import (
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/joho/godotenv"

	_ "github.com/go-kratos/kratos/v2/encoding/yaml"
)

const (
	envConfPath       = "CONF_PATH"
	envServiceName    = "SERVICE_NAME"
	envServiceVersion = "SERVICE_VERSION"
	envAppEnv         = "APP_ENV"
	envHelloWorldURL  = "HELLO_WORLD_URL"
	envPort           = "PORT"
)

var envFileNames = []string{".env.local", ".env"}

// Params 包含构造配置 Bundle 所需的运行时输入参数。
type Params struct {
	ConfPath       string // 配置文件路径（可为空，使用默认值）
	ServiceName    string // 编译期注入的服务名（可为空）
	ServiceVersion string // 编译期注入的版本号（可为空）
}

// ServiceMetadata 保存服务标识信息，供日志和可观测性组件使用。
type ServiceMetadata struct {
	Name        string
	Version     string
	Environment string
	InstanceID  string
}

// Bundle 聚合规范化后的运行时配置与服务元信息。
type Bundle struct {
	Runtime RuntimeConfig
	Service ServiceMetadata
}

// BuildError 捕获配置构建过程中的上下文错误信息。
type BuildError struct {
	Stage string
	Path  string
	Err   error
}

// Error 实现 error 接口，提供包含上下文的错误信息。
func (e BuildError) Error() string {
	if e.Stage == "" {
		return e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("config %s at %q: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Stage, e.Err)
}

// Unwrap 暴露底层错误，支持 errors.Is/As 链式查询。
func (e BuildError) Unwrap() error {
	return e.Err
}

// ParseConfPath parses the -conf flag from args.
func ParseConfPath(fs *flag.FlagSet, args []string) (string, error) {
	var confPath string
	fs.StringVar(&confPath, "conf", "", "config path or directory, eg: -conf configs/config.yaml")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return confPath, nil
}

// Build 从配置文件构建 Bundle。
//
// 流程：
// 1. 解析配置路径（应用回退规则）并 best-effort 加载 .env 文件
// 2. 使用 Kratos config 加载 YAML，应用环境变量覆盖
// 3. 规范化为 RuntimeConfig（填充默认值、校验上游地址）
// 4. 推导服务元信息
func Build(params Params) (*Bundle, error) {
	confPath := ResolveConfPath(params.ConfPath)
	loadEnvFiles(confPath)

	bootstrap, err := loadBootstrap(confPath)
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(bootstrap)

	runtime, err := fromBootstrap(bootstrap)
	if err != nil {
		return nil, BuildError{Stage: "validate", Path: confPath, Err: err}
	}

	return &Bundle{
		Runtime: runtime,
		Service: buildServiceMetadata(params),
	}, nil
}

// ResolveConfPath 应用回退规则确定要加载的配置目录/文件路径。
// 优先级：显式传入路径 > CONF_PATH 环境变量 > 默认路径。
func ResolveConfPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(envConfPath); env != "" {
		return env
	}
	return defaultConfPath
}

func loadBootstrap(confPath string) (*Bootstrap, error) {
	c := config.New(config.WithSource(file.NewSource(confPath)))
	if err := c.Load(); err != nil {
		return nil, BuildError{Stage: "load", Path: confPath, Err: err}
	}
	defer c.Close()

	var bc Bootstrap
	if err := c.Scan(&bc); err != nil {
		return nil, BuildError{Stage: "scan", Path: confPath, Err: err}
	}
	return &bc, nil
}

// applyEnvOverrides 应用环境变量覆盖配置文件中的特定字段。
//
// 支持的环境变量：
//
//   - HELLO_WORLD_URL: 覆盖 remote.hello_world_url（上游问候服务地址）
//   - PORT: 覆盖 server.http.addr 的端口部分（保留 host）
//
// 环境变量为空时不覆盖；缺失的配置节点会被创建。
func applyEnvOverrides(bc *Bootstrap) {
	if bc == nil {
		return
	}
	if u := strings.TrimSpace(os.Getenv(envHelloWorldURL)); u != "" {
		if bc.Remote == nil {
			bc.Remote = &RemoteSection{}
		}
		bc.Remote.HelloWorldURL = u
	}
	if port := strings.TrimSpace(os.Getenv(envPort)); port != "" {
		if bc.Server == nil {
			bc.Server = &ServerSection{}
		}
		if bc.Server.HTTP == nil {
			bc.Server.HTTP = &HTTPSection{}
		}
		bc.Server.HTTP.Addr = replacePort(bc.Server.HTTP.Addr, port)
	}
}

func buildServiceMetadata(params Params) ServiceMetadata {
	name := firstNonEmpty(os.Getenv(envServiceName), params.ServiceName, defaultServiceName)
	version := firstNonEmpty(os.Getenv(envServiceVersion), params.ServiceVersion, defaultServiceVersion)
	host, _ := os.Hostname()

	return ServiceMetadata{
		Name:        name,
		Version:     version,
		Environment: resolveEnvironment(os.Getenv(envAppEnv)),
		InstanceID:  firstNonEmpty(host, "unknown"),
	}
}

// resolveEnvironment normalises common environment aliases.
func resolveEnvironment(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return defaultEnvironment
	case "dev", "development", "local":
		return "development"
	case "stg", "stage", "staging":
		return "staging"
	case "prod", "production":
		return "production"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}

// loadEnvFiles best-effort 加载配置相关的 .env 文件，失败时忽略以保持幂等。
func loadEnvFiles(confPath string) {
	files := envFileCandidates(confPath)
	if len(files) == 0 {
		return
	}
	_ = godotenv.Load(files...)
}

// envFileCandidates 按优先级返回存在的 .env 文件：confPath 目录优先，其次当前工作目录。
// godotenv 不会覆盖已设置的变量，因此靠前的文件优先生效。
func envFileCandidates(confPath string) []string {
	seen := make(map[string]struct{})
	var files []string
	for _, dir := range orderedDirs(confPath) {
		for _, name := range envFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if _, ok := seen[candidate]; ok {
				continue
			}
			files = append(files, candidate)
			seen[candidate] = struct{}{}
		}
	}
	return files
}

func orderedDirs(confPath string) []string {
	var dirs []string
	appendUnique := func(path string) {
		if path == "" {
			return
		}
		clean := filepath.Clean(path)
		for _, existing := range dirs {
			if existing == clean {
				return
			}
		}
		dirs = append(dirs, clean)
	}

	if confPath != "" {
		if info, err := os.Stat(confPath); err == nil {
			if info.IsDir() {
				appendUnique(confPath)
			} else {
				appendUnique(filepath.Dir(confPath))
			}
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		appendUnique(cwd)
	}
	return dirs
}

// replacePort 替换地址中的端口部分，保留 host。
//   - "0.0.0.0:3000" -> "0.0.0.0:8080"
//   - "[::1]:3000" -> "[::1]:8080"
//   - "" 或无法解析 -> "0.0.0.0:8080"
func replacePort(addr, newPort string) string {
	if addr == "" {
		return "0.0.0.0:" + newPort
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return "0.0.0.0:" + newPort
	}
	return net.JoinHostPort(host, newPort)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
