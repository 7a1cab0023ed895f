package configloader

import "time"

const (
	// defaultConfPath is the fallback configuration directory when no overrides are provided.
	defaultConfPath = "configs"
	// defaultServiceName is used when SERVICE_NAME is missing.
	defaultServiceName = "hello-world"
	// defaultServiceVersion is used when SERVICE_VERSION is missing.
	defaultServiceVersion = "dev"
	// defaultEnvironment is used when APP_ENV is missing.
	defaultEnvironment = "development"
	// defaultHTTPAddr binds all interfaces on the fixed service port.
	defaultHTTPAddr = "0.0.0.0:3000"
	// defaultHTTPNetwork is the listener network of the HTTP server.
	defaultHTTPNetwork = "tcp"
	// defaultHelloWorldURL is the upstream greeting service used when nothing else is configured.
	defaultHelloWorldURL = "http://localhost:8080"
	// defaultAssetsIndex is the static file served on "/".
	defaultAssetsIndex = "index.html"
)

// defaultRemoteTimeout mirrors the Kratos HTTP client default.
const defaultRemoteTimeout = 2 * time.Second
