// Package httpserver wires the inbound HTTP server, its middleware stack and routes.
package httpserver

import (
	stdhttp "net/http"

	"github.com/bionicotaku/lingo-services-hello/internal/controllers"
	"github.com/bionicotaku/lingo-services-hello/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-hello/internal/metadata"

	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c configloader.ServerConfig, greeter *controllers.GreeterHandler, logger log.Logger) *khttp.Server {
	chain := []middleware.Middleware{
		obsTrace.Server(),
		recovery.Recovery(),
	}
	if mw := newMetricsMiddleware(logger); mw != nil {
		chain = append(chain, mw)
	}
	chain = append(chain, logging.Server(logger))

	opts := []khttp.ServerOption{
		khttp.Middleware(chain...),
		khttp.Filter(RequestIDFilter()),
	}
	if c.Network != "" {
		opts = append(opts, khttp.Network(c.Network))
	}
	if c.Address != "" {
		opts = append(opts, khttp.Address(c.Address))
	}
	if c.Timeout > 0 {
		opts = append(opts, khttp.Timeout(c.Timeout))
	}

	srv := khttp.NewServer(opts...)

	srv.HandleFunc("/healthz", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
	})
	srv.HandleFunc("/readyz", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		// 无外部依赖需要预检，进程可接收请求即视为就绪。
		w.WriteHeader(stdhttp.StatusOK)
	})

	RegisterGreeterHTTPServer(srv, greeter)
	return srv
}

// RegisterGreeterHTTPServer mounts the greeting routes: GET / (index asset) and GET /hello (remote relay).
func RegisterGreeterHTTPServer(s *khttp.Server, greeter *controllers.GreeterHandler) {
	r := s.Route("/")
	r.GET("/", greeter.Index)
	r.GET("/hello", greeter.Hello)
}

// RequestIDFilter echoes or assigns X-Request-ID and stores it in the request context.
func RequestIDFilter() khttp.FilterFunc {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			meta := metadata.FromHeader(r.Header)
			w.Header().Set(metadata.HeaderRequestID, meta.RequestID)
			next.ServeHTTP(w, r.WithContext(metadata.Inject(r.Context(), meta)))
		})
	}
}
