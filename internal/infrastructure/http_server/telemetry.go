package httpserver

import (
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	kmetrics "github.com/go-kratos/kratos/v2/middleware/metrics"
	"go.opentelemetry.io/otel"
)

const meterName = "lingo-services-hello"

// newMetricsMiddleware records request counts and latency on the global meter provider.
// observability.Init installs the exporting provider; without it the instruments are no-ops.
func newMetricsMiddleware(logger log.Logger) middleware.Middleware {
	helper := log.NewHelper(logger)
	meter := otel.Meter(meterName)

	requests, err := kmetrics.DefaultRequestsCounter(meter, kmetrics.DefaultServerRequestsCounterName)
	if err != nil {
		helper.Warnf("create request counter: %v", err)
		return nil
	}
	seconds, err := kmetrics.DefaultSecondsHistogram(meter, kmetrics.DefaultServerSecondsHistogramName)
	if err != nil {
		helper.Warnf("create latency histogram: %v", err)
		return nil
	}
	return kmetrics.Server(
		kmetrics.WithRequests(requests),
		kmetrics.WithSeconds(seconds),
	)
}
