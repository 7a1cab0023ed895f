// Package clients 包含调用外部服务的客户端门面（Façade），封装 HTTP 调用细节。
// 实现 Service 层定义的 Remote 接口，提供业务级别的调用抽象。
package clients

import (
	"context"
	"io"
	stdhttp "net/http"
	"strings"
	"time"

	"github.com/bionicotaku/lingo-services-hello/internal/metadata"

	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HelloWorldClient 调用上游问候服务的根路径，并把响应体原样作为问候语返回。
// 底层 Kratos HTTP 客户端可并发复用。
type HelloWorldClient struct {
	url    string
	client *khttp.Client
	log    *log.Helper
}

type clientOptions struct {
	timeout   time.Duration
	transport stdhttp.RoundTripper
	logger    log.Logger
}

// ClientOption configures a HelloWorldClient.
type ClientOption func(*clientOptions)

// WithTimeout overrides the Kratos client default timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) { o.timeout = d }
}

// WithTransport replaces the instrumented default transport.
func WithTransport(rt stdhttp.RoundTripper) ClientOption {
	return func(o *clientOptions) { o.transport = rt }
}

// WithLogger sets the logger used for status warnings.
func WithLogger(logger log.Logger) ClientOption {
	return func(o *clientOptions) { o.logger = logger }
}

// NewHelloWorldClient 构造指向 baseURL 的客户端，构造时不做额外的地址校验。
func NewHelloWorldClient(baseURL string, opts ...ClientOption) (*HelloWorldClient, error) {
	o := clientOptions{
		transport: otelhttp.NewTransport(stdhttp.DefaultTransport),
		logger:    log.GetLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	kopts := []khttp.ClientOption{
		khttp.WithEndpoint(baseURL),
		khttp.WithTransport(o.transport),
		khttp.WithErrorDecoder(relayErrorDecoder),
	}
	if o.timeout > 0 {
		kopts = append(kopts, khttp.WithTimeout(o.timeout))
	}
	client, err := khttp.NewClient(context.Background(), kopts...)
	if err != nil {
		return nil, err
	}
	return &HelloWorldClient{
		url:    strings.TrimRight(baseURL, "/") + "/",
		client: client,
		log:    log.NewHelper(o.logger),
	}, nil
}

// FetchHello 对 {baseURL}/ 发起一次 GET，并返回响应体文本。
// 网络失败或读取响应体失败时返回错误；不重试，也不根据状态码判定失败：
// 非 2xx 响应的正文同样作为问候语返回，仅记录一条告警日志。
func (c *HelloWorldClient) FetchHello(ctx context.Context) (string, error) {
	req, err := stdhttp.NewRequestWithContext(ctx, stdhttp.MethodGet, c.url, nil)
	if err != nil {
		return "", err
	}
	if meta, ok := metadata.FromContext(ctx); ok && meta.RequestID != "" {
		req.Header.Set(metadata.HeaderRequestID, meta.RequestID)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < stdhttp.StatusOK || resp.StatusCode >= stdhttp.StatusMultipleChoices {
		c.log.WithContext(ctx).Warnf("upstream %s answered %d; relaying body as greeting", c.url, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Close releases the underlying client.
func (c *HelloWorldClient) Close() error {
	return c.client.Close()
}

// relayErrorDecoder keeps every response, whatever its status, for the caller to read.
func relayErrorDecoder(context.Context, *stdhttp.Response) error {
	return nil
}
