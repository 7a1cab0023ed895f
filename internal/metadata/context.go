// Package metadata 提供 HandlerMetadata 在 Context 中的存取工具，供控制器、服务层与客户端共享。
package metadata

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	// HeaderRequestID 是请求追踪 ID 的 HTTP 头。
	HeaderRequestID = "X-Request-ID"
	// HeaderForwardedFor 是上游代理写入的客户端地址头。
	HeaderForwardedFor = "X-Forwarded-For"
)

// HandlerMetadata 描述从请求头或上游链路解析出的上下文信息。
type HandlerMetadata struct {
	RequestID    string
	ForwardedFor string
}

// IsZero 判断 Metadata 是否为空。
func (m HandlerMetadata) IsZero() bool {
	return m.RequestID == "" && m.ForwardedFor == ""
}

// RequestUUID 尝试解析 request_id 为 UUID。
func (m HandlerMetadata) RequestUUID() (uuid.UUID, bool) {
	if strings.TrimSpace(m.RequestID) == "" {
		return uuid.Nil, false
	}
	value, err := uuid.Parse(m.RequestID)
	if err != nil {
		return uuid.Nil, false
	}
	return value, true
}

// FromHeader 解析请求头；缺少 X-Request-ID 时生成新的 UUID。
func FromHeader(h http.Header) HandlerMetadata {
	id := strings.TrimSpace(h.Get(HeaderRequestID))
	if id == "" {
		id = uuid.New().String()
	}
	return HandlerMetadata{
		RequestID:    id,
		ForwardedFor: strings.TrimSpace(h.Get(HeaderForwardedFor)),
	}
}

type ctxKey struct{}

// Inject 将 HandlerMetadata 注入 Context。
func Inject(ctx context.Context, meta HandlerMetadata) context.Context {
	if meta.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext 读取上游注入的 HandlerMetadata。
func FromContext(ctx context.Context) (HandlerMetadata, bool) {
	if ctx == nil {
		return HandlerMetadata{}, false
	}
	meta, ok := ctx.Value(ctxKey{}).(HandlerMetadata)
	return meta, ok
}
