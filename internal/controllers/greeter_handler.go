// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
package controllers

import (
	"context"
	stdhttp "net/http"
	"os"

	"github.com/bionicotaku/lingo-services-hello/internal/infrastructure/assets"
	"github.com/bionicotaku/lingo-services-hello/internal/models/vo"
	"github.com/bionicotaku/lingo-services-hello/internal/services"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	// OperationGreeterHello 是 /hello 路由的操作名，用于日志与指标。
	OperationGreeterHello = "/hello.v1.Greeter/Hello"
	// OperationGreeterIndex 是 / 路由的操作名。
	OperationGreeterIndex = "/hello.v1.Greeter/Index"
)

// GreeterHandler 是问候服务的 HTTP 传输层处理器。
type GreeterHandler struct {
	uc     *services.GreeterUsecase // 注入的业务用例层
	assets *assets.Locator          // 静态资源定位
}

// NewGreeterHandler 构造 GreeterHandler。
func NewGreeterHandler(uc *services.GreeterUsecase, locator *assets.Locator) *GreeterHandler {
	return &GreeterHandler{uc: uc, assets: locator}
}

// Hello 处理 GET /hello：获取远程问候语并原样以 text/plain 返回。
// 上游失败时返回 502（UPSTREAM_UNAVAILABLE），由 Kratos 错误编码器渲染。
func (h *GreeterHandler) Hello(ctx khttp.Context) error {
	khttp.SetOperation(ctx, OperationGreeterHello)
	handler := ctx.Middleware(func(c context.Context, _ interface{}) (interface{}, error) {
		return h.uc.FetchRemoteGreeting(c)
	})
	out, err := handler(ctx, nil)
	if err != nil {
		return err
	}
	greeting, _ := out.(*vo.Greeting)
	return ctx.String(stdhttp.StatusOK, greeting.String())
}

// Index 处理 GET /：返回 index 静态文件内容；文件缺失时返回 404（ASSET_NOT_FOUND）。
func (h *GreeterHandler) Index(ctx khttp.Context) error {
	khttp.SetOperation(ctx, OperationGreeterIndex)
	handler := ctx.Middleware(func(context.Context, interface{}) (interface{}, error) {
		path := h.assets.IndexPath()
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return nil, services.ErrAssetNotFound.WithMetadata(map[string]string{"path": path})
		}
		return path, nil
	})
	out, err := handler(ctx, nil)
	if err != nil {
		return err
	}
	stdhttp.ServeFile(ctx.Response(), ctx.Request(), out.(string))
	return nil
}
