package clients_test

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-hello/internal/clients"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestFetchHello_AgainstHelloWorldContainer 对真实的 helloworld-http 容器发起调用。
func TestFetchHello_AgainstHelloWorldContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("skip integration in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	baseURL, cleanup := startHelloWorld(ctx, t)
	defer cleanup()

	client, err := clients.NewHelloWorldClient(baseURL, clients.WithLogger(log.NewStdLogger(io.Discard)))
	require.NoError(t, err)
	defer client.Close()

	got, err := client.FetchHello(ctx)
	require.NoError(t, err)
	require.Contains(t, got, "HTTP Hello World")
}

func startHelloWorld(ctx context.Context, t *testing.T) (string, func()) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "strm/helloworld-http",
		ExposedPorts: []string{"80/tcp"},
		WaitingFor:   wait.ForHTTP("/").WithPort("80/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("skip integration: cannot start helloworld-http container: %v", err)
		return "", func() {}
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "80")
	require.NoError(t, err)

	cleanup := func() {
		termCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = container.Terminate(termCtx)
	}
	return fmt.Sprintf("http://%s:%s", host, port.Port()), cleanup
}
