package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGreet(t *testing.T) {
	out, err := run(t, "greet")
	require.NoError(t, err)
	require.Equal(t, "Bonjour le monde!\n", out)

	out, err = run(t, "greet", "--text", "Hallo Welt")
	require.NoError(t, err)
	require.Equal(t, "Hallo Welt\n", out)
}

func TestAdd(t *testing.T) {
	out, err := run(t, "add", "1", "2")
	require.NoError(t, err)
	require.Equal(t, "3\n", out)

	_, err = run(t, "add", "one", "2")
	require.Error(t, err)

	_, err = run(t, "add", "1")
	require.Error(t, err)
}

func TestFetch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "HTTP Hello World")
	}))
	defer upstream.Close()

	out, err := run(t, "fetch", "--url", upstream.URL)
	require.NoError(t, err)
	require.Equal(t, "HTTP Hello World\n", out)
}

// TestFetch_URLFromEnv 验证未传 --url 时读取 HELLO_WORLD_URL。
func TestFetch_URLFromEnv(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "from env")
	}))
	defer upstream.Close()
	t.Setenv("HELLO_WORLD_URL", upstream.URL)

	out, err := run(t, "fetch")
	require.NoError(t, err)
	require.Equal(t, "from env\n", out)
}
