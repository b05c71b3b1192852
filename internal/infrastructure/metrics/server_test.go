package metrics

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/younwookim/gamebox/internal/application/event"
)

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer_Endpoints(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))

	srv := NewServer("127.0.0.1:0", slog.New(slog.DiscardHandler))
	errCh, err := srv.Start()
	require.NoError(t, err)

	srv.Metrics().ObserveDispatch(event.MousePress, 1)

	code, body := get(t, "http://"+srv.Addr()+"/healthz/liveness")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok\n", body)

	code, body = get(t, "http://"+srv.Addr()+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `gamebox_events_dispatched_total{category="mouse_press"} 1`)
	assert.Contains(t, body, "go_goroutines")

	http.DefaultClient.CloseIdleConnections()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	_, open := <-errCh
	assert.False(t, open, "error channel closes on graceful stop")
}

func TestServer_StartTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv := NewServer("127.0.0.1:0", slog.New(slog.DiscardHandler))
	_, err := srv.Start()
	require.NoError(t, err)
	defer func() { require.NoError(t, srv.Stop(context.Background())) }()

	_, err = srv.Start()
	assert.Error(t, err)
}

func TestServer_StopWithoutStart(t *testing.T) {
	srv := NewServer("127.0.0.1:0", nil)
	assert.NoError(t, srv.Stop(context.Background()))
	assert.Empty(t, srv.Addr())
}

func TestServer_BadAddr(t *testing.T) {
	srv := NewServer("not-an-address", nil)
	_, err := srv.Start()
	assert.Error(t, err)

	// a failed start leaves the server startable
	assert.NoError(t, srv.Stop(context.Background()))
}
