package api

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"todo-api/internal/config"
	"todo-api/internal/logging"
	"todo-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerServeAndShutdown(t *testing.T) {
	repo, err := config.CreateTestRepository()
	require.NoError(t, err)
	defer repo.Close()

	cfg := config.NewConfig()
	handler := NewHandler(services.NewTaskService(repo, cfg, logging.Discard()), logging.Discard())
	srv := NewServer(cfg.Server, handler, logging.Discard())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "API is running", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerRunBadAddress(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Server.Addr = "256.0.0.1:bad"
	srv := NewServer(cfg.Server, NewHandler(brokenService{}, nil), logging.Discard())

	err := srv.Run(context.Background())
	assert.Error(t, err)
}
