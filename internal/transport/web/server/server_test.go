package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/lumiere-jewelry/storefront-recommendations/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Serve_InFlightRequestSurvivesShutdown(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	ctx, cancel := context.WithCancel(domain.ContextWithLogger(context.Background(), logger))
	defer cancel()

	started := make(chan struct{})
	release := make(chan struct{})
	type observation struct {
		err    error
		logger *slog.Logger
	}
	observed := make(chan observation, 1)

	s := &Server{
		Router: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			<-release
			observed <- observation{err: r.Context().Err(), logger: domain.LoggerFromContext(r.Context())}
			w.WriteHeader(http.StatusOK)
		}),
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.serve(ctx, listener)
	}()

	status := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + listener.Addr().String() + "/")
		if err != nil {
			status <- 0
			return
		}
		_ = resp.Body.Close()
		status <- resp.StatusCode
	}()

	<-started
	cancel()
	// Give Shutdown time to begin before the request completes.
	time.Sleep(50 * time.Millisecond)
	close(release)

	assert.Equal(t, http.StatusOK, <-status)
	require.NoError(t, <-serveErr)
	obs := <-observed
	assert.NoError(t, obs.err)
	assert.Same(t, logger, obs.logger)
}
