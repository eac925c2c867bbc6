package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Run(t *testing.T) {
	cfg := testConfig(t)
	s, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan error)
	go func() { ch <- s.Run(ctx) }()

	assert.Eventually(t, func() bool {
		resp, err2 := http.Get(fmt.Sprintf("http://127.0.0.1:%d/health", s.HTTPServer.Port))
		if err2 != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-ch)
}

func TestServer_Collects(t *testing.T) {
	s, err := New(testConfig(t))
	require.NoError(t, err)
	defer s.Close()

	r := prometheus.NewPedanticRegistry()
	r.MustRegister(s.Module)

	resp := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/buttons", bytes.NewBufferString(`{ "color": 255 }`))
	s.handleButtons(resp, req)
	require.Equal(t, http.StatusCreated, resp.Code)

	metrics, err := r.Gather()
	require.NoError(t, err)
	assert.Len(t, metrics, 1)
}
